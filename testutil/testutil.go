// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/danielhkuo/countdown/cliparse"
	"github.com/danielhkuo/countdown/countdown"
	"github.com/danielhkuo/countdown/db"
)

// TestNow is the fixed instant used by test calculators
var TestNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

// SetupTestStore opens a fresh SQLite target store in a temp directory
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "countdown.db")
	store, err := db.Open(context.Background(), db.TypeSQLite, "file:"+path)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3000,
		TargetDateTimes: []string{"2099-01-01T00:00:00Z", "2000-01-01T00:00:00Z", "not-a-date"},
		Titles:          []string{"Future", "Past", "Broken"},
		DatabaseType:    cliparse.DatabaseSQLite,
		LogLevel:        "info",
		LogFormat:       "json",
	}
}

// FixedClock returns a clock that always reports now
func FixedClock(now time.Time) countdown.Clock {
	return func() time.Time { return now }
}

// NewTestCalculator returns a UTC calculator frozen at TestNow
func NewTestCalculator() *countdown.Calculator {
	return countdown.NewCalculator(FixedClock(TestNow), time.UTC)
}

// TestAssets returns a minimal in-memory front-end
func TestAssets() fstest.MapFS {
	return fstest.MapFS{
		"index.html": {Data: []byte(`<div id="countdown-list"></div>`)},
		"script.js":  {Data: []byte(`console.log("countdown");`)},
		"styles.css": {Data: []byte(`body {}`)},
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
