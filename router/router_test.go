// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/countdown/models"
	"github.com/danielhkuo/countdown/testutil"
)

func newTestMux() *http.ServeMux {
	cfg := testutil.GetTestConfig()
	return NewRouter(cfg.Targets(), testutil.NewTestCalculator(), testutil.TestAssets())
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestMux()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestMux()

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "countdown-list") {
		t.Errorf("Expected index page, got '%s'", w.Body.String())
	}
}

func TestCountdownEndpoint(t *testing.T) {
	mux := newTestMux()

	req := httptest.NewRequest("GET", "/api/countdown", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CountdownsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Countdowns) != 3 {
		t.Errorf("Expected 3 countdowns, got %d", len(resp.Countdowns))
	}
}

func TestCountdownEndpoint_NotConfigured(t *testing.T) {
	mux := NewRouter(nil, testutil.NewTestCalculator(), testutil.TestAssets())

	req := httptest.NewRequest("GET", "/api/countdown", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != models.ErrMsgNotConfigured {
		t.Errorf("Unexpected error message %q", resp.Error)
	}
}

func TestCountdownEndpoint_StoredTargets(t *testing.T) {
	store := testutil.SetupTestStore(t)
	ctx := context.Background()

	if _, err := store.InsertTarget(ctx, "Stored", "2024-06-02T00:00:00Z"); err != nil {
		t.Fatalf("InsertTarget failed: %v", err)
	}
	if _, err := store.InsertTarget(ctx, "", "2024-06-01T12:00:00Z"); err != nil {
		t.Fatalf("InsertTarget failed: %v", err)
	}

	stored, err := store.LoadTargets(ctx)
	if err != nil {
		t.Fatalf("LoadTargets failed: %v", err)
	}

	mux := NewRouter(stored, testutil.NewTestCalculator(), testutil.TestAssets())

	req := httptest.NewRequest("GET", "/api/countdown", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CountdownsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Countdowns) != 2 {
		t.Fatalf("Expected 2 countdowns, got %d", len(resp.Countdowns))
	}
	// Soonest first
	if resp.Countdowns[0].TotalHours == nil || *resp.Countdowns[0].TotalHours != 12 {
		t.Errorf("Expected 12 total hours first, got %+v", resp.Countdowns[0])
	}
	if resp.Countdowns[1].Title != "Stored" {
		t.Errorf("Expected Stored second, got %q", resp.Countdowns[1].Title)
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestMux()

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/api/countdown"},
		{"GET", "/script.js"},
		{"GET", "/styles.css"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := testutil.MakeRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestMux()

	// Only GET is defined
	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"POST", "/api/countdown"},
		{"DELETE", "/api/countdown"},
		{"PUT", "/"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestConcurrentCountdownRequests(t *testing.T) {
	mux := newTestMux()

	const workers = 20
	bodies := make(chan string, workers)
	for i := 0; i < workers; i++ {
		go func() {
			req := httptest.NewRequest("GET", "/api/countdown", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			bodies <- w.Body.String()
		}()
	}

	first := <-bodies
	for i := 1; i < workers; i++ {
		if body := <-bodies; body != first {
			t.Errorf("Concurrent responses differ:\n%s\n%s", first, body)
		}
	}
}
