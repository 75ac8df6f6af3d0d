// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/countdown/countdown"
	"github.com/danielhkuo/countdown/models"
	"github.com/danielhkuo/countdown/testutil"
)

func TestGetCountdowns(t *testing.T) {
	cfg := testutil.GetTestConfig()
	handler := NewCountdownHandler(cfg.Targets(), testutil.NewTestCalculator())

	req := httptest.NewRequest("GET", "/api/countdown", nil)
	w := httptest.NewRecorder()

	handler.GetCountdowns(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Expected JSON content type, got %q", w.Header().Get("Content-Type"))
	}
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("Expected Cache-Control no-store, got %q", w.Header().Get("Cache-Control"))
	}

	var resp models.CountdownsResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Countdowns) != 3 {
		t.Fatalf("Expected 3 countdowns, got %d", len(resp.Countdowns))
	}

	past, future, broken := resp.Countdowns[0], resp.Countdowns[1], resp.Countdowns[2]
	if past.Title != "Past" || !past.Complete() {
		t.Errorf("Expected completed 'Past' first, got %+v", past)
	}
	if future.Title != "Future" || future.Complete() || future.Invalid() {
		t.Errorf("Expected pending 'Future' second, got %+v", future)
	}
	if future.TargetDateTime != "2099-01-01T00:00:00.000Z" {
		t.Errorf("Unexpected normalized target %q", future.TargetDateTime)
	}
	if broken.Title != "Broken" || broken.Error != models.ErrMsgInvalidDate {
		t.Errorf("Expected invalid 'Broken' last, got %+v", broken)
	}
}

func TestGetCountdowns_NotConfigured(t *testing.T) {
	handler := NewCountdownHandler(nil, testutil.NewTestCalculator())

	req := httptest.NewRequest("GET", "/api/countdown", nil)
	w := httptest.NewRecorder()

	handler.GetCountdowns(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != models.ErrMsgNotConfigured {
		t.Errorf("Expected configuration error, got %q", resp.Error)
	}
}

func TestGetCountdowns_EmptyListIsNotSuccess(t *testing.T) {
	handler := NewCountdownHandler([]countdown.Target{}, testutil.NewTestCalculator())

	req := httptest.NewRequest("GET", "/api/countdown", nil)
	w := httptest.NewRecorder()

	handler.GetCountdowns(w, req)

	if w.Code == http.StatusOK {
		t.Fatalf("Expected an error status, got 200 with %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "countdowns") {
		t.Errorf("Error response should not contain a countdowns array: %s", w.Body.String())
	}
}

func TestGetCountdowns_Idempotent(t *testing.T) {
	cfg := testutil.GetTestConfig()
	handler := NewCountdownHandler(cfg.Targets(), testutil.NewTestCalculator())

	var bodies []string
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/api/countdown", nil)
		w := httptest.NewRecorder()
		handler.GetCountdowns(w, req)
		bodies = append(bodies, w.Body.String())
	}

	if bodies[0] != bodies[1] {
		t.Errorf("Expected byte-identical responses\nfirst:  %s\nsecond: %s", bodies[0], bodies[1])
	}
}

func TestGetCountdowns_ClockAdvances(t *testing.T) {
	now := testutil.TestNow
	clock := func() time.Time { return now }
	calc := countdown.NewCalculator(clock, time.UTC)

	targets := []countdown.Target{{Title: "Soon", Raw: now.Add(2 * time.Second).Format(time.RFC3339)}}
	handler := NewCountdownHandler(targets, calc)

	tests := []struct {
		name     string
		advance  time.Duration
		complete bool
		seconds  int64
	}{
		{"two seconds out", 0, false, 2},
		{"one second out", time.Second, false, 1},
		{"reached", time.Second, true, 0},
		{"passed", time.Second, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now = now.Add(tt.advance)

			req := httptest.NewRequest("GET", "/api/countdown", nil)
			w := httptest.NewRecorder()
			handler.GetCountdowns(w, req)

			var resp models.CountdownsResponse
			testutil.AssertJSON(t, w, &resp)

			rec := resp.Countdowns[0]
			if rec.Complete() != tt.complete {
				t.Errorf("Expected complete=%v, got %v", tt.complete, rec.Complete())
			}
			if rec.TimeRemaining.Seconds != tt.seconds {
				t.Errorf("Expected %d seconds, got %d", tt.seconds, rec.TimeRemaining.Seconds)
			}
		})
	}
}

func TestNewCountdownHandler_CopiesTargets(t *testing.T) {
	targets := []countdown.Target{{Title: "Original", Raw: "2099-01-01T00:00:00Z"}}
	handler := NewCountdownHandler(targets, testutil.NewTestCalculator())

	targets[0].Title = "Mutated"

	req := httptest.NewRequest("GET", "/api/countdown", nil)
	w := httptest.NewRecorder()
	handler.GetCountdowns(w, req)

	var resp models.CountdownsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Countdowns[0].Title != "Original" {
		t.Errorf("Handler should not observe caller mutations, got %q", resp.Countdowns[0].Title)
	}
}
