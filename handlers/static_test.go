// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/countdown/testutil"
)

func TestServeAssets(t *testing.T) {
	handler := NewStaticHandler(testutil.TestAssets())

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		bodyContains   string
	}{
		{"index page", "/", http.StatusOK, "countdown-list"},
		{"script", "/script.js", http.StatusOK, "countdown"},
		{"stylesheet", "/styles.css", http.StatusOK, "body"},
		{"missing asset", "/nope.png", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			w := httptest.NewRecorder()

			handler.ServeAssets(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.bodyContains != "" && !strings.Contains(w.Body.String(), tt.bodyContains) {
				t.Errorf("Expected body to contain %q, got %q", tt.bodyContains, w.Body.String())
			}
		})
	}
}
