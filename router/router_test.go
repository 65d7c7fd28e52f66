// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/railapi/testutil"
	"github.com/danielhkuo/railapi/upstream"
)

func newTestRouter(t *testing.T) (*http.ServeMux, *testutil.Upstream) {
	t.Helper()
	up := testutil.NewUpstream(t)
	cfg := testutil.GetTestConfig(up.URL)
	return NewRouter(upstream.NewClient(cfg)), up
}

func TestHealthEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t)

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
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != Banner {
		t.Errorf("Expected body '%s', got '%s'", Banner, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux, _ := newTestRouter(t)

	// Without query parameters every lookup answers 400 from its handler
	paths := []string{
		"/getTrain",
		"/betweenStations",
		"/getTrainOn",
		"/getRoute",
		"/stationLive",
		"/pnrstatus",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400 from handler for %s, got %d", path, w.Code)
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Errorf("Expected %s to be wrapped with request logging", path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _ := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"POST", "/getTrain"},
		{"DELETE", "/pnrstatus"},
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

func TestEndToEnd(t *testing.T) {
	mux, up := newTestRouter(t)
	up.Handle(testutil.StationLiveRoute+"NDLS", testutil.Reply{Body: testutil.LivePage})

	req := httptest.NewRequest("GET", "/stationLive?code=NDLS", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertEnvelope(t, w, true)
}
