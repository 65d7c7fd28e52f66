// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/railapi/cliparse"
)

// Reply is a canned upstream answer
type Reply struct {
	Status int
	Body   string
}

// Seen is one request the fake upstream received
type Seen struct {
	Path      string
	Query     url.Values
	UserAgent string
}

// Upstream impersonates erail and the PNR site. Routes are keyed by path,
// optionally narrowed by query values: "/rail/getTrains.aspx?TrainNo=12951".
// The most specific matching route wins; unmatched requests get a 404.
type Upstream struct {
	*httptest.Server

	mu     sync.Mutex
	routes map[string]Reply
	seen   []Seen
}

// NewUpstream starts a fake upstream that is closed when the test ends
func NewUpstream(t *testing.T) *Upstream {
	t.Helper()

	u := &Upstream{routes: map[string]Reply{}}
	u.Server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.Close)
	return u
}

// Handle registers reply for route
func (u *Upstream) Handle(route string, reply Reply) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if reply.Status == 0 {
		reply.Status = http.StatusOK
	}
	u.routes[route] = reply
}

// Requests returns the requests received so far
func (u *Upstream) Requests() []Seen {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]Seen(nil), u.seen...)
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.seen = append(u.seen, Seen{Path: r.URL.Path, Query: r.URL.Query(), UserAgent: r.UserAgent()})

	best, bestScore := Reply{}, -1
	for route, reply := range u.routes {
		if score := matchRoute(route, r.URL); score > bestScore {
			best, bestScore = reply, score
		}
	}
	u.mu.Unlock()

	if bestScore < 0 {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(best.Status)
	w.Write([]byte(best.Body))
}

// matchRoute returns how many query values route pins, or -1 on mismatch
func matchRoute(route string, got *url.URL) int {
	want, err := url.Parse(route)
	if err != nil || want.Path != got.Path {
		return -1
	}
	gotQuery := got.Query()
	wantQuery := want.Query()
	for k := range wantQuery {
		if gotQuery.Get(k) != wantQuery.Get(k) {
			return -1
		}
	}
	return len(wantQuery)
}

// GetTestConfig returns a configuration pointing both upstream sites at baseURL
func GetTestConfig(baseURL string) cliparse.Config {
	cfg := cliparse.Defaults()
	cfg.ErailBaseURL = baseURL
	cfg.PNRBaseURL = baseURL
	cfg.UpstreamTimeout = 2 * time.Second
	cfg.PNRTimeout = 2 * time.Second
	cfg.UserAgent = "railapi-test"
	return cfg
}

// Envelope is the decoded {success, time_stamp, data} body with data left raw
type Envelope struct {
	Success   bool            `json:"success"`
	TimeStamp int64           `json:"time_stamp"`
	Data      json.RawMessage `json:"data"`
}

// Message returns data as a string, failing the test if it is not one
func (e Envelope) Message(t *testing.T) string {
	t.Helper()
	var msg string
	if err := json.Unmarshal(e.Data, &msg); err != nil {
		t.Fatalf("Expected string data, got %s", e.Data)
	}
	return msg
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

// AssertEnvelope decodes the body as an envelope and checks its success flag
func AssertEnvelope(t *testing.T, w *httptest.ResponseRecorder, success bool) Envelope {
	t.Helper()
	var env Envelope
	AssertJSON(t, w, &env)
	if env.Success != success {
		t.Errorf("Expected success=%v, got %v. Data: %s", success, env.Success, env.Data)
	}
	if env.TimeStamp <= 0 {
		t.Errorf("Expected a time stamp, got %d", env.TimeStamp)
	}
	return env
}
