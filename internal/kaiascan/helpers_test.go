package kaiascan

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// stubTransport answers every request with a canned response and records
// what was sent. It never touches the network.
type stubTransport struct {
	mu     sync.Mutex
	status int
	body   string
	reqs   []*http.Request
}

func (s *stubTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	s.mu.Lock()
	s.reqs = append(s.reqs, r)
	s.mu.Unlock()
	status := s.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(s.body)),
		Request:    r,
	}, nil
}

func (s *stubTransport) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reqs)
}

func (s *stubTransport) lastURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.reqs) == 0 {
		return ""
	}
	return s.reqs[len(s.reqs)-1].URL.String()
}

// failingTransport fails every round trip the way a refused dial would.
type failingTransport struct {
	mu    sync.Mutex
	count int
}

var errDialRefused = errors.New("dial tcp 127.0.0.1:1: connect: connection refused")

func (f *failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	f.mu.Lock()
	f.count++
	f.mu.Unlock()
	return nil, errDialRefused
}

const okBody = `{"code":0,"data":{"k":"v"},"msg":"Success"}`

// stubClient returns a testnet client whose transport is a stub.
func stubClient(t *testing.T, status int, body string) (*Client, *stubTransport) {
	t.Helper()
	st := &stubTransport{status: status, body: body}
	return New(Testnet, "TESTKEY", WithHTTPClient(&http.Client{Transport: st})), st
}

// serverClient points a client at an httptest server.
func serverClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(Mainnet, "TESTKEY")
	c.baseURL = srv.URL + "/"
	return c
}

// sampleArgs fills every required parameter of ep with a plausible value.
func sampleArgs(ep Endpoint) Args {
	a := Args{}
	for _, p := range ep.Params {
		if !p.Required && p.In != InPath {
			continue
		}
		switch p.Kind {
		case KindInt:
			a[p.Name] = 100
		case KindList:
			a[p.Name] = []string{"0xaaa", "0xbbb"}
		default:
			a[p.Name] = "0xabc"
		}
	}
	return a
}
