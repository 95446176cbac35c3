// Package kaiascan is a typed client for the Kaiascan Open API.
//
// Every operation is a row in a descriptor table (see Endpoints). A call
// validates its arguments, builds one URL, issues one GET and unwraps the
// {code, data, msg} envelope. Nothing is cached or retried.
package kaiascan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"
)

const defaultUserAgent = "kaiascan-go/1.0"

// maxErrBody caps how much of a non-2xx body is quoted in an error.
const maxErrBody = 256

// Client is bound to one network for its lifetime. It holds no mutable
// state and is safe for concurrent use.
type Client struct {
	network   Network
	baseURL   string // network base URL; replaced by in-package tests
	apiKey    string
	userAgent string
	http      *http.Client
	log       *slog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient sets the transport. The client adds no timeout of its own.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a client for network authenticating with apiKey. It does no I/O.
func New(network Network, apiKey string, opts ...Option) *Client {
	c := &Client{
		network:   network,
		baseURL:   network.BaseURL(),
		apiKey:    apiKey,
		userAgent: defaultUserAgent,
		http:      &http.Client{},
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Network returns the network the client was created for.
func (c *Client) Network() Network { return c.network }

// BaseURL returns the API root, with trailing slash.
func (c *Client) BaseURL() string { return c.network.BaseURL() }

// ChainID returns the chain identifier of the bound network.
func (c *Client) ChainID() string { return c.network.ChainID() }

// URL returns the request URL a call to endpoint name with args would use,
// without sending anything. Validation errors are the same as Invoke's.
func (c *Client) URL(name string, args Args) (string, error) {
	ep, ok := Lookup(name)
	if !ok {
		return "", &ValidationError{Endpoint: name, Reason: "unknown endpoint"}
	}
	enc, err := ep.prepare(args)
	if err != nil {
		return "", err
	}
	return ep.url(c.baseURL, enc), nil
}

// Invoke calls the endpoint registered under name and decodes the payload
// into T. Use json.RawMessage for T to get the payload untouched.
func Invoke[T any](ctx context.Context, c *Client, name string, args Args) (*Response[T], error) {
	u, err := c.URL(name, args)
	if err != nil {
		c.log.Debug("kaiascan request rejected", "endpoint", name, "error", err)
		return nil, err
	}

	c.log.Debug("kaiascan request", "endpoint", name, "url", u)
	body, err := c.get(ctx, u)
	if err != nil {
		c.log.Debug("kaiascan transport failure", "endpoint", name, "url", u, "error", err)
		return nil, err
	}

	resp, err := decodeEnvelope[T](u, body)
	if err != nil {
		c.log.Debug("kaiascan call failed", "endpoint", name, "url", u, "error", err)
		return nil, err
	}
	return resp, nil
}

// get performs the single GET of a call.
func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{URL: u, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: u, StatusCode: resp.StatusCode, Err: fmt.Errorf("reading body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := strings.TrimSpace(string(body))
		if len(snippet) > maxErrBody {
			snippet = truncate(snippet, maxErrBody) + "…"
		}
		if snippet == "" {
			snippet = http.StatusText(resp.StatusCode)
		}
		return nil, &TransportError{URL: u, StatusCode: resp.StatusCode, Err: fmt.Errorf("%s", snippet)}
	}
	return body, nil
}

// decodeEnvelope unwraps {code, data, msg}. A body missing any of the three
// fields, or carrying a null code or msg, is an EnvelopeError; a non-zero
// code is an APIError.
func decodeEnvelope[T any](u string, body []byte) (*Response[T], error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, &EnvelopeError{URL: u, Err: err}
	}
	for _, k := range []string{"code", "data", "msg"} {
		if _, ok := fields[k]; !ok {
			return nil, &EnvelopeError{URL: u, Err: fmt.Errorf("missing %q field", k)}
		}
	}

	// code and msg must carry real values; null would decode silently to
	// the zero value and read as success.
	var code *int
	if err := json.Unmarshal(fields["code"], &code); err != nil {
		return nil, &EnvelopeError{URL: u, Err: fmt.Errorf("code: %w", err)}
	}
	if code == nil {
		return nil, &EnvelopeError{URL: u, Err: fmt.Errorf("code is null")}
	}
	var msg *string
	if err := json.Unmarshal(fields["msg"], &msg); err != nil {
		return nil, &EnvelopeError{URL: u, Err: fmt.Errorf("msg: %w", err)}
	}
	if msg == nil {
		return nil, &EnvelopeError{URL: u, Err: fmt.Errorf("msg is null")}
	}
	if *code != 0 {
		return nil, &APIError{Code: *code, Msg: *msg}
	}

	resp := &Response[T]{Code: *code, Msg: *msg}
	if err := json.Unmarshal(fields["data"], &resp.Data); err != nil {
		return nil, &EnvelopeError{URL: u, Err: fmt.Errorf("data: %w", err)}
	}
	return resp, nil
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
