package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/Mohsinsiddi/kaiascan/internal/credentials"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const okEnvelope = `{"code":0,"data":{"results":[],"paging":{"totalCount":0}},"msg":"success"}`

// stubAPI answers every request with body and records the URLs asked for.
type stubAPI struct {
	body   string
	status int

	mu   sync.Mutex
	urls []string
}

func (s *stubAPI) RoundTrip(req *http.Request) (*http.Response, error) {
	s.mu.Lock()
	s.urls = append(s.urls, req.URL.String())
	s.mu.Unlock()

	status := s.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(s.body)),
		Request:    req,
	}, nil
}

func (s *stubAPI) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.urls...)
}

// runCmd executes the CLI in-process against api with a throwaway config
// dir and an in-memory key store.
func runCmd(t *testing.T, api *stubAPI, store credentials.Store, args ...string) (string, error) {
	t.Helper()

	prevTransport, prevStore := transport, keyStore
	transport = api
	keyStore = func() credentials.Store { return store }
	t.Cleanup(func() { transport, keyStore = prevTransport, prevStore })

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--config", t.TempDir()}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// run is runCmd with an explicit API key and an OK envelope.
func run(t *testing.T, args ...string) (*stubAPI, string, error) {
	t.Helper()
	api := &stubAPI{body: okEnvelope}
	out, err := runCmd(t, api, credentials.NewMemory(), append([]string{"--api-key", "test-key"}, args...)...)
	return api, out, err
}

// resetFlags puts every flag back to its default; cobra keeps parsed values
// between executions of the same command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
