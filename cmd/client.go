package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Mohsinsiddi/kaiascan/internal/credentials"
	"github.com/Mohsinsiddi/kaiascan/internal/kaiascan"
	"github.com/Mohsinsiddi/kaiascan/internal/ui"
	"github.com/spf13/cobra"
)

// transport is the RoundTripper API clients are built with; nil means
// http.DefaultTransport.
var transport http.RoundTripper

// newClient builds an API client from the loaded config and resolved key.
// A spinner runs on stderr while each request is in flight.
func newClient() (*kaiascan.Client, error) {
	return buildClient(true)
}

func buildClient(spin bool) (*kaiascan.Client, error) {
	network, err := kaiascan.ParseNetwork(cfg.NetworkMode)
	if err != nil {
		return nil, err
	}

	key, source, err := credentials.Resolve(apiKey, keyStore())
	if err != nil {
		return nil, fmt.Errorf("reading API key: %w", err)
	}
	log.Debug("api key resolved", "source", source)
	if source == credentials.SourceNone {
		log.Warn("no API key configured; requests are sent without a bearer token")
	}

	hc := &http.Client{
		Transport: transport,
		Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
	if spin {
		hc.Transport = spinnerTransport{next: transport}
	}
	opts := []kaiascan.Option{kaiascan.WithHTTPClient(hc), kaiascan.WithLogger(log)}
	if cfg.UserAgent != "" {
		opts = append(opts, kaiascan.WithUserAgent(cfg.UserAgent))
	}
	return kaiascan.New(network, key, opts...), nil
}

// spinnerTransport shows a spinner for the duration of each round trip.
type spinnerTransport struct {
	next http.RoundTripper
}

func (t spinnerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	sp := ui.NewSpinner("Querying " + req.URL.Path)
	sp.Start()
	defer sp.Stop()

	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}
	return next.RoundTrip(req)
}

// lazyKeychain opens the OS keychain only when Resolve falls through to it.
type lazyKeychain struct{}

func (lazyKeychain) open() (credentials.Store, error) {
	return credentials.DefaultKeychain(cfg.Dir())
}

func (k lazyKeychain) SetAPIKey(key string) error {
	s, err := k.open()
	if err != nil {
		return err
	}
	return s.SetAPIKey(key)
}

func (k lazyKeychain) APIKey() (string, error) {
	s, err := k.open()
	if err != nil {
		log.Debug("keychain unavailable", "error", err)
		return "", credentials.ErrNotFound
	}
	return s.APIKey()
}

func (k lazyKeychain) DeleteAPIKey() error {
	s, err := k.open()
	if err != nil {
		return err
	}
	return s.DeleteAPIKey()
}

// emit renders a successful response payload in the configured format.
func emit(cmd *cobra.Command, title string, resp *kaiascan.Raw) error {
	return ui.Render(cmd.OutOrStdout(), cfg.Output, title, resp.Data)
}

// errorLine formats err for stderr, naming the failure kind.
func errorLine(err error) string {
	var (
		apiErr *kaiascan.APIError
		valErr *kaiascan.ValidationError
	)
	switch {
	case errors.As(err, &apiErr):
		return ui.Err(apiErr.Error())
	case errors.As(err, &valErr):
		return ui.Err("invalid arguments: " + valErr.Error())
	case errors.Is(err, kaiascan.ErrTransport):
		return ui.Err(err.Error()) + "\n" + ui.Meta("  check your connection, API key and --testnet/--mainnet")
	default:
		return ui.Err(err.Error())
	}
}
