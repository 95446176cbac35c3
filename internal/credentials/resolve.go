package credentials

import (
	"errors"
	"os"
)

// Environment variables consulted for the API key, in order.
const (
	EnvAPIKey       = "KAIASCAN_API_KEY"
	EnvLegacyAPIKey = "API_KEY"
)

// Source names where Resolve found the key.
type Source string

const (
	SourceFlag     Source = "flag"
	SourceEnv      Source = "env"
	SourceKeychain Source = "keychain"
	SourceNone     Source = "none"
)

// Resolve picks the API key: explicit value, then KAIASCAN_API_KEY, then
// API_KEY, then store (which may be nil). A missing key is not an error;
// the API decides whether to accept anonymous calls.
func Resolve(explicit string, store Store) (string, Source, error) {
	if explicit != "" {
		return explicit, SourceFlag, nil
	}
	for _, name := range []string{EnvAPIKey, EnvLegacyAPIKey} {
		if v := os.Getenv(name); v != "" {
			return v, SourceEnv, nil
		}
	}
	if store == nil {
		return "", SourceNone, nil
	}
	key, err := store.APIKey()
	if errors.Is(err, ErrNotFound) {
		return "", SourceNone, nil
	}
	if err != nil {
		return "", SourceNone, err
	}
	return key, SourceKeychain, nil
}
