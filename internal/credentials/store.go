// Package credentials keeps the Kaiascan API key in the OS keychain.
package credentials

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

const (
	keychainService = "kaiascan"
	apiKeyItem      = "kaiascan.api-key"
)

// ErrNotFound is returned when no API key has been stored.
var ErrNotFound = errors.New("no API key stored")

// Store saves, loads and removes the API key.
type Store interface {
	SetAPIKey(key string) error
	APIKey() (string, error)
	DeleteAPIKey() error
}

// Keychain is a Store backed by the OS keychain.
type Keychain struct {
	ring keyring.Keyring
}

// DefaultKeychain opens the OS keychain, falling back to an encrypted file
// under dir on headless Linux. It returns an error only when no backend opens.
func DefaultKeychain(dir string) (*Keychain, error) {
	cfg := keyring.Config{
		ServiceName:              keychainService,
		KeychainTrustApplication: true,
		FileDir:                  dir,
		FilePasswordFunc:         keyring.TerminalPrompt,
	}

	// On Linux without a GUI, fall back to file-based storage.
	if runtime.GOOS == "linux" {
		cfg.AllowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.FileBackend,
		}
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening keychain: %w", err)
	}
	return &Keychain{ring: ring}, nil
}

func (k *Keychain) SetAPIKey(key string) error {
	if key == "" {
		return errors.New("API key must not be empty")
	}
	err := k.ring.Set(keyring.Item{
		Key:   apiKeyItem,
		Data:  []byte(key),
		Label: "Kaiascan API key",
	})
	if err != nil {
		return fmt.Errorf("keychain store: %w", err)
	}
	return nil
}

func (k *Keychain) APIKey() (string, error) {
	item, err := k.ring.Get(apiKeyItem)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("keychain retrieve: %w", err)
	}
	return string(item.Data), nil
}

func (k *Keychain) DeleteAPIKey() error {
	err := k.ring.Remove(apiKeyItem)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return ErrNotFound
	}
	return err
}

// Memory is an in-process Store for tests.
type Memory struct {
	mu  sync.Mutex
	key string
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) SetAPIKey(key string) error {
	if key == "" {
		return errors.New("API key must not be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.key = key
	return nil
}

func (m *Memory) APIKey() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.key == "" {
		return "", ErrNotFound
	}
	return m.key, nil
}

func (m *Memory) DeleteAPIKey() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.key == "" {
		return ErrNotFound
	}
	m.key = ""
	return nil
}
