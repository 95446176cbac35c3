package kaiascan

import (
	"fmt"
	"strings"
)

// Network selects which Kaia deployment a client talks to.
type Network int

const (
	Mainnet Network = iota
	Testnet
)

const (
	mainnetBaseURL = "https://mainnet-oapi.kaiascan.io/"
	testnetBaseURL = "https://kairos-oapi.kaiascan.io/"

	mainnetChainID = "8217"
	testnetChainID = "1001"
)

// ParseNetwork maps a mode string to a Network. "cypress" and "kairos" are
// accepted as aliases for mainnet and testnet.
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mainnet", "cypress":
		return Mainnet, nil
	case "testnet", "kairos":
		return Testnet, nil
	default:
		return Mainnet, fmt.Errorf("unknown network %q (want mainnet or testnet)", s)
	}
}

// String returns "mainnet" or "testnet".
func (n Network) String() string {
	if n == Testnet {
		return "testnet"
	}
	return "mainnet"
}

// BaseURL returns the Open API root for the network, with trailing slash.
func (n Network) BaseURL() string {
	if n == Testnet {
		return testnetBaseURL
	}
	return mainnetBaseURL
}

// ChainID returns the chain identifier as the API reports it.
func (n Network) ChainID() string {
	if n == Testnet {
		return testnetChainID
	}
	return mainnetChainID
}
