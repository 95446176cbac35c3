package kaiascan

import (
	"context"
	"encoding/json"
)

// GetContract returns the contract summary.
func (c *Client) GetContract(ctx context.Context, contract Address) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPContract, Args{"contractAddress": contract})
}

// GetContractCreationCode returns the contract's creation bytecode.
func (c *Client) GetContractCreationCode(ctx context.Context, contract Address) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPContractCreationCode, Args{"contractAddress": contract})
}

// GetContractSourceCode returns the verified source of the contract.
func (c *Client) GetContractSourceCode(ctx context.Context, contract Address) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPContractSourceCode, Args{"contractAddress": contract})
}

// GetContractABI returns the verified ABI of the contract.
func (c *Client) GetContractABI(ctx context.Context, contract Address) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPContractABI, Args{"contractAddress": contract})
}

// GetContracts fetches several contract overviews in one request. The
// addresses travel as a single comma-joined query value.
func (c *Client) GetContracts(ctx context.Context, contracts []Address) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPContracts, Args{"contractAddresses": contracts})
}
