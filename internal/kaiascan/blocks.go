package kaiascan

import (
	"context"
	"encoding/json"
)

// GetLatestBlock returns the most recent block.
func (c *Client) GetLatestBlock(ctx context.Context) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPLatestBlock, Args{})
}

// GetLatestBlockBurns lists KAIA burns of recent blocks.
func (c *Client) GetLatestBlockBurns(ctx context.Context, p *Pagination) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPLatestBlockBurns, withPage(Args{}, p))
}

// GetLatestBlockRewards queries the latest-block rewards endpoint for blockNumber.
func (c *Client) GetLatestBlockRewards(ctx context.Context, blockNumber int64) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPLatestBlockRewards, Args{"blockNumber": blockNumber})
}

// GetBlock returns one block by number.
func (c *Client) GetBlock(ctx context.Context, blockNumber int64) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPBlock, Args{"blockNumber": blockNumber})
}

// GetBlocks lists blocks around blockNumber, optionally bounded by blocks.
func (c *Client) GetBlocks(ctx context.Context, blockNumber int64, blocks BlockRange, p *Pagination) (*Raw, error) {
	a := withBlocks(Args{"blockNumber": blockNumber}, blocks)
	return Invoke[json.RawMessage](ctx, c, EPBlocks, withPage(a, p))
}

// GetTransactionsOfBlock lists the transactions in a block. txType narrows
// the listing to one transaction type and may be empty.
func (c *Client) GetTransactionsOfBlock(ctx context.Context, blockNumber int64, txType string, p *Pagination) (*Raw, error) {
	a := withString(Args{"blockNumber": blockNumber}, "type", txType)
	return Invoke[json.RawMessage](ctx, c, EPBlockTransactions, withPage(a, p))
}

// GetBlockBurns returns the KAIA burned in one block.
func (c *Client) GetBlockBurns(ctx context.Context, blockNumber int64) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPBlockBurns, Args{"blockNumber": blockNumber})
}

// GetBlockRewards returns the reward breakdown of one block.
func (c *Client) GetBlockRewards(ctx context.Context, blockNumber int64) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPBlockRewards, Args{"blockNumber": blockNumber})
}

// GetInternalTransactionsOfBlock lists internal transactions in one block.
func (c *Client) GetInternalTransactionsOfBlock(ctx context.Context, blockNumber int64, p *Pagination) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPBlockInternalTxs, withPage(Args{"blockNumber": blockNumber}, p))
}

// GetBlockByTimestamp returns the block closest to a unix timestamp in seconds.
func (c *Client) GetBlockByTimestamp(ctx context.Context, timestamp int64) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPBlockByTimestamp, Args{"timestamp": timestamp})
}
