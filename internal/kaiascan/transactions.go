package kaiascan

import (
	"context"
	"encoding/json"
)

// GetTransaction returns one transaction by hash.
func (c *Client) GetTransaction(ctx context.Context, hash string) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPTransaction, Args{"transactionHash": hash})
}

// GetTransactionStatus returns the execution status of a transaction.
func (c *Client) GetTransactionStatus(ctx context.Context, hash string) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPTransactionStatus, Args{"transactionHash": hash})
}

// GetTransactionInputData returns the input of a transaction, decoded when
// the target contract is verified.
func (c *Client) GetTransactionInputData(ctx context.Context, hash string) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPTransactionInputData, Args{"transactionHash": hash})
}

// GetTransactionEventLogs lists event logs of a transaction. signature is an optional topic filter.
func (c *Client) GetTransactionEventLogs(ctx context.Context, hash, signature string, p *Pagination) (*Raw, error) {
	a := withString(Args{"transactionHash": hash}, "signature", signature)
	return Invoke[json.RawMessage](ctx, c, EPTransactionEventLogs, withPage(a, p))
}

// GetInternalTransactions lists internal transactions of a transaction.
func (c *Client) GetInternalTransactions(ctx context.Context, hash string, p *Pagination) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPTransactionInternalTxs, withPage(Args{"transactionHash": hash}, p))
}

// GetTransactionTokenTransfers lists fungible token transfers made in a transaction.
func (c *Client) GetTransactionTokenTransfers(ctx context.Context, hash string, p *Pagination) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPTransactionTokenTransfer, withPage(Args{"transactionHash": hash}, p))
}

// GetTransactionNFTTransfers lists NFT transfers made in a transaction.
func (c *Client) GetTransactionNFTTransfers(ctx context.Context, hash string, p *Pagination) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPTransactionNFTTransfers, withPage(Args{"transactionHash": hash}, p))
}

// GetTransactionReceiptStatus returns the receipt status of a transaction.
func (c *Client) GetTransactionReceiptStatus(ctx context.Context, hash string) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPTransactionReceiptStatus, Args{"transactionHash": hash})
}

// GetKaiaInfo returns the KAIA coin and chain summary.
func (c *Client) GetKaiaInfo(ctx context.Context) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPKaiaInfo, Args{})
}
