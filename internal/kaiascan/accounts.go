package kaiascan

import (
	"context"
	"encoding/json"
)

// GetAccount returns the account overview.
func (c *Client) GetAccount(ctx context.Context, account Address) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPAccount, Args{"accountAddress": account})
}

// GetAccountKeyHistories returns the account's key change history.
func (c *Client) GetAccountKeyHistories(ctx context.Context, account Address, p *Pagination) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPAccountKeyHistories, withPage(Args{"accountAddress": account}, p))
}

// GetAccountTokenTransfers lists fungible token transfers of the account.
func (c *Client) GetAccountTokenTransfers(ctx context.Context, account Address, opts TransferOptions) (*Raw, error) {
	a := Args{"accountAddress": account}
	withString(a, "contractAddress", string(opts.ContractAddress))
	withBlocks(a, opts.Blocks)
	return Invoke[json.RawMessage](ctx, c, EPAccountTokenTransfers, withPage(a, opts.Page))
}

// GetAccountEventLogs lists event logs emitted by the account.
func (c *Client) GetAccountEventLogs(ctx context.Context, account Address, opts EventLogOptions) (*Raw, error) {
	a := Args{"accountAddress": account}
	withString(a, "signature", opts.Signature)
	withBlocks(a, opts.Blocks)
	return Invoke[json.RawMessage](ctx, c, EPAccountEventLogs, withPage(a, opts.Page))
}

// GetAccountKIP17NFTBalances lists KIP-17 holdings, optionally for one contract.
func (c *Client) GetAccountKIP17NFTBalances(ctx context.Context, account, contract Address, p *Pagination) (*Raw, error) {
	a := withString(Args{"accountAddress": account}, "contractAddress", string(contract))
	return Invoke[json.RawMessage](ctx, c, EPAccountKIP17Balances, withPage(a, p))
}

// GetAccountKIP37NFTBalances lists KIP-37 holdings, optionally for one contract.
func (c *Client) GetAccountKIP37NFTBalances(ctx context.Context, account, contract Address, p *Pagination) (*Raw, error) {
	a := withString(Args{"accountAddress": account}, "contractAddress", string(contract))
	return Invoke[json.RawMessage](ctx, c, EPAccountKIP37Balances, withPage(a, p))
}

// GetAccountNFTTransfers lists NFT transfers of the account.
func (c *Client) GetAccountNFTTransfers(ctx context.Context, account Address, opts TransferOptions) (*Raw, error) {
	a := Args{"accountAddress": account}
	withString(a, "contractAddress", string(opts.ContractAddress))
	withBlocks(a, opts.Blocks)
	return Invoke[json.RawMessage](ctx, c, EPAccountNFTTransfers, withPage(a, opts.Page))
}

// GetAccountTokenBalances lists the fungible token balances of the account.
func (c *Client) GetAccountTokenBalances(ctx context.Context, account Address, p *Pagination) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPAccountTokenBalances, withPage(Args{"accountAddress": account}, p))
}

// GetAccountTokenDetails lists token holdings with token metadata attached.
// An empty token returns every token the account holds.
func (c *Client) GetAccountTokenDetails(ctx context.Context, account, token Address, p *Pagination) (*Raw, error) {
	a := withString(Args{"accountAddress": account}, "tokenAddress", string(token))
	return Invoke[json.RawMessage](ctx, c, EPAccountTokenDetails, withPage(a, p))
}

// GetAccountTransactions lists the account's transactions.
func (c *Client) GetAccountTransactions(ctx context.Context, account Address, opts AccountTransactionsOptions) (*Raw, error) {
	a := Args{"accountAddress": account}
	withString(a, "type", opts.Type)
	if len(opts.Directions) > 0 {
		a["directions"] = opts.Directions
	}
	withBlocks(a, opts.Blocks)
	return Invoke[json.RawMessage](ctx, c, EPAccountTransactions, withPage(a, opts.Page))
}

// GetAccountFeePaidTransactions lists transactions whose fee the account paid as fee payer.
func (c *Client) GetAccountFeePaidTransactions(ctx context.Context, account Address, p *Pagination) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPAccountFeePaidTxs, withPage(Args{"accountAddress": account}, p))
}
