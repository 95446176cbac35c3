package kaiascan

import (
	"context"
	"encoding/json"
)

// GetFungibleToken returns token metadata. It is the only endpoint with a
// typed payload.
func (c *Client) GetFungibleToken(ctx context.Context, token Address) (*Response[TokenInfo], error) {
	return Invoke[TokenInfo](ctx, c, EPFungibleToken, Args{"tokenAddress": token})
}

// GetTokenHolders lists holders of a fungible token.
func (c *Client) GetTokenHolders(ctx context.Context, token Address, p *Pagination) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPTokenHolders, withPage(Args{"tokenAddress": token}, p))
}

// GetTokenBurns lists burns of a fungible token.
func (c *Client) GetTokenBurns(ctx context.Context, token Address, p *Pagination) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPTokenBurns, withPage(Args{"tokenAddress": token}, p))
}

// GetTokenTransfers lists transfers of a fungible token within an optional
// block range.
func (c *Client) GetTokenTransfers(ctx context.Context, token Address, blocks BlockRange, p *Pagination) (*Raw, error) {
	a := withBlocks(Args{"tokenAddress": token}, blocks)
	return Invoke[json.RawMessage](ctx, c, EPTokenTransfers, withPage(a, p))
}

// GetNFTItem returns one token of an NFT contract.
func (c *Client) GetNFTItem(ctx context.Context, nft Address, tokenID string) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPNFTItem, Args{"nftAddress": nft, "tokenId": tokenID})
}

// GetNFT returns the NFT contract summary.
func (c *Client) GetNFT(ctx context.Context, nft Address) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPNFT, Args{"nftAddress": nft})
}

// GetNFTTransfers lists transfers of an NFT contract, optionally for one token ID.
func (c *Client) GetNFTTransfers(ctx context.Context, nft Address, opts NFTTransferOptions) (*Raw, error) {
	a := withString(Args{"nftAddress": nft}, "tokenId", opts.TokenID)
	withBlocks(a, opts.Blocks)
	return Invoke[json.RawMessage](ctx, c, EPNFTTransfers, withPage(a, opts.Page))
}

// GetNFTHolders lists holders of an NFT contract.
func (c *Client) GetNFTHolders(ctx context.Context, nft Address, p *Pagination) (*Raw, error) {
	return Invoke[json.RawMessage](ctx, c, EPNFTHolders, withPage(Args{"nftAddress": nft}, p))
}

// GetNFTInventories lists the tokens of an NFT contract. keyword is a free
// text filter and may be empty.
func (c *Client) GetNFTInventories(ctx context.Context, nft Address, keyword string, p *Pagination) (*Raw, error) {
	a := withString(Args{"nftAddress": nft}, "keyword", keyword)
	return Invoke[json.RawMessage](ctx, c, EPNFTInventories, withPage(a, p))
}
