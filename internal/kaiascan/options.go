package kaiascan

// Transfer directions accepted by GetAccountTransactions.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// AccountTransactionsOptions filters GetAccountTransactions.
type AccountTransactionsOptions struct {
	Type       string
	Directions []string
	Blocks     BlockRange
	Page       *Pagination
}

// TransferOptions filters transfer listings of an account or token.
type TransferOptions struct {
	ContractAddress Address
	Blocks          BlockRange
	Page            *Pagination
}

// NFTTransferOptions filters GetNFTTransfers.
type NFTTransferOptions struct {
	TokenID string
	Blocks  BlockRange
	Page    *Pagination
}

// EventLogOptions filters event log listings. Signature may be a topic
// hash or, via EventTopic, a text event signature.
type EventLogOptions struct {
	Signature string
	Blocks    BlockRange
	Page      *Pagination
}

// withPage adds page and size, falling back to the defaults for nil p.
func withPage(a Args, p *Pagination) Args {
	d := p.orDefault()
	a["page"] = d.Page
	a["size"] = d.Size
	return a
}

// withBlocks adds the non-zero bounds of r.
func withBlocks(a Args, r BlockRange) Args {
	if r.Start != 0 {
		a["blockNumberStart"] = r.Start
	}
	if r.End != 0 {
		a["blockNumberEnd"] = r.End
	}
	return a
}

// withString adds v under name unless it is empty.
func withString(a Args, name, v string) Args {
	if v != "" {
		a[name] = v
	}
	return a
}
