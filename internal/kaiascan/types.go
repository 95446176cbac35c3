package kaiascan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
)

// Response is the {code, data, msg} envelope every endpoint answers with.
// Only responses with Code == 0 are ever returned to callers.
type Response[T any] struct {
	Code int    `json:"code"`
	Data T      `json:"data"`
	Msg  string `json:"msg"`
}

// Raw is the response shape for endpoints whose payload is passed through
// without decoding.
type Raw = Response[json.RawMessage]

// TokenInfo is the payload of GetFungibleToken.
type TokenInfo struct {
	ContractType   string   `json:"contractType"`
	Name           string   `json:"name"`
	Symbol         string   `json:"symbol"`
	Icon           string   `json:"icon"`
	Decimal        Decimals `json:"decimal"`
	TotalSupply    Quantity `json:"totalSupply"`
	TotalTransfers Quantity `json:"totalTransfers"`
	OfficialSite   string   `json:"officialSite"`
	BurnAmount     Quantity `json:"burnAmount"`
	TotalBurns     Quantity `json:"totalBurns"`
}

// Quantity is an integer amount the API may send either as a JSON number
// or as a decimal string. The decimal text is kept as received.
type Quantity string

// UnmarshalJSON accepts "123", 123 and null.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*q = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*q = Quantity(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("quantity: %w", err)
	}
	*q = Quantity(n.String())
	return nil
}

// Decimals is a token's decimal count, sent as a number or a numeric string.
type Decimals int

// UnmarshalJSON accepts 18, "18" and null.
func (d *Decimals) UnmarshalJSON(b []byte) error {
	var q Quantity
	if err := q.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("decimals: %w", err)
	}
	if q == "" {
		*d = 0
		return nil
	}
	n, err := strconv.Atoi(string(q))
	if err != nil {
		return fmt.Errorf("decimals: %w", err)
	}
	*d = Decimals(n)
	return nil
}

// BigInt parses the quantity. ok is false for empty or non-integer text.
func (q Quantity) BigInt() (*big.Int, bool) {
	if q == "" {
		return nil, false
	}
	return new(big.Int).SetString(string(q), 10)
}

func (q Quantity) String() string { return string(q) }

// Default page window applied when a paged call is given no Pagination.
const (
	DefaultPage = 1
	DefaultSize = 20
	MaxSize     = 2000
)

// Pagination selects one page of a list endpoint. Callers page by
// incrementing Page; nothing here walks pages automatically.
type Pagination struct {
	Page int
	Size int
}

func (p *Pagination) orDefault() Pagination {
	if p == nil {
		return Pagination{Page: DefaultPage, Size: DefaultSize}
	}
	return *p
}

// BlockRange bounds a query by block number. Zero fields are omitted.
type BlockRange struct {
	Start int64
	End   int64
}
