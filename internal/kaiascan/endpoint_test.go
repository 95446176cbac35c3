package kaiascan

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// descriptor table
// ---------------------------------------------------------------------------

func TestEndpointTableWellFormed(t *testing.T) {
	eps := Endpoints()
	assert.Len(t, eps, 44)

	seen := map[string]bool{}
	for _, ep := range eps {
		assert.False(t, seen[ep.Name], "duplicate endpoint %q", ep.Name)
		seen[ep.Name] = true
		assert.True(t, strings.HasPrefix(ep.Path, "api/v1/"), ep.Name)
		assert.NotEmpty(t, ep.Summary, ep.Name)

		placeholders := strings.Count(ep.Path, "{")
		pathParams := 0
		for _, p := range ep.Params {
			if p.In == InPath {
				pathParams++
				assert.Contains(t, ep.Path, "{"+p.Name+"}", ep.Name)
				assert.True(t, p.Required, "%s: path param %s must be required", ep.Name, p.Name)
			}
		}
		assert.Equal(t, placeholders, pathParams, ep.Name)
	}
}

func TestEndpointsSortedAndCopied(t *testing.T) {
	eps := Endpoints()
	for i := 1; i < len(eps); i++ {
		assert.Less(t, eps[i-1].Name, eps[i].Name)
	}
	eps[0].Name = "mutated"
	_, ok := Lookup("mutated")
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	ep, ok := Lookup(EPAccountTransactions)
	require.True(t, ok)
	assert.Equal(t, "api/v1/accounts/{accountAddress}/transactions", ep.Path)
	assert.True(t, ep.Paged())

	ep, ok = Lookup(EPKaiaInfo)
	require.True(t, ok)
	assert.False(t, ep.Paged())

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

// Every paged endpoint rejects out-of-range page/size with no request sent.
func TestEveryPagedEndpointValidates(t *testing.T) {
	bad := []struct {
		page, size int
	}{
		{0, 20}, {-3, 20}, {1, 0}, {1, 2001},
	}
	for _, ep := range Endpoints() {
		if !ep.Paged() {
			continue
		}
		for _, b := range bad {
			c, st := stubClient(t, http.StatusOK, okBody)
			args := sampleArgs(ep)
			args["page"] = b.page
			args["size"] = b.size

			_, err := Invoke[json.RawMessage](context.Background(), c, ep.Name, args)
			assert.ErrorIs(t, err, ErrValidation, "%s page=%d size=%d", ep.Name, b.page, b.size)
			assert.Equal(t, 0, st.calls(), ep.Name)
		}
	}
}

func TestEveryEndpointBuildsParseableURL(t *testing.T) {
	c := New(Mainnet, "k")
	for _, ep := range Endpoints() {
		u, err := c.URL(ep.Name, sampleArgs(ep))
		require.NoError(t, err, ep.Name)
		assert.True(t, strings.HasPrefix(u, "https://mainnet-oapi.kaiascan.io/api/v1/"), u)
		assert.NotContains(t, u, "{", ep.Name)

		parsed, err := url.Parse(u)
		require.NoError(t, err, ep.Name)
		assert.Equal(t, "mainnet-oapi.kaiascan.io", parsed.Host)
	}
}

func TestMissingRequiredParam(t *testing.T) {
	for _, ep := range Endpoints() {
		for _, p := range ep.Params {
			if !p.Required {
				continue
			}
			args := sampleArgs(ep)
			delete(args, p.Name)
			_, err := New(Mainnet, "k").URL(ep.Name, args)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr, "%s without %s", ep.Name, p.Name)
			assert.Equal(t, p.Name, vErr.Param)
		}
	}
}

func TestIntParamAcceptsDecimalString(t *testing.T) {
	u, err := New(Testnet, "k").URL(EPBlockBurns, Args{"blockNumber": "77"})
	require.NoError(t, err)
	assert.Equal(t, "https://kairos-oapi.kaiascan.io/api/v1/blocks/77/burns", u)

	_, err = New(Testnet, "k").URL(EPBlockBurns, Args{"blockNumber": "seventy"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListParamAcceptsCommaString(t *testing.T) {
	u, err := New(Testnet, "k").URL(EPContracts, Args{"contractAddresses": "0xa,0xb"})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(u, "contractAddresses=0xa,0xb"))
}

func TestUnsupportedValueType(t *testing.T) {
	_, err := New(Testnet, "k").URL(EPAccount, Args{"accountAddress": 3.14})
	assert.ErrorIs(t, err, ErrValidation)
}

// ---------------------------------------------------------------------------
// percent-encoding round trips
// ---------------------------------------------------------------------------

var awkwardStrings = []string{
	"0xABC",
	"hello world",
	"a/b/c",
	"q?x=1&y=2",
	"frag#ment",
	"100%",
	"plus+sign",
	"유니코드",
	"{braces}",
}

func TestQueryParamRoundTrip(t *testing.T) {
	c := New(Mainnet, "k")
	for _, s := range awkwardStrings {
		u, err := c.URL(EPNFTInventories, Args{"nftAddress": "0xnft", "keyword": s})
		require.NoError(t, err, s)

		parsed, err := url.Parse(u)
		require.NoError(t, err, s)
		assert.Equal(t, s, parsed.Query().Get("keyword"), s)
		assert.Equal(t, "/api/v1/nfts/0xnft/inventories", parsed.Path)
	}
}

func TestPathParamRoundTrip(t *testing.T) {
	c := New(Mainnet, "k")
	const prefix = "/api/v1/transactions/"
	for _, s := range awkwardStrings {
		u, err := c.URL(EPTransactionStatus, Args{"transactionHash": s})
		require.NoError(t, err, s)

		parsed, err := url.Parse(u)
		require.NoError(t, err, s)
		assert.Empty(t, parsed.RawQuery, s)
		assert.Empty(t, parsed.Fragment, s)

		escaped := strings.TrimSuffix(strings.TrimPrefix(parsed.EscapedPath(), prefix), "/status")
		got, err := url.PathUnescape(escaped)
		require.NoError(t, err, s)
		assert.Equal(t, s, got)
	}
}

func TestListElementsEscapedIndividually(t *testing.T) {
	u, err := New(Mainnet, "k").URL(EPContracts, Args{"contractAddresses": []string{"0x a", "0x&b"}})
	require.NoError(t, err)

	parsed, err := url.Parse(u)
	require.NoError(t, err)
	assert.Equal(t, "0x a,0x&b", parsed.Query().Get("contractAddresses"))
}
