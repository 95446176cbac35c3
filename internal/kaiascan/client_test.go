package kaiascan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// envelope handling
// ---------------------------------------------------------------------------

func TestInvokeSuccessReturnsEnvelope(t *testing.T) {
	c, _ := stubClient(t, http.StatusOK, okBody)

	resp, err := c.GetKaiaInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "Success", resp.Msg)
	assert.JSONEq(t, `{"k":"v"}`, string(resp.Data))
}

func TestInvokeAPIErrorCarriesCodeAndMessage(t *testing.T) {
	c, _ := stubClient(t, http.StatusOK, `{"code": 4, "data": null, "msg": "not found"}`)

	resp, err := c.GetAccount(context.Background(), "0xabc")
	require.Error(t, err)
	assert.Nil(t, resp)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 4, apiErr.Code)
	assert.Equal(t, "not found", apiErr.Msg)
	assert.Contains(t, err.Error(), "4")
	assert.Contains(t, err.Error(), "not found")
	assert.ErrorIs(t, err, ErrAPI)
	assert.NotErrorIs(t, err, ErrEnvelope)
}

func TestInvokeMalformedEnvelope(t *testing.T) {
	bodies := map[string]string{
		"html":         `<html>bad gateway</html>`,
		"array":        `[1,2,3]`,
		"missing msg":  `{"code":0,"data":{}}`,
		"missing data": `{"code":0,"msg":"Success"}`,
		"missing code": `{"data":{},"msg":"Success"}`,
		"string code":  `{"code":"0","data":{},"msg":"Success"}`,
		"empty":        ``,
		"null code":    `{"code":null,"data":{"k":"v"},"msg":"oops"}`,
		"null msg":     `{"code":0,"data":{"k":"v"},"msg":null}`,
		"number msg":   `{"code":0,"data":{},"msg":7}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			c, _ := stubClient(t, http.StatusOK, body)
			_, err := c.GetLatestBlock(context.Background())
			require.Error(t, err)

			var envErr *EnvelopeError
			require.True(t, errors.As(err, &envErr), "got %T: %v", err, err)
			assert.Contains(t, envErr.URL, "api/v1/blocks/latest")
			assert.ErrorIs(t, err, ErrEnvelope)
			assert.NotErrorIs(t, err, ErrAPI)
		})
	}
}

func TestInvokeTypedPayloadMismatchIsEnvelopeError(t *testing.T) {
	c, _ := stubClient(t, http.StatusOK, `{"code":0,"data":"oops","msg":"Success"}`)
	_, err := c.GetFungibleToken(context.Background(), "0xabc")
	assert.ErrorIs(t, err, ErrEnvelope)
}

func TestInvokeNullDataPassesThrough(t *testing.T) {
	c, _ := stubClient(t, http.StatusOK, `{"code":0,"data":null,"msg":"Success"}`)
	resp, err := c.GetBlockBurns(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "null", string(resp.Data))
}

// ---------------------------------------------------------------------------
// transport failures
// ---------------------------------------------------------------------------

func TestInvokeConnectionFailureNoRetry(t *testing.T) {
	ft := &failingTransport{}
	c := New(Testnet, "TESTKEY", WithHTTPClient(&http.Client{Transport: ft}))

	_, err := c.GetTransaction(context.Background(), "0xdead")
	require.Error(t, err)

	var tErr *TransportError
	require.True(t, errors.As(err, &tErr))
	assert.Equal(t, "https://kairos-oapi.kaiascan.io/api/v1/transactions/0xdead", tErr.URL)
	assert.Equal(t, 0, tErr.StatusCode)
	assert.Contains(t, err.Error(), tErr.URL)
	assert.ErrorIs(t, err, errDialRefused)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, 1, ft.count)
}

func TestInvokeConnectionRefusedRealDial(t *testing.T) {
	c := New(Mainnet, "TESTKEY")
	c.baseURL = "http://127.0.0.1:19991/"

	_, err := c.GetKaiaInfo(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "http://127.0.0.1:19991/api/v1/kaia")
}

func TestInvokeNon2xxIsTransportError(t *testing.T) {
	var hits int32
	c := serverClient(t, func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`upstream exploded`)) //nolint:errcheck
	})

	_, err := c.GetLatestBlock(context.Background())
	require.Error(t, err)

	var tErr *TransportError
	require.True(t, errors.As(err, &tErr))
	assert.Equal(t, http.StatusInternalServerError, tErr.StatusCode)
	assert.Contains(t, err.Error(), "upstream exploded")
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestInvokeNon2xxBodyTruncatedOnRuneBoundary(t *testing.T) {
	body := strings.Repeat("a", maxErrBody-1) + "ü" + strings.Repeat("b", 10)
	c, _ := stubClient(t, http.StatusBadGateway, body)
	_, err := c.GetLatestBlock(context.Background())
	var tErr *TransportError
	require.True(t, errors.As(err, &tErr))
	quoted := tErr.Err.Error()
	assert.True(t, utf8.ValidString(quoted), "quoted body: %q", quoted)
	assert.Equal(t, strings.Repeat("a", maxErrBody-1)+"…", quoted)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "a", truncate("aü", 2))
	assert.Equal(t, "aü", truncate("aü", 3))
	assert.Equal(t, "", truncate("ü", 1))
}

func TestInvokeUnauthorizedIsTransportError(t *testing.T) {
	c, st := stubClient(t, http.StatusUnauthorized, ``)
	_, err := c.GetLatestBlock(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "Unauthorized")
	assert.Equal(t, 1, st.calls())
}

func TestInvokeCancelledContext(t *testing.T) {
	c, _ := stubClient(t, http.StatusOK, okBody)
	c.http = &http.Client{Transport: &failingTransport{}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetLatestBlock(ctx)
	assert.ErrorIs(t, err, ErrTransport)
}

// ---------------------------------------------------------------------------
// request shape
// ---------------------------------------------------------------------------

func TestInvokeSendsAuthHeaders(t *testing.T) {
	var got http.Header
	c := serverClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(okBody)) //nolint:errcheck
	})

	_, err := c.GetKaiaInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer TESTKEY", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, defaultUserAgent, got.Get("User-Agent"))
}

func TestWithUserAgent(t *testing.T) {
	st := &stubTransport{body: okBody}
	c := New(Mainnet, "k", WithHTTPClient(&http.Client{Transport: st}), WithUserAgent("tests/2"))
	_, err := c.GetKaiaInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tests/2", st.reqs[0].Header.Get("User-Agent"))
}

func TestFungibleTokenURLOnTestnet(t *testing.T) {
	c, st := stubClient(t, http.StatusOK, `{"code":0,"data":{"name":"Kaia Token"},"msg":"Success"}`)

	resp, err := c.GetFungibleToken(context.Background(), "0xABC")
	require.NoError(t, err)
	assert.Equal(t, "https://kairos-oapi.kaiascan.io/api/v1/tokens?tokenAddress=0xABC", st.lastURL())
	assert.Equal(t, "Kaia Token", resp.Data.Name)
}

func TestAccountTransactionsQuery(t *testing.T) {
	c, st := stubClient(t, http.StatusOK, okBody)

	_, err := c.GetAccountTransactions(context.Background(), "0xABC", AccountTransactionsOptions{
		Directions: []string{DirectionIn, DirectionOut},
		Page:       &Pagination{Page: 2, Size: 50},
	})
	require.NoError(t, err)

	u := st.lastURL()
	assert.Contains(t, u, "page=2&size=50")
	assert.Contains(t, u, "directions=in,out")
	assert.Equal(t, "https://kairos-oapi.kaiascan.io/api/v1/accounts/0xABC/transactions?directions=in,out&page=2&size=50", u)
}

func TestPagedCallDefaults(t *testing.T) {
	c, st := stubClient(t, http.StatusOK, okBody)
	_, err := c.GetAccountKeyHistories(context.Background(), "0xabc", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://kairos-oapi.kaiascan.io/api/v1/accounts/0xabc/key-histories?page=1&size=20", st.lastURL())
}

func TestOptionalParamsOmittedWhenAbsent(t *testing.T) {
	c, st := stubClient(t, http.StatusOK, okBody)
	_, err := c.GetTransactionsOfBlock(context.Background(), 42, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://kairos-oapi.kaiascan.io/api/v1/blocks/42/transactions?page=1&size=20", st.lastURL())
	assert.NotContains(t, st.lastURL(), "type=")
}

func TestGetBlocksQueryOrder(t *testing.T) {
	c, st := stubClient(t, http.StatusOK, okBody)
	_, err := c.GetBlocks(context.Background(), 100, BlockRange{Start: 90, End: 110}, &Pagination{Page: 3, Size: 10})
	require.NoError(t, err)
	assert.Equal(t,
		"https://kairos-oapi.kaiascan.io/api/v1/blocks?blockNumber=100&blockNumberStart=90&blockNumberEnd=110&page=3&size=10",
		st.lastURL())
}

func TestGetContractsJoinsAddresses(t *testing.T) {
	c, st := stubClient(t, http.StatusOK, okBody)
	_, err := c.GetContracts(context.Background(), []Address{"0xa", "0xb", "0xc"})
	require.NoError(t, err)
	assert.Equal(t, "https://kairos-oapi.kaiascan.io/api/v1/contracts?contractAddresses=0xa,0xb,0xc", st.lastURL())
}

func TestGetNFTItemURL(t *testing.T) {
	c, st := stubClient(t, http.StatusOK, okBody)
	_, err := c.GetNFTItem(context.Background(), "0xnft", "7")
	require.NoError(t, err)
	assert.Equal(t, "https://kairos-oapi.kaiascan.io/api/v1/nfts?nftAddress=0xnft&tokenId=7", st.lastURL())
}

func TestContractCodeURLs(t *testing.T) {
	c, st := stubClient(t, http.StatusOK, okBody)
	ctx := context.Background()

	_, err := c.GetContractCreationCode(ctx, "0xc")
	require.NoError(t, err)
	assert.Equal(t, "https://kairos-oapi.kaiascan.io/api/v1/contracts/creation-code?contractAddress=0xc", st.lastURL())

	_, err = c.GetContractSourceCode(ctx, "0xc")
	require.NoError(t, err)
	assert.Equal(t, "https://kairos-oapi.kaiascan.io/api/v1/contracts/source-code?contractAddress=0xc", st.lastURL())
}

func TestBlockAndTransactionURLs(t *testing.T) {
	c, st := stubClient(t, http.StatusOK, okBody)
	ctx := context.Background()

	cases := []struct {
		call func() error
		want string
	}{
		{func() error { _, err := c.GetLatestBlockRewards(ctx, 9); return err }, "api/v1/blocks/latest/rewards?blockNumber=9"},
		{func() error { _, err := c.GetBlock(ctx, 9); return err }, "api/v1/blocks?blockNumber=9"},
		{func() error { _, err := c.GetBlockRewards(ctx, 9); return err }, "api/v1/blocks/9/rewards"},
		{func() error { _, err := c.GetBlockByTimestamp(ctx, 1700000000); return err }, "api/v1/blocks/timestamps/1700000000"},
		{func() error { _, err := c.GetTransactionStatus(ctx, "0xh"); return err }, "api/v1/transactions/0xh/status"},
		{func() error { _, err := c.GetTransactionReceiptStatus(ctx, "0xh"); return err }, "api/v1/transaction-receipts/status?transactionHash=0xh"},
		{func() error { _, err := c.GetLatestBlockBurns(ctx, nil); return err }, "api/v1/blocks/latest/burns?page=1&size=20"},
	}
	for _, tc := range cases {
		require.NoError(t, tc.call())
		assert.Equal(t, "https://kairos-oapi.kaiascan.io/"+tc.want, st.lastURL())
	}
}

// ---------------------------------------------------------------------------
// validation happens before any request
// ---------------------------------------------------------------------------

func TestPaginationOutOfRangeNoNetwork(t *testing.T) {
	bad := []Pagination{{Page: 0, Size: 20}, {Page: -1, Size: 20}, {Page: 1, Size: 0}, {Page: 1, Size: 2001}}
	for _, p := range bad {
		c, st := stubClient(t, http.StatusOK, okBody)
		p := p
		_, err := c.GetTokenHolders(context.Background(), "0xtoken", &p)
		require.Error(t, err, "%+v", p)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, 0, st.calls())
	}
}

func TestPaginationBoundsAccepted(t *testing.T) {
	c, st := stubClient(t, http.StatusOK, okBody)
	_, err := c.GetTokenHolders(context.Background(), "0xtoken", &Pagination{Page: 1, Size: 2000})
	require.NoError(t, err)
	_, err = c.GetTokenHolders(context.Background(), "0xtoken", &Pagination{Page: 1, Size: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, st.calls())
}

func TestBlockListingsValidateToo(t *testing.T) {
	c, st := stubClient(t, http.StatusOK, okBody)
	_, err := c.GetBlocks(context.Background(), 1, BlockRange{}, &Pagination{Page: 0, Size: 20})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = c.GetTransactionsOfBlock(context.Background(), 1, "", &Pagination{Page: 1, Size: 5000})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, st.calls())
}

func TestEmptyRequiredParamNoNetwork(t *testing.T) {
	c, st := stubClient(t, http.StatusOK, okBody)
	ctx := context.Background()

	_, err := c.GetAccount(ctx, "")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = c.GetFungibleToken(ctx, "")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = c.GetNFTItem(ctx, "0xnft", "")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = c.GetContracts(ctx, nil)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = c.GetContracts(ctx, []Address{"0xa", ""})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = c.GetBlock(ctx, -1)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, st.calls())
}

func TestUnknownEndpointAndParam(t *testing.T) {
	c, st := stubClient(t, http.StatusOK, okBody)
	_, err := Invoke[json.RawMessage](context.Background(), c, "no-such-endpoint", nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = Invoke[json.RawMessage](context.Background(), c, EPKaiaInfo, Args{"bogus": "1"})
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "bogus", vErr.Param)
	assert.Equal(t, 0, st.calls())
}

// ---------------------------------------------------------------------------
// concurrency
// ---------------------------------------------------------------------------

func TestClientSharedAcrossGoroutines(t *testing.T) {
	var hits int32
	c := serverClient(t, func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(okBody)) //nolint:errcheck
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			_, err := c.GetBlock(context.Background(), n)
			assert.NoError(t, err)
		}(int64(i))
	}
	wg.Wait()
	assert.Equal(t, int32(16), atomic.LoadInt32(&hits))
}
