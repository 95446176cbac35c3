package kaiascan

import "sort"

// Endpoint names, usable with Lookup and Invoke.
const (
	EPAccount                  = "account"
	EPAccountKeyHistories      = "account-key-histories"
	EPAccountTokenTransfers    = "account-token-transfers"
	EPAccountEventLogs         = "account-event-logs"
	EPAccountKIP17Balances     = "account-kip17-balances"
	EPAccountKIP37Balances     = "account-kip37-balances"
	EPAccountNFTTransfers      = "account-nft-transfers"
	EPAccountTokenBalances     = "account-token-balances"
	EPAccountTokenDetails      = "account-token-details"
	EPAccountTransactions      = "account-transactions"
	EPAccountFeePaidTxs        = "account-fee-paid-transactions"
	EPFungibleToken            = "token"
	EPTokenHolders             = "token-holders"
	EPTokenBurns               = "token-burns"
	EPTokenTransfers           = "token-transfers"
	EPNFTItem                  = "nft-item"
	EPNFT                      = "nft"
	EPNFTTransfers             = "nft-transfers"
	EPNFTHolders               = "nft-holders"
	EPNFTInventories           = "nft-inventories"
	EPContract                 = "contract"
	EPContractCreationCode     = "contract-creation-code"
	EPContractSourceCode       = "contract-source-code"
	EPContractABI              = "contract-abi"
	EPContracts                = "contracts"
	EPLatestBlock              = "latest-block"
	EPLatestBlockBurns         = "latest-block-burns"
	EPLatestBlockRewards       = "latest-block-rewards"
	EPBlock                    = "block"
	EPBlocks                   = "blocks"
	EPBlockTransactions        = "block-transactions"
	EPBlockBurns               = "block-burns"
	EPBlockRewards             = "block-rewards"
	EPBlockInternalTxs         = "block-internal-transactions"
	EPBlockByTimestamp         = "block-by-timestamp"
	EPTransaction              = "transaction"
	EPTransactionStatus        = "transaction-status"
	EPTransactionInputData     = "transaction-input-data"
	EPTransactionEventLogs     = "transaction-event-logs"
	EPTransactionInternalTxs   = "transaction-internal-transactions"
	EPTransactionTokenTransfer = "transaction-token-transfers"
	EPTransactionNFTTransfers  = "transaction-nft-transfers"
	EPTransactionReceiptStatus = "transaction-receipt-status"
	EPKaiaInfo                 = "kaia"
)

func pathArg(name string) Param   { return Param{Name: name, Kind: KindString, In: InPath, Required: true} }
func pathInt(name string) Param   { return Param{Name: name, Kind: KindInt, In: InPath, Required: true} }
func query(name string) Param     { return Param{Name: name, Kind: KindString} }
func queryInt(name string) Param  { return Param{Name: name, Kind: KindInt} }
func queryList(name string) Param { return Param{Name: name, Kind: KindList} }

func required(p Param) Param {
	p.Required = true
	return p
}

var (
	pageParams  = []Param{queryInt("page"), queryInt("size")}
	rangeParams = []Param{queryInt("blockNumberStart"), queryInt("blockNumberEnd")}
)

func params(groups ...[]Param) []Param {
	var out []Param
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func one(ps ...Param) []Param { return ps }

var endpointTable = []Endpoint{
	// Accounts.
	{EPAccount, "api/v1/accounts/{accountAddress}", "account overview",
		one(pathArg("accountAddress"))},
	{EPAccountKeyHistories, "api/v1/accounts/{accountAddress}/key-histories", "account key change history",
		params(one(pathArg("accountAddress")), pageParams)},
	{EPAccountTokenTransfers, "api/v1/accounts/{accountAddress}/token-transfers", "fungible token transfers of an account",
		params(one(pathArg("accountAddress"), query("contractAddress")), rangeParams, pageParams)},
	{EPAccountEventLogs, "api/v1/accounts/{accountAddress}/event-logs", "event logs emitted by an account",
		params(one(pathArg("accountAddress"), query("signature")), rangeParams, pageParams)},
	{EPAccountKIP17Balances, "api/v1/accounts/{accountAddress}/nft-balances/kip17", "KIP-17 NFT balances of an account",
		params(one(pathArg("accountAddress"), query("contractAddress")), pageParams)},
	{EPAccountKIP37Balances, "api/v1/accounts/{accountAddress}/nft-balances/kip37", "KIP-37 NFT balances of an account",
		params(one(pathArg("accountAddress"), query("contractAddress")), pageParams)},
	{EPAccountNFTTransfers, "api/v1/accounts/{accountAddress}/nft-transfers", "NFT transfers of an account",
		params(one(pathArg("accountAddress"), query("contractAddress")), rangeParams, pageParams)},
	{EPAccountTokenBalances, "api/v1/accounts/{accountAddress}/token-balances", "fungible token balances of an account",
		params(one(pathArg("accountAddress")), pageParams)},
	{EPAccountTokenDetails, "api/v1/accounts/{accountAddress}/token-details", "token holdings with token metadata",
		params(one(pathArg("accountAddress"), query("tokenAddress")), pageParams)},
	{EPAccountTransactions, "api/v1/accounts/{accountAddress}/transactions", "transactions of an account",
		params(one(pathArg("accountAddress"), query("type"), queryList("directions")), rangeParams, pageParams)},
	{EPAccountFeePaidTxs, "api/v1/accounts/{accountAddress}/fee-paid-transactions", "transactions whose fee the account paid",
		params(one(pathArg("accountAddress")), pageParams)},

	// Tokens.
	{EPFungibleToken, "api/v1/tokens", "fungible token metadata",
		one(required(query("tokenAddress")))},
	{EPTokenHolders, "api/v1/tokens/{tokenAddress}/holders", "holders of a fungible token",
		params(one(pathArg("tokenAddress")), pageParams)},
	{EPTokenBurns, "api/v1/tokens/{tokenAddress}/burns", "burns of a fungible token",
		params(one(pathArg("tokenAddress")), pageParams)},
	{EPTokenTransfers, "api/v1/tokens/{tokenAddress}/transfers", "transfers of a fungible token",
		params(one(pathArg("tokenAddress")), rangeParams, pageParams)},

	// NFTs.
	{EPNFTItem, "api/v1/nfts", "a single NFT item",
		one(required(query("nftAddress")), required(query("tokenId")))},
	{EPNFT, "api/v1/nfts/{nftAddress}", "NFT contract overview",
		one(pathArg("nftAddress"))},
	{EPNFTTransfers, "api/v1/nfts/{nftAddress}/transfers", "transfers of an NFT contract",
		params(one(pathArg("nftAddress"), query("tokenId")), rangeParams, pageParams)},
	{EPNFTHolders, "api/v1/nfts/{nftAddress}/holders", "holders of an NFT contract",
		params(one(pathArg("nftAddress")), pageParams)},
	{EPNFTInventories, "api/v1/nfts/{nftAddress}/inventories", "token inventory of an NFT contract",
		params(one(pathArg("nftAddress"), query("keyword")), pageParams)},

	// Contracts.
	{EPContract, "api/v1/contracts/{contractAddress}", "contract overview",
		one(pathArg("contractAddress"))},
	{EPContractCreationCode, "api/v1/contracts/creation-code", "contract creation bytecode",
		one(required(query("contractAddress")))},
	{EPContractSourceCode, "api/v1/contracts/source-code", "verified contract source",
		one(required(query("contractAddress")))},
	{EPContractABI, "api/v1/contracts/abi", "verified contract ABI",
		one(required(query("contractAddress")))},
	{EPContracts, "api/v1/contracts", "overview of several contracts",
		one(required(queryList("contractAddresses")))},

	// Blocks.
	{EPLatestBlock, "api/v1/blocks/latest", "latest block",
		nil},
	{EPLatestBlockBurns, "api/v1/blocks/latest/burns", "burns in recent blocks",
		pageParams},
	{EPLatestBlockRewards, "api/v1/blocks/latest/rewards", "block rewards",
		one(required(queryInt("blockNumber")))},
	{EPBlock, "api/v1/blocks", "a block by number",
		one(required(queryInt("blockNumber")))},
	{EPBlocks, "api/v1/blocks", "blocks in a range",
		params(one(required(queryInt("blockNumber"))), rangeParams, pageParams)},
	{EPBlockTransactions, "api/v1/blocks/{blockNumber}/transactions", "transactions in a block",
		params(one(pathInt("blockNumber"), query("type")), pageParams)},
	{EPBlockBurns, "api/v1/blocks/{blockNumber}/burns", "burns in a block",
		one(pathInt("blockNumber"))},
	{EPBlockRewards, "api/v1/blocks/{blockNumber}/rewards", "rewards of a block",
		one(pathInt("blockNumber"))},
	{EPBlockInternalTxs, "api/v1/blocks/{blockNumber}/internal-transactions", "internal transactions in a block",
		params(one(pathInt("blockNumber")), pageParams)},
	{EPBlockByTimestamp, "api/v1/blocks/timestamps/{timestamp}", "block closest to a unix timestamp",
		one(pathInt("timestamp"))},

	// Transactions.
	{EPTransaction, "api/v1/transactions/{transactionHash}", "a transaction",
		one(pathArg("transactionHash"))},
	{EPTransactionStatus, "api/v1/transactions/{transactionHash}/status", "transaction status",
		one(pathArg("transactionHash"))},
	{EPTransactionInputData, "api/v1/transactions/{transactionHash}/input-data", "decoded transaction input",
		one(pathArg("transactionHash"))},
	{EPTransactionEventLogs, "api/v1/transactions/{transactionHash}/event-logs", "event logs of a transaction",
		params(one(pathArg("transactionHash"), query("signature")), pageParams)},
	{EPTransactionInternalTxs, "api/v1/transactions/{transactionHash}/internal-transactions", "internal transactions of a transaction",
		params(one(pathArg("transactionHash")), pageParams)},
	{EPTransactionTokenTransfer, "api/v1/transactions/{transactionHash}/token-transfers", "token transfers in a transaction",
		params(one(pathArg("transactionHash")), pageParams)},
	{EPTransactionNFTTransfers, "api/v1/transactions/{transactionHash}/nft-transfers", "NFT transfers in a transaction",
		params(one(pathArg("transactionHash")), pageParams)},
	{EPTransactionReceiptStatus, "api/v1/transaction-receipts/status", "receipt status of a transaction",
		one(required(query("transactionHash")))},

	// Chain.
	{EPKaiaInfo, "api/v1/kaia", "KAIA coin and chain summary",
		nil},
}

var endpointsByName = func() map[string]Endpoint {
	m := make(map[string]Endpoint, len(endpointTable))
	for _, e := range endpointTable {
		m[e.Name] = e
	}
	return m
}()

// Endpoints returns every endpoint descriptor, sorted by name.
func Endpoints() []Endpoint {
	out := make([]Endpoint, len(endpointTable))
	copy(out, endpointTable)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the descriptor registered under name.
func Lookup(name string) (Endpoint, bool) {
	e, ok := endpointsByName[name]
	return e, ok
}
