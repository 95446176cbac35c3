package cmd

import (
	"github.com/Mohsinsiddi/kaiascan/internal/kaiascan"
	"github.com/spf13/cobra"
)

var accountViews = []string{
	"info", "keys", "transactions", "fee-paid", "token-transfers", "nft-transfers",
	"token-balances", "token-details", "event-logs", "kip17", "kip37",
}

var accountCmd = &cobra.Command{
	Use:   "account <address> [view]",
	Short: "Show an account and its activity",
	Long: `Show an account overview or one of its listings.

Views: info (default), keys, transactions, fee-paid, token-transfers,
nft-transfers, token-balances, token-details, event-logs, kip17, kip37.

Examples:
  kaiascan account 0x...                                  # overview
  kaiascan account 0x... transactions --direction in,out --size 50
  kaiascan account 0x... token-transfers --contract 0x... --start 100 --end 200
  kaiascan account 0x... event-logs --event "Transfer(address,address,uint256)"
  kaiascan account 0x... kip17 --contract 0x...`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: accountViews,
	RunE: func(cmd *cobra.Command, args []string) error {
		view := "info"
		if len(args) == 2 {
			view = args[1]
		}
		if err := checkView(view, accountViews); err != nil {
			return err
		}
		account, err := addressArg(args[0])
		if err != nil {
			return err
		}
		contract, _ := cmd.Flags().GetString("contract")
		token, _ := cmd.Flags().GetString("token")

		c, err := newClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		page := pagination(cmd)

		var resp *kaiascan.Raw
		switch view {
		case "info":
			resp, err = c.GetAccount(ctx, account)
		case "keys":
			resp, err = c.GetAccountKeyHistories(ctx, account, page)
		case "transactions":
			txType, _ := cmd.Flags().GetString("type")
			dirs, _ := cmd.Flags().GetString("direction")
			resp, err = c.GetAccountTransactions(ctx, account, kaiascan.AccountTransactionsOptions{
				Type:       txType,
				Directions: splitList(dirs),
				Blocks:     blockRange(cmd),
				Page:       page,
			})
		case "fee-paid":
			resp, err = c.GetAccountFeePaidTransactions(ctx, account, page)
		case "token-transfers":
			resp, err = c.GetAccountTokenTransfers(ctx, account, kaiascan.TransferOptions{
				ContractAddress: kaiascan.Address(contract),
				Blocks:          blockRange(cmd),
				Page:            page,
			})
		case "nft-transfers":
			resp, err = c.GetAccountNFTTransfers(ctx, account, kaiascan.TransferOptions{
				ContractAddress: kaiascan.Address(contract),
				Blocks:          blockRange(cmd),
				Page:            page,
			})
		case "token-balances":
			resp, err = c.GetAccountTokenBalances(ctx, account, page)
		case "token-details":
			resp, err = c.GetAccountTokenDetails(ctx, account, kaiascan.Address(token), page)
		case "event-logs":
			resp, err = c.GetAccountEventLogs(ctx, account, kaiascan.EventLogOptions{
				Signature: eventSignature(cmd),
				Blocks:    blockRange(cmd),
				Page:      page,
			})
		case "kip17":
			resp, err = c.GetAccountKIP17NFTBalances(ctx, account, kaiascan.Address(contract), page)
		case "kip37":
			resp, err = c.GetAccountKIP37NFTBalances(ctx, account, kaiascan.Address(contract), page)
		}
		if err != nil {
			return err
		}
		return emit(cmd, "Account "+view, resp)
	},
}

func init() {
	addPageFlags(accountCmd)
	addRangeFlags(accountCmd)
	addEventFlags(accountCmd)
	accountCmd.Flags().String("contract", "", "restrict to one token or NFT contract")
	accountCmd.Flags().String("token", "", "token address for token-details")
	accountCmd.Flags().String("type", "", "transaction type filter")
	accountCmd.Flags().String("direction", "", "comma-separated directions: in, out")
}
