package cmd

import (
	"github.com/Mohsinsiddi/kaiascan/internal/kaiascan"
	"github.com/spf13/cobra"
)

var txViews = []string{
	"info", "status", "receipt", "input", "event-logs",
	"internal", "token-transfers", "nft-transfers",
}

var txCmd = &cobra.Command{
	Use:   "tx <hash> [view]",
	Short: "Show a transaction",
	Long: `Show a transaction or one of its details.

Views: info (default), status, receipt, input, event-logs, internal,
token-transfers, nft-transfers.

Examples:
  kaiascan tx 0x...
  kaiascan tx 0x... receipt
  kaiascan tx 0x... event-logs --event "Transfer(address,address,uint256)"`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: txViews,
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, view := args[0], "info"
		if len(args) == 2 {
			view = args[1]
		}
		if err := checkView(view, txViews); err != nil {
			return err
		}

		c, err := newClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		page := pagination(cmd)

		var resp *kaiascan.Raw
		switch view {
		case "info":
			resp, err = c.GetTransaction(ctx, hash)
		case "status":
			resp, err = c.GetTransactionStatus(ctx, hash)
		case "receipt":
			resp, err = c.GetTransactionReceiptStatus(ctx, hash)
		case "input":
			resp, err = c.GetTransactionInputData(ctx, hash)
		case "event-logs":
			resp, err = c.GetTransactionEventLogs(ctx, hash, eventSignature(cmd), page)
		case "internal":
			resp, err = c.GetInternalTransactions(ctx, hash, page)
		case "token-transfers":
			resp, err = c.GetTransactionTokenTransfers(ctx, hash, page)
		case "nft-transfers":
			resp, err = c.GetTransactionNFTTransfers(ctx, hash, page)
		}
		if err != nil {
			return err
		}
		return emit(cmd, "Transaction "+view, resp)
	},
}

var kaiaCmd = &cobra.Command{
	Use:   "kaia",
	Short: "Show KAIA coin and chain summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		resp, err := c.GetKaiaInfo(cmd.Context())
		if err != nil {
			return err
		}
		return emit(cmd, "KAIA", resp)
	},
}

func init() {
	addPageFlags(txCmd)
	addEventFlags(txCmd)
}
