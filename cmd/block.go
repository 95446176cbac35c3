package cmd

import (
	"fmt"
	"strconv"

	"github.com/Mohsinsiddi/kaiascan/internal/kaiascan"
	"github.com/spf13/cobra"
)

var blockViews = []string{"info", "transactions", "burns", "rewards", "internal"}

var blockCmd = &cobra.Command{
	Use:   "block [latest|<number>] [view]",
	Short: "Show a block",
	Long: `Show a block or one of its listings.

Views: info (default), transactions, burns, rewards, internal.
For "latest" only info and burns apply.

Examples:
  kaiascan block                       # latest block
  kaiascan block 150000000 transactions --type legacy
  kaiascan block latest burns --size 10
  kaiascan block --timestamp 1700000000
  kaiascan block list 150000000 --start 149999990 --end 150000000
  kaiascan block rewards 150000000     # reward distribution of a recent block`,
	Args:      cobra.MaximumNArgs(2),
	ValidArgs: blockViews,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		page := pagination(cmd)

		if cmd.Flags().Changed("timestamp") {
			ts, _ := cmd.Flags().GetInt64("timestamp")
			resp, err := c.GetBlockByTimestamp(ctx, ts)
			if err != nil {
				return err
			}
			return emit(cmd, fmt.Sprintf("Block at %d", ts), resp)
		}

		target, view := "latest", "info"
		if len(args) > 0 {
			target = args[0]
		}
		if len(args) > 1 {
			view = args[1]
		}
		if err := checkView(view, blockViews); err != nil {
			return err
		}

		var resp *kaiascan.Raw
		if target == "latest" {
			switch view {
			case "info":
				resp, err = c.GetLatestBlock(ctx)
			case "burns":
				resp, err = c.GetLatestBlockBurns(ctx, page)
			default:
				return fmt.Errorf("view %q needs a block number", view)
			}
		} else {
			n, perr := strconv.ParseInt(target, 10, 64)
			if perr != nil {
				return fmt.Errorf("invalid block number %q", target)
			}
			switch view {
			case "info":
				resp, err = c.GetBlock(ctx, n)
			case "transactions":
				txType, _ := cmd.Flags().GetString("type")
				resp, err = c.GetTransactionsOfBlock(ctx, n, txType, page)
			case "burns":
				resp, err = c.GetBlockBurns(ctx, n)
			case "rewards":
				resp, err = c.GetBlockRewards(ctx, n)
			case "internal":
				resp, err = c.GetInternalTransactionsOfBlock(ctx, n, page)
			}
		}
		if err != nil {
			return err
		}
		return emit(cmd, fmt.Sprintf("Block %s %s", target, view), resp)
	},
}

var blockListCmd = &cobra.Command{
	Use:   "list <number>",
	Short: "List blocks, optionally bounded by --start/--end",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid block number %q", args[0])
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		resp, err := c.GetBlocks(cmd.Context(), n, blockRange(cmd), pagination(cmd))
		if err != nil {
			return err
		}
		return emit(cmd, "Blocks", resp)
	},
}

var blockRewardsCmd = &cobra.Command{
	Use:   "rewards <number>",
	Short: "Show the reward distribution of a recent block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid block number %q", args[0])
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		resp, err := c.GetLatestBlockRewards(cmd.Context(), n)
		if err != nil {
			return err
		}
		return emit(cmd, "Block rewards", resp)
	},
}

func init() {
	addPageFlags(blockCmd)
	blockCmd.Flags().Int64("timestamp", 0, "find the block closest to a unix timestamp")
	blockCmd.Flags().String("type", "", "transaction type filter for the transactions view")

	addPageFlags(blockListCmd)
	addRangeFlags(blockListCmd)

	blockCmd.AddCommand(blockListCmd, blockRewardsCmd)
}
