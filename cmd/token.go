package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/Mohsinsiddi/kaiascan/internal/kaiascan"
	"github.com/Mohsinsiddi/kaiascan/internal/ui"
	"github.com/spf13/cobra"
)

var tokenViews = []string{"info", "holders", "burns", "transfers"}

var tokenCmd = &cobra.Command{
	Use:   "token <address> [view]",
	Short: "Show a fungible token",
	Long: `Show fungible token metadata or one of its listings.

Views: info (default), holders, burns, transfers.

Examples:
  kaiascan token 0x...                          # name, symbol, supply
  kaiascan token 0x... holders --size 100
  kaiascan token 0x... transfers --start 1000 --end 2000`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: tokenViews,
	RunE: func(cmd *cobra.Command, args []string) error {
		view := "info"
		if len(args) == 2 {
			view = args[1]
		}
		if err := checkView(view, tokenViews); err != nil {
			return err
		}
		token, err := addressArg(args[0])
		if err != nil {
			return err
		}

		c, err := newClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		var resp *kaiascan.Raw
		switch view {
		case "info":
			info, err := c.GetFungibleToken(ctx, token)
			if err != nil {
				return err
			}
			return emitToken(cmd, info.Data)
		case "holders":
			resp, err = c.GetTokenHolders(ctx, token, pagination(cmd))
		case "burns":
			resp, err = c.GetTokenBurns(ctx, token, pagination(cmd))
		case "transfers":
			resp, err = c.GetTokenTransfers(ctx, token, blockRange(cmd), pagination(cmd))
		}
		if err != nil {
			return err
		}
		return emit(cmd, "Token "+view, resp)
	},
}

// emitToken renders decoded token metadata. The table view scales the
// supply by the token's decimals.
func emitToken(cmd *cobra.Command, info kaiascan.TokenInfo) error {
	if cfg.Output == "table" {
		pairs := [][2]string{
			{"Name", info.Name},
			{"Symbol", info.Symbol},
			{"Type", info.ContractType},
			{"Decimals", fmt.Sprintf("%d", info.Decimal)},
			{"Total supply", formatUnits(info.TotalSupply, int(info.Decimal))},
			{"Transfers", info.TotalTransfers.String()},
			{"Burned", formatUnits(info.BurnAmount, int(info.Decimal))},
			{"Burns", info.TotalBurns.String()},
			{"Website", info.OfficialSite},
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock(info.Name+" ("+info.Symbol+")", pairs))
		return err
	}
	data, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return ui.Render(cmd.OutOrStdout(), cfg.Output, "Token", data)
}

func init() {
	addPageFlags(tokenCmd)
	addRangeFlags(tokenCmd)
}
