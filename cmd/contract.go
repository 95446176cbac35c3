package cmd

import (
	"fmt"

	"github.com/Mohsinsiddi/kaiascan/internal/kaiascan"
	"github.com/spf13/cobra"
)

var contractViews = []string{"info", "creation-code", "source-code", "abi"}

var contractCmd = &cobra.Command{
	Use:   "contract <address...> [view]",
	Short: "Show verified contract details",
	Long: `Show contract details. Several addresses fetch all their overviews in
one request.

Views: info (default), creation-code, source-code, abi.

Examples:
  kaiascan contract 0x...
  kaiascan contract 0x... abi -o json
  kaiascan contract 0xaaa... 0xbbb... 0xccc...`,
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: contractViews,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, view := splitView(args, contractViews, "info")
		if len(raw) > 1 && view != "info" {
			return fmt.Errorf("view %q takes a single address", view)
		}

		addrs := make([]kaiascan.Address, 0, len(raw))
		for _, a := range raw {
			addr, err := addressArg(a)
			if err != nil {
				return err
			}
			addrs = append(addrs, addr)
		}

		c, err := newClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		var resp *kaiascan.Raw
		switch {
		case len(addrs) > 1:
			resp, err = c.GetContracts(ctx, addrs)
		case view == "info":
			resp, err = c.GetContract(ctx, addrs[0])
		case view == "creation-code":
			resp, err = c.GetContractCreationCode(ctx, addrs[0])
		case view == "source-code":
			resp, err = c.GetContractSourceCode(ctx, addrs[0])
		case view == "abi":
			resp, err = c.GetContractABI(ctx, addrs[0])
		}
		if err != nil {
			return err
		}
		return emit(cmd, "Contract "+view, resp)
	},
}
