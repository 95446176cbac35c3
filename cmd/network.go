package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/Mohsinsiddi/kaiascan/internal/kaiascan"
	"github.com/Mohsinsiddi/kaiascan/internal/ui"
	"github.com/spf13/cobra"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Show the active network",
	Long: `Show the network requests go to, with its API root and chain id.

Switch for one call with --testnet/--mainnet, or persist with:
  kaiascan config set-network-mode testnet`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := kaiascan.ParseNetwork(cfg.NetworkMode)
		if err != nil {
			return err
		}
		if cfg.Output == "table" {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Network", [][2]string{
				{"Network", ui.Network(n.String())},
				{"API root", n.BaseURL()},
				{"Chain ID", n.ChainID()},
			}))
			return err
		}
		data, err := json.Marshal(map[string]string{
			"network":  n.String(),
			"base_url": n.BaseURL(),
			"chain_id": n.ChainID(),
		})
		if err != nil {
			return err
		}
		return ui.Render(cmd.OutOrStdout(), cfg.Output, "Network", data)
	},
}
