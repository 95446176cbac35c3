package cmd

import (
	"encoding/json"

	"github.com/Mohsinsiddi/kaiascan/internal/kaiascan"
	"github.com/Mohsinsiddi/kaiascan/internal/ui"
	"github.com/spf13/cobra"
)

var topicCmd = &cobra.Command{
	Use:   "topic <signature>",
	Short: "Compute the log topic of an event signature",
	Long: `Compute the Keccak-256 topic of an event signature, the value the
event-logs views accept as --signature.

Examples:
  kaiascan topic "Transfer(address,address,uint256)"
  kaiascan topic "Approval(address, address, uint256)"   # spaces are ignored`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.Marshal(map[string]string{
			"signature": args[0],
			"topic":     kaiascan.EventTopic(args[0]),
		})
		if err != nil {
			return err
		}
		return ui.Render(cmd.OutOrStdout(), cfg.Output, "Event topic", data)
	},
}
