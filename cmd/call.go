package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/Mohsinsiddi/kaiascan/internal/kaiascan"
	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <endpoint> [name=value ...]",
	Short: "Call any endpoint by name",
	Long: `Call an endpoint from the descriptor table (see: kaiascan endpoints)
with raw name=value arguments. List parameters take comma-separated values.

Examples:
  kaiascan call account accountAddress=0x...
  kaiascan call contracts contractAddresses=0xaaa...,0xbbb...
  kaiascan call account-transactions accountAddress=0x... directions=in page=2 size=50
  kaiascan call blocks blockNumber=150000000 --url`,
	Args: cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var names []string
		for _, ep := range kaiascan.Endpoints() {
			names = append(names, ep.Name+"\t"+ep.Summary)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ep, ok := kaiascan.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown endpoint %q (see: kaiascan endpoints)", args[0])
		}
		callArgs, err := parseCallArgs(ep, args[1:])
		if err != nil {
			return err
		}

		c, err := newClient()
		if err != nil {
			return err
		}

		if urlOnly, _ := cmd.Flags().GetBool("url"); urlOnly {
			u, err := c.URL(ep.Name, callArgs)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		}

		resp, err := kaiascan.Invoke[json.RawMessage](cmd.Context(), c, ep.Name, callArgs)
		if err != nil {
			return err
		}
		return emit(cmd, ep.Name, resp)
	},
}

func init() {
	callCmd.Flags().Bool("url", false, "print the request URL instead of sending it")
}
