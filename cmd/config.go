package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/kaiascan/internal/credentials"
	"github.com/Mohsinsiddi/kaiascan/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n\n", ui.StyleTitle.Render("Current Configuration"))
		fmt.Fprintln(out, string(data))
		fmt.Fprintln(out, ui.Meta("Config directory: "+cfg.Dir()))
		return nil
	},
}

// setter builds a `config set-*` command around one Config setter.
func setter(use, short, what string, set func(string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := set(args[0]); err != nil {
				return err
			}
			if err := cfg.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("%s set to %q", what, strings.ToLower(args[0]))))
			return nil
		},
	}
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key [key]",
	Short: "Store the API key in the OS keychain",
	Long: `Store the Kaiascan API key in the OS keychain. Without an argument the
key is read from stdin, which keeps it out of shell history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var key string
		if len(args) == 1 {
			key = args[0]
		} else {
			fmt.Fprint(cmd.ErrOrStderr(), "API key: ")
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("reading API key: %w", err)
			}
			key = strings.TrimSpace(line)
		}
		if err := keyStore().SetAPIKey(key); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success("API key stored in keychain"))
		return nil
	},
}

var configDeleteKeyCmd = &cobra.Command{
	Use:   "delete-key",
	Short: "Remove the API key from the OS keychain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := keyStore().DeleteAPIKey(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success("API key removed from keychain"))
		return nil
	},
}

// keyStore is the store `config set-key`/`delete-key` write to.
var keyStore = func() credentials.Store { return lazyKeychain{} }

func init() {
	configCmd.AddCommand(
		configListCmd,
		setter("set-network-mode <mainnet|testnet>", "Persist the network", "Network mode",
			func(v string) error { return cfg.SetNetworkMode(v) }),
		setter("set-output <json|yaml|table>", "Persist the default output format", "Output",
			func(v string) error { return cfg.SetOutput(v) }),
		setter("set-log-level <debug|info|warn|error>", "Persist the log level", "Log level",
			func(v string) error { return cfg.SetLogLevel(v) }),
		configSetKeyCmd,
		configDeleteKeyCmd,
	)
}
