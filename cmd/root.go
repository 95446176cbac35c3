package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/Mohsinsiddi/kaiascan/internal/config"
	"github.com/Mohsinsiddi/kaiascan/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/kaiascan/cmd.Version=1.2.3" .
var Version = "1.0.0"

var (
	cfgDir  string
	cfg     *config.Config
	log     = slog.New(slog.DiscardHandler)
	verbose bool
	testnet bool
	mainnet bool
	apiKey  string
	output  string
	strict  bool
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "kaiascan",
	Short: "Query the Kaiascan explorer API",
	Long: `kaiascan reads accounts, tokens, NFTs, blocks, transactions and
contracts of the Kaia chain through the Kaiascan Open API.

Global flags --testnet and --mainnet override the configured network for a
single invocation. Without either flag the persisted mode is used
(default: mainnet). Persist with: kaiascan config set-network-mode <mode>

The API key is taken from --api-key, then KAIASCAN_API_KEY, then API_KEY
(a .env file in the working directory is honoured), then the OS keychain
(kaiascan config set-key).`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == cobra.ShellCompRequestCmd {
			return nil
		}
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}

		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if testnet {
			cfg.NetworkMode = "testnet"
		}
		if mainnet {
			cfg.NetworkMode = "mainnet"
		}
		if output != "" {
			if err := cfg.SetOutput(output); err != nil {
				return err
			}
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		log, err = logger.New(level, cfg.LogFormat, cmd.ErrOrStderr())
		return err
	},
}

// Execute runs the root command. Ctrl-C cancels the in-flight request.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorLine(err))
		os.Exit(1)
	}
}

func init() {
	// KAIASCAN_CONFIG_DIR env var overrides the default config directory.
	if envDir := os.Getenv("KAIASCAN_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.kaiascan)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log every request to stderr")
	pf.BoolVar(&testnet, "testnet", false, "use the Kairos testnet")
	pf.BoolVar(&mainnet, "mainnet", false, "use mainnet")
	pf.StringVar(&apiKey, "api-key", "", "Kaiascan API key (overrides env and keychain)")
	pf.StringVarP(&output, "output", "o", "", "output format: json, yaml or table (default from config)")
	pf.BoolVar(&strict, "strict", false, "reject addresses that are not 0x + 40 hex digits")
	rootCmd.MarkFlagsMutuallyExclusive("testnet", "mainnet")

	rootCmd.AddCommand(
		endpointsCmd,
		callCmd,
		browseCmd,
		accountCmd,
		tokenCmd,
		nftCmd,
		contractCmd,
		blockCmd,
		txCmd,
		kaiaCmd,
		networkCmd,
		checksumCmd,
		topicCmd,
		configCmd,
	)
}
