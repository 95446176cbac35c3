package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/kaiascan/internal/kaiascan"
	"github.com/Mohsinsiddi/kaiascan/internal/ui"
	"github.com/spf13/cobra"
)

// addressReport is what `checksum` prints for one address.
type addressReport struct {
	Input     string `json:"input"`
	HasPrefix bool   `json:"has_0x_prefix"`
	ValidHex  bool   `json:"valid_hex"`
	Checksum  string `json:"checksum,omitempty"`
	Matches   bool   `json:"checksum_matches"`
}

func checkAddress(input string) addressReport {
	r := addressReport{
		Input:     input,
		HasPrefix: kaiascan.IsValidAddress(input),
		ValidHex:  kaiascan.IsHexAddress(input),
	}
	if sum, ok := kaiascan.Checksum(input); ok {
		r.Checksum = sum
		r.Matches = sum == input
	}
	return r
}

var checksumCmd = &cobra.Command{
	Use:   "checksum <address>",
	Short: "Check an address and show its EIP-55 checksum form",
	Long: `Run the advisory 0x-prefix check the client applies, the strict hex
check --strict applies, and print the EIP-55 mixed-case form.

Examples:
  kaiascan checksum 0xd8da6bf26964af9d7eed9e03e53415d37aa96045`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := checkAddress(args[0])

		if cfg.Output != "table" {
			data, err := json.Marshal(r)
			if err != nil {
				return err
			}
			return ui.Render(cmd.OutOrStdout(), cfg.Output, "Address", data)
		}

		pairs := [][2]string{{"Input", r.Input}}
		switch {
		case !r.HasPrefix:
			pairs = append(pairs, [2]string{"Valid", ui.Err("missing 0x prefix")})
		case !r.ValidHex:
			pairs = append(pairs, [2]string{"Valid", ui.Warn("0x prefix but not 40 hex digits")})
		case r.Matches:
			pairs = append(pairs, [2]string{"Checksummed", ui.Addr(r.Checksum)},
				[2]string{"Valid", ui.Success("address is correctly checksummed")})
		case strings.EqualFold(r.Input, r.Checksum):
			pairs = append(pairs, [2]string{"Checksummed", ui.Addr(r.Checksum)},
				[2]string{"Valid", ui.Warn("valid address but not checksummed")})
		default:
			pairs = append(pairs, [2]string{"Checksummed", ui.Addr(r.Checksum)},
				[2]string{"Valid", ui.Err("checksum mismatch")})
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("EIP-55 Checksum", pairs))
		return err
	},
}
