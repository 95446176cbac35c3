package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Mohsinsiddi/kaiascan/internal/kaiascan"
	"github.com/spf13/cobra"
)

// addressArg checks s as an address. The 0x prefix is advisory and only
// warned about; --strict demands 0x plus 40 hex digits.
func addressArg(s string) (kaiascan.Address, error) {
	if strict && !kaiascan.IsHexAddress(s) {
		return "", fmt.Errorf("%q is not a valid hex address (0x + 40 hex digits)", s)
	}
	if !kaiascan.IsValidAddress(s) {
		log.Warn("address does not start with 0x", "address", s)
	}
	return kaiascan.Address(s), nil
}

// parseCallArgs turns name=value pairs into call arguments. Values of list
// parameters are split on commas; everything else is passed as a string and
// converted by the client.
func parseCallArgs(ep kaiascan.Endpoint, pairs []string) (kaiascan.Args, error) {
	kinds := make(map[string]kaiascan.ParamKind, len(ep.Params))
	for _, p := range ep.Params {
		kinds[p.Name] = p.Kind
	}

	args := kaiascan.Args{}
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("argument %q: expected name=value", pair)
		}
		if kinds[name] == kaiascan.KindList {
			args[name] = splitList(value)
			continue
		}
		args[name] = value
	}
	return args, nil
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// splitView separates a trailing view name from the positional args.
func splitView(args []string, views []string, def string) ([]string, string) {
	if n := len(args); n > 1 && slices.Contains(views, args[n-1]) {
		return args[:n-1], args[n-1]
	}
	return args, def
}

// checkView rejects view names not in views.
func checkView(view string, views []string) error {
	if slices.Contains(views, view) {
		return nil
	}
	return fmt.Errorf("unknown view %q (choose from %s)", view, strings.Join(views, ", "))
}

// addPageFlags registers --page and --size on cmd.
func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().Int("page", kaiascan.DefaultPage, "page number, from 1")
	cmd.Flags().Int("size", kaiascan.DefaultSize, fmt.Sprintf("page size, 1 to %d", kaiascan.MaxSize))
}

// pagination returns nil when neither --page nor --size was given, so the
// client applies its defaults.
func pagination(cmd *cobra.Command) *kaiascan.Pagination {
	if !cmd.Flags().Changed("page") && !cmd.Flags().Changed("size") {
		return nil
	}
	page, _ := cmd.Flags().GetInt("page")
	size, _ := cmd.Flags().GetInt("size")
	return &kaiascan.Pagination{Page: page, Size: size}
}

// addRangeFlags registers --start and --end block bounds on cmd.
func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("start", 0, "first block number of the range")
	cmd.Flags().Int64("end", 0, "last block number of the range")
}

func blockRange(cmd *cobra.Command) kaiascan.BlockRange {
	start, _ := cmd.Flags().GetInt64("start")
	end, _ := cmd.Flags().GetInt64("end")
	return kaiascan.BlockRange{Start: start, End: end}
}

// addEventFlags registers --signature (topic hash) and --event (text
// signature, hashed locally).
func addEventFlags(cmd *cobra.Command) {
	cmd.Flags().String("signature", "", "event topic hash to filter by")
	cmd.Flags().String("event", "", `event signature to filter by, e.g. "Transfer(address,address,uint256)"`)
	cmd.MarkFlagsMutuallyExclusive("signature", "event")
}

func eventSignature(cmd *cobra.Command) string {
	if ev, _ := cmd.Flags().GetString("event"); ev != "" {
		return kaiascan.EventTopic(ev)
	}
	sig, _ := cmd.Flags().GetString("signature")
	return sig
}
