package cmd

import (
	"encoding/json"
	"fmt"
	"maps"
	"strconv"

	"github.com/Mohsinsiddi/kaiascan/internal/kaiascan"
	"github.com/Mohsinsiddi/kaiascan/internal/ui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse <endpoint> [name=value ...]",
	Short: "Page through a list endpoint interactively",
	Long: `Open a paged endpoint in an interactive table. Press n / → for the
next page, p / ← for the previous one, c to copy the selected row and q to quit.

Examples:
  kaiascan browse account-transactions accountAddress=0x...
  kaiascan browse token-holders tokenAddress=0x... size=100`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ep, ok := kaiascan.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown endpoint %q (see: kaiascan endpoints)", args[0])
		}
		if !ep.Paged() {
			return fmt.Errorf("endpoint %q is not paged; use: kaiascan call %s", ep.Name, ep.Name)
		}
		base, err := parseCallArgs(ep, args[1:])
		if err != nil {
			return err
		}

		start, err := startPage(base)
		if err != nil {
			return err
		}
		if _, ok := base["size"]; !ok {
			base["size"] = kaiascan.DefaultSize
		}

		// No spinner: stderr output would tear the full-screen view.
		c, err := buildClient(false)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		fetch := func(page int) (json.RawMessage, error) {
			a := maps.Clone(base)
			a["page"] = page
			resp, err := kaiascan.Invoke[json.RawMessage](ctx, c, ep.Name, a)
			if err != nil {
				return nil, err
			}
			return resp.Data, nil
		}
		return ui.RunPager(fmt.Sprintf("%s · %s", ep.Name, c.Network()), start, fetch)
	},
}

// startPage takes the page argument out of args, defaulting to the first page.
func startPage(args kaiascan.Args) (int, error) {
	v, ok := args["page"]
	if !ok {
		return kaiascan.DefaultPage, nil
	}
	delete(args, "page")
	n, err := strconv.Atoi(fmt.Sprint(v))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("page must be an integer >= 1, got %v", v)
	}
	return n, nil
}
