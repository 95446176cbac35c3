package cmd

import (
	"encoding/json"
	"strings"

	"github.com/Mohsinsiddi/kaiascan/internal/kaiascan"
	"github.com/Mohsinsiddi/kaiascan/internal/ui"
	"github.com/spf13/cobra"
)

// endpointView is the printable form of one descriptor.
type endpointView struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Params  string `json:"params"`
	Paged   bool   `json:"paged"`
	Summary string `json:"summary"`
}

var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "List every API endpoint the client knows",
	Long: `List the endpoint descriptor table. Required parameters are marked
with *, list parameters with [].`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		views := make([]endpointView, 0)
		for _, ep := range kaiascan.Endpoints() {
			views = append(views, endpointView{
				Name:    ep.Name,
				Path:    ep.Path,
				Params:  describeParams(ep.Params),
				Paged:   ep.Paged(),
				Summary: ep.Summary,
			})
		}
		data, err := json.Marshal(views)
		if err != nil {
			return err
		}
		return ui.Render(cmd.OutOrStdout(), cfg.Output, "Endpoints", data)
	},
}

func describeParams(ps []kaiascan.Param) string {
	parts := make([]string, 0, len(ps))
	for _, p := range ps {
		s := p.Name
		if p.Kind == kaiascan.KindList {
			s += "[]"
		}
		if p.Required {
			s += "*"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}
