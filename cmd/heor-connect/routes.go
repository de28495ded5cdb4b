package main

import (
	"strings"

	"github.com/heorconnect/heor-connect/internal/model"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newRoutesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the navigation entries of the configured taxonomy and where they route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := loadRouter(c.cfg)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "LABEL", "KIND", "DEPTH", "ROUTE"})
			r.Tree().Walk(func(n *model.NavNode, depth int) bool {
				t.AppendRow(table.Row{
					n.ID,
					strings.Repeat("  ", depth) + n.Label,
					string(n.Kind),
					depth,
					routeOf(n),
				})
				return true
			})
			t.AppendFooter(table.Row{"", "", "", "", r.Tree().Name() + " (default " + r.Tree().DefaultRoute() + ")"})
			t.Render()
			return nil
		},
	}
}

// routeOf names the panel a click on n shows. Groups only toggle.
func routeOf(n *model.NavNode) string {
	switch n.Kind {
	case model.KindCountry:
		return model.RouteCountryDetail
	case model.KindGroup:
		return "-"
	default:
		return n.ID
	}
}
