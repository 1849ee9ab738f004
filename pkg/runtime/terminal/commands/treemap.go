package commands

import (
	"fmt"

	"github.com/de-tools/asset-atlas/pkg/adapters"
	"github.com/de-tools/asset-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/asset-atlas/pkg/services/assets"
	"github.com/spf13/cobra"
)

func NewTreemapCmd(s Session) *cobra.Command {
	return &cobra.Command{
		Use:   "treemap",
		Short: "Show each asset's share of the total cost",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd.Context(), s, treemapReport)
		},
	}
}

func treemapReport(v View) *export.Report {
	leaves := assets.ByAsset(v.Snapshot.Assets)
	cur := v.Config.Currency

	var total float64
	for _, l := range leaves {
		total += l.Value
	}

	report := &export.Report{
		Title:        "Cost Distribution",
		Envelope:     envelope(v, adapters.MapTreemapDomainToApi(leaves)),
		Header:       []string{"Group", "Name", "Cost", "Share"},
		StatusColumn: -1,
	}
	for _, l := range leaves {
		report.Rows = append(report.Rows, []string{
			l.Group,
			l.Name,
			export.FormatMoney(cur, l.Value),
			fmt.Sprintf("%.1f%%", assets.Percent(l.Value, total)),
		})
	}
	return report
}
