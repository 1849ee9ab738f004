package commands

import (
	"fmt"

	"github.com/de-tools/asset-atlas/pkg/adapters"
	"github.com/de-tools/asset-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/asset-atlas/pkg/services/assets"
	"github.com/spf13/cobra"
)

func NewSummaryCmd(s Session) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show cost and efficiency KPIs for the window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd.Context(), s, summaryReport)
		},
	}
}

func summaryReport(v View) *export.Report {
	k := assets.ComputeKPIs(v.Snapshot.Assets)
	cur := v.Config.Currency
	status := assets.EfficiencyStatus(k.AvgEfficiency)

	reported := "N/A"
	if v.ReportedTotal != nil {
		reported = export.FormatMoney(cur, *v.ReportedTotal)
	}

	return &export.Report{
		Title:    "Infrastructure Assets",
		Envelope: envelope(v, adapters.MapKPIsDomainToApi(k)),
		Header:   []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Cost", export.FormatMoney(cur, k.TotalCost)},
			{"Reported Total", reported},
			{"Nodes", fmt.Sprintf("%d (%s)", k.NodeCount, export.FormatMoney(cur, k.NodeCost))},
			{"Storage", fmt.Sprintf("%d (%s)", k.DiskCount, export.FormatMoney(cur, k.DiskCost))},
			{"Network", export.FormatMoney(cur, k.NetworkCost)},
			{"Management", export.FormatMoney(cur, k.ManagementCost)},
			{"Storage Used", fmt.Sprintf("%s of %s (%s)",
				export.FormatBytes(k.UsedStorageBytes),
				export.FormatBytes(k.TotalStorageBytes),
				export.FormatPercent(assets.StorageUtilization(k)))},
			{"Avg Efficiency", fmt.Sprintf("%s (%s)", export.FormatPercent(k.AvgEfficiency), status.Label)},
		},
		StatusColumn: 1,
		Statuses:     []string{"", "", "", "", "", "", "", status.Status},
	}
}
