package commands

import (
	"fmt"

	"github.com/de-tools/asset-atlas/pkg/adapters"
	"github.com/de-tools/asset-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/asset-atlas/pkg/services/assets"
	"github.com/spf13/cobra"
)

func NewCategoriesCmd(s Session) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show cost by asset category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd.Context(), s, categoriesReport)
		},
	}
}

func categoriesReport(v View) *export.Report {
	totals := assets.ByCategory(v.Snapshot.Assets)
	total := assets.Total(totals)
	cur := v.Config.Currency

	report := &export.Report{
		Title:        "Cost by Category",
		Envelope:     envelope(v, adapters.MapCategoriesDomainToApi(totals)),
		Header:       []string{"Category", "Cost", "Share"},
		StatusColumn: -1,
		Footer:       []string{"Total: " + export.FormatMoney(cur, total)},
	}
	for _, t := range totals {
		report.Rows = append(report.Rows, []string{
			t.Group,
			export.FormatMoney(cur, t.Value),
			fmt.Sprintf("%.1f%%", assets.Percent(t.Value, total)),
		})
	}
	return report
}
