package commands

import (
	"github.com/de-tools/asset-atlas/pkg/adapters"
	"github.com/de-tools/asset-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/asset-atlas/pkg/services/assets"
	"github.com/spf13/cobra"
)

func NewTrendCmd(s Session) *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Show daily cost per asset type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd.Context(), s, trendReport)
		},
	}
}

// trendReport pivots the series into one row per date and one column per type.
func trendReport(v View) *export.Report {
	series := assets.ByTypeAndDate(v.Snapshot.Assets)
	cur := v.Config.Currency

	report := &export.Report{
		Title:        "Daily Cost by Type",
		Envelope:     envelope(v, adapters.MapSeriesDomainToApi(series)),
		Header:       []string{"Date"},
		StatusColumn: -1,
	}

	column := make(map[string]int)
	row := make(map[string]int)
	for _, p := range series {
		if _, ok := column[p.Group]; !ok {
			column[p.Group] = len(report.Header)
			report.Header = append(report.Header, p.Group)
		}
	}
	for _, p := range series {
		i, ok := row[p.Date]
		if !ok {
			i = len(report.Rows)
			row[p.Date] = i
			cells := make([]string, len(report.Header))
			cells[0] = p.Date
			report.Rows = append(report.Rows, cells)
		}
		report.Rows[i][column[p.Group]] = export.FormatMoney(cur, p.Value)
	}
	return report
}
