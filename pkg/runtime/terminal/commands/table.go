package commands

import (
	"fmt"

	"github.com/de-tools/asset-atlas/pkg/adapters"
	"github.com/de-tools/asset-atlas/pkg/models/domain"
	"github.com/de-tools/asset-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/asset-atlas/pkg/services/assets"
	"github.com/spf13/cobra"
)

type TableCmd struct {
	session Session
	filter  string
	search  string
	limit   int
}

func NewTableCmd(s Session) *cobra.Command {
	tc := &TableCmd{session: s}
	cmd := &cobra.Command{
		Use:   "table",
		Short: "List assets ordered by cost",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(cmd.Context(), tc.session, tc.report)
		},
	}

	cmd.Flags().StringVar(&tc.filter, "type", domain.FilterAll,
		"Asset type to show (all, Node, Disk, LoadBalancer, ClusterManagement)")
	cmd.Flags().StringVar(&tc.search, "search", "", "Case-insensitive search over name, type, provider and cluster")
	cmd.Flags().IntVar(&tc.limit, "limit", 0, "Maximum number of rows to show (0 shows all)")

	return cmd
}

func (tc *TableCmd) report(v View) *export.Report {
	cfg := v.Config
	cfg.SelectedFilter = tc.filter
	cfg.SearchText = tc.search

	rows := assets.TableRows(v.Snapshot.Assets, cfg)
	matched := len(rows)
	if tc.limit > 0 && len(rows) > tc.limit {
		rows = rows[:tc.limit]
	}

	report := &export.Report{
		Title:        "Assets",
		Envelope:     envelope(v, adapters.MapViewRowsDomainToApi(rows)),
		Header:       []string{"Name", "Type", "Provider", "Cluster", "Cost", "Efficiency"},
		StatusColumn: 5,
		Footer:       []string{fmt.Sprintf("Showing %d of %d assets", len(rows), matched)},
	}
	for _, row := range rows {
		report.Rows = append(report.Rows, []string{
			row.Name,
			row.Type,
			row.Provider,
			row.Cluster,
			export.FormatMoney(cfg.Currency, row.Cost),
			export.FormatPercent(row.Efficiency),
		})
		report.Statuses = append(report.Statuses, assets.EfficiencyStatus(row.Efficiency).Status)
	}
	return report
}
