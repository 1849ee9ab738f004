package assets

import (
	"sort"

	"github.com/de-tools/asset-atlas/pkg/models/domain"
)

const unknown = "Unknown"

func ProjectRow(key string, asset domain.Asset) domain.ViewRow {
	name := asset.Name()
	if name == "" {
		name = domain.LastKeySegment(key)
	}
	if name == "" {
		name = unknown
	}

	efficiency, _ := asset.EfficiencyValue()

	return domain.ViewRow{
		ID:         key,
		Name:       name,
		Type:       orUnknown(string(asset.Type)),
		Provider:   orUnknown(asset.Provider()),
		Cluster:    orUnknown(asset.Cluster()),
		Cost:       asset.Cost(),
		Efficiency: efficiency,
		Asset:      asset,
	}
}

// Rows projects every asset and orders the rows by cost, most expensive first.
// Rows with equal cost keep the set order.
func Rows(set *domain.AssetSet) []domain.ViewRow {
	rows := make([]domain.ViewRow, 0, set.Len())
	set.Each(func(key string, asset domain.Asset) bool {
		rows = append(rows, ProjectRow(key, asset))
		return true
	})

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Cost > rows[j].Cost
	})
	return rows
}

// TableRows filters the set with the view config and projects the result.
func TableRows(set *domain.AssetSet, cfg domain.ViewConfig) []domain.ViewRow {
	return Rows(FilterConfig(set, cfg))
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
