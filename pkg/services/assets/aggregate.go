package assets

import (
	"sort"

	"github.com/de-tools/asset-atlas/pkg/models/domain"
)

const otherGroup = "Other"

// ByCategory sums cost per properties.category ("Other" when absent), largest
// first. Groups with equal totals keep the order they were first seen in.
func ByCategory(set *domain.AssetSet) []domain.CategoryTotal {
	index := make(map[string]int)
	totals := make([]domain.CategoryTotal, 0)

	set.Each(func(_ string, asset domain.Asset) bool {
		group := asset.Category()
		if group == "" {
			group = otherGroup
		}
		i, ok := index[group]
		if !ok {
			i = len(totals)
			index[group] = i
			totals = append(totals, domain.CategoryTotal{Group: group})
		}
		totals[i].Value += asset.Cost()
		return true
	})

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Value > totals[j].Value
	})
	return totals
}

func Total(totals []domain.CategoryTotal) float64 {
	var sum float64
	for _, t := range totals {
		sum += t.Value
	}
	return sum
}

// Percent returns value as a percentage of total, or 0 when total is 0.
func Percent(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total * 100
}

// ByTypeAndDate sums daily cost per (date, type). The result holds one point for
// every observed date and type, dates ascending and types in first-seen order,
// with zero for pairs nothing contributed to. Assets without daily data are
// skipped entirely.
func ByTypeAndDate(set *domain.AssetSet) []domain.DateValue {
	sums := make(map[string]map[domain.AssetType]float64)
	var types []domain.AssetType
	seenType := make(map[domain.AssetType]bool)

	set.Each(func(_ string, asset domain.Asset) bool {
		if len(asset.DailyData) == 0 {
			return true
		}
		t := asset.Type.OrOther()
		if !seenType[t] {
			seenType[t] = true
			types = append(types, t)
		}
		for _, day := range asset.DailyData {
			byType, ok := sums[day.Date]
			if !ok {
				byType = make(map[domain.AssetType]float64)
				sums[day.Date] = byType
			}
			byType[t] += day.Cost
		}
		return true
	})

	dates := make([]string, 0, len(sums))
	for d := range sums {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	series := make([]domain.DateValue, 0, len(dates)*len(types))
	for _, d := range dates {
		for _, t := range types {
			series = append(series, domain.DateValue{
				Group: string(t),
				Date:  d,
				Value: sums[d][t],
			})
		}
	}
	return series
}

// ByAsset returns one treemap leaf per asset grouped by type.
func ByAsset(set *domain.AssetSet) []domain.TreemapLeaf {
	leaves := make([]domain.TreemapLeaf, 0, set.Len())
	set.Each(func(key string, asset domain.Asset) bool {
		row := ProjectRow(key, asset)
		leaves = append(leaves, domain.TreemapLeaf{
			Name:     row.Name,
			Group:    string(asset.Type.OrOther()),
			Value:    row.Cost,
			AssetKey: key,
			Provider: row.Provider,
			Cluster:  row.Cluster,
		})
		return true
	})
	return leaves
}

// CountByTab counts the assets shown under each table tab.
func CountByTab(set *domain.AssetSet) []domain.TabCount {
	groups := ByType(set)
	tabs := []domain.TabCount{{
		ID:     domain.FilterAll,
		Label:  "All Assets",
		Filter: domain.FilterAll,
		Count:  set.Len(),
	}}
	for _, t := range domain.KnownAssetTypes {
		tabs = append(tabs, domain.TabCount{
			ID:     tabID(t),
			Label:  t.Label(),
			Filter: string(t),
			Count:  groups[string(t)].Len(),
		})
	}
	return tabs
}

func tabID(t domain.AssetType) string {
	switch t {
	case domain.AssetTypeNode:
		return "nodes"
	case domain.AssetTypeDisk:
		return "storage"
	case domain.AssetTypeLoadBalancer:
		return "network"
	case domain.AssetTypeClusterManagement:
		return "management"
	default:
		return "other"
	}
}
