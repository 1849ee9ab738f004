package adapters

import (
	"maps"
	"time"

	"github.com/de-tools/asset-atlas/pkg/models/api"
	"github.com/de-tools/asset-atlas/pkg/models/domain"
	"github.com/de-tools/asset-atlas/pkg/models/opencost"
	"github.com/de-tools/asset-atlas/pkg/services/assets"
)

func MapAssetMapToDomain(m opencost.AssetMap) *domain.AssetSet {
	set := domain.NewAssetSet()
	for _, e := range m {
		set.Add(e.Key, MapAssetRecordToDomain(e.Record))
	}
	return set
}

func MapAssetRecordToDomain(r opencost.AssetRecord) domain.Asset {
	a := domain.Asset{
		Type:       domain.AssetType(r.Type),
		Labels:     maps.Clone(r.Labels),
		TotalCost:  cloneFloat(r.TotalCost),
		Efficiency: cloneFloat(r.Efficiency),
	}

	if r.Properties != nil {
		a.Properties = &domain.AssetProperties{
			Name:       r.Properties.Name,
			Provider:   r.Properties.Provider,
			Cluster:    r.Properties.Cluster,
			Category:   r.Properties.Category,
			Project:    r.Properties.Project,
			Service:    r.Properties.Service,
			ProviderID: r.Properties.ProviderID,
		}
	}

	if r.Start != nil {
		a.Start = *r.Start
	} else if r.Window != nil {
		a.Start, _ = time.Parse(time.RFC3339, r.Window.Start)
	}
	if r.End != nil {
		a.End = *r.End
	} else if r.Window != nil {
		a.End, _ = time.Parse(time.RFC3339, r.Window.End)
	}

	if r.Breakdown != nil {
		a.Breakdown = &domain.Breakdown{
			User:   r.Breakdown.User,
			System: r.Breakdown.System,
			Idle:   r.Breakdown.Idle,
			Other:  r.Breakdown.Other,
		}
	}

	switch a.Type {
	case domain.AssetTypeNode:
		a.Node = &domain.NodeDetails{
			CPUCores: r.CPUCores,
			CPUCost:  r.CPUCost,
			RAMBytes: r.RAMBytes,
			RAMCost:  r.RAMCost,
			GPUCount: r.GPUCount,
			GPUCost:  r.GPUCost,
		}
	case domain.AssetTypeDisk:
		a.Disk = &domain.DiskDetails{
			Bytes:        r.Bytes,
			BytesUsed:    r.BytesUsed,
			StorageClass: r.StorageClass,
		}
	}

	if len(r.DailyData) > 0 {
		a.DailyData = make([]domain.DailyCost, 0, len(r.DailyData))
		for _, d := range r.DailyData {
			a.DailyData = append(a.DailyData, domain.DailyCost{Date: d.Date, Cost: d.Cost})
		}
	}

	return a
}

func MapViewRowDomainToApi(row domain.ViewRow) api.AssetRow {
	return api.AssetRow{
		ID:         row.ID,
		Name:       row.Name,
		Type:       row.Type,
		Provider:   row.Provider,
		Cluster:    row.Cluster,
		Cost:       row.Cost,
		Efficiency: row.Efficiency,
	}
}

func MapViewRowsDomainToApi(rows []domain.ViewRow) []api.AssetRow {
	out := make([]api.AssetRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, MapViewRowDomainToApi(r))
	}
	return out
}

func MapCategoriesDomainToApi(totals []domain.CategoryTotal) api.CategoryBreakdown {
	total := assets.Total(totals)
	out := api.CategoryBreakdown{
		Total:      total,
		Categories: make([]api.CategoryTotal, 0, len(totals)),
	}
	for _, t := range totals {
		out.Categories = append(out.Categories, api.CategoryTotal{
			Group:   t.Group,
			Value:   t.Value,
			Percent: assets.Percent(t.Value, total),
		})
	}
	return out
}

func MapSeriesDomainToApi(series []domain.DateValue) []api.SeriesPoint {
	out := make([]api.SeriesPoint, 0, len(series))
	for _, p := range series {
		out = append(out, api.SeriesPoint{Group: p.Group, Date: p.Date, Value: p.Value})
	}
	return out
}

func MapTreemapDomainToApi(leaves []domain.TreemapLeaf) []api.TreemapLeaf {
	out := make([]api.TreemapLeaf, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, api.TreemapLeaf{
			Name:     l.Name,
			Group:    l.Group,
			Value:    l.Value,
			AssetKey: l.AssetKey,
			Provider: l.Provider,
			Cluster:  l.Cluster,
		})
	}
	return out
}

func MapTabsDomainToApi(tabs []domain.TabCount) []api.TabCount {
	out := make([]api.TabCount, 0, len(tabs))
	for _, t := range tabs {
		out = append(out, api.TabCount{ID: t.ID, Label: t.Label, Filter: t.Filter, Count: t.Count})
	}
	return out
}

func MapKPIsDomainToApi(k domain.KPIs) api.KPIs {
	return api.KPIs{
		TotalCost:          k.TotalCost,
		NodeCost:           k.NodeCost,
		DiskCost:           k.DiskCost,
		NetworkCost:        k.NetworkCost,
		ManagementCost:     k.ManagementCost,
		NodeCount:          k.NodeCount,
		DiskCount:          k.DiskCount,
		TotalStorageBytes:  k.TotalStorageBytes,
		UsedStorageBytes:   k.UsedStorageBytes,
		StorageUtilization: assets.StorageUtilization(k),
		AvgEfficiency:      k.AvgEfficiency,
		EfficiencyStatus:   assets.EfficiencyStatus(k.AvgEfficiency).Label,
	}
}

func MapAssetDetailDomainToApi(key string, a domain.Asset, maxLabels int) api.AssetDetail {
	row := assets.ProjectRow(key, a)
	detail := api.AssetDetail{
		AssetRow:         MapViewRowDomainToApi(row),
		Category:         a.Category(),
		Project:          a.Project(),
		EfficiencyStatus: assets.EfficiencyStatus(row.Efficiency).Label,
		CostBreakdown:    []api.BreakdownLine{},
		Labels:           []api.Label{},
	}

	if a.Breakdown != nil {
		detail.Utilization = &api.Utilization{
			User:   a.Breakdown.User,
			System: a.Breakdown.System,
			Idle:   a.Breakdown.Idle,
			Other:  a.Breakdown.Other,
		}
	}
	for _, l := range assets.CostBreakdown(a) {
		detail.CostBreakdown = append(detail.CostBreakdown, api.BreakdownLine{
			Key: l.Key, Label: l.Label, Value: l.Value, Text: l.Text, Unit: l.Unit,
		})
	}
	for _, kv := range assets.VisibleLabels(a.Labels, maxLabels) {
		detail.Labels = append(detail.Labels, api.Label{Key: kv[0], Value: kv[1]})
	}
	return detail
}

func MapNotificationDomainToApi(n *domain.Notification) *api.Notification {
	if n == nil {
		return nil
	}
	return &api.Notification{Kind: n.Kind, Title: n.Title, Subtitle: n.Subtitle}
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
