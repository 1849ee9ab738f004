package assets

import "github.com/de-tools/asset-atlas/pkg/models/domain"

var (
	efficiencyHigh   = domain.EfficiencyLevel{Label: "High", Status: "success", Threshold: 0.8}
	efficiencyMedium = domain.EfficiencyLevel{Label: "Medium", Status: "warning", Threshold: 0.6}
	efficiencyLow    = domain.EfficiencyLevel{Label: "Low", Status: "danger", Threshold: 0}
)

func ComputeKPIs(set *domain.AssetSet) domain.KPIs {
	var (
		k               domain.KPIs
		efficiencySum   float64
		efficiencyCount int
	)

	set.Each(func(_ string, asset domain.Asset) bool {
		cost := asset.Cost()
		k.TotalCost += cost

		switch asset.Type {
		case domain.AssetTypeNode:
			k.NodeCost += cost
			k.NodeCount++
		case domain.AssetTypeDisk:
			k.DiskCost += cost
			k.DiskCount++
			k.TotalStorageBytes += asset.Bytes()
			k.UsedStorageBytes += asset.BytesUsed()
		case domain.AssetTypeLoadBalancer:
			k.NetworkCost += cost
		case domain.AssetTypeClusterManagement:
			k.ManagementCost += cost
		}

		if e, ok := asset.EfficiencyValue(); ok {
			efficiencySum += e
			efficiencyCount++
		}
		return true
	})

	if efficiencyCount > 0 {
		k.AvgEfficiency = efficiencySum / float64(efficiencyCount)
	}
	return k
}

// StorageUtilization returns used over provisioned disk bytes, 0 without disks.
func StorageUtilization(k domain.KPIs) float64 {
	if k.TotalStorageBytes == 0 {
		return 0
	}
	return k.UsedStorageBytes / k.TotalStorageBytes
}

func EfficiencyStatus(efficiency float64) domain.EfficiencyLevel {
	switch {
	case efficiency >= efficiencyHigh.Threshold:
		return efficiencyHigh
	case efficiency >= efficiencyMedium.Threshold:
		return efficiencyMedium
	default:
		return efficiencyLow
	}
}
