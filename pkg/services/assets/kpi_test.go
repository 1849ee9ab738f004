package assets

import (
	"testing"

	"github.com/de-tools/asset-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeKPIs_Empty(t *testing.T) {
	assert.Equal(t, domain.KPIs{}, ComputeKPIs(domain.NewAssetSet()))
	assert.Equal(t, domain.KPIs{}, ComputeKPIs(nil))
}

func TestComputeKPIs_NodesAndDisk(t *testing.T) {
	set := newSet(
		entry{"n1", asset(domain.AssetTypeNode, "n1", 100)},
		entry{"n2", asset(domain.AssetTypeNode, "n2", 300)},
		entry{"d1", asset(domain.AssetTypeDisk, "d1", 50)},
	)

	k := ComputeKPIs(set)
	assert.Equal(t, 400.0, k.NodeCost)
	assert.Equal(t, 50.0, k.DiskCost)
	assert.Equal(t, 450.0, k.TotalCost)
	assert.Equal(t, 2, k.NodeCount)
	assert.Equal(t, 1, k.DiskCount)
	assert.Equal(t, 0.0, k.AvgEfficiency)
}

func TestComputeKPIs_Full(t *testing.T) {
	set := sampleSet()
	set.Add("gw", domain.Asset{Type: "Gateway", TotalCost: ptr(11), Efficiency: ptr(0.17)})
	set.Add("ghost-disk", domain.Asset{Type: domain.AssetTypeDisk})

	k := ComputeKPIs(set)
	assert.InDelta(t, 2688.77+175.20+520+730+11, k.TotalCost, 1e-9)
	assert.InDelta(t, 2688.77, k.NodeCost, 1e-9)
	assert.InDelta(t, 175.20, k.DiskCost, 1e-9)
	assert.Equal(t, 520.0, k.NetworkCost)
	assert.Equal(t, 730.0, k.ManagementCost)
	assert.Equal(t, 2, k.DiskCount)
	assert.Equal(t, 100.0, k.TotalStorageBytes)
	assert.Equal(t, 45.0, k.UsedStorageBytes)
	// only the three assets reporting efficiency count
	assert.InDelta(t, (0.78+0.45+0.17)/3, k.AvgEfficiency, 1e-9)
	assert.InDelta(t, 0.45, StorageUtilization(k), 1e-9)
}

func TestStorageUtilization_NoDisks(t *testing.T) {
	assert.Equal(t, 0.0, StorageUtilization(domain.KPIs{}))
}

func TestEfficiencyStatus(t *testing.T) {
	assert.Equal(t, "High", EfficiencyStatus(0.8).Label)
	assert.Equal(t, "Medium", EfficiencyStatus(0.6).Label)
	assert.Equal(t, "Medium", EfficiencyStatus(0.79).Label)
	assert.Equal(t, "Low", EfficiencyStatus(0.1).Label)
	assert.Equal(t, "danger", EfficiencyStatus(0).Status)
}
