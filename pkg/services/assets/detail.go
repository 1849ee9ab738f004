package assets

import (
	"sort"
	"strings"

	"github.com/de-tools/asset-atlas/pkg/models/domain"
)

const (
	DefaultMaxLabels = 8

	UnitCurrency = "currency"
	UnitBytes    = "bytes"
)

var excludedLabelPrefixes = []string{
	"beta_",
	"beta.",
	"kubernetes.io/",
	"node.kubernetes.io/",
	"failure-domain.",
}

// CostBreakdown lists the per-variant detail lines shown when a row is expanded.
func CostBreakdown(asset domain.Asset) []domain.BreakdownLine {
	switch asset.Type {
	case domain.AssetTypeNode:
		node := asset.Node
		if node == nil {
			node = &domain.NodeDetails{}
		}
		lines := []domain.BreakdownLine{
			{Key: "cpuCost", Label: "CPU Cost", Value: node.CPUCost, Unit: UnitCurrency},
			{Key: "ramCost", Label: "RAM Cost", Value: node.RAMCost, Unit: UnitCurrency},
		}
		if node.GPUCost > 0 {
			lines = append(lines, domain.BreakdownLine{
				Key: "gpuCost", Label: "GPU Cost", Value: node.GPUCost, Unit: UnitCurrency,
			})
		}
		return lines
	case domain.AssetTypeDisk:
		disk := asset.Disk
		if disk == nil {
			disk = &domain.DiskDetails{}
		}
		storageClass := disk.StorageClass
		if storageClass == "" {
			storageClass = "N/A"
		}
		return []domain.BreakdownLine{
			{Key: "bytes", Label: "Capacity", Value: disk.Bytes, Unit: UnitBytes},
			{Key: "bytesUsed", Label: "Used", Value: disk.BytesUsed, Unit: UnitBytes},
			{Key: "storageClass", Label: "Storage Class", Text: storageClass},
		}
	case domain.AssetTypeClusterManagement:
		return []domain.BreakdownLine{
			{Key: "totalCost", Label: "Management Cost", Value: asset.Cost(), Unit: UnitCurrency},
		}
	default:
		return []domain.BreakdownLine{
			{Key: "totalCost", Label: "Total Cost", Value: asset.Cost(), Unit: UnitCurrency},
		}
	}
}

// VisibleLabels drops platform labels and returns at most max entries sorted by
// key. A non-positive max means DefaultMaxLabels.
func VisibleLabels(labels map[string]string, max int) [][2]string {
	if max <= 0 {
		max = DefaultMaxLabels
	}

	keys := make([]string, 0, len(labels))
	for k := range labels {
		if hiddenLabel(k) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) > max {
		keys = keys[:max]
	}
	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{k, labels[k]})
	}
	return out
}

func hiddenLabel(key string) bool {
	if strings.Contains(key, "kubernetes.io") {
		return true
	}
	for _, p := range excludedLabelPrefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}
