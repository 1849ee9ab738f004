package assets

import "github.com/de-tools/asset-atlas/pkg/models/domain"

func ptr(f float64) *float64 { return &f }

type entry struct {
	key   string
	asset domain.Asset
}

func newSet(entries ...entry) *domain.AssetSet {
	s := domain.NewAssetSet()
	for _, e := range entries {
		s.Add(e.key, e.asset)
	}
	return s
}

func asset(t domain.AssetType, name string, cost float64) domain.Asset {
	return domain.Asset{
		Type: t,
		Properties: &domain.AssetProperties{
			Name:     name,
			Provider: "GCP",
			Cluster:  "cluster-1",
			Category: t.Category(),
		},
		TotalCost: ptr(cost),
	}
}

func sampleSet() *domain.AssetSet {
	redis := asset(domain.AssetTypeDisk, "pvc-production-redis-data", 175.20)
	redis.Disk = &domain.DiskDetails{Bytes: 100, BytesUsed: 45, StorageClass: "standard-rwo"}
	redis.Efficiency = ptr(0.45)

	node := asset(domain.AssetTypeNode, "gke-prod-pool-1-node-01", 2688.77)
	node.Efficiency = ptr(0.78)
	node.Node = &domain.NodeDetails{CPUCost: 1920.45, RAMCost: 768.32}

	return newSet(
		entry{"cluster-1/Node/gke-prod-pool-1-node-01", node},
		entry{"cluster-1/Disk/pvc-production-redis-data", redis},
		entry{"cluster-1/LoadBalancer/ingress-nginx-controller", asset(domain.AssetTypeLoadBalancer, "ingress-nginx-controller", 520)},
		entry{"cluster-1/ClusterManagement/__clusterManagement__", asset(domain.AssetTypeClusterManagement, "__clusterManagement__", 730)},
	)
}
