package fixture

import wire "github.com/de-tools/asset-atlas/pkg/models/opencost"

const gib = 1024 * 1024 * 1024

type fixtureAsset struct {
	key    string
	record wire.AssetRecord
}

func f(v float64) *float64 { return &v }

func props(category, project, name string) *wire.AssetProperties {
	return &wire.AssetProperties{
		Category:   category,
		Provider:   "GCP",
		Project:    project,
		Service:    "Kubernetes",
		Cluster:    "cluster-1",
		Name:       name,
		ProviderID: "gce://" + project + "/us-central1-a/" + name,
	}
}

func nodeLabels(pool, instanceType, zone, team string) map[string]string {
	return map[string]string{
		"cloud.google.com/gke-nodepool":    pool,
		"node.kubernetes.io/instance-type": instanceType,
		"topology.kubernetes.io/region":    "us-central1",
		"topology.kubernetes.io/zone":      zone,
		"env":                              "production",
		"team":                             team,
	}
}

type nodeSpec struct {
	name, project       string
	cores, ramGiB, gpus float64
	cpuCost, ramCost    float64
	gpuCost             float64
	total, efficiency   float64
	labels              map[string]string
	breakdown           wire.Breakdown
}

func node(s nodeSpec) fixtureAsset {
	return fixtureAsset{
		key: "cluster-1/Node/" + s.name,
		record: wire.AssetRecord{
			Type:       "Node",
			Properties: props("Compute", s.project, s.name),
			Labels:     s.labels,
			CPUCores:   s.cores,
			CPUCost:    s.cpuCost,
			RAMBytes:   s.ramGiB * gib,
			RAMCost:    s.ramCost,
			GPUCount:   s.gpus,
			GPUCost:    s.gpuCost,
			Breakdown:  &s.breakdown,
			TotalCost:  f(s.total),
			Efficiency: f(s.efficiency),
		},
	}
}

func disk(name, app, storageClass string, sizeGiB, usedGiB, total, efficiency float64, b wire.Breakdown) fixtureAsset {
	return fixtureAsset{
		key: "cluster-1/Disk/" + name,
		record: wire.AssetRecord{
			Type:         "Disk",
			Properties:   props("Storage", "opencost-production", name),
			Labels:       map[string]string{"app": app, "env": "production"},
			Bytes:        sizeGiB * gib,
			BytesUsed:    usedGiB * gib,
			StorageClass: storageClass,
			Breakdown:    &b,
			TotalCost:    f(total),
			Efficiency:   f(efficiency),
		},
	}
}

func loadBalancer(name, app string, total, efficiency float64) fixtureAsset {
	return fixtureAsset{
		key: "cluster-1/LoadBalancer/" + name,
		record: wire.AssetRecord{
			Type:       "LoadBalancer",
			Properties: props("Network", "opencost-production", name),
			Labels:     map[string]string{"app": app},
			Breakdown:  &wire.Breakdown{Idle: 1 - efficiency, User: efficiency},
			TotalCost:  f(total),
			Efficiency: f(efficiency),
		},
	}
}

// catalogue mirrors a small production GKE cluster: five nodes (one with a
// GPU), three persistent volumes, two load balancers and the management fee.
func catalogue() []fixtureAsset {
	staging := nodeLabels("staging-pool", "e2-standard-4", "us-central1-c", "platform")
	staging["env"] = "staging"

	gpu := nodeLabels("gpu-pool", "n1-standard-8", "us-central1-a", "ml")
	gpu["cloud.google.com/gke-accelerator"] = "nvidia-tesla-t4"

	return []fixtureAsset{
		node(nodeSpec{
			name: "gke-prod-pool-1-node-01", project: "opencost-production",
			cores: 8, ramGiB: 32, cpuCost: 1920.45, ramCost: 768.32,
			total: 2688.77, efficiency: 0.78,
			labels:    nodeLabels("prod-pool-1", "n2-standard-8", "us-central1-a", "platform"),
			breakdown: wire.Breakdown{Idle: 0.22, Other: 0.03, System: 0.08, User: 0.67},
		}),
		node(nodeSpec{
			name: "gke-prod-pool-1-node-02", project: "opencost-production",
			cores: 8, ramGiB: 32, cpuCost: 1845.20, ramCost: 720.15,
			total: 2565.35, efficiency: 0.82,
			labels:    nodeLabels("prod-pool-1", "n2-standard-8", "us-central1-b", "platform"),
			breakdown: wire.Breakdown{Idle: 0.18, Other: 0.02, System: 0.10, User: 0.70},
		}),
		node(nodeSpec{
			name: "gke-prod-pool-2-node-01", project: "opencost-production",
			cores: 4, ramGiB: 16, cpuCost: 892.40, ramCost: 356.80,
			total: 1249.20, efficiency: 0.60,
			labels:    nodeLabels("prod-pool-2", "n2-standard-4", "us-central1-a", "platform"),
			breakdown: wire.Breakdown{Idle: 0.35, Other: 0.05, System: 0.12, User: 0.48},
		}),
		node(nodeSpec{
			name: "gke-staging-pool-node-01", project: "opencost-staging",
			cores: 4, ramGiB: 16, cpuCost: 445.60, ramCost: 178.40,
			total: 624.00, efficiency: 0.45,
			labels:    staging,
			breakdown: wire.Breakdown{Idle: 0.45, Other: 0.10, System: 0.15, User: 0.30},
		}),
		disk("pvc-production-db-data", "postgres", "premium-rwo", 500, 385, 875.50, 0.77,
			wire.Breakdown{Idle: 0.23, Other: 0.02, System: 0.05, User: 0.70}),
		disk("pvc-production-redis-data", "redis", "standard-rwo", 100, 45, 175.20, 0.45,
			wire.Breakdown{Idle: 0.55, Other: 0.05, System: 0.10, User: 0.30}),
		disk("pvc-logs-elasticsearch", "elasticsearch", "standard-rwo", 2000, 1650, 1400.00, 0.825,
			wire.Breakdown{Idle: 0.18, Other: 0.02, System: 0.05, User: 0.75}),
		loadBalancer("ingress-nginx-controller", "ingress-nginx", 520.00, 0.95),
		loadBalancer("api-gateway-lb", "api-gateway", 380.00, 0.85),
		{
			key: "cluster-1/ClusterManagement/__clusterManagement__",
			record: wire.AssetRecord{
				Type:       "ClusterManagement",
				Properties: props("Management", "opencost-production", "__clusterManagement__"),
				Breakdown:  &wire.Breakdown{System: 1},
				TotalCost:  f(730.00),
				Efficiency: f(1.00),
			},
		},
		node(nodeSpec{
			name: "gke-gpu-pool-node-01", project: "opencost-production",
			cores: 8, ramGiB: 52, gpus: 1, cpuCost: 672.00, ramCost: 312.00, gpuCost: 2520.00,
			total: 3504.00, efficiency: 0.55,
			labels:    gpu,
			breakdown: wire.Breakdown{Idle: 0.40, Other: 0.05, System: 0.05, User: 0.50},
		}),
	}
}
