package domain

import (
	"strings"
	"time"
)

type AssetType string

const (
	AssetTypeNode              AssetType = "Node"
	AssetTypeDisk              AssetType = "Disk"
	AssetTypeLoadBalancer      AssetType = "LoadBalancer"
	AssetTypeClusterManagement AssetType = "ClusterManagement"
	AssetTypeOther             AssetType = "Other"
)

// KnownAssetTypes lists the variants in tab order.
var KnownAssetTypes = []AssetType{
	AssetTypeNode,
	AssetTypeDisk,
	AssetTypeLoadBalancer,
	AssetTypeClusterManagement,
}

// Known reports whether t is one of the four billed variants.
func (t AssetType) Known() bool {
	switch t {
	case AssetTypeNode, AssetTypeDisk, AssetTypeLoadBalancer, AssetTypeClusterManagement:
		return true
	default:
		return false
	}
}

// OrOther returns t, or Other when the type is absent.
func (t AssetType) OrOther() AssetType {
	if t == "" {
		return AssetTypeOther
	}
	return t
}

// Category maps a type to its coarse cost category.
func (t AssetType) Category() string {
	switch t {
	case AssetTypeNode:
		return "Compute"
	case AssetTypeDisk:
		return "Storage"
	case AssetTypeLoadBalancer:
		return "Network"
	case AssetTypeClusterManagement:
		return "Management"
	default:
		return "Other"
	}
}

func (t AssetType) Label() string {
	switch t {
	case AssetTypeNode:
		return "Nodes"
	case AssetTypeDisk:
		return "Storage"
	case AssetTypeLoadBalancer:
		return "Load Balancers"
	case AssetTypeClusterManagement:
		return "Management"
	default:
		return "Other"
	}
}

type AssetProperties struct {
	Name       string
	Provider   string
	Cluster    string
	Category   string // Compute, Storage, Network, Management
	Project    string
	Service    string
	ProviderID string
}

// Breakdown fractions are reported as-is; they are not required to sum to 1.
type Breakdown struct {
	User   float64
	System float64
	Idle   float64
	Other  float64
}

type NodeDetails struct {
	CPUCores float64
	CPUCost  float64
	RAMBytes float64
	RAMCost  float64
	GPUCount float64
	GPUCost  float64
}

type DiskDetails struct {
	Bytes        float64
	BytesUsed    float64
	StorageClass string
}

type DailyCost struct {
	Date string // 2006-01-02
	Cost float64
}

// Asset is a billable infrastructure resource. Variant specific fields live in
// Node and Disk and are nil for the other variants.
type Asset struct {
	Type       AssetType
	Properties *AssetProperties
	Labels     map[string]string
	Start      time.Time
	End        time.Time
	TotalCost  *float64
	Efficiency *float64
	Breakdown  *Breakdown
	Node       *NodeDetails
	Disk       *DiskDetails
	DailyData  []DailyCost
}

func (a Asset) Cost() float64 {
	if a.TotalCost == nil {
		return 0
	}
	return *a.TotalCost
}

// EfficiencyValue returns the efficiency and whether it was reported at all.
func (a Asset) EfficiencyValue() (float64, bool) {
	if a.Efficiency == nil {
		return 0, false
	}
	return *a.Efficiency, true
}

func (a Asset) Name() string {
	if a.Properties == nil {
		return ""
	}
	return a.Properties.Name
}

func (a Asset) Provider() string {
	if a.Properties == nil {
		return ""
	}
	return a.Properties.Provider
}

func (a Asset) Cluster() string {
	if a.Properties == nil {
		return ""
	}
	return a.Properties.Cluster
}

func (a Asset) Category() string {
	if a.Properties == nil {
		return ""
	}
	return a.Properties.Category
}

func (a Asset) Project() string {
	if a.Properties == nil {
		return ""
	}
	return a.Properties.Project
}

func (a Asset) Bytes() float64 {
	if a.Disk == nil {
		return 0
	}
	return a.Disk.Bytes
}

func (a Asset) BytesUsed() float64 {
	if a.Disk == nil {
		return 0
	}
	return a.Disk.BytesUsed
}

// LastKeySegment returns the part of an asset key after the final "/".
func LastKeySegment(key string) string {
	return key[strings.LastIndex(key, "/")+1:]
}
