// Package opencost holds the wire format of the OpenCost assets API.
package opencost

import "time"

// AssetsResponse is the envelope returned by /model/assets. Data holds a single
// element with every asset of the window.
type AssetsResponse struct {
	Code    int        `json:"code"`
	Status  string     `json:"status"`
	Message string     `json:"message,omitempty"`
	Data    []AssetMap `json:"data"`
}

// TotalsResponse is the envelope returned by /model/assets/totals.
type TotalsResponse struct {
	Code    int     `json:"code"`
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Data    *Totals `json:"data"`
}

type Totals struct {
	TotalCost float64 `json:"totalCost"`
}

type AssetRecord struct {
	Type         string            `json:"type"`
	Properties   *AssetProperties  `json:"properties,omitempty"`
	Labels       map[string]string `json:"labels,omitempty"`
	Window       *Window           `json:"window,omitempty"`
	Start        *time.Time        `json:"start,omitempty"`
	End          *time.Time        `json:"end,omitempty"`
	Minutes      float64           `json:"minutes,omitempty"`
	CPUCores     float64           `json:"cpuCores,omitempty"`
	CPUCoreHours float64           `json:"cpuCoreHours,omitempty"`
	CPUCost      float64           `json:"cpuCost,omitempty"`
	RAMBytes     float64           `json:"ramBytes,omitempty"`
	RAMByteHours float64           `json:"ramByteHours,omitempty"`
	RAMCost      float64           `json:"ramCost,omitempty"`
	GPUCount     float64           `json:"gpuCount,omitempty"`
	GPUHours     float64           `json:"gpuHours,omitempty"`
	GPUCost      float64           `json:"gpuCost,omitempty"`
	Bytes        float64           `json:"bytes,omitempty"`
	BytesUsed    float64           `json:"bytesUsed,omitempty"`
	StorageClass string            `json:"storageClass,omitempty"`
	Breakdown    *Breakdown        `json:"breakdown,omitempty"`
	Adjustment   float64           `json:"adjustment,omitempty"`
	TotalCost    *float64          `json:"totalCost,omitempty"`
	Efficiency   *float64          `json:"efficiency,omitempty"`
	DailyData    []DailyData       `json:"dailyData,omitempty"`
}

type AssetProperties struct {
	Category   string `json:"category,omitempty"`
	Provider   string `json:"provider,omitempty"`
	Project    string `json:"project,omitempty"`
	Service    string `json:"service,omitempty"`
	Cluster    string `json:"cluster,omitempty"`
	Name       string `json:"name,omitempty"`
	ProviderID string `json:"providerID,omitempty"`
}

type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Breakdown struct {
	Idle   float64 `json:"idle"`
	Other  float64 `json:"other"`
	System float64 `json:"system"`
	User   float64 `json:"user"`
}

type DailyData struct {
	Date string  `json:"date"`
	Cost float64 `json:"cost"`
}
