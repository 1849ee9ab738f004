package api

import "time"

type Notification struct {
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Envelope wraps every view payload with the view state it was computed for.
type Envelope struct {
	Window       string        `json:"window"`
	Currency     string        `json:"currency"`
	LoadedAt     *time.Time    `json:"loaded_at,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
	Data         interface{}   `json:"data"`
}

type AssetRow struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Provider   string  `json:"provider"`
	Cluster    string  `json:"cluster"`
	Cost       float64 `json:"cost"`
	Efficiency float64 `json:"efficiency"`
}

type CategoryTotal struct {
	Group   string  `json:"group"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

type CategoryBreakdown struct {
	Total      float64         `json:"total"`
	Categories []CategoryTotal `json:"categories"`
}

type SeriesPoint struct {
	Group string  `json:"group"`
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type TreemapLeaf struct {
	Name     string  `json:"name"`
	Group    string  `json:"group"`
	Value    float64 `json:"value"`
	AssetKey string  `json:"asset_key"`
	Provider string  `json:"provider"`
	Cluster  string  `json:"cluster"`
}

type TabCount struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Filter string `json:"filter"`
	Count  int    `json:"count"`
}

type KPIs struct {
	TotalCost          float64 `json:"total_cost"`
	NodeCost           float64 `json:"node_cost"`
	DiskCost           float64 `json:"disk_cost"`
	NetworkCost        float64 `json:"network_cost"`
	ManagementCost     float64 `json:"management_cost"`
	NodeCount          int     `json:"node_count"`
	DiskCount          int     `json:"disk_count"`
	TotalStorageBytes  float64 `json:"total_storage_bytes"`
	UsedStorageBytes   float64 `json:"used_storage_bytes"`
	StorageUtilization float64 `json:"storage_utilization"`
	AvgEfficiency      float64 `json:"avg_efficiency"`
	EfficiencyStatus   string  `json:"efficiency_status"`
}

type BreakdownLine struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Text  string  `json:"text,omitempty"`
	Unit  string  `json:"unit,omitempty"`
}

type Utilization struct {
	User   float64 `json:"user"`
	System float64 `json:"system"`
	Idle   float64 `json:"idle"`
	Other  float64 `json:"other"`
}

type Label struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type AssetDetail struct {
	AssetRow
	Category         string          `json:"category"`
	Project          string          `json:"project"`
	EfficiencyStatus string          `json:"efficiency_status"`
	Utilization      *Utilization    `json:"utilization,omitempty"`
	CostBreakdown    []BreakdownLine `json:"cost_breakdown"`
	Labels           []Label         `json:"labels"`
}

type WindowOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Totals is the total cost reported by the source, independent of the loaded
// asset set.
type Totals struct {
	TotalCost float64 `json:"total_cost"`
}

type RefreshResult struct {
	Assets int `json:"assets"`
}
