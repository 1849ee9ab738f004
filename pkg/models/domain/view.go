package domain

const FilterAll = "all"

// ViewConfig is the view state the projections are computed for.
type ViewConfig struct {
	Window         Window
	Currency       string
	SelectedFilter string // FilterAll or an AssetType
	SearchText     string
}

func DefaultViewConfig() ViewConfig {
	return ViewConfig{
		Window:         DefaultWindow,
		Currency:       DefaultCurrency,
		SelectedFilter: FilterAll,
	}
}

type ViewRow struct {
	ID         string
	Name       string
	Type       string
	Provider   string
	Cluster    string
	Cost       float64
	Efficiency float64
	Asset      Asset
}

type CategoryTotal struct {
	Group string
	Value float64
}

type DateValue struct {
	Group string
	Date  string
	Value float64
}

type TreemapLeaf struct {
	Name     string
	Group    string
	Value    float64
	AssetKey string
	Provider string
	Cluster  string
}

type TabCount struct {
	ID     string
	Label  string
	Filter string
	Count  int
}

type BreakdownLine struct {
	Key   string
	Label string
	Value float64
	Text  string // storage class and other non-numeric lines
	Unit  string // currency, bytes
}

type KPIs struct {
	TotalCost         float64
	NodeCost          float64
	DiskCost          float64
	NetworkCost       float64
	ManagementCost    float64
	NodeCount         int
	DiskCount         int
	TotalStorageBytes float64
	UsedStorageBytes  float64
	AvgEfficiency     float64
}

type EfficiencyLevel struct {
	Label     string
	Status    string
	Threshold float64
}

type Notification struct {
	Kind     string
	Title    string
	Subtitle string
}
