package domain

type ClusterSegment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AtRiskUsers int    `json:"atRiskUsers"`
	Percentage  int    `json:"percentage"`
}

type ProductClusterData struct {
	Product     ProductSegment   `json:"product"`
	TotalAtRisk int              `json:"totalAtRisk"`
	Clusters    []ClusterSegment `json:"clusters"`
}

type CountTrend struct {
	Value int     `json:"value" koanf:"value"`
	Trend float64 `json:"trend" koanf:"trend"`
}

type SegmentationCounts struct {
	Yesterday CountTrend `json:"yesterday" koanf:"yesterday"`
	LastWeek  CountTrend `json:"lastWeek" koanf:"last_week"`
	LastMonth CountTrend `json:"lastMonth" koanf:"last_month"`
}

type SegmentationCluster struct {
	Name        string             `json:"name" koanf:"name"`
	Description string             `json:"description" koanf:"description"`
	Counts      SegmentationCounts `json:"counts" koanf:"counts"`
}
