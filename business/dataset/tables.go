package dataset

import "rgDashboard/domain"

// Tables holds every base table the generators read. It is built once at
// startup and shared read-only by all services.
type Tables struct {
	KPI          KPITables          `koanf:"kpi"`
	Clusters     ClusterTables      `koanf:"clusters"`
	Segmentation SegmentationTables `koanf:"segmentation"`
	AtRisk       AtRiskTables       `koanf:"at_risk"`
	Summary      SummaryTables      `koanf:"summary"`
	Demographics DemographicTables  `koanf:"demographics"`
	AuditLog     AuditLogTables     `koanf:"audit_log"`
	UserDetail   UserDetailTables   `koanf:"user_detail"`
}

// IntRange is inclusive on both ends.
type IntRange struct {
	Min int `koanf:"min"`
	Max int `koanf:"max"`
}

type Median struct {
	Active float64 `koanf:"active"`
	AtRisk float64 `koanf:"at_risk"`
}

type KPITables struct {
	Base          map[string]domain.KPIValue `koanf:"base"`
	Multipliers   SegmentMultipliers         `koanf:"multipliers"`
	MonthlyTotals map[string]float64         `koanf:"monthly_totals"`
	Medians       map[string]Median          `koanf:"medians"`

	// baselines for the percentage metric in the total view
	WinRatioAtRisk float64 `koanf:"win_ratio_at_risk"`
	WinRatioActive float64 `koanf:"win_ratio_active"`
	WinRatioSpread float64 `koanf:"win_ratio_spread"`

	ActiveRatio   float64  `koanf:"active_ratio"`
	DailyJitter   float64  `koanf:"daily_jitter"`
	PerUserJitter float64  `koanf:"per_user_jitter"`
	TrendDays     int      `koanf:"trend_days"`
	ContextUsers  IntRange `koanf:"context_users"`
}

func (t KPITables) BaseFor(m domain.KPIMetric) domain.KPIValue {
	return t.Base[string(m)]
}

type ClusterBase struct {
	ID          string `koanf:"id"`
	Name        string `koanf:"name"`
	Description string `koanf:"description"`
	BaseAtRisk  int    `koanf:"base_at_risk"`
}

type ClusterTables struct {
	Base        []ClusterBase      `koanf:"base"`
	Multipliers SegmentMultipliers `koanf:"multipliers"`
}

type SegmentationTables struct {
	Base        []domain.SegmentationCluster `koanf:"base"`
	Multipliers SegmentMultipliers           `koanf:"multipliers"`
}

type RowCounts struct {
	Day     int `koanf:"day"`
	Week    int `koanf:"week"`
	Month   int `koanf:"month"`
	Default int `koanf:"default"`
}

func (c RowCounts) For(r domain.TimeRange) int {
	switch r {
	case domain.RangeDay:
		return c.Day
	case domain.RangeWeek:
		return c.Week
	case domain.RangeMonth:
		return c.Month
	default:
		return c.Default
	}
}

type RiskWeights struct {
	High   float64 `koanf:"high"`
	Medium float64 `koanf:"medium"`
	Low    float64 `koanf:"low"`
}

// ScalingMode controls how a segment multiplier shapes the at-risk table.
type ScalingMode string

const (
	ScaleBoth       ScalingMode = "both"
	ScalePopulation ScalingMode = "population"
	ScaleMagnitude  ScalingMode = "magnitude"
)

func (m ScalingMode) Truncates() bool {
	return m == ScaleBoth || m == ScalePopulation
}

func (m ScalingMode) ScalesMoney() bool {
	return m == ScaleBoth || m == ScaleMagnitude
}

type AtRiskTables struct {
	RowCounts   RowCounts          `koanf:"row_counts"`
	Multipliers SegmentMultipliers `koanf:"multipliers"`
	Scaling     ScalingMode        `koanf:"scaling"`
	RiskWeights RiskWeights        `koanf:"risk_weights"`

	Deposit    IntRange `koanf:"deposit"`
	Bets       IntRange `koanf:"bets"`
	NetProfit  IntRange `koanf:"net_profit"`
	Payout     IntRange `koanf:"payout"`
	DaysAtRisk IntRange `koanf:"days_at_risk"`
}

type Population struct {
	Total  int `koanf:"total"`
	AtRisk int `koanf:"at_risk"`
}

type Share struct {
	Name  string  `koanf:"name"`
	Share float64 `koanf:"share"`
}

type RandomWalk struct {
	Start   float64 `koanf:"start"`
	MaxStep float64 `koanf:"max_step"`
	Min     float64 `koanf:"min"`
	Max     float64 `koanf:"max"`
	Final   float64 `koanf:"final"`
}

type TrendPeriods struct {
	Day   int `koanf:"day"`
	Week  int `koanf:"week"`
	Month int `koanf:"month"`
}

type SummaryTables struct {
	Populations     map[string]Population `koanf:"populations"`
	Shares          []Share               `koanf:"shares"`
	DailyKPI        domain.BusinessKPI    `koanf:"daily_kpi"`
	CategoryFactor  float64               `koanf:"category_factor"`
	AtRiskWalk      RandomWalk            `koanf:"at_risk_walk"`
	TrendPeriods    TrendPeriods          `koanf:"trend_periods"`
	TrendJitterLow  float64               `koanf:"trend_jitter_low"`
	TrendJitterHigh float64               `koanf:"trend_jitter_high"`
}

// PopulationFor falls back to the day window for unknown keys.
func (t SummaryTables) PopulationFor(r domain.TimeRange) Population {
	if p, ok := t.Populations[string(r)]; ok {
		return p
	}
	return t.Populations[string(domain.RangeDay)]
}

type DemographicTables struct {
	Base        map[string]domain.DemographicData `koanf:"base"`
	Multipliers SegmentMultipliers                `koanf:"multipliers"`
}

type AuditLogTables struct {
	PoolSize         int      `koanf:"pool_size"`
	Products         []string `koanf:"products"`
	Reasons          []string `koanf:"reasons"`
	Actions          []string `koanf:"actions"`
	Statuses         []string `koanf:"statuses"`
	Operators        []string `koanf:"operators"`
	NoteTexts        []string `koanf:"note_texts"`
	Provinces        []string `koanf:"provinces"`
	Reports          IntRange `koanf:"reports"`
	WindowDays       IntRange `koanf:"window_days"`
	TimelineEntries  IntRange `koanf:"timeline_entries"`
	Notes            IntRange `koanf:"notes"`
	Age              IntRange `koanf:"age"`
	RegistrationDate string   `koanf:"registration_date"`
	LastLogin        string   `koanf:"last_login"`
}

type AnomalyBase struct {
	Date  string `koanf:"date"`
	Score int    `koanf:"score"`
}

type UserDetailTables struct {
	Provinces         []string              `koanf:"provinces"`
	PreferredProducts []string              `koanf:"preferred_products"`
	Stats             domain.UserStats      `koanf:"stats"`
	Statistics        []domain.StatisticRow `koanf:"statistics"`
	RiskFactors       []domain.RiskFactor   `koanf:"risk_factors"`
	AnomalyScores     []AnomalyBase         `koanf:"anomaly_scores"`
	HighRiskScore     int                   `koanf:"high_risk_score"`
	MediumRiskScore   int                   `koanf:"medium_risk_score"`
	Age               IntRange              `koanf:"age"`
	RegistrationDate  string                `koanf:"registration_date"`
	LastLogin         string                `koanf:"last_login"`
}
