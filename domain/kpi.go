package domain

// KPIMetric names one of the headline business metrics.
type KPIMetric string

const (
	MetricGGT          KPIMetric = "ggt"
	MetricGGR          KPIMetric = "ggr"
	MetricNetProfit    KPIMetric = "netProfit"
	MetricTotalDeposit KPIMetric = "totalDeposit"
	MetricTotalPayout  KPIMetric = "totalPayout"
	MetricWinRatio     KPIMetric = "winRatio"
)

func KPIMetrics() []KPIMetric {
	return []KPIMetric{
		MetricGGT,
		MetricGGR,
		MetricNetProfit,
		MetricTotalDeposit,
		MetricTotalPayout,
		MetricWinRatio,
	}
}

func ParseKPIMetric(s string) (KPIMetric, bool) {
	for _, m := range KPIMetrics() {
		if string(m) == s {
			return m, true
		}
	}
	return MetricGGT, false
}

// IsPercentage reports whether the metric is a ratio that must not be segment-scaled.
func (m KPIMetric) IsPercentage() bool {
	return m == MetricWinRatio
}

type KPIWindow struct {
	ActiveUsers float64 `json:"activeUsers" koanf:"active_users"`
	AtRiskUsers float64 `json:"atRiskUsers" koanf:"at_risk_users"`
}

type KPIValue struct {
	ActiveUsers float64   `json:"activeUsers" koanf:"active_users"`
	AtRiskUsers float64   `json:"atRiskUsers" koanf:"at_risk_users"`
	ActiveDelta float64   `json:"activeDelta" koanf:"active_delta"`
	RiskDelta   float64   `json:"riskDelta" koanf:"risk_delta"`
	LastWeek    KPIWindow `json:"lastWeek" koanf:"last_week"`
	LastMonth   KPIWindow `json:"lastMonth" koanf:"last_month"`
	LastYear    KPIWindow `json:"lastYear" koanf:"last_year"`
}

type KPISnapshot struct {
	Product ProductSegment         `json:"product"`
	Metrics map[KPIMetric]KPIValue `json:"metrics"`
}

func (s KPISnapshot) Get(m KPIMetric) KPIValue {
	return s.Metrics[m]
}

type TrendPoint struct {
	Date        string  `json:"date"`
	Value       float64 `json:"value"`
	ActiveTotal float64 `json:"activeTotal"`
	AtRiskUsers int     `json:"atRiskUsers"`
}

type TrendSeries struct {
	Metric  KPIMetric      `json:"metric"`
	Product ProductSegment `json:"product"`
	PerUser bool           `json:"perUser"`
	Points  []TrendPoint   `json:"points"`
}

// ValuePoint is a single-series chart point.
type ValuePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
