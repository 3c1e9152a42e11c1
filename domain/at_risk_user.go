package domain

type ClusterType string

const (
	ClusterConsistent ClusterType = "Consistent"
	ClusterRegular    ClusterType = "Regular"
	ClusterImpulsive  ClusterType = "Impulsive"
	ClusterErratic    ClusterType = "Erratic"
	ClusterNew        ClusterType = "New"
	ClusterHighValue  ClusterType = "High-Value"
)

func ClusterTypes() []ClusterType {
	return []ClusterType{
		ClusterConsistent,
		ClusterRegular,
		ClusterImpulsive,
		ClusterErratic,
		ClusterNew,
		ClusterHighValue,
	}
}

type RiskLevel string

const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

// AtRiskUser is one synthetic flagged account row. Money is whole euros.
type AtRiskUser struct {
	ID               string      `json:"id"`
	Username         string      `json:"username"`
	Cluster          ClusterType `json:"cluster"`
	RiskLevel        RiskLevel   `json:"riskLevel"`
	TotalDeposit     int64       `json:"totalDeposit"`
	TotalBets        int64       `json:"totalBets"`
	GrossRevenue     int64       `json:"grossRevenue"`
	NetProfit        int64       `json:"netProfit"`
	PayoutPercentage int         `json:"payoutPercentage"`
	DaysAtRisk       int         `json:"daysAtRisk"`
}

type UserStats struct {
	TotalDeposits    int64   `json:"totalDeposits" koanf:"total_deposits"`
	TotalWithdrawals int64   `json:"totalWithdrawals" koanf:"total_withdrawals"`
	TotalBets        int64   `json:"totalBets" koanf:"total_bets"`
	TotalWins        int64   `json:"totalWins" koanf:"total_wins"`
	NetProfit        int64   `json:"netProfit" koanf:"net_profit"`
	AvgBetSize       int64   `json:"avgBetSize" koanf:"avg_bet_size"`
	PayoutPercentage float64 `json:"payoutPercentage" koanf:"payout_percentage"`
}

// StatisticRow compares one at-risk user metric with the population average.
type StatisticRow struct {
	Key          string  `json:"key" koanf:"key"`
	Label        string  `json:"label" koanf:"label"`
	AtRiskValue  float64 `json:"atRiskValue" koanf:"at_risk_value"`
	AverageValue float64 `json:"averageValue" koanf:"average_value"`
	Gap          float64 `json:"gap" koanf:"-"`
	Format       string  `json:"format" koanf:"format"`
}

type RiskFactor struct {
	Name        string `json:"name" koanf:"name"`
	Value       int    `json:"value" koanf:"value"`
	Description string `json:"description" koanf:"description"`
}

type AnomalyScore struct {
	Date      string    `json:"date"`
	Score     int       `json:"score"`
	RiskLevel RiskLevel `json:"riskLevel"`
}

type UserDetail struct {
	ID                string           `json:"id"`
	Username          string           `json:"username"`
	Email             string           `json:"email"`
	Age               int              `json:"age"`
	Province          string           `json:"province"`
	RegistrationDate  string           `json:"registrationDate"`
	LastLogin         string           `json:"lastLogin"`
	PreferredProducts []ProductSegment `json:"preferredProducts"`
	RiskLevel         RiskLevel        `json:"riskLevel"`
	Stats             UserStats        `json:"stats"`
	Statistics        []StatisticRow   `json:"statistics"`
	RiskFactors       []RiskFactor     `json:"riskFactors"`
	AnomalyScores     []AnomalyScore   `json:"anomalyScores"`
}
