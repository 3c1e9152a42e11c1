package domain

type CategoryData struct {
	Name        string `json:"name"`
	ActiveUsers int    `json:"activeUsers"`
	AtRiskUsers int    `json:"atRiskUsers"`
	Percentage  int    `json:"percentage"`
}

type BusinessKPI struct {
	GGT             float64 `json:"ggt" koanf:"ggt"`
	MedianGGT       float64 `json:"medianGgt" koanf:"median_ggt"`
	TotalDeposit    float64 `json:"totalDeposit" koanf:"total_deposit"`
	MedianDeposit   float64 `json:"medianDeposit" koanf:"median_deposit"`
	GGR             float64 `json:"ggr" koanf:"ggr"`
	MedianGGR       float64 `json:"medianGgr" koanf:"median_ggr"`
	TotalPayout     float64 `json:"totalPayout" koanf:"total_payout"`
	MedianPayout    float64 `json:"medianPayout" koanf:"median_payout"`
	NetProfit       float64 `json:"netProfit" koanf:"net_profit"`
	MedianNetProfit float64 `json:"medianNetProfit" koanf:"median_net_profit"`
	WinRatio        float64 `json:"winRatio" koanf:"win_ratio"`
	MedianWinRatio  float64 `json:"medianWinRatio" koanf:"median_win_ratio"`
}

// Get returns the named field; unknown names return the turnover.
func (k BusinessKPI) Get(name string) float64 {
	switch name {
	case "medianGgt":
		return k.MedianGGT
	case "totalDeposit":
		return k.TotalDeposit
	case "medianDeposit":
		return k.MedianDeposit
	case "ggr":
		return k.GGR
	case "medianGgr":
		return k.MedianGGR
	case "totalPayout":
		return k.TotalPayout
	case "medianPayout":
		return k.MedianPayout
	case "netProfit":
		return k.NetProfit
	case "medianNetProfit":
		return k.MedianNetProfit
	case "winRatio":
		return k.WinRatio
	case "medianWinRatio":
		return k.MedianWinRatio
	default:
		return k.GGT
	}
}

type GenderDistribution struct {
	Male             int `json:"male" koanf:"male"`
	Female           int `json:"female" koanf:"female"`
	MalePercentage   int `json:"malePercentage" koanf:"male_percentage"`
	FemalePercentage int `json:"femalePercentage" koanf:"female_percentage"`
}

type AgeGroupData struct {
	Group      string `json:"group" koanf:"group"`
	Count      int    `json:"count" koanf:"count"`
	Percentage int    `json:"percentage" koanf:"percentage"`
}

type Coordinates struct {
	X float64 `json:"x" koanf:"x"`
	Y float64 `json:"y" koanf:"y"`
}

type RegionData struct {
	Region      string      `json:"region" koanf:"region"`
	Count       int         `json:"count" koanf:"count"`
	Percentage  int         `json:"percentage" koanf:"percentage"`
	Coordinates Coordinates `json:"coordinates" koanf:"coordinates"`
}

type DemographicData struct {
	NewAtRiskUsers     int                `json:"newAtRiskUsers" koanf:"new_at_risk_users"`
	AverageAge         float64            `json:"averageAge" koanf:"average_age"`
	AgeComparison      float64            `json:"ageComparison" koanf:"age_comparison"`
	GenderDistribution GenderDistribution `json:"genderDistribution" koanf:"gender_distribution"`
	AgeGroups          []AgeGroupData     `json:"ageGroups" koanf:"age_groups"`
	Regions            []RegionData       `json:"regions" koanf:"regions"`
}
