package dataset

import "rgDashboard/domain"

const (
	defaultActiveRatio    = 4.0
	defaultDailyJitter    = 0.1
	defaultPerUserJitter  = 0.05
	defaultTrendDays      = 30
	defaultWinRatioActive = 85.0
	defaultWinRatioSpread = 1.5
	defaultPoolSize       = 50
	defaultRowCount       = 30
)

// kpiShares is the product share of the business, reused by the KPI and
// demographic views.
var kpiShares = SegmentMultipliers{
	All:     1,
	Casino:  0.35,
	Sport:   0.20,
	Poker:   0.15,
	Virtual: 0.10,
	Skill:   0.08,
	Others:  0.12,
	Default: 1,
}

func DefaultTables() Tables {
	return Tables{
		KPI:          defaultKPI(),
		Clusters:     defaultClusters(),
		Segmentation: defaultSegmentation(),
		AtRisk:       defaultAtRisk(),
		Summary:      defaultSummary(),
		Demographics: defaultDemographics(),
		AuditLog:     defaultAuditLog(),
		UserDetail:   defaultUserDetail(),
	}
}

func kpiValue(active, atRisk, aDelta, rDelta float64, week, month, year [2]float64) domain.KPIValue {
	return domain.KPIValue{
		ActiveUsers: active,
		AtRiskUsers: atRisk,
		ActiveDelta: aDelta,
		RiskDelta:   rDelta,
		LastWeek:    domain.KPIWindow{ActiveUsers: week[0], AtRiskUsers: week[1]},
		LastMonth:   domain.KPIWindow{ActiveUsers: month[0], AtRiskUsers: month[1]},
		LastYear:    domain.KPIWindow{ActiveUsers: year[0], AtRiskUsers: year[1]},
	}
}

func defaultKPI() KPITables {
	return KPITables{
		Base: map[string]domain.KPIValue{
			string(domain.MetricGGT):          kpiValue(40000, 5000, 2, -4, [2]float64{100000, 30000}, [2]float64{750000, 180000}, [2]float64{1100000, 400000}),
			string(domain.MetricGGR):          kpiValue(20000, 2000, 1.5, -2, [2]float64{60000, 12000}, [2]float64{500000, 100000}, [2]float64{850000, 250000}),
			string(domain.MetricNetProfit):    kpiValue(15000, 1500, 3, -1, [2]float64{45000, 9000}, [2]float64{350000, 75000}, [2]float64{650000, 180000}),
			string(domain.MetricTotalDeposit): kpiValue(50000, 8000, -1, 2, [2]float64{150000, 40000}, [2]float64{900000, 220000}, [2]float64{1500000, 450000}),
			string(domain.MetricTotalPayout):  kpiValue(35000, 6500, -2, 1, [2]float64{105000, 31000}, [2]float64{650000, 150000}, [2]float64{950000, 350000}),
			string(domain.MetricWinRatio):     kpiValue(89, 92, 4, -3, [2]float64{91, 93}, [2]float64{87, 90}, [2]float64{90, 91}),
		},
		Multipliers: kpiShares,
		// at-risk monthly totals excluding the most recent day
		MonthlyTotals: map[string]float64{
			string(domain.MetricGGT):          175000,
			string(domain.MetricGGR):          98000,
			string(domain.MetricNetProfit):    73500,
			string(domain.MetricTotalDeposit): 212000,
			string(domain.MetricTotalPayout):  143500,
			string(domain.MetricWinRatio):     90,
		},
		Medians: map[string]Median{
			string(domain.MetricGGT):          {Active: 120, AtRisk: 144},
			string(domain.MetricGGR):          {Active: 60, AtRisk: 75},
			string(domain.MetricNetProfit):    {Active: 45, AtRisk: 56},
			string(domain.MetricTotalDeposit): {Active: 100, AtRisk: 120},
			string(domain.MetricTotalPayout):  {Active: 20, AtRisk: 25},
			string(domain.MetricWinRatio):     {Active: 89, AtRisk: 93},
		},
		WinRatioAtRisk: 90,
		WinRatioActive: defaultWinRatioActive,
		WinRatioSpread: defaultWinRatioSpread,
		ActiveRatio:    defaultActiveRatio,
		DailyJitter:    defaultDailyJitter,
		PerUserJitter:  defaultPerUserJitter,
		TrendDays:      defaultTrendDays,
		ContextUsers:   IntRange{Min: 30, Max: 50},
	}
}

func defaultClusters() ClusterTables {
	return ClusterTables{
		Base: []ClusterBase{
			{ID: "high-frequency", Name: "High Frequency Players", Description: "Users who play frequently with consistent high activity patterns", BaseAtRisk: 120},
			{ID: "high-stakes", Name: "High Stakes Players", Description: "Users placing large bets with significant financial exposure", BaseAtRisk: 85},
			{ID: "chase-losses", Name: "Loss Chasers", Description: "Users showing patterns of increasing bets after losses", BaseAtRisk: 95},
			{ID: "night-players", Name: "Night Time Players", Description: "Users predominantly active during late night hours", BaseAtRisk: 65},
			{ID: "erratic", Name: "Erratic Behavior", Description: "Users with unpredictable playing patterns and sudden changes", BaseAtRisk: 45},
		},
		// Virtual and Skill have no entry and use Default
		Multipliers: SegmentMultipliers{
			All:     1.2,
			Casino:  1,
			Sport:   0.8,
			Poker:   0.6,
			Others:  0.3,
			Default: 1,
		},
	}
}

func segmentation(name, desc string, y, yt, w, wt, m, mt int) domain.SegmentationCluster {
	return domain.SegmentationCluster{
		Name:        name,
		Description: desc,
		Counts: domain.SegmentationCounts{
			Yesterday: domain.CountTrend{Value: y, Trend: float64(yt)},
			LastWeek:  domain.CountTrend{Value: w, Trend: float64(wt)},
			LastMonth: domain.CountTrend{Value: m, Trend: float64(mt)},
		},
	}
}

func defaultSegmentation() SegmentationTables {
	return SegmentationTables{
		Base: []domain.SegmentationCluster{
			segmentation("High Frequency Players", "Users who play frequently with consistent high activity patterns", 12, 8, 30, -5, 45, 12),
			segmentation("High Stakes Players", "Users placing large bets with significant financial exposure", 8, -3, 20, 7, 30, -2),
			segmentation("Loss Chasers", "Users showing patterns of increasing bets after losses", 6, 15, 10, -8, 15, 4),
			segmentation("Night Time Players", "Users predominantly active during late-night hours", 4, -6, 8, 10, 10, -5),
			segmentation("Erratic Behavior", "Users with unpredictable playing patterns and sudden changes", 2, 12, 6, -4, 5, 8),
		},
		Multipliers: SegmentMultipliers{
			All:     1,
			Casino:  0.8,
			Sport:   0.6,
			Poker:   0.4,
			Virtual: 0.3,
			Skill:   0.2,
			Others:  0.1,
			Default: 1,
		},
	}
}

func defaultAtRisk() AtRiskTables {
	return AtRiskTables{
		RowCounts: RowCounts{Day: 30, Week: 70, Month: 105, Default: defaultRowCount},
		Multipliers: SegmentMultipliers{
			All:     1,
			Casino:  0.8,
			Sport:   0.7,
			Poker:   0.6,
			Others:  0.4,
			Default: 1,
		},
		Scaling:     ScaleBoth,
		RiskWeights: RiskWeights{High: 0.20, Medium: 0.35, Low: 0.45},
		Deposit:     IntRange{Min: 1000, Max: 50999},
		Bets:        IntRange{Min: 100, Max: 1099},
		NetProfit:   IntRange{Min: -10000, Max: 9999},
		Payout:      IntRange{Min: 60, Max: 99},
		DaysAtRisk:  IntRange{Min: 1, Max: 30},
	}
}

func defaultSummary() SummaryTables {
	return SummaryTables{
		Populations: map[string]Population{
			string(domain.RangeDay):   {Total: 1500, AtRisk: 30},
			string(domain.RangeWeek):  {Total: 2800, AtRisk: 70},
			string(domain.RangeMonth): {Total: 4500, AtRisk: 105},
		},
		Shares: []Share{
			{Name: "Casino", Share: 0.40},
			{Name: "Sport", Share: 0.20},
			{Name: "Poker", Share: 0.15},
			{Name: "Virtual", Share: 0.10},
			{Name: "Skill", Share: 0.08},
			{Name: "Others", Share: 0.07},
		},
		DailyKPI: domain.BusinessKPI{
			GGT:             1000000,
			MedianGGT:       1000,
			TotalDeposit:    2000000,
			MedianDeposit:   2000,
			GGR:             450000,
			MedianGGR:       450,
			TotalPayout:     1500000,
			MedianPayout:    800,
			NetProfit:       350000,
			MedianNetProfit: 350,
			WinRatio:        28.7,
			MedianWinRatio:  28.7,
		},
		CategoryFactor:  0.8,
		AtRiskWalk:      RandomWalk{Start: 35, MaxStep: 2, Min: 25, Max: 45, Final: 30},
		TrendPeriods:    TrendPeriods{Day: 15, Week: 10, Month: 3},
		TrendJitterLow:  0.8,
		TrendJitterHigh: 1.2,
	}
}

var italyCoordinates = map[string]domain.Coordinates{
	"Lombardy":       {X: 45.4773, Y: 9.1815},
	"Lazio":          {X: 41.9028, Y: 12.4964},
	"Campania":       {X: 40.8522, Y: 14.2681},
	"Sicily":         {X: 37.5990, Y: 14.0154},
	"Veneto":         {X: 45.4371, Y: 12.3326},
	"Tuscany":        {X: 43.7696, Y: 11.2558},
	"Emilia-Romagna": {X: 44.4949, Y: 11.3426},
	"Sardinia":       {X: 40.1209, Y: 9.0129},
}

func regions(scale int) []domain.RegionData {
	base := []struct {
		name  string
		count int
		pct   int
	}{
		{"Lombardy", 150, 25},
		{"Lazio", 90, 15},
		{"Campania", 72, 12},
		{"Sicily", 60, 10},
		{"Veneto", 48, 8},
		{"Tuscany", 48, 8},
		{"Emilia-Romagna", 72, 12},
		{"Sardinia", 60, 10},
	}
	out := make([]domain.RegionData, 0, len(base))
	for _, r := range base {
		out = append(out, domain.RegionData{
			Region:      r.name,
			Count:       r.count * scale,
			Percentage:  r.pct,
			Coordinates: italyCoordinates[r.name],
		})
	}
	return out
}

func ageGroups(a, b, c, d int) []domain.AgeGroupData {
	return []domain.AgeGroupData{
		{Group: "18-25", Count: a, Percentage: 20},
		{Group: "26-40", Count: b, Percentage: 40},
		{Group: "41-60", Count: c, Percentage: 30},
		{Group: "60+", Count: d, Percentage: 10},
	}
}

func defaultDemographics() DemographicTables {
	return DemographicTables{
		Base: map[string]domain.DemographicData{
			string(domain.FilterYesterday): {
				NewAtRiskUsers:     25,
				AverageAge:         37.5,
				AgeComparison:      0.5,
				GenderDistribution: domain.GenderDistribution{Male: 60, Female: 40, MalePercentage: 60, FemalePercentage: 40},
				AgeGroups:          ageGroups(20, 40, 30, 10),
				Regions:            regions(1),
			},
			string(domain.FilterWeek): {
				NewAtRiskUsers:     150,
				AverageAge:         36.8,
				AgeComparison:      -0.2,
				GenderDistribution: domain.GenderDistribution{Male: 420, Female: 180, MalePercentage: 70, FemalePercentage: 30},
				AgeGroups:          ageGroups(120, 240, 180, 60),
				Regions:            regions(1),
			},
			string(domain.FilterMonth): {
				NewAtRiskUsers:     600,
				AverageAge:         38.2,
				AgeComparison:      1.2,
				GenderDistribution: domain.GenderDistribution{Male: 1800, Female: 1200, MalePercentage: 60, FemalePercentage: 40},
				AgeGroups:          ageGroups(600, 1200, 900, 300),
				Regions:            regions(5),
			},
		},
		Multipliers: kpiShares,
	}
}

var italianProvinces = []string{
	"Milano", "Roma", "Napoli", "Torino", "Palermo",
	"Genova", "Bologna", "Firenze", "Bari", "Catania",
}

func defaultAuditLog() AuditLogTables {
	return AuditLogTables{
		PoolSize: defaultPoolSize,
		Products: []string{"Casino", "Sport", "Poker", "Others"},
		Reasons: []string{
			"Excessive gambling time",
			"Large losses in short period",
			"Frequent deposits",
			"Erratic betting patterns",
			"Multiple self-exclusion attempts",
		},
		Actions: []string{
			"Flagged by risk model",
			"Responsible gaming email sent",
			"Deposit limit applied",
			"Cool-off period offered",
			"Account temporarily suspended",
			"Welfare call scheduled",
			"No action required",
		},
		Statuses:  []string{"Open", "Under Review", "Escalated", "Resolved"},
		Operators: []string{"System", "m.rossi", "g.bianchi", "l.conti", "s.ricci"},
		NoteTexts: []string{
			"Player contacted by phone, acknowledged spending concerns.",
			"Deposit pattern reviewed; limit suggested.",
			"No response to responsible gaming email, follow up next week.",
			"Player requested self-exclusion information.",
			"Activity back to normal after cool-off period.",
		},
		Provinces:        italianProvinces,
		Reports:          IntRange{Min: 1, Max: 5},
		WindowDays:       IntRange{Min: 14, Max: 30},
		TimelineEntries:  IntRange{Min: 2, Max: 6},
		Notes:            IntRange{Min: 0, Max: 3},
		Age:              IntRange{Min: 18, Max: 64},
		RegistrationDate: "2023-09-15",
		LastLogin:        "2024-03-14 15:30",
	}
}

func defaultUserDetail() UserDetailTables {
	return UserDetailTables{
		Provinces:         italianProvinces,
		PreferredProducts: []string{"Casino", "Sport", "Poker"},
		Stats: domain.UserStats{
			TotalDeposits:    150000,
			TotalWithdrawals: 120000,
			TotalBets:        450000,
			TotalWins:        430000,
			NetProfit:        -20000,
			AvgBetSize:       500,
			PayoutPercentage: 95.5,
		},
		Statistics: []domain.StatisticRow{
			{Key: "ggt", Label: "GGT", AtRiskValue: 800, AverageValue: 400, Format: "currency"},
			{Key: "ggr", Label: "GGR", AtRiskValue: 300, AverageValue: 150, Format: "currency"},
			{Key: "netProfit", Label: "Net Profit", AtRiskValue: -50, AverageValue: 20, Format: "currency"},
			{Key: "totalDeposit", Label: "Total Deposit", AtRiskValue: 900, AverageValue: 200, Format: "currency"},
			{Key: "totalPayout", Label: "Total Pay-out", AtRiskValue: 600, AverageValue: 150, Format: "currency"},
			{Key: "winRatio", Label: "Win-Ratio", AtRiskValue: 94, AverageValue: 88, Format: "percentage"},
			{Key: "daysAtRisk", Label: "Days At Risk", AtRiskValue: 10, AverageValue: 4, Format: "count"},
			{Key: "netLoss", Label: "Net Loss", AtRiskValue: 300, AverageValue: 100, Format: "currency"},
			{Key: "timeSpent", Label: "Time Spent Gambling", AtRiskValue: 20, AverageValue: 8, Format: "hours"},
			{Key: "depositFreq", Label: "Deposit Frequency", AtRiskValue: 15, AverageValue: 5, Format: "count"},
		},
		RiskFactors: []domain.RiskFactor{
			{Name: "Time Spent Gambling", Value: 40, Description: "Percentage of total time spent on gambling activities"},
			{Name: "Net Losses", Value: 30, Description: "Total losses compared to the amount deposited"},
			{Name: "Deposit Frequency", Value: 20, Description: "Number of deposits made during the selected period"},
			{Name: "Others", Value: 10, Description: "Other contributing factors"},
		},
		AnomalyScores: []AnomalyBase{
			{Date: "Mar 1", Score: 42}, {Date: "Mar 2", Score: 50}, {Date: "Mar 3", Score: 55},
			{Date: "Mar 4", Score: 62}, {Date: "Mar 5", Score: 72}, {Date: "Mar 6", Score: 80},
			{Date: "Mar 7", Score: 85}, {Date: "Mar 8", Score: 78}, {Date: "Mar 9", Score: 68},
			{Date: "Mar 10", Score: 59}, {Date: "Mar 11", Score: 49}, {Date: "Mar 12", Score: 45},
			{Date: "Mar 13", Score: 60}, {Date: "Mar 14", Score: 65},
		},
		HighRiskScore:    70,
		MediumRiskScore:  50,
		Age:              IntRange{Min: 18, Max: 64},
		RegistrationDate: "2023-09-15",
		LastLogin:        "2024-03-14 15:30",
	}
}
