package atrisk

import (
	"fmt"
	"math"
	"strings"

	"rgDashboard/business/dataset"
	"rgDashboard/domain"
	"rgDashboard/pkg/logger"
	"rgDashboard/pkg/metrics"
	"rgDashboard/pkg/randx"
)

type Service struct {
	tables *dataset.Tables
	rng    *randx.Rand
}

func NewService(tables *dataset.Tables, rng *randx.Rand) *Service {
	return &Service{
		tables: tables,
		rng:    rng,
	}
}

// Users generates the flagged-account table for a segment and window.
// Rows are drawn for the whole window first; the segment multiplier is then
// applied according to the configured scaling mode.
func (s *Service) Users(product domain.ProductSegment, timeRange domain.TimeRange) []domain.AtRiskUser {
	t := s.tables.AtRisk
	count := t.RowCounts.For(timeRange)
	w := timeRange.WindowMultiplier()

	users := make([]domain.AtRiskUser, 0, count)
	for i := 1; i <= count; i++ {
		users = append(users, s.row(i, w))
	}

	if product != domain.SegmentAll {
		users = applyScaling(users, t.Multipliers.For(product), t.Scaling)
	}

	logger.Debug("generated at-risk users", "product", product, "time_range", timeRange, "rows", len(users))
	metrics.GeneratedRows.WithLabelValues("at_risk_users").Add(float64(len(users)))

	return users
}

func (s *Service) row(i int, w int64) domain.AtRiskUser {
	t := s.tables.AtRisk

	bets := int64(s.rng.Range(t.Bets.Min, t.Bets.Max)) * w
	payout := s.rng.Range(t.Payout.Min, t.Payout.Max)

	return domain.AtRiskUser{
		ID:               fmt.Sprintf("user-%d", i),
		Username:         fmt.Sprintf("player%d", i),
		Cluster:          randx.Pick(s.rng, domain.ClusterTypes()),
		RiskLevel:        s.riskLevel(),
		TotalDeposit:     int64(s.rng.Range(t.Deposit.Min, t.Deposit.Max)) * w,
		TotalBets:        bets,
		GrossRevenue:     int64(dataset.RoundHalfUp(float64(bets) * float64(100-payout) / 100)),
		NetProfit:        int64(s.rng.Range(t.NetProfit.Min, t.NetProfit.Max)) * w,
		PayoutPercentage: payout,
		DaysAtRisk:       s.rng.Range(t.DaysAtRisk.Min, t.DaysAtRisk.Max),
	}
}

func (s *Service) riskLevel() domain.RiskLevel {
	w := s.tables.AtRisk.RiskWeights
	u := s.rng.Float64()
	switch {
	case u < w.High:
		return domain.RiskHigh
	case u < w.High+w.Medium:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

func applyScaling(users []domain.AtRiskUser, m float64, mode dataset.ScalingMode) []domain.AtRiskUser {
	if mode.Truncates() {
		n := int(dataset.RoundHalfUp(float64(len(users)) * m))
		if n < len(users) {
			users = users[:n]
		}
	}

	if mode.ScalesMoney() {
		scale := func(v int64) int64 { return int64(math.Floor(float64(v) * m)) }
		for i := range users {
			users[i].TotalDeposit = scale(users[i].TotalDeposit)
			users[i].TotalBets = scale(users[i].TotalBets)
			users[i].GrossRevenue = scale(users[i].GrossRevenue)
			users[i].NetProfit = scale(users[i].NetProfit)
		}
	}

	return users
}

// Detail builds the drill-down profile of one flagged account.
func (s *Service) Detail(userID string) domain.UserDetail {
	t := s.tables.UserDetail
	username := usernameFor(userID)

	statistics := make([]domain.StatisticRow, len(t.Statistics))
	for i, row := range t.Statistics {
		row.Gap = row.AtRiskValue - row.AverageValue
		statistics[i] = row
	}

	factors := make([]domain.RiskFactor, len(t.RiskFactors))
	copy(factors, t.RiskFactors)

	scores := make([]domain.AnomalyScore, 0, len(t.AnomalyScores))
	for _, a := range t.AnomalyScores {
		scores = append(scores, domain.AnomalyScore{
			Date:      a.Date,
			Score:     a.Score,
			RiskLevel: s.scoreLevel(a.Score),
		})
	}

	detail := domain.UserDetail{
		ID:                userID,
		Username:          username,
		Email:             username + "@example.com",
		Age:               s.rng.Range(t.Age.Min, t.Age.Max),
		Province:          randx.Pick(s.rng, t.Provinces),
		RegistrationDate:  t.RegistrationDate,
		LastLogin:         t.LastLogin,
		PreferredProducts: s.preferredProducts(),
		RiskLevel:         s.riskLevel(),
		Stats:             t.Stats,
		Statistics:        statistics,
		RiskFactors:       factors,
		AnomalyScores:     scores,
	}

	logger.Debug("generated user detail", "user_id", userID)
	metrics.GeneratedRows.WithLabelValues("user_detail").Inc()

	return detail
}

// preferredProducts picks 1..n distinct products.
func (s *Service) preferredProducts() []domain.ProductSegment {
	names := s.tables.UserDetail.PreferredProducts
	if len(names) == 0 {
		return []domain.ProductSegment{}
	}
	n := s.rng.Range(1, len(names))
	out := make([]domain.ProductSegment, 0, n)
	for _, idx := range s.rng.Perm(len(names))[:n] {
		out = append(out, domain.ParseProductSegment(names[idx]))
	}
	return out
}

func (s *Service) scoreLevel(score int) domain.RiskLevel {
	switch {
	case score >= s.tables.UserDetail.HighRiskScore:
		return domain.RiskHigh
	case score >= s.tables.UserDetail.MediumRiskScore:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// usernameFor maps "user-12" to "player12". Ids without the prefix are used as the suffix.
func usernameFor(userID string) string {
	suffix := strings.TrimPrefix(userID, "user-")
	return "player" + suffix
}
