package summary

import (
	"fmt"
	"math"
	"time"

	"rgDashboard/business/dataset"
	"rgDashboard/domain"
	"rgDashboard/pkg/logger"
	"rgDashboard/pkg/metrics"
	"rgDashboard/pkg/randx"
)

const (
	dayLabel   = "Jan 2"
	monthLabel = "Jan 2006"
	walkPoints = 30
)

// Service produces the business summary page: product distribution, the
// at-risk population trend and the windowed business KPIs.
type Service struct {
	tables *dataset.Tables
	rng    *randx.Rand
	now    func() time.Time
}

func NewService(tables *dataset.Tables, rng *randx.Rand, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		tables: tables,
		rng:    rng,
		now:    now,
	}
}

// Distribution splits the window population across products by share.
func (s *Service) Distribution(timeRange domain.TimeRange) []domain.CategoryData {
	pop := s.tables.Summary.PopulationFor(timeRange)

	out := make([]domain.CategoryData, 0, len(s.tables.Summary.Shares))
	for _, sh := range s.tables.Summary.Shares {
		out = append(out, domain.CategoryData{
			Name:        sh.Name,
			ActiveUsers: int(dataset.RoundHalfUp(float64(pop.Total) * sh.Share)),
			AtRiskUsers: int(dataset.RoundHalfUp(float64(pop.AtRisk) * sh.Share)),
			Percentage:  int(dataset.RoundHalfUp(sh.Share * 100)),
		})
	}
	return out
}

// AtRiskTrend is a bounded random walk over the last month that always
// lands on the fixed value for yesterday. Dates run from 30 days ago to
// yesterday, one point per day.
func (s *Service) AtRiskTrend() []domain.ValuePoint {
	walk := s.tables.Summary.AtRiskWalk
	today := s.now()

	points := make([]domain.ValuePoint, 0, walkPoints)
	current := walk.Start
	for i := walkPoints; i > 1; i-- {
		next := current + s.rng.Uniform(-walk.MaxStep, walk.MaxStep)
		current = dataset.RoundHalfUp(math.Max(walk.Min, math.Min(walk.Max, next)))
		points = append(points, domain.ValuePoint{
			Date:  today.AddDate(0, 0, -i).Format(dayLabel),
			Value: current,
		})
	}
	points = append(points, domain.ValuePoint{
		Date:  today.AddDate(0, 0, -1).Format(dayLabel),
		Value: walk.Final,
	})

	metrics.GeneratedRows.WithLabelValues("at_risk_trend").Add(float64(len(points)))

	return points
}

// BusinessKPIs scales the daily totals by the window length. A non-empty
// category reduces the totals by the category factor.
func (s *Service) BusinessKPIs(timeRange domain.TimeRange, category string) domain.BusinessKPI {
	t := s.tables.Summary
	m := float64(timeRange.WindowMultiplier())
	if category != "" {
		m *= t.CategoryFactor
	}

	k := t.DailyKPI
	scale := func(v float64) float64 { return dataset.RoundHalfUp(v * m) }
	k.GGT = scale(k.GGT)
	k.TotalDeposit = scale(k.TotalDeposit)
	k.GGR = scale(k.GGR)
	k.TotalPayout = scale(k.TotalPayout)
	k.NetProfit = scale(k.NetProfit)
	return k
}

// BusinessTrend samples the daily value of a KPI field around its base, one
// point per day, week or month depending on the window.
func (s *Service) BusinessTrend(metric string, timeRange domain.TimeRange, category string) []domain.ValuePoint {
	t := s.tables.Summary
	base := s.BusinessKPIs(domain.RangeDay, category).Get(metric)
	periods, offset := s.periods(timeRange)
	today := s.now()

	points := make([]domain.ValuePoint, 0, periods)
	for i := periods - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i*offset)
		points = append(points, domain.ValuePoint{
			Date:  periodLabel(date, timeRange),
			Value: dataset.RoundHalfUp(base * s.rng.Uniform(t.TrendJitterLow, t.TrendJitterHigh)),
		})
	}

	logger.Debug("generated business trend", "metric", metric, "time_range", timeRange, "points", len(points))
	metrics.GeneratedRows.WithLabelValues("business_trend").Add(float64(len(points)))

	return points
}

func (s *Service) periods(timeRange domain.TimeRange) (int, int) {
	p := s.tables.Summary.TrendPeriods
	switch timeRange {
	case domain.RangeDay:
		return p.Day, 1
	case domain.RangeWeek:
		return p.Week, 7
	default:
		return p.Month, 30
	}
}

func periodLabel(date time.Time, timeRange domain.TimeRange) string {
	switch timeRange {
	case domain.RangeDay:
		return date.Format(dayLabel)
	case domain.RangeWeek:
		week := int(math.Ceil(float64(date.Day()+int(date.Weekday())) / 7))
		return fmt.Sprintf("W%d, %d", week, date.Year())
	default:
		return date.Format(monthLabel)
	}
}
