package kpi

import (
	"time"

	"rgDashboard/business/dataset"
	"rgDashboard/domain"
	"rgDashboard/pkg/logger"
	"rgDashboard/pkg/metrics"
	"rgDashboard/pkg/randx"
)

// DateLabel is the short chart label used on trend points.
const DateLabel = "Jan 2"

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

// Snapshot returns the KPI table for a product segment. Deltas and the
// win ratio are never scaled.
func (s *Service) Snapshot(product domain.ProductSegment) domain.KPISnapshot {
	snap := domain.KPISnapshot{
		Product: product,
		Metrics: make(map[domain.KPIMetric]domain.KPIValue, len(domain.KPIMetrics())),
	}

	m := s.multiplier(product)
	for _, metric := range domain.KPIMetrics() {
		base := s.tables.KPI.BaseFor(metric)
		if product == domain.SegmentAll || metric.IsPercentage() {
			snap.Metrics[metric] = base
			continue
		}
		snap.Metrics[metric] = scaleValue(base, m)
	}

	return snap
}

func (s *Service) multiplier(product domain.ProductSegment) float64 {
	if product == domain.SegmentAll {
		return 1
	}
	return s.tables.KPI.Multipliers.For(product)
}

func scaleValue(v domain.KPIValue, m float64) domain.KPIValue {
	scale := func(x float64) float64 { return dataset.RoundHalfUp(x * m) }
	window := func(w domain.KPIWindow) domain.KPIWindow {
		return domain.KPIWindow{ActiveUsers: scale(w.ActiveUsers), AtRiskUsers: scale(w.AtRiskUsers)}
	}
	return domain.KPIValue{
		ActiveUsers: scale(v.ActiveUsers),
		AtRiskUsers: scale(v.AtRiskUsers),
		ActiveDelta: v.ActiveDelta,
		RiskDelta:   v.RiskDelta,
		LastWeek:    window(v.LastWeek),
		LastMonth:   window(v.LastMonth),
		LastYear:    window(v.LastYear),
	}
}

// Trend builds the daily series ending yesterday. The total view ends on the
// snapshot values; the per-user view is jitter around the medians.
func (s *Service) Trend(metric domain.KPIMetric, product domain.ProductSegment, perUser bool) domain.TrendSeries {
	days := s.tables.KPI.TrendDays
	if days < 1 {
		days = 1
	}

	var points []domain.TrendPoint
	if perUser {
		points = s.perUserPoints(metric, product, days)
	} else {
		points = s.totalPoints(metric, product, days)
	}

	today := s.now()
	for i := range points {
		points[i].Date = today.AddDate(0, 0, -(days - i)).Format(DateLabel)
		points[i].AtRiskUsers = s.rng.Range(s.tables.KPI.ContextUsers.Min, s.tables.KPI.ContextUsers.Max)
	}

	logger.Debug("generated kpi trend", "metric", metric, "product", product, "per_user", perUser, "points", len(points))
	metrics.GeneratedRows.WithLabelValues("kpi_trend").Add(float64(len(points)))

	return domain.TrendSeries{
		Metric:  metric,
		Product: product,
		PerUser: perUser,
		Points:  points,
	}
}

func (s *Service) totalPoints(metric domain.KPIMetric, product domain.ProductSegment, days int) []domain.TrendPoint {
	t := s.tables.KPI
	points := make([]domain.TrendPoint, days)
	history := days - 1

	if metric.IsPercentage() {
		for i := 0; i < history; i++ {
			spread := t.WinRatioSpread
			points[i].Value = dataset.Round1(t.WinRatioAtRisk + s.rng.Uniform(-spread, spread))
			points[i].ActiveTotal = dataset.Round1(t.WinRatioActive + s.rng.Uniform(-spread, spread))
		}
	} else {
		monthly := t.MonthlyTotals[string(metric)] * s.multiplier(product)
		daily := monthly / float64(history)
		sum := 0.0
		for i := 0; i < history; i++ {
			var v float64
			if i == history-1 {
				// the last historical day absorbs the rounding remainder
				v = dataset.RoundHalfUp(monthly - sum)
			} else {
				v = dataset.RoundHalfUp(daily * (1 + s.rng.Uniform(-t.DailyJitter, t.DailyJitter)))
			}
			sum += v
			points[i].Value = v
			points[i].ActiveTotal = dataset.RoundHalfUp(v * t.ActiveRatio)
		}
	}

	latest := s.Snapshot(product).Get(metric)
	points[days-1].Value = latest.AtRiskUsers
	points[days-1].ActiveTotal = latest.ActiveUsers

	return points
}

func (s *Service) perUserPoints(metric domain.KPIMetric, product domain.ProductSegment, days int) []domain.TrendPoint {
	t := s.tables.KPI
	median := t.Medians[string(metric)]
	m := 1.0
	if !metric.IsPercentage() {
		m = s.multiplier(product)
	}

	points := make([]domain.TrendPoint, days)
	for i := range points {
		points[i].Value = dataset.RoundHalfUp(median.AtRisk * m * (1 + s.rng.Uniform(-t.PerUserJitter, t.PerUserJitter)))
		points[i].ActiveTotal = dataset.RoundHalfUp(median.Active * m * (1 + s.rng.Uniform(-t.PerUserJitter, t.PerUserJitter)))
	}
	return points
}
