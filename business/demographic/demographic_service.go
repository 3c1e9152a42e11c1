package demographic

import (
	"rgDashboard/business/dataset"
	"rgDashboard/domain"
	"rgDashboard/pkg/metrics"
)

type Service struct {
	tables *dataset.Tables
}

func NewService(tables *dataset.Tables) *Service {
	return &Service{tables: tables}
}

// Demographics returns the breakdown for a window. Counts are scaled by the
// segment share; percentages, ages and coordinates are kept as-is.
func (s *Service) Demographics(filter domain.TimeFilter, product domain.ProductSegment) domain.DemographicData {
	base, ok := s.tables.Demographics.Base[string(filter)]
	if !ok {
		base = s.tables.Demographics.Base[string(domain.FilterYesterday)]
	}

	m := 1.0
	if product != domain.SegmentAll {
		m = s.tables.Demographics.Multipliers.For(product)
	}
	scale := func(v int) int { return int(dataset.RoundHalfUp(float64(v) * m)) }

	out := base
	out.NewAtRiskUsers = scale(base.NewAtRiskUsers)
	out.GenderDistribution.Male = scale(base.GenderDistribution.Male)
	out.GenderDistribution.Female = scale(base.GenderDistribution.Female)

	out.AgeGroups = make([]domain.AgeGroupData, len(base.AgeGroups))
	for i, g := range base.AgeGroups {
		g.Count = scale(g.Count)
		out.AgeGroups[i] = g
	}

	out.Regions = make([]domain.RegionData, len(base.Regions))
	for i, r := range base.Regions {
		r.Count = scale(r.Count)
		out.Regions[i] = r
	}

	metrics.GeneratedRows.WithLabelValues("demographics").Add(float64(len(out.Regions)))

	return out
}
