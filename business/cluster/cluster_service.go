package cluster

import (
	"rgDashboard/business/dataset"
	"rgDashboard/domain"
	"rgDashboard/pkg/logger"
	"rgDashboard/pkg/metrics"
)

type Service struct {
	tables *dataset.Tables
}

func NewService(tables *dataset.Tables) *Service {
	return &Service{tables: tables}
}

// Clusters scales the base cluster counts for a segment. Percentages are
// rounded independently, so their sum can drift from 100 by a few points.
func (s *Service) Clusters(product domain.ProductSegment) domain.ProductClusterData {
	m := s.tables.Clusters.Multipliers.For(product)

	out := domain.ProductClusterData{
		Product:  product,
		Clusters: make([]domain.ClusterSegment, 0, len(s.tables.Clusters.Base)),
	}
	for _, c := range s.tables.Clusters.Base {
		count := int(dataset.RoundHalfUp(float64(c.BaseAtRisk) * m))
		out.TotalAtRisk += count
		out.Clusters = append(out.Clusters, domain.ClusterSegment{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			AtRiskUsers: count,
		})
	}

	if out.TotalAtRisk > 0 {
		for i := range out.Clusters {
			share := float64(out.Clusters[i].AtRiskUsers) / float64(out.TotalAtRisk) * 100
			out.Clusters[i].Percentage = int(dataset.RoundHalfUp(share))
		}
	}

	logger.Debug("generated clusters", "product", product, "total_at_risk", out.TotalAtRisk)
	metrics.GeneratedRows.WithLabelValues("clusters").Add(float64(len(out.Clusters)))

	return out
}

// Segmentation returns the windowed cluster counts. Trends are not scaled.
func (s *Service) Segmentation(product domain.ProductSegment) []domain.SegmentationCluster {
	base := s.tables.Segmentation.Base
	out := make([]domain.SegmentationCluster, len(base))
	copy(out, base)

	if product != domain.SegmentAll {
		m := s.tables.Segmentation.Multipliers.For(product)
		scale := func(c domain.CountTrend) domain.CountTrend {
			return domain.CountTrend{
				Value: int(dataset.RoundHalfUp(float64(c.Value) * m)),
				Trend: c.Trend,
			}
		}
		for i := range out {
			out[i].Counts = domain.SegmentationCounts{
				Yesterday: scale(out[i].Counts.Yesterday),
				LastWeek:  scale(out[i].Counts.LastWeek),
				LastMonth: scale(out[i].Counts.LastMonth),
			}
		}
	}

	metrics.GeneratedRows.WithLabelValues("segmentation").Add(float64(len(out)))

	return out
}
