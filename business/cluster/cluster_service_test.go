//go:build !integration

package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rgDashboard/business/dataset"
	"rgDashboard/domain"
)

func newTestService() (*Service, *dataset.Tables) {
	tables := dataset.DefaultTables()
	return NewService(&tables), &tables
}

func TestClustersTotalsAndPercentages(t *testing.T) {
	svc, _ := newTestService()

	segments := append([]domain.ProductSegment{domain.SegmentAll}, domain.ProductSegments()...)
	for _, p := range segments {
		data := svc.Clusters(p)
		require.Len(t, data.Clusters, 5)

		sum, pct := 0, 0
		for _, c := range data.Clusters {
			sum += c.AtRiskUsers
			pct += c.Percentage
		}
		assert.Equal(t, data.TotalAtRisk, sum, "%s", p)
		assert.LessOrEqual(t, abs(pct-100), len(data.Clusters), "%s", p)
	}
}

func TestClustersCounts(t *testing.T) {
	svc, _ := newTestService()

	all := svc.Clusters(domain.SegmentAll)
	assert.Equal(t, 144, all.Clusters[0].AtRiskUsers)
	assert.Equal(t, 492, all.TotalAtRisk)

	casino := svc.Clusters(domain.SegmentCasino)
	assert.Equal(t, 410, casino.TotalAtRisk)
	assert.Equal(t, "high-frequency", casino.Clusters[0].ID)
	assert.Equal(t, 29, casino.Clusters[0].Percentage)

	// Virtual has no cluster multiplier and falls back to the default
	assert.Equal(t, casino.TotalAtRisk, svc.Clusters(domain.SegmentVirtual).TotalAtRisk)
}

func TestClustersZeroTotal(t *testing.T) {
	svc, tables := newTestService()
	for i := range tables.Clusters.Base {
		tables.Clusters.Base[i].BaseAtRisk = 0
	}

	data := svc.Clusters(domain.SegmentAll)
	assert.Equal(t, 0, data.TotalAtRisk)
	for _, c := range data.Clusters {
		assert.Equal(t, 0, c.Percentage)
	}
}

func TestSegmentation(t *testing.T) {
	svc, tables := newTestService()

	assert.Equal(t, tables.Segmentation.Base, svc.Segmentation(domain.SegmentAll))

	casino := svc.Segmentation(domain.SegmentCasino)
	require.Len(t, casino, 5)
	// 12 * 0.8
	assert.Equal(t, 10, casino[0].Counts.Yesterday.Value)
	assert.Equal(t, 8.0, casino[0].Counts.Yesterday.Trend)
	// 45 * 0.8
	assert.Equal(t, 36, casino[0].Counts.LastMonth.Value)

	others := svc.Segmentation(domain.SegmentOthers)
	// 30 * 0.1
	assert.Equal(t, 3, others[0].Counts.LastWeek.Value)

	// the base table is left untouched
	assert.Equal(t, 12, tables.Segmentation.Base[0].Counts.Yesterday.Value)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
