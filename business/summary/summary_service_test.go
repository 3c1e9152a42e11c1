//go:build !integration

package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rgDashboard/business/dataset"
	"rgDashboard/domain"
	"rgDashboard/pkg/randx"
)

// a Friday
var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func newTestService(seed int64) *Service {
	tables := dataset.DefaultTables()
	return NewService(&tables, randx.New(seed), func() time.Time { return fixedNow })
}

func TestDistribution(t *testing.T) {
	svc := newTestService(1)

	week := svc.Distribution(domain.RangeWeek)
	require.Len(t, week, 6)
	assert.Equal(t, domain.CategoryData{Name: "Casino", ActiveUsers: 1120, AtRiskUsers: 28, Percentage: 40}, week[0])
	assert.Equal(t, domain.CategoryData{Name: "Others", ActiveUsers: 196, AtRiskUsers: 5, Percentage: 7}, week[5])

	// windows without a population use the daily one
	assert.Equal(t, svc.Distribution(domain.RangeDay), svc.Distribution(domain.RangeYear))
}

func TestAtRiskTrend(t *testing.T) {
	points := newTestService(2).AtRiskTrend()
	require.Len(t, points, 30)

	assert.Equal(t, "Feb 14", points[0].Date)
	assert.Equal(t, "Mar 13", points[28].Date)
	assert.Equal(t, "Mar 14", points[29].Date)
	assert.Equal(t, 30.0, points[29].Value)

	prev := 35.0
	for _, p := range points[:29] {
		assert.GreaterOrEqual(t, p.Value, 25.0)
		assert.LessOrEqual(t, p.Value, 45.0)
		// one rounded step of at most 2 from the previous value
		assert.LessOrEqual(t, p.Value-prev, 3.0)
		assert.GreaterOrEqual(t, p.Value-prev, -3.0)
		prev = p.Value
	}
}

func TestBusinessKPIs(t *testing.T) {
	svc := newTestService(1)

	day := svc.BusinessKPIs(domain.RangeDay, "")
	assert.Equal(t, 1000000.0, day.GGT)
	assert.Equal(t, 1000.0, day.MedianGGT)
	assert.Equal(t, 28.7, day.WinRatio)

	week := svc.BusinessKPIs(domain.RangeWeek, "Casino")
	assert.Equal(t, 5600000.0, week.GGT)
	assert.Equal(t, 2000.0, week.MedianDeposit)

	month := svc.BusinessKPIs(domain.RangeMonth, "")
	year := svc.BusinessKPIs(domain.RangeYear, "")
	assert.Equal(t, month, year)
	assert.Equal(t, 10500000.0, month.NetProfit)
}

func TestBusinessTrend(t *testing.T) {
	svc := newTestService(3)

	daily := svc.BusinessTrend("ggr", domain.RangeDay, "")
	require.Len(t, daily, 15)
	assert.Equal(t, "Mar 1", daily[0].Date)
	assert.Equal(t, "Mar 15", daily[14].Date)
	for _, p := range daily {
		assert.GreaterOrEqual(t, p.Value, 450000*0.8)
		assert.LessOrEqual(t, p.Value, 450000*1.2)
	}

	weekly := svc.BusinessTrend("ggt", domain.RangeWeek, "")
	require.Len(t, weekly, 10)
	// Mar 15 2024 is a Friday: ceil((15+5)/7) = 3
	assert.Equal(t, "W3, 2024", weekly[9].Date)

	monthly := svc.BusinessTrend("unknown", domain.RangeMonth, "Sport")
	require.Len(t, monthly, 3)
	assert.Equal(t, "Mar 2024", monthly[2].Date)
	for _, p := range monthly {
		// unknown fields fall back to the turnover, reduced for a category
		assert.GreaterOrEqual(t, p.Value, 800000*0.8)
		assert.LessOrEqual(t, p.Value, 800000*1.2)
	}
}
