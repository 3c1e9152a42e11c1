//go:build !integration

package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rgDashboard/domain"
)

func TestAtRiskUsersCSV(t *testing.T) {
	users := []domain.AtRiskUser{
		{
			ID:               "user-1",
			Username:         "player1",
			Cluster:          domain.ClusterHighValue,
			RiskLevel:        domain.RiskHigh,
			TotalDeposit:     12345,
			TotalBets:        999,
			GrossRevenue:     150,
			NetProfit:        -10000,
			PayoutPercentage: 85,
			DaysAtRisk:       4,
		},
		{ID: "user-2", Username: "player2", Cluster: domain.ClusterNew, RiskLevel: domain.RiskLow},
	}

	var buf bytes.Buffer
	require.NoError(t, AtRiskUsersCSV(&buf, users))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Username,Cluster,Risk Level,Total Deposit,Total Bets,Gross Revenue,Net Profit,Payout (%),Days At Risk", lines[0])
	assert.Equal(t, `player1,High-Value,High,"€12,345",€999,€150,"€-10,000",85%,4`, lines[1])
	assert.Equal(t, "player2,New,Low,€0,€0,€0,€0,0%,0", lines[2])
}

func TestAtRiskUsersCSVRoundTrip(t *testing.T) {
	users := []domain.AtRiskUser{{Username: "player9", TotalDeposit: 1000000}}

	var buf bytes.Buffer
	require.NoError(t, AtRiskUsersCSV(&buf, users))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Len(t, records[1], len(atRiskUserHeader))
	assert.Equal(t, "€1,000,000", records[1][3])
}

func TestAtRiskUsersCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, AtRiskUsersCSV(&buf, nil))
	assert.Equal(t, strings.Join(atRiskUserHeader, ",")+"\n", buf.String())
}

func TestLogEntriesCSV(t *testing.T) {
	entries := []domain.LogEntry{{
		ID:             "log-3",
		Username:       "player3",
		NumReports:     2,
		MainProduct:    "Sport",
		LastReportDate: "2024-03-14",
		DaysAtRisk:     12,
		LastAction:     "Deposit limit applied",
		Status:         "Open",
	}}

	var buf bytes.Buffer
	require.NoError(t, LogEntriesCSV(&buf, entries))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, logEntryHeader, records[0])
	assert.Equal(t, []string{"player3", "2", "Sport", "2024-03-14", "12", "Deposit limit applied", "Open"}, records[1])
}

func TestFilenames(t *testing.T) {
	assert.Equal(t, "at-risk-users-week-casino.csv", AtRiskUsersFilename(domain.RangeWeek, domain.SegmentCasino))
	assert.Equal(t, "at-risk-users-day-all.csv", AtRiskUsersFilename(domain.RangeDay, domain.SegmentAll))
	assert.Equal(t, "audit-log-2024-02-17-to-2024-03-15.csv", LogEntriesFilename("2024-02-17", "2024-03-15"))
	assert.Equal(t, "audit-log-all-to-all.csv", LogEntriesFilename("", ""))
}
