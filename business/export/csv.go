package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"rgDashboard/domain"
	"rgDashboard/pkg/metrics"
)

var atRiskUserHeader = []string{
	"Username",
	"Cluster",
	"Risk Level",
	"Total Deposit",
	"Total Bets",
	"Gross Revenue",
	"Net Profit",
	"Payout (%)",
	"Days At Risk",
}

var logEntryHeader = []string{
	"Username",
	"Reports",
	"Main Product",
	"Last Report Date",
	"Days At Risk",
	"Last Action",
	"Status",
}

// AtRiskUsersCSV writes the rows as given; callers filter and sort first.
func AtRiskUsersCSV(w io.Writer, users []domain.AtRiskUser) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(atRiskUserHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, u := range users {
		record := []string{
			u.Username,
			string(u.Cluster),
			string(u.RiskLevel),
			Euro(u.TotalDeposit),
			Euro(u.TotalBets),
			Euro(u.GrossRevenue),
			Euro(u.NetProfit),
			strconv.Itoa(u.PayoutPercentage) + "%",
			strconv.Itoa(u.DaysAtRisk),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %s: %w", u.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	metrics.CSVExports.WithLabelValues("at_risk_users").Inc()
	return nil
}

func LogEntriesCSV(w io.Writer, entries []domain.LogEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(logEntryHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range entries {
		record := []string{
			e.Username,
			strconv.Itoa(e.NumReports),
			e.MainProduct,
			e.LastReportDate,
			strconv.Itoa(e.DaysAtRisk),
			e.LastAction,
			e.Status,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %s: %w", e.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	metrics.CSVExports.WithLabelValues("audit_log").Inc()
	return nil
}

// Euro formats whole euros with thousands separators, e.g. €12,345 or €-500.
func Euro(v int64) string {
	return "€" + humanize.Comma(v)
}

func AtRiskUsersFilename(timeRange domain.TimeRange, product domain.ProductSegment) string {
	return fmt.Sprintf("at-risk-users-%s-%s.csv", timeRange, strings.ToLower(string(product)))
}

// LogEntriesFilename names the export after the date range; open ends are "all".
func LogEntriesFilename(start, end string) string {
	if start == "" {
		start = "all"
	}
	if end == "" {
		end = "all"
	}
	return fmt.Sprintf("audit-log-%s-to-%s.csv", start, end)
}
