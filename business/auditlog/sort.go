package auditlog

import (
	"cmp"
	"slices"

	"rgDashboard/domain"
)

var sortKeys = map[string]func(a, b domain.LogEntry) int{
	"username":       func(a, b domain.LogEntry) int { return cmp.Compare(a.Username, b.Username) },
	"numReports":     func(a, b domain.LogEntry) int { return cmp.Compare(a.NumReports, b.NumReports) },
	"lastReportDate": func(a, b domain.LogEntry) int { return cmp.Compare(a.LastReportDate, b.LastReportDate) },
	"daysAtRisk":     func(a, b domain.LogEntry) int { return cmp.Compare(a.DaysAtRisk, b.DaysAtRisk) },
}

// Sort returns a stably sorted copy; unknown keys keep the input order.
func Sort(entries []domain.LogEntry, key, dir string) []domain.LogEntry {
	out := slices.Clone(entries)
	compare, ok := sortKeys[key]
	if !ok {
		return out
	}
	if dir == "desc" {
		slices.SortStableFunc(out, func(a, b domain.LogEntry) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(out, compare)
	}
	return out
}
