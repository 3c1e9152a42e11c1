package auditlog

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"rgDashboard/business/dataset"
	"rgDashboard/domain"
	"rgDashboard/pkg/logger"
	"rgDashboard/pkg/metrics"
	"rgDashboard/pkg/randx"
)

const (
	detailWindowDays = 30
	systemReporter   = "System"
	riskMetricMax    = 100
	defaultRangeDays = 28
)

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

// Pool generates a fresh set of flagged accounts with their report history.
func (s *Service) Pool() []domain.LogEntry {
	t := s.tables.AuditLog
	today := s.now()

	pool := make([]domain.LogEntry, 0, t.PoolSize)
	for i := 1; i <= t.PoolSize; i++ {
		numReports := s.rng.Range(t.Reports.Min, t.Reports.Max)
		if numReports < 1 {
			numReports = 1
		}
		product := randx.Pick(s.rng, t.Products)
		window := s.rng.Range(t.WindowDays.Min, t.WindowDays.Max)

		history := make([]domain.ReportHistoryEntry, 0, numReports)
		for j := 0; j < numReports; j++ {
			history = append(history, domain.ReportHistoryEntry{
				Date:    today.AddDate(0, 0, -s.rng.IntN(window)).Format(domain.DateLayout),
				Product: product,
				Reason:  randx.Pick(s.rng, t.Reasons),
			})
		}
		sortHistory(history)

		pool = append(pool, domain.LogEntry{
			ID:             fmt.Sprintf("log-%d", i),
			Username:       fmt.Sprintf("player%d", i),
			NumReports:     numReports,
			MainProduct:    product,
			LastReportDate: history[0].Date,
			DaysAtRisk:     s.rng.Range(1, window),
			LastAction:     randx.Pick(s.rng, t.Actions),
			Status:         randx.Pick(s.rng, t.Statuses),
			ReportHistory:  history,
		})
	}

	logger.Debug("generated audit log pool", "entries", len(pool))
	metrics.GeneratedRows.WithLabelValues("audit_log").Add(float64(len(pool)))

	return pool
}

// Entries regenerates the pool and applies the filter.
func (s *Service) Entries(f domain.LogFilter) []domain.LogEntry {
	return Filter(s.Pool(), f)
}

// Filter keeps entries matching every set field of f. Dates compare as
// YYYY-MM-DD strings, which order the same as the calendar.
func Filter(pool []domain.LogEntry, f domain.LogFilter) []domain.LogEntry {
	username := strings.ToLower(strings.TrimSpace(f.Username))
	anyProduct := f.Product == "" || strings.EqualFold(f.Product, string(domain.SegmentAll))

	out := make([]domain.LogEntry, 0, len(pool))
	for _, e := range pool {
		if f.StartDate != "" && e.LastReportDate < f.StartDate {
			continue
		}
		if f.EndDate != "" && e.LastReportDate > f.EndDate {
			continue
		}
		if username != "" && !strings.Contains(strings.ToLower(e.Username), username) {
			continue
		}
		if !anyProduct && !strings.EqualFold(e.MainProduct, f.Product) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Detail builds the drill-down record for one flagged account.
func (s *Service) Detail(username string) domain.LogDetail {
	t := s.tables.AuditLog
	today := s.now()

	history := make([]domain.ReportHistoryEntry, s.rng.Range(t.Reports.Min, t.Reports.Max))
	for i := range history {
		history[i] = domain.ReportHistoryEntry{
			Date:       today.AddDate(0, 0, -s.rng.IntN(detailWindowDays)).Format(domain.DateLayout),
			Product:    randx.Pick(s.rng, t.Products),
			Reason:     randx.Pick(s.rng, t.Reasons),
			ReportedBy: systemReporter,
		}
	}
	sortHistory(history)

	timeline := make([]domain.TimelineEntry, s.rng.Range(t.TimelineEntries.Min, t.TimelineEntries.Max))
	for i := range timeline {
		timeline[i] = domain.TimelineEntry{
			ID:       s.newID(),
			Date:     s.pastTimestamp(today),
			Action:   randx.Pick(s.rng, t.Actions),
			Operator: randx.Pick(s.rng, t.Operators),
			Status:   randx.Pick(s.rng, t.Statuses),
		}
	}
	slices.SortStableFunc(timeline, func(a, b domain.TimelineEntry) int { return strings.Compare(b.Date, a.Date) })

	notes := make([]domain.Note, s.rng.Range(t.Notes.Min, t.Notes.Max))
	for i := range notes {
		notes[i] = domain.Note{
			ID:     s.newID(),
			Date:   s.pastTimestamp(today),
			Author: randx.Pick(s.rng, t.Operators),
			Text:   randx.Pick(s.rng, t.NoteTexts),
		}
	}
	slices.SortStableFunc(notes, func(a, b domain.Note) int { return strings.Compare(b.Date, a.Date) })

	detail := domain.LogDetail{
		Username:         username,
		Email:            username + "@example.com",
		Age:              s.rng.Range(t.Age.Min, t.Age.Max),
		Province:         randx.Pick(s.rng, t.Provinces),
		RegistrationDate: t.RegistrationDate,
		LastLogin:        t.LastLogin,
		ReportHistory:    history,
		Timeline:         timeline,
		Notes:            notes,
		RiskMetrics: domain.RiskMetrics{
			TimeSpentGambling: s.rng.IntN(riskMetricMax),
			NetLosses:         s.rng.IntN(riskMetricMax),
			DepositFrequency:  s.rng.IntN(riskMetricMax),
		},
	}

	logger.Debug("generated audit log detail", "username", username, "reports", len(history), "timeline", len(timeline))
	metrics.GeneratedRows.WithLabelValues("audit_log_detail").Inc()

	return detail
}

func (s *Service) pastTimestamp(today time.Time) string {
	ts := today.Add(-time.Duration(s.rng.IntN(detailWindowDays*24*60)) * time.Minute)
	return ts.Format(domain.DateTimeLayout)
}

func (s *Service) newID() string {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func sortHistory(history []domain.ReportHistoryEntry) {
	slices.SortStableFunc(history, func(a, b domain.ReportHistoryEntry) int {
		return strings.Compare(b.Date, a.Date)
	})
}

// PresetRange returns the date-picker range covering the last days days.
// Without today the range ends yesterday.
func PresetRange(days int, now time.Time, includeToday bool) (string, string) {
	if days < 1 {
		days = 1
	}
	end := now
	if !includeToday {
		end = now.AddDate(0, 0, -1)
	}
	start := end.AddDate(0, 0, -(days - 1))
	return start.Format(domain.DateLayout), end.Format(domain.DateLayout)
}

// DefaultRange is the range the log page opens with.
func DefaultRange(now time.Time) (string, string) {
	return PresetRange(defaultRangeDays, now, true)
}

// Range resolves a date-picker preset against the service clock.
// days == 0 selects the default range length.
func (s *Service) Range(days int, includeToday bool) (string, string) {
	if days == 0 {
		if includeToday {
			return DefaultRange(s.now())
		}
		days = defaultRangeDays
	}
	return PresetRange(days, s.now(), includeToday)
}
