//go:build !integration

package rest

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rgDashboard/business/atrisk"
	"rgDashboard/business/auditlog"
	"rgDashboard/business/cluster"
	"rgDashboard/business/dataset"
	"rgDashboard/business/demographic"
	"rgDashboard/business/kpi"
	"rgDashboard/business/summary"
	"rgDashboard/pkg/randx"
)

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func newTestServer() *echo.Echo {
	tables := dataset.DefaultTables()
	rng := randx.New(1)
	clock := func() time.Time { return fixedNow }

	kpiHandler := NewKPIHandler(kpi.NewService(&tables, rng, clock))
	clusterHandler := NewClusterHandler(cluster.NewService(&tables))
	atRiskHandler := NewAtRiskHandler(atrisk.NewService(&tables, rng))
	auditLogHandler := NewAuditLogHandler(auditlog.NewService(&tables, rng, clock))
	summaryHandler := NewSummaryHandler(summary.NewService(&tables, rng, clock))
	demographicHandler := NewDemographicHandler(demographic.NewService(&tables))

	e := echo.New()
	api := e.Group("/api/v1")
	api.GET("/kpi", kpiHandler.Snapshot)
	api.GET("/kpi/trend", kpiHandler.Trend)
	api.GET("/clusters", clusterHandler.Clusters)
	api.GET("/segmentation", clusterHandler.Segmentation)
	api.GET("/at-risk-users", atRiskHandler.List)
	api.GET("/at-risk-users/export", atRiskHandler.Export)
	api.GET("/at-risk-users/:id", atRiskHandler.Detail)
	api.GET("/logs", auditLogHandler.List)
	api.GET("/logs/export", auditLogHandler.Export)
	api.GET("/logs/:username", auditLogHandler.Detail)
	api.GET("/summary/distribution", summaryHandler.Distribution)
	api.GET("/summary/at-risk-trend", summaryHandler.AtRiskTrend)
	api.GET("/summary/kpi", summaryHandler.BusinessKPIs)
	api.GET("/summary/kpi/trend", summaryHandler.BusinessTrend)
	api.GET("/demographics", demographicHandler.Get)
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJSONEndpoints(t *testing.T) {
	e := newTestServer()

	tests := []struct {
		name     string
		target   string
		contains []string
	}{
		{"kpi snapshot", "/api/v1/kpi?product=Casino", []string{`"product":"Casino"`, `"activeUsers":14000`}},
		{"kpi unknown product", "/api/v1/kpi?product=lottery", []string{`"product":"All"`, `"activeUsers":40000`}},
		{"kpi trend", "/api/v1/kpi/trend?metric=ggr&product=Sport", []string{`"metric":"ggr"`, `"perUser":false`}},
		{"kpi trend unknown metric", "/api/v1/kpi/trend?metric=nope&per_user=true", []string{`"metric":"ggt"`, `"perUser":true`}},
		{"clusters", "/api/v1/clusters?product=casino", []string{`"totalAtRisk":410`, `"id":"high-frequency"`}},
		{"segmentation", "/api/v1/segmentation", []string{`"name":"Loss Chasers"`}},
		{"at-risk users", "/api/v1/at-risk-users?time_range=week&sort=totalDeposit&dir=desc", []string{`"id":"user-`}},
		{"user detail", "/api/v1/at-risk-users/user-5", []string{`"username":"player5"`, `"anomalyScores"`}},
		{"logs", "/api/v1/logs?product=All&sort=numReports", []string{`"id":"log-`}},
		{"log detail", "/api/v1/logs/player9", []string{`"email":"player9@example.com"`}},
		{"distribution", "/api/v1/summary/distribution?time_range=month", []string{`"activeUsers":1800`}},
		{"at-risk trend", "/api/v1/summary/at-risk-trend", []string{`"date":"Mar 14","value":30`}},
		{"business kpis", "/api/v1/summary/kpi?time_range=week", []string{`"ggt":7000000`}},
		{"business trend", "/api/v1/summary/kpi/trend?metric=ggr&time_range=month", []string{`"date":"Mar 2024"`}},
		{"demographics", "/api/v1/demographics?time_filter=month&product=All", []string{`"newAtRiskUsers":600`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(e, tt.target)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			for _, want := range tt.contains {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}

func TestValidationErrors(t *testing.T) {
	e := newTestServer()

	for _, target := range []string{
		"/api/v1/kpi/trend?per_user=maybe",
		"/api/v1/at-risk-users?dir=sideways",
		"/api/v1/logs?start_date=15-03-2024",
		"/api/v1/logs/export?end_date=yesterday",
		"/api/v1/logs?preset=10",
		"/api/v1/logs?preset=7&include_today=perhaps",
	} {
		rec := get(e, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Contains(t, rec.Body.String(), `"message"`, target)
	}
}

func TestAtRiskExport(t *testing.T) {
	e := newTestServer()

	rec := get(e, "/api/v1/at-risk-users/export?time_range=week&product=Casino")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, csvContentType, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "at-risk-users-week-casino.csv")

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	// header plus 70 * 0.8 rows
	require.Len(t, records, 57)
	assert.Equal(t, "Username", records[0][0])
}

func TestAuditLogExport(t *testing.T) {
	e := newTestServer()

	rec := get(e, "/api/v1/logs/export?start_date=2024-03-01&end_date=2024-03-15")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "audit-log-2024-03-01-to-2024-03-15.csv")

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, "Last Report Date", records[0][3])
	for _, r := range records[1:] {
		assert.GreaterOrEqual(t, r[3], "2024-03-01")
		assert.LessOrEqual(t, r[3], "2024-03-15")
	}
}

var lastReportDate = regexp.MustCompile(`"lastReportDate":"([0-9-]+)"`)

func TestAuditLogDefaultsToLast28Days(t *testing.T) {
	e := newTestServer()

	rec := get(e, "/api/v1/logs")
	require.Equal(t, http.StatusOK, rec.Code)

	dates := lastReportDate.FindAllStringSubmatch(rec.Body.String(), -1)
	require.NotEmpty(t, dates)
	for _, d := range dates {
		assert.GreaterOrEqual(t, d[1], "2024-02-17")
		assert.LessOrEqual(t, d[1], "2024-03-15")
	}

	rec = get(e, "/api/v1/logs/export")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "audit-log-2024-02-17-to-2024-03-15.csv")
}

func TestAuditLogPreset(t *testing.T) {
	e := newTestServer()

	rec := get(e, "/api/v1/logs/export?preset=7&include_today=false")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "audit-log-2024-03-08-to-2024-03-14.csv")

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	for _, r := range records[1:] {
		assert.GreaterOrEqual(t, r[3], "2024-03-08")
		assert.LessOrEqual(t, r[3], "2024-03-14")
	}

	// an explicit date wins over the preset for its own end
	rec = get(e, "/api/v1/logs/export?preset=90&start_date=2024-03-01")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "audit-log-2024-03-01-to-2024-03-15.csv")
}

func TestHandlersCarryValidator(t *testing.T) {
	assert.NotNil(t, NewKPIHandler(nil).validate)
	assert.NotNil(t, NewClusterHandler(nil).validate)
	assert.NotNil(t, NewAtRiskHandler(nil).validate)
	assert.NotNil(t, NewAuditLogHandler(nil).validate)
	assert.NotNil(t, NewSummaryHandler(nil).validate)
	assert.NotNil(t, NewDemographicHandler(nil).validate)
}
