//go:build !integration

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSystemRoutes(t *testing.T) {
	e := echo.New()
	SetupSystemRoutes(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestAPIRoutesRegistered(t *testing.T) {
	e := echo.New()
	api := e.Group("/api/v1")
	SetupKPIRoutes(api, nil)
	SetupClusterRoutes(api, nil)
	SetupAtRiskRoutes(api, nil)
	SetupAuditLogRoutes(api, nil)
	SetupSummaryRoutes(api, nil)
	SetupDemographicRoutes(api, nil)

	paths := map[string]bool{}
	for _, r := range e.Routes() {
		paths[r.Path] = true
	}

	for _, want := range []string{
		"/api/v1/kpi",
		"/api/v1/kpi/trend",
		"/api/v1/clusters",
		"/api/v1/segmentation",
		"/api/v1/at-risk-users",
		"/api/v1/at-risk-users/export",
		"/api/v1/at-risk-users/:id",
		"/api/v1/logs",
		"/api/v1/logs/export",
		"/api/v1/logs/:username",
		"/api/v1/summary/distribution",
		"/api/v1/summary/at-risk-trend",
		"/api/v1/summary/kpi",
		"/api/v1/summary/kpi/trend",
		"/api/v1/demographics",
	} {
		assert.True(t, paths[want], want)
	}
}
