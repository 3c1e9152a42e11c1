//go:build !integration

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	dashboardmetrics "rgDashboard/pkg/metrics"
)

func TestMiddlewareCountsByRouteTemplate(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/api/v1/at-risk-users/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Param("id"))
	})

	counter := dashboardmetrics.RequestsTotal.WithLabelValues("/api/v1/at-risk-users/:id", "200")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"user-1", "user-2", "user-3"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/at-risk-users/"+id, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}

func TestMiddlewareRecordsErrorStatus(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/bad", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "nope")
	})
	e.GET("/broken", func(c echo.Context) error {
		return assert.AnError
	})

	bad := dashboardmetrics.RequestsTotal.WithLabelValues("/bad", "400")
	broken := dashboardmetrics.RequestsTotal.WithLabelValues("/broken", "500")
	badBefore, brokenBefore := testutil.ToFloat64(bad), testutil.ToFloat64(broken)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bad", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/broken", nil))

	assert.Equal(t, badBefore+1, testutil.ToFloat64(bad))
	assert.Equal(t, brokenBefore+1, testutil.ToFloat64(broken))
}

func TestMiddlewareCountsRecoveredPanics(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.Use(echomiddleware.Recover())
	e.GET("/panic", func(c echo.Context) error {
		panic("generator exploded")
	})

	counter := dashboardmetrics.RequestsTotal.WithLabelValues("/panic", "500")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
