package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	dashboardmetrics "rgDashboard/pkg/metrics"
)

const unmatchedRoute = "unmatched"

// Middleware records latency and status per route template, so
// /at-risk-users/:id is one series regardless of the id.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = unmatchedRoute
			}

			dashboardmetrics.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
			dashboardmetrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(statusOf(c, err))).Inc()

			return err
		}
	}
}

// statusOf resolves the status before the error handler has written it.
func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
