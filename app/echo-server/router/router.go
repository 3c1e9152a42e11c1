package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rgDashboard/internal/rest"
)

func SetupKPIRoutes(api *echo.Group, handler *rest.KPIHandler) {
	kpi := api.Group("/kpi")

	kpi.GET("", handler.Snapshot)
	kpi.GET("/trend", handler.Trend)
}

func SetupClusterRoutes(api *echo.Group, handler *rest.ClusterHandler) {
	api.GET("/clusters", handler.Clusters)
	api.GET("/segmentation", handler.Segmentation)
}

func SetupAtRiskRoutes(api *echo.Group, handler *rest.AtRiskHandler) {
	users := api.Group("/at-risk-users")

	users.GET("", handler.List)
	users.GET("/export", handler.Export)
	users.GET("/:id", handler.Detail)
}

func SetupAuditLogRoutes(api *echo.Group, handler *rest.AuditLogHandler) {
	logs := api.Group("/logs")

	logs.GET("", handler.List)
	logs.GET("/export", handler.Export)
	logs.GET("/:username", handler.Detail)
}

func SetupSummaryRoutes(api *echo.Group, handler *rest.SummaryHandler) {
	summary := api.Group("/summary")

	summary.GET("/distribution", handler.Distribution)
	summary.GET("/at-risk-trend", handler.AtRiskTrend)
	summary.GET("/kpi", handler.BusinessKPIs)
	summary.GET("/kpi/trend", handler.BusinessTrend)
}

func SetupDemographicRoutes(api *echo.Group, handler *rest.DemographicHandler) {
	api.GET("/demographics", handler.Get)
}

// SetupSystemRoutes mounts the scrape and liveness endpoints outside /api/v1.
func SetupSystemRoutes(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}
