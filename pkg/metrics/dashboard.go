package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of every dashboard API route
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rg_dashboard_request_duration_seconds",
		Help:    "Latency of dashboard API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rg_dashboard_requests_total",
		Help: "Total dashboard API requests by route and status",
	}, []string{"route", "status"})

	// Rows produced by the synthetic generators, by dataset
	GeneratedRows = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rg_dashboard_generated_rows_total",
		Help: "Total synthetic rows generated by dataset",
	}, []string{"dataset"})

	CSVExports = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rg_dashboard_csv_exports_total",
		Help: "Total CSV exports served by table",
	}, []string{"table"})
)

func Init() {
	prometheus.MustRegister(
		RequestDuration,
		RequestsTotal,
		GeneratedRows,
		CSVExports,
	)
}
