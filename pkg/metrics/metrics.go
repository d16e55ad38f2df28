package metrics

import "github.com/penglongli/gin-metrics/ginmetrics"

// GetMonitor configures the Prometheus monitor served at the given path.
func GetMonitor(path string) *ginmetrics.Monitor {
	m := ginmetrics.GetMonitor()
	m.SetMetricPath(path)
	m.SetSlowTime(1)

	// Request duration buckets, used for p95/p99.
	m.SetDuration([]float64{0.05, 0.1, 0.2, 0.3, 0.5, 1, 2, 5})

	return m
}
