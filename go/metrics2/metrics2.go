// Package metrics2 is a small facade over the Prometheus client library.
// Metric names and tag keys are cleaned to match Prometheus's restrictions.
package metrics2

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.skia.org/perfsmoke/go/sklog"
)

// Counter is a metric that can be incremented and decremented.
type Counter interface {
	Inc(i int64)
	Dec(i int64)
	Reset()
	Get() int64
}

// Float64SummaryMetric records observations and exposes quantiles.
type Float64SummaryMetric interface {
	Observe(v float64)
}

var defaultClient = newPromClient()

// GetCounter returns the Counter with the given name and tags, creating it if
// needed.
func GetCounter(name string, tags ...map[string]string) Counter {
	return defaultClient.GetCounter(name, tags...)
}

// GetFloat64SummaryMetric returns the summary with the given name and tags,
// creating it if needed.
func GetFloat64SummaryMetric(name string, tags ...map[string]string) Float64SummaryMetric {
	return defaultClient.GetFloat64SummaryMetric(name, tags...)
}

// InitPrometheus serves /metrics on port (e.g. ":20000") in a new goroutine.
// An empty port disables the endpoint.
func InitPrometheus(port string) {
	if port == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		sklog.Infof("Serving metrics on %s", port)
		if err := http.ListenAndServe(port, mux); err != nil {
			sklog.Errorf("Metrics server stopped: %s", err)
		}
	}()
}
