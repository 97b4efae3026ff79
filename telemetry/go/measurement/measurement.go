// Package measurement defines what a benchmark records on each page. Every
// measurement here reads its numbers by evaluating JavaScript in the tab that
// loaded the page.
package measurement

import (
	"context"

	"go.skia.org/perfsmoke/go/skerr"
	"go.skia.org/perfsmoke/telemetry/go/action"
	"go.skia.org/perfsmoke/telemetry/go/page"
)

// Measurement measures a page after it has been navigated to and interacted
// with.
type Measurement interface {
	Name() string
	Measure(ctx context.Context, p *page.Page, r action.Runner, results *Results) error
}

// Metric is one number read from the page.
type Metric struct {
	Name  string
	Units string
	// Expression is JavaScript that evaluates to a number.
	Expression string
}

// JSMetrics is a Measurement that evaluates a fixed table of metrics.
type JSMetrics struct {
	name    string
	metrics []Metric
}

// NewJSMetrics returns a measurement that records metrics in order.
func NewJSMetrics(name string, metrics ...Metric) *JSMetrics {
	return &JSMetrics{
		name:    name,
		metrics: metrics,
	}
}

// Name implements Measurement.
func (m *JSMetrics) Name() string {
	return m.name
}

// Metrics returns the metrics m records.
func (m *JSMetrics) Metrics() []Metric {
	return append([]Metric(nil), m.metrics...)
}

// Measure implements Measurement.
func (m *JSMetrics) Measure(ctx context.Context, p *page.Page, r action.Runner, results *Results) error {
	for _, metric := range m.metrics {
		var v float64
		if err := r.Evaluate(ctx, metric.Expression, &v); err != nil {
			return skerr.Wrapf(err, "evaluating %s.%s", m.name, metric.Name)
		}
		results.Add(Value{
			Page:  p.DisplayName(),
			Name:  metric.Name,
			Units: metric.Units,
			Value: v,
		})
	}
	return nil
}

var _ Measurement = (*JSMetrics)(nil)
