package benchmarks

import (
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
	"go.skia.org/perfsmoke/telemetry/go/page"
	"go.skia.org/perfsmoke/telemetry/go/pagesets"
)

func drawProperties(*benchmark.Options) measurement.Measurement {
	return measurement.DrawProperties()
}

func init() {
	// Depends on tracing categories available in M43.
	benchmark.Register(&benchmark.Benchmark{
		Name:        "draw_properties.tough_scrolling",
		Module:      module("draw_properties"),
		Test:        drawProperties,
		PageSet:     func(*benchmark.Options) *page.PageSet { return pagesets.ToughScrollingCases() },
		Annotations: benchmark.Annotations{Disabled: benchmark.Tags("reference")},
	})
	benchmark.Register(&benchmark.Benchmark{
		Name:        "draw_properties.top_25",
		Module:      module("draw_properties"),
		Description: "Measures the performance of computing draw properties from property trees.",
		Test:        drawProperties,
		PageSet:     func(*benchmark.Options) *page.PageSet { return pagesets.Top25Smooth() },
		// http://crbug.com/463111
		Annotations: benchmark.Annotations{Disabled: benchmark.Tags("reference", "win")},
	})
}
