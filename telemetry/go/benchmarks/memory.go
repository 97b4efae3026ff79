package benchmarks

import (
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
	"go.skia.org/perfsmoke/telemetry/go/page"
	"go.skia.org/perfsmoke/telemetry/go/pagesets"
)

func init() {
	benchmark.Register(&benchmark.Benchmark{
		Name:        "memory.typical_25",
		Module:      module("memory"),
		Description: "Measures JS heap usage after each page of the typical 25 sites has been scrolled.",
		Test:        func(*benchmark.Options) measurement.Measurement { return measurement.Memory() },
		PageSet:     func(*benchmark.Options) *page.PageSet { return pagesets.Typical25(false) },
		Annotations: benchmark.Annotations{Enabled: benchmark.Tags()},
	})
	benchmark.Register(&benchmark.Benchmark{
		Name:    "memory.safebrowsing",
		Module:  module("memory"),
		Test:    func(*benchmark.Options) measurement.Measurement { return measurement.Memory() },
		PageSet: func(*benchmark.Options) *page.PageSet { return pagesets.SafebrowsingPageSet(true) },
	})
}
