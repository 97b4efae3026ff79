package benchmarks

import (
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
	"go.skia.org/perfsmoke/telemetry/go/pagesets"
)

func init() {
	benchmark.Register(&benchmark.Benchmark{
		Name:    "spaceport",
		Module:  module("spaceport"),
		Test:    func(*benchmark.Options) measurement.Measurement { return measurement.BenchmarkScore("spaceport", "window.__spaceportScore || 0", "objects (bigger is better)") },
		PageSet: staticPageSet(pagesets.Spaceport),
	})
}
