package benchmarks

import (
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
	"go.skia.org/perfsmoke/telemetry/go/pagesets"
)

func init() {
	benchmark.Register(&benchmark.Benchmark{
		Name:    "dom_perf",
		Module:  module("dom_perf"),
		Test:    func(*benchmark.Options) measurement.Measurement { return measurement.BenchmarkScore("dom_perf", "window.__domPerfScore || 0", "runs/s") },
		PageSet: staticPageSet(pagesets.DomPerf),
	})
}
