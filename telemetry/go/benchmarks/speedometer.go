package benchmarks

import (
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
	"go.skia.org/perfsmoke/telemetry/go/pagesets"
)

func init() {
	benchmark.Register(&benchmark.Benchmark{
		Name:    "speedometer",
		Module:  module("speedometer"),
		Test:    func(*benchmark.Options) measurement.Measurement { return measurement.BenchmarkScore("speedometer", "window.benchmarkClient ? window.benchmarkClient._timeValues.length : 0", "runs/min") },
		PageSet: staticPageSet(pagesets.Speedometer),
	})
}
