package benchmarks

import (
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
	"go.skia.org/perfsmoke/telemetry/go/pagesets"
)

func init() {
	benchmark.Register(&benchmark.Benchmark{
		Name:    "indexeddb_perf",
		Module:  module("indexeddb_perf"),
		Test:    func(*benchmark.Options) measurement.Measurement { return measurement.BenchmarkScore("indexeddb_perf", "window.__idbTotalTime || 0", "ms") },
		PageSet: staticPageSet(pagesets.IndexedDB),
	})
}
