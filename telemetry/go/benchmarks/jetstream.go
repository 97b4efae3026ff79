package benchmarks

import (
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
	"go.skia.org/perfsmoke/telemetry/go/pagesets"
)

func init() {
	benchmark.Register(&benchmark.Benchmark{
		Name:        "jetstream",
		Module:      module("jetstream"),
		Test:        func(*benchmark.Options) measurement.Measurement { return measurement.BenchmarkScore("jetstream", "window.__jetstreamScore || 0", "score") },
		PageSet:     staticPageSet(pagesets.JetStream),
		Annotations: benchmark.Annotations{Disabled: benchmark.Tags("android")},
	})
}
