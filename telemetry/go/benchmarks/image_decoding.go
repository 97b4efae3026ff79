package benchmarks

import (
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
	"go.skia.org/perfsmoke/telemetry/go/pagesets"
)

func init() {
	benchmark.Register(&benchmark.Benchmark{
		Name:        "image_decoding.image_decoding_measurement",
		Module:      module("image_decoding"),
		Test:        func(*benchmark.Options) measurement.Measurement { return measurement.BenchmarkScore("image_decoding", "window.__decodeTime || 0", "ms") },
		PageSet:     staticPageSet(pagesets.ImageDecoding),
		Annotations: benchmark.Annotations{Disabled: benchmark.Tags("mac")},
	})
}
