package benchmarks

import (
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
	"go.skia.org/perfsmoke/telemetry/go/pagesets"
)

func init() {
	benchmark.Register(&benchmark.Benchmark{
		Name:        "rasterize_and_record_micro.top_25",
		Module:      module("rasterize_and_record_micro"),
		Test:        func(*benchmark.Options) measurement.Measurement { return measurement.RasterizeAndRecordMicro() },
		PageSet:     staticPageSet(pagesets.RasterizeAndRecordMicro),
		Annotations: benchmark.Annotations{Disabled: benchmark.Tags("mac", "win")},
	})
}
