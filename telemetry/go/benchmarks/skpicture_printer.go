package benchmarks

import (
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
	"go.skia.org/perfsmoke/telemetry/go/pagesets"
)

func init() {
	benchmark.Register(&benchmark.Benchmark{
		Name:    "skpicture_printer",
		Module:  module("skpicture_printer"),
		Test:    func(*benchmark.Options) measurement.Measurement { return measurement.RasterizeAndRecordMicro() },
		PageSet: staticPageSet(pagesets.SkpicturePrinter),
		Args:    []benchmark.Arg{{Name: "skp-outdir", Usage: "Output directory for the SKP files."}},
	})
}
