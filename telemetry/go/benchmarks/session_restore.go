package benchmarks

import (
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
	"go.skia.org/perfsmoke/telemetry/go/pagesets"
)

func init() {
	benchmark.Register(&benchmark.Benchmark{
		Name:    "session_restore.cold.typical_25",
		Module:  module("session_restore"),
		Test:    func(*benchmark.Options) measurement.Measurement { return measurement.PageLoad() },
		PageSet: staticPageSet(pagesets.SessionRestore),
	})
}
