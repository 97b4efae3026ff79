package benchmarks

import (
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/pagesets"
)

func init() {
	// Needs a large profile generated before the run.
	benchmark.Register(&benchmark.Benchmark{
		Name:                    "startup.large_profile.cold.blank_page",
		Module:                  module("startup"),
		PageSet:                 staticPageSet(pagesets.FiveBlankPages),
		Options:                 map[string]string{benchmark.OptPagesetRepeat: "5"},
		GeneratedProfileArchive: "large_profile.zip",
		Annotations:             benchmark.Annotations{Disabled: benchmark.Tags("android", "chromeos")},
	})
}
