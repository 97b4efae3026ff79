package benchmarks

import (
	"strings"

	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
	"go.skia.org/perfsmoke/telemetry/go/page"
	"go.skia.org/perfsmoke/telemetry/go/pagesets"
)

const reportSilkDetails = "report-silk-details"

// Silk flags that force software rasterization.
var softwareRasterizationArgs = []string{"--disable-gpu-rasterization"}

// Only per-frame metrics are reported by default.
func perFrameValues(v measurement.Value, _ bool) bool {
	return !strings.Contains(v.Name, "per_second")
}

func perSecondValues(v measurement.Value, _ bool) bool {
	return !strings.Contains(v.Name, "per_frame") && !strings.Contains(v.Name, "mean_frame")
}

func threadTimes(name, description string, ps func() *page.PageSet, a benchmark.Annotations) *benchmark.Benchmark {
	return &benchmark.Benchmark{
		Name:        name,
		Module:      module("thread_times"),
		Description: description,
		Test: func(opts *benchmark.Options) measurement.Measurement {
			return measurement.ThreadTimes(opts.Bool(reportSilkDetails))
		},
		PageSet:         staticPageSet(ps),
		Annotations:     a,
		Args:            []benchmark.Arg{{Name: reportSilkDetails, Usage: "Report details relevant to silk.", Bool: true}},
		ValueCanBeAdded: perFrameValues,
	}
}

func init() {
	android := benchmark.Annotations{Enabled: benchmark.Tags("android")}

	benchmark.Register(threadTimes("thread_times.key_silk_cases",
		"Measures timeline metrics while performing smoothness action on key silk cases.",
		pagesets.KeySilkCases, android))

	benchmark.Register(threadTimes("thread_times.key_hit_test_cases",
		"Measure timeline metrics while performing smoothness action on key hit testing cases.",
		pagesets.KeyHitTestCases, benchmark.Annotations{Enabled: benchmark.Tags("android", "linux")}))

	fastPath := threadTimes("thread_times.key_mobile_sites_smooth",
		"Measures timeline metrics while performing smoothness action on key mobile sites labeled with fast-path tag.",
		pagesets.KeyMobileSitesSmooth, android)
	fastPath.Options = map[string]string{benchmark.OptStoryLabelFilter: "fastpath"}
	benchmark.Register(fastPath)

	benchmark.Register(threadTimes("thread_times.simple_mobile_sites",
		"Measures timeline metric using smoothness action on simple mobile sites.",
		pagesets.SimpleMobileSites, android))

	// crbug.com/443781
	compositor := threadTimes("thread_times.tough_compositor_cases",
		"Measures timeline metrics while performing smoothness action on tough compositor cases, using software rasterization.",
		pagesets.ToughCompositorCases, benchmark.Annotations{Disabled: benchmark.Tags("win")})
	compositor.SetExtraBrowserOptions = func(opts *benchmark.Options) {
		opts.ExtraBrowserArgs = append(opts.ExtraBrowserArgs, softwareRasterizationArgs...)
	}
	benchmark.Register(compositor)

	benchmark.Register(threadTimes("thread_times.polymer",
		"Measures timeline metrics while performing smoothness action on Polymer cases.",
		pagesets.Polymer, android))

	idle := threadTimes("thread_times.key_idle_power_cases",
		"Measures timeline metrics for sites that should be idle in foreground and background scenarios. The metrics are per-second rather than per-frame.",
		pagesets.KeyIdlePowerCases, android)
	idle.ValueCanBeAdded = perSecondValues
	benchmark.Register(idle)
}
