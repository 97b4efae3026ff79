package benchmarks

import (
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
	"go.skia.org/perfsmoke/telemetry/go/page"
	"go.skia.org/perfsmoke/telemetry/go/pagesets"
)

const tabSwitchingDescription = `Records the MPArch.RWH_TabSwitchPaintDuration histogram: the time between
when a tab was requested to be shown and when first paint occurred. Each page
is opened in its own tab; once all have loaded the run switches to each tab.`

func tabSwitching(name string, ps benchmark.PageSetFunc, a benchmark.Annotations) *benchmark.Benchmark {
	return &benchmark.Benchmark{
		Name:        name,
		Module:      module("tab_switching"),
		Description: tabSwitchingDescription,
		Test:        func(*benchmark.Options) measurement.Measurement { return measurement.TabSwitching() },
		PageSet:     ps,
		Annotations: a,
	}
}

func init() {
	// http://crbug.com/460084
	hasTabsNotAndroid := benchmark.Annotations{Enabled: benchmark.Tags("has tabs"), Disabled: benchmark.Tags("android")}
	desktop := benchmark.Annotations{Enabled: benchmark.Tags("linux", "mac", "win", "chromeos")}

	benchmark.Register(tabSwitching("tab_switching.top_10", staticPageSet(pagesets.Top10), hasTabsNotAndroid))

	benchmark.Register(tabSwitching("tab_switching.typical_25",
		func(*benchmark.Options) *page.PageSet { return pagesets.Typical25(true) },
		hasTabsNotAndroid.Copy()))

	blank := tabSwitching("tab_switching.five_blank_pages", staticPageSet(pagesets.FiveBlankPages), hasTabsNotAndroid.Copy())
	blank.Options = map[string]string{benchmark.OptPagesetRepeat: "10"}
	benchmark.Register(blank)

	// http://crbug.com/488067
	energy := tabSwitching("tab_switching.tough_energy_cases", staticPageSet(pagesets.ToughEnergyCases),
		benchmark.Annotations{Enabled: benchmark.Tags("has tabs"), Disabled: benchmark.Tags("android", "linux")})
	energy.Options = map[string]string{benchmark.OptPagesetRepeat: "10"}
	benchmark.Register(energy)

	benchmark.Register(tabSwitching("tab_switching.tough_image_cases", staticPageSet(pagesets.ToughImageCases), hasTabsNotAndroid.Copy()))

	flash := tabSwitching("tab_switching.flash_energy_cases", staticPageSet(pagesets.FlashEnergyCases), desktop)
	flash.Options = map[string]string{benchmark.OptPagesetRepeat: "10"}
	benchmark.Register(flash)

	saver := tabSwitching("tab_switching.plugin_power_saver", staticPageSet(pagesets.FlashEnergyCases), desktop.Copy())
	saver.Options = map[string]string{benchmark.OptPagesetRepeat: "10"}
	saver.ExtraBrowserArgs = []string{"--enable-plugin-power-saver"}
	benchmark.Register(saver)
}
