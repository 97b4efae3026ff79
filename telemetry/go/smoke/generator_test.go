package smoke

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skia.org/perfsmoke/go/util"
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/page"
)

func threePageSet(*benchmark.Options) *page.PageSet {
	ps := page.NewPageSet("foo", "data/foo.json")
	ps.AddURLs("http://one/", "http://two/", "http://three/")
	return ps
}

func bench(name, module string) *benchmark.Benchmark {
	return &benchmark.Benchmark{
		Name:    name,
		Module:  module,
		PageSet: threePageSet,
	}
}

func TestGenerate_ExcludedModules_NoTestCase(t *testing.T) {
	var bs []*benchmark.Benchmark
	for _, m := range DefaultExcludedModules {
		bs = append(bs, bench(m+".bench", "benchmarks/"+m))
	}
	bs = append(bs, bench("thread_times.polymer", "benchmarks/thread_times"))

	s := NewGenerator().Generate(bs)
	assert.Equal(t, []string{"thread_times.polymer"}, s.Names())
}

func TestGenerate_ReservedPrefixes_NoTestCase(t *testing.T) {
	s := NewGenerator().Generate([]*benchmark.Benchmark{
		bench("session_restore.cold.typical_25", "benchmarks/session_restore"),
		bench("skpicture_printer_ct", "benchmarks/skpicture_printer"),
		bench("draw_properties.top_25", "benchmarks/draw_properties"),
	})
	assert.Equal(t, []string{"draw_properties.top_25"}, s.Names())
}

func TestGenerate_GeneratedProfileArchive_NoTestCase(t *testing.T) {
	b := bench("startup.large_profile", "benchmarks/startup")
	b.GeneratedProfileArchive = "large_profile.zip"
	assert.Zero(t, NewGenerator().Generate([]*benchmark.Benchmark{b}).Len())
}

func TestGenerate_ConfigAdditions(t *testing.T) {
	g := NewGenerator()
	g.ExcludedModules["memory"] = true
	g.ReservedPrefixes = append(g.ReservedPrefixes, "tab_switching.")
	s := g.Generate([]*benchmark.Benchmark{
		bench("memory.typical_25", "benchmarks/memory"),
		bench("tab_switching.top_10", "benchmarks/tab_switching"),
		bench("thread_times.polymer", "benchmarks/thread_times"),
	})
	assert.Equal(t, []string{"thread_times.polymer"}, s.Names())
	assert.Len(t, DefaultReservedPrefixes, 2)
}

func TestGenerate_TemplateDisabledEverywhere_Dominates(t *testing.T) {
	b := bench("thread_times.polymer", "benchmarks/thread_times")
	b.Annotations = benchmark.Annotations{Disabled: benchmark.Tags("android")}
	g := NewGenerator()
	g.Template = benchmark.Annotations{Disabled: benchmark.Tags()}

	tc := g.Generate([]*benchmark.Benchmark{b}).Cases()[0]
	require.NotNil(t, tc.Annotations.Disabled)
	assert.Empty(t, tc.Annotations.Disabled)
}

func TestGenerate_DefaultTemplate_AddsChromeOSToBenchmarkAnnotations(t *testing.T) {
	b := bench("draw_properties.top_25", "benchmarks/draw_properties")
	b.Annotations = benchmark.Annotations{Disabled: benchmark.Tags("win")}

	tc := NewGenerator().Generate([]*benchmark.Benchmark{b}).Cases()[0]
	assert.Equal(t, util.StringSet{"win": true, "chromeos": true}, tc.Annotations.Disabled)
	assert.Nil(t, tc.Annotations.Enabled)
	assert.Equal(t, util.StringSet{"win": true}, b.Annotations.Disabled)
}

func TestGenerate_DefaultTemplate_SkippedOnChromeOS(t *testing.T) {
	b := bench("thread_times.polymer", "benchmarks/thread_times")

	tc := NewGenerator().Generate([]*benchmark.Benchmark{b}).Cases()[0]
	assert.Equal(t, "disabled on chromeos", tc.Annotations.SkipReason(benchmark.Tags("chromeos")))
	assert.True(t, tc.Annotations.ShouldRun(benchmark.Tags("linux")))
}

func TestGenerate_EmptyTemplate_KeepsBenchmarkAnnotations(t *testing.T) {
	b := bench("draw_properties.top_25", "benchmarks/draw_properties")
	b.Annotations = benchmark.Annotations{Disabled: benchmark.Tags("win")}
	g := NewGenerator()
	g.Template = benchmark.Annotations{}

	tc := g.Generate([]*benchmark.Benchmark{b}).Cases()[0]
	assert.Equal(t, util.StringSet{"win": true}, tc.Annotations.Disabled)
	assert.Nil(t, tc.Annotations.Enabled)
}

func TestNewGenerator_TemplateIsACopy(t *testing.T) {
	g := NewGenerator()
	g.Template.Disabled["android"] = true
	assert.Equal(t, []string{"chromeos"}, DefaultTemplate.Disabled.SortedKeys())
}

func TestGenerate_TemplateUnion(t *testing.T) {
	b := bench("tab_switching.top_10", "benchmarks/tab_switching")
	b.Annotations = benchmark.Annotations{Enabled: benchmark.Tags("has tabs"), Disabled: benchmark.Tags("android")}
	g := NewGenerator()
	g.Template = benchmark.Annotations{Disabled: benchmark.Tags("chromeos")}

	tc := g.Generate([]*benchmark.Benchmark{b}).Cases()[0]
	assert.Equal(t, []string{"android", "chromeos"}, tc.Annotations.Disabled.SortedKeys())
	assert.Equal(t, []string{"has tabs"}, tc.Annotations.Enabled.SortedKeys())
}

func TestSinglePage_ThreePages_OnePageWithSkipWaits(t *testing.T) {
	foo := bench("Foo", "benchmarks/foo")
	reduced := SinglePage(foo)

	ps := reduced.CreatePageSet(&benchmark.Options{})
	require.Equal(t, 1, ps.Len())
	assert.Equal(t, "http://one/", ps.Pages()[0].URL)
	assert.True(t, ps.Pages()[0].SkipWaits)
	assert.Same(t, ps, ps.Pages()[0].PageSet)

	original := foo.CreatePageSet(&benchmark.Options{})
	assert.Equal(t, 3, original.Len())
	assert.False(t, original.Pages()[0].SkipWaits)
}

func TestSinglePage_ForcesSingleRepeat_OriginalUntouched(t *testing.T) {
	b := bench("tab_switching.five_blank_pages", "benchmarks/tab_switching")
	b.Options = map[string]string{benchmark.OptPagesetRepeat: "10", benchmark.OptStoryLabelFilter: "x"}

	reduced := SinglePage(b)
	assert.Equal(t, "1", reduced.Options[benchmark.OptPagesetRepeat])
	assert.Equal(t, "1", reduced.Options[benchmark.OptPageRepeat])
	assert.Equal(t, "x", reduced.Options[benchmark.OptStoryLabelFilter])
	assert.Equal(t, map[string]string{benchmark.OptPagesetRepeat: "10", benchmark.OptStoryLabelFilter: "x"}, b.Options)
}

func TestSinglePage_SharedPageSetNotMutated(t *testing.T) {
	shared := page.NewPageSet("shared", "")
	shared.AddURLs("http://a/", "http://b/")
	b := bench("x", "benchmarks/x")
	b.PageSet = func(*benchmark.Options) *page.PageSet { return shared }

	ps := SinglePage(b).CreatePageSet(&benchmark.Options{})
	assert.Equal(t, 1, ps.Len())
	assert.Equal(t, 2, shared.Len())
	assert.False(t, shared.Pages()[0].SkipWaits)
}

func TestSinglePage_EmptyPageSet(t *testing.T) {
	b := bench("x", "benchmarks/x")
	b.PageSet = func(*benchmark.Options) *page.PageSet { return page.NewPageSet("empty", "") }
	assert.Zero(t, SinglePage(b).CreatePageSet(&benchmark.Options{}).Len())
}

func TestLoadSuite_LastBenchmarkPerModule(t *testing.T) {
	reg := benchmark.NewRegistry()
	reg.Register(bench("thread_times.key_silk_cases", "benchmarks/thread_times"))
	reg.Register(bench("thread_times.polymer", "benchmarks/thread_times"))
	reg.Register(bench("spaceport", "benchmarks/spaceport"))
	reg.Register(bench("draw_properties.top_25", "benchmarks/draw_properties"))
	reg.Register(bench("unrelated", "contrib/unrelated"))

	s := LoadSuite(reg, "benchmarks", NewGenerator())
	assert.Equal(t, []string{"thread_times.polymer", "draw_properties.top_25"}, s.Names())
}

func TestLoadSuite_NothingDiscovered(t *testing.T) {
	s := LoadSuite(benchmark.NewRegistry(), "benchmarks", NewGenerator())
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Names())
}
