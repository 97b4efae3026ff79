package benchmark

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skia.org/perfsmoke/go/util"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
	"go.skia.org/perfsmoke/telemetry/go/page"
)

func TestMergeDefaults_ExplicitOptionsWin(t *testing.T) {
	opts := &Options{PageRepeat: 3}
	require.NoError(t, opts.MergeDefaults(map[string]string{
		OptPagesetRepeat:    "10",
		OptPageRepeat:       "2",
		OptStoryLabelFilter: "fastpath",
		"report_silk":       "true",
	}))
	assert.Equal(t, 10, opts.PagesetRepeat)
	assert.Equal(t, 3, opts.PageRepeat)
	assert.Equal(t, "fastpath", opts.StoryLabelFilter)
	assert.Equal(t, "true", opts.Extra["report_silk"])
}

func TestMergeDefaults_RepeatsDefaultToOne(t *testing.T) {
	opts := &Options{}
	require.NoError(t, opts.MergeDefaults(nil))
	assert.Equal(t, 1, opts.PagesetRepeat)
	assert.Equal(t, 1, opts.PageRepeat)
}

func TestMergeDefaults_BadRepeat(t *testing.T) {
	assert.Error(t, (&Options{}).MergeDefaults(map[string]string{OptPagesetRepeat: "many"}))
	assert.Error(t, (&Options{}).MergeDefaults(map[string]string{OptPageRepeat: "0"}))
}

func TestOptionsCopy_Independent(t *testing.T) {
	opts := &Options{
		ExtraBrowserArgs: []string{"--a"},
		Platform:         util.NewStringSet([]string{"linux"}),
		Extra:            map[string]string{"k": "v"},
	}
	c := opts.Copy()
	c.ExtraBrowserArgs[0] = "--b"
	c.Platform["win"] = true
	c.Extra["k"] = "w"
	assert.Equal(t, []string{"--a"}, opts.ExtraBrowserArgs)
	assert.False(t, opts.Platform["win"])
	assert.Equal(t, "v", opts.Extra["k"])
}

func TestPrepare_AppliesDeclaration(t *testing.T) {
	b := decl("tab_switching.plugin_power_saver", "benchmarks/tab_switching")
	b.Options = map[string]string{OptPagesetRepeat: "10"}
	b.ExtraBrowserArgs = []string{"--enable-plugin-power-saver"}
	b.Args = []Arg{{Name: "report-silk-details", Bool: true, Default: "false"}}
	b.SetExtraBrowserOptions = func(o *Options) {
		o.ExtraBrowserArgs = append(o.ExtraBrowserArgs, "--disable-gpu")
	}

	opts := &Options{ExtraBrowserArgs: []string{"--user"}}
	prepared, err := b.Prepare(opts)
	require.NoError(t, err)
	assert.Equal(t, 10, prepared.PagesetRepeat)
	assert.Equal(t, []string{"--user", "--enable-plugin-power-saver", "--disable-gpu"}, prepared.ExtraBrowserArgs)
	assert.Equal(t, "false", prepared.Extra["report-silk-details"])
	assert.False(t, prepared.Bool("report-silk-details"))
	assert.NotEmpty(t, prepared.ResultsLabel)

	// The caller's options are untouched.
	assert.Equal(t, []string{"--user"}, opts.ExtraBrowserArgs)
	assert.Zero(t, opts.PagesetRepeat)
}

func TestPrepare_UnknownOutputFormat(t *testing.T) {
	_, err := decl("x", "m").Prepare(&Options{OutputFormat: "html"})
	assert.Error(t, err)
}

func TestCreatePageSet_StoryLabelFilter(t *testing.T) {
	b := decl("x", "m")
	b.PageSet = func(*Options) *page.PageSet {
		ps := page.NewPageSet("x", "")
		ps.AddURLs("http://a/", "http://b/")
		ps.Pages()[1].Labels = util.NewStringSet([]string{"fastpath"})
		return ps
	}
	assert.Equal(t, 2, b.CreatePageSet(&Options{}).Len())
	filtered := b.CreatePageSet(&Options{StoryLabelFilter: "fastpath"})
	require.Equal(t, 1, filtered.Len())
	assert.Equal(t, "http://b/", filtered.Pages()[0].URL)
}

func TestCreatePageTest_DefaultsToPageLoad(t *testing.T) {
	b := decl("x", "m")
	assert.Equal(t, "page_load", b.CreatePageTest(&Options{}).Name())
	b.Test = func(*Options) measurement.Measurement { return measurement.Smoothness() }
	assert.Equal(t, "smoothness", b.CreatePageTest(&Options{}).Name())
}

func TestBenchmarkCopy_Independent(t *testing.T) {
	b := decl("x", "m")
	b.Options = map[string]string{OptPagesetRepeat: "10"}
	b.Annotations = Annotations{Disabled: Tags("win")}
	c := b.Copy()
	c.Options[OptPagesetRepeat] = "1"
	c.Annotations.Disabled["mac"] = true
	assert.Equal(t, "10", b.Options[OptPagesetRepeat])
	assert.Equal(t, []string{"win"}, b.Annotations.Disabled.SortedKeys())
}

type fakeExecutor struct {
	ran  *Benchmark
	opts *Options
}

func (f *fakeExecutor) Execute(_ context.Context, b *Benchmark, opts *Options) int {
	f.ran, f.opts = b, opts
	return 7
}

func TestRun_UsesExecutor(t *testing.T) {
	b := decl("x", "m")
	b.Options = map[string]string{OptPageRepeat: "4"}
	exe := &fakeExecutor{}
	assert.Equal(t, 7, b.Run(context.Background(), &Options{Executor: exe}))
	assert.Same(t, b, exe.ran)
	assert.Equal(t, 4, exe.opts.PageRepeat)
}

func TestRun_BadOptions(t *testing.T) {
	b := decl("x", "m")
	b.Options = map[string]string{OptPageRepeat: "x"}
	assert.Equal(t, StatusBadOptions, b.Run(context.Background(), &Options{}))
}
