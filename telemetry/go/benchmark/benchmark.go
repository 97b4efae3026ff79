// Package benchmark declares what a Telemetry-style benchmark is (a page set,
// a measurement, default options and platform annotations), keeps the
// registry that declarations add themselves to, and runs benchmarks.
package benchmark

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.skia.org/perfsmoke/go/skerr"
	"go.skia.org/perfsmoke/go/sklog"
	"go.skia.org/perfsmoke/go/util"
	"go.skia.org/perfsmoke/telemetry/go/action"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
	"go.skia.org/perfsmoke/telemetry/go/page"
)

// Keys of the default option mapping a benchmark may declare.
const (
	OptPagesetRepeat    = "pageset_repeat"
	OptPageRepeat       = "page_repeat"
	OptStoryLabelFilter = "story_label_filter"
	OptOutputFormat     = "output_format"
)

// Exit statuses returned by Run.
const (
	StatusSuccess = 0
	StatusFailure = 1
	// StatusBadOptions means the benchmark never started.
	StatusBadOptions = 2
)

// PageSetFunc builds a fresh page set for a run.
type PageSetFunc func(opts *Options) *page.PageSet

// TestFunc builds the measurement a run records on each page.
type TestFunc func(opts *Options) measurement.Measurement

// Arg is a command-line argument a benchmark adds. Its value ends up in
// Options.Extra under Name.
type Arg struct {
	Name    string
	Usage   string
	Default string
	// Bool args take no value on the command line.
	Bool bool
}

// Benchmark is a named pairing of a page set with a measurement.
type Benchmark struct {
	// Name is unique within a discovery pass, e.g. "thread_times.polymer".
	Name string
	// Module groups benchmarks declared together, e.g. "benchmarks/thread_times".
	Module      string
	Description string

	// Test builds the measurement. nil means measurement.PageLoad.
	Test TestFunc
	// PageSet builds the pages to run.
	PageSet PageSetFunc
	// Options is the default option mapping. Explicit options win over it.
	Options map[string]string

	Annotations Annotations

	// ExtraBrowserArgs are appended to the browser command line.
	ExtraBrowserArgs []string
	// SetExtraBrowserOptions, if set, adjusts the run's options before the
	// browser is launched.
	SetExtraBrowserOptions func(opts *Options)
	// Args are the benchmark's own command-line arguments.
	Args []Arg
	// ValueCanBeAdded filters reported values. nil keeps everything.
	ValueCanBeAdded measurement.ValuePredicate
	// GeneratedProfileArchive names a browser profile the benchmark needs
	// generated before it can run.
	GeneratedProfileArchive string
}

// Copy returns a copy of b that can be changed without affecting b. The
// factory funcs are shared.
func (b *Benchmark) Copy() *Benchmark {
	rv := *b
	rv.Options = util.CopyStringMap(b.Options)
	rv.Annotations = b.Annotations.Copy()
	rv.ExtraBrowserArgs = util.CopyStringSlice(b.ExtraBrowserArgs)
	rv.Args = append([]Arg(nil), b.Args...)
	return &rv
}

// CreatePageSet builds the page set for a run, applying the story label
// filter if one is set.
func (b *Benchmark) CreatePageSet(opts *Options) *page.PageSet {
	ps := b.PageSet(opts)
	if opts.StoryLabelFilter != "" {
		ps = ps.FilterByLabel(opts.StoryLabelFilter)
	}
	return ps
}

// CreatePageTest builds the measurement for a run.
func (b *Benchmark) CreatePageTest(opts *Options) measurement.Measurement {
	if b.Test == nil {
		return measurement.PageLoad()
	}
	return b.Test(opts)
}

// Executor runs a prepared benchmark somewhere other than the in-process
// story runner.
type Executor interface {
	Execute(ctx context.Context, b *Benchmark, opts *Options) int
}

// Prepare returns a copy of opts with b's defaults, args and browser options
// applied.
func (b *Benchmark) Prepare(opts *Options) (*Options, error) {
	rv := opts.Copy()
	if err := rv.MergeDefaults(b.Options); err != nil {
		return nil, skerr.Wrapf(err, "benchmark %s", b.Name)
	}
	for _, arg := range b.Args {
		if _, ok := rv.Extra[arg.Name]; !ok && arg.Default != "" {
			rv.Extra[arg.Name] = arg.Default
		}
	}
	rv.ExtraBrowserArgs = append(rv.ExtraBrowserArgs, b.ExtraBrowserArgs...)
	if b.SetExtraBrowserOptions != nil {
		b.SetExtraBrowserOptions(rv)
	}
	if !measurement.ValidOutputFormat(rv.OutputFormat) {
		return nil, skerr.Fmt("unknown output format %q", rv.OutputFormat)
	}
	if rv.ResultsLabel == "" {
		rv.ResultsLabel = uuid.New().String()
	}
	return rv, nil
}

// Run runs the benchmark and returns its exit status, StatusSuccess if every
// page succeeded.
func (b *Benchmark) Run(ctx context.Context, opts *Options) int {
	prepared, err := b.Prepare(opts)
	if err != nil {
		sklog.Errorf("Not running %s: %s", b.Name, err)
		return StatusBadOptions
	}
	if prepared.Executor != nil {
		return prepared.Executor.Execute(ctx, b, prepared)
	}
	return RunStories(ctx, b, prepared)
}

// Options control a single benchmark run.
type Options struct {
	PagesetRepeat    int
	PageRepeat       int
	StoryLabelFilter string
	OutputFormat     string
	// Output receives the results. nil discards them.
	Output io.Writer
	// Browser is the browser type, e.g. "release" or "android-chrome".
	Browser          string
	ExtraBrowserArgs []string
	// Platform holds the tags of the platform the run happens on.
	Platform util.StringSet
	// Extra holds values of benchmark-declared Args and unrecognized defaults.
	Extra map[string]string

	// NavigateTimeout replaces page.DefaultNavigateTimeout for pages that
	// don't set their own.
	NavigateTimeout time.Duration

	Launcher action.Launcher
	Executor Executor
	// ResultsLabel identifies the run in its results.
	ResultsLabel string
}

// Copy returns a deep copy of o.
func (o *Options) Copy() *Options {
	rv := *o
	rv.ExtraBrowserArgs = util.CopyStringSlice(o.ExtraBrowserArgs)
	rv.Platform = o.Platform.Copy()
	rv.Extra = util.CopyStringMap(o.Extra)
	if rv.Extra == nil {
		rv.Extra = map[string]string{}
	}
	return &rv
}

// MergeDefaults fills in options that are still unset from defaults.
func (o *Options) MergeDefaults(defaults map[string]string) error {
	if o.Extra == nil {
		o.Extra = map[string]string{}
	}
	for k, v := range defaults {
		switch k {
		case OptPagesetRepeat, OptPageRepeat:
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return skerr.Fmt("invalid %s %q", k, v)
			}
			dst := &o.PagesetRepeat
			if k == OptPageRepeat {
				dst = &o.PageRepeat
			}
			if *dst == 0 {
				*dst = n
			}
		case OptStoryLabelFilter:
			if o.StoryLabelFilter == "" {
				o.StoryLabelFilter = v
			}
		case OptOutputFormat:
			if o.OutputFormat == "" {
				o.OutputFormat = v
			}
		default:
			if _, ok := o.Extra[k]; !ok {
				o.Extra[k] = v
			}
		}
	}
	if o.PagesetRepeat == 0 {
		o.PagesetRepeat = 1
	}
	if o.PageRepeat == 0 {
		o.PageRepeat = 1
	}
	return nil
}

// Bool returns the value of a boolean benchmark arg.
func (o *Options) Bool(name string) bool {
	v, err := strconv.ParseBool(o.Extra[name])
	return err == nil && v
}
