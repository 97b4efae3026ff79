// Package run_benchmark runs benchmarks through Chromium's
// tools/perf/run_benchmark instead of the in-process story runner.
package run_benchmark

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.skia.org/perfsmoke/go/exec"
	"go.skia.org/perfsmoke/go/sklog"
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
)

const (
	defaultPython   = "vpython3"
	runBenchmarkCmd = "tools/perf/run_benchmark"
)

var nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9 ]`)

// Executor is a benchmark.Executor that shells out to Telemetry.
type Executor struct {
	// ChromiumSrcDir is the checkout run_benchmark is run from.
	ChromiumSrcDir string
	// Python defaults to vpython3.
	Python string
	// Timeout bounds each run_benchmark process. Zero means no limit.
	Timeout time.Duration
}

// New returns an Executor for the Chromium checkout at srcDir.
func New(srcDir string, timeout time.Duration) *Executor {
	return &Executor{
		ChromiumSrcDir: srcDir,
		Python:         defaultPython,
		Timeout:        timeout,
	}
}

// GetCommand returns the run_benchmark command line for b. opts must already
// be prepared with b.Prepare. A page set narrowed to a single page is passed
// on as a story filter.
func (e *Executor) GetCommand(b *benchmark.Benchmark, opts *benchmark.Options) []string {
	python := e.Python
	if python == "" {
		python = defaultPython
	}
	cmd := []string{python, runBenchmarkCmd, "--benchmarks", b.Name}

	if ps := b.CreatePageSet(opts); ps.Len() == 1 {
		// story-filter is a regex; story names can carry ":" or "/".
		cmd = append(cmd, "--story-filter", fmt.Sprintf("^%s$", replaceNonAlphaNumeric(ps.Pages()[0].DisplayName())))
	}
	if opts.StoryLabelFilter != "" {
		cmd = append(cmd, "--story-tag-filter", opts.StoryLabelFilter)
	}

	cmd = append(cmd,
		"--pageset-repeat", strconv.Itoa(opts.PagesetRepeat),
		"--page-repeat", strconv.Itoa(opts.PageRepeat),
	)
	if opts.Browser != "" {
		cmd = append(cmd, "--browser", opts.Browser)
	}
	format := opts.OutputFormat
	if format == "" {
		format = measurement.OutputNone
	}
	cmd = append(cmd, "--output-format", format)
	if opts.ResultsLabel != "" {
		cmd = append(cmd, "--results-label", opts.ResultsLabel)
	}
	if len(opts.ExtraBrowserArgs) > 0 {
		cmd = append(cmd, "--extra-browser-args", strings.Join(opts.ExtraBrowserArgs, " "))
	}
	cmd = append(cmd, benchmarkArgs(b, opts)...)
	return cmd
}

func benchmarkArgs(b *benchmark.Benchmark, opts *benchmark.Options) []string {
	rv := []string{}
	for _, arg := range b.Args {
		flag := "--" + arg.Name
		if arg.Bool {
			if opts.Bool(arg.Name) {
				rv = append(rv, flag)
			}
			continue
		}
		if v := opts.Extra[arg.Name]; v != "" {
			rv = append(rv, flag, v)
		}
	}
	return rv
}

// Execute implements benchmark.Executor. The exit status of run_benchmark is
// the benchmark's status.
func (e *Executor) Execute(ctx context.Context, b *benchmark.Benchmark, opts *benchmark.Options) int {
	args := e.GetCommand(b, opts)
	cmd := &exec.Command{
		Name:      args[0],
		Args:      args[1:],
		Dir:       e.ChromiumSrcDir,
		Stdout:    opts.Output,
		LogStderr: true,
		Timeout:   e.Timeout,
	}
	if err := exec.Run(ctx, cmd); err != nil {
		sklog.Errorf("run_benchmark %s failed: %s", b.Name, err)
		return exec.ExitCode(err)
	}
	return benchmark.StatusSuccess
}

// replaceNonAlphaNumeric replaces every non alpha-numeric character with ".",
// which matches any character in the story-filter regex.
func replaceNonAlphaNumeric(s string) string {
	return nonAlphanumericRegex.ReplaceAllString(s, ".")
}

var _ benchmark.Executor = (*Executor)(nil)
