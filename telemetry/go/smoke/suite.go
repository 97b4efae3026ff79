package smoke

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/olekukonko/tablewriter"
	"go.skia.org/perfsmoke/go/metrics2"
	"go.skia.org/perfsmoke/go/skerr"
	"go.skia.org/perfsmoke/go/timer"
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
)

const (
	metricDuration = "perfsmoke_test_duration_s"
	metricResults  = "perfsmoke_test_results"
)

// TestCase is the smoke test of a single benchmark.
type TestCase struct {
	// Name is the benchmark's name.
	Name string
	// Benchmark is the single-page copy of the benchmark.
	Benchmark *benchmark.Benchmark
	// Annotations are the benchmark's annotations merged with the template's.
	Annotations benchmark.Annotations
}

// Run runs the benchmark once, with results discarded, whatever repeat counts
// opts asks for. It returns an error naming
// the benchmark if the run's status is non-zero. The time taken is logged
// either way.
func (tc *TestCase) Run(ctx context.Context, opts *benchmark.Options) error {
	defer timer.New(ctx, fmt.Sprintf("Benchmark %s run takes", tc.Name)).Stop()
	o := opts.Copy()
	o.OutputFormat = measurement.OutputNone
	o.PagesetRepeat = 1
	o.PageRepeat = 1
	if status := tc.Benchmark.Run(ctx, o); status != benchmark.StatusSuccess {
		return skerr.Fmt("Failed: %s", tc.Name)
	}
	return nil
}

// Outcome of one test case.
type Outcome string

const (
	Pass Outcome = "PASS"
	Fail Outcome = "FAIL"
	Skip Outcome = "SKIP"
)

// Result of one test case in a suite run.
type Result struct {
	Name     string
	Outcome  Outcome
	Duration time.Duration
	// Reason is the skip reason or the failure.
	Reason string
}

// Report is the outcome of a suite run, in suite order.
type Report struct {
	Results []Result
}

// Count returns how many results have outcome o.
func (r *Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Write renders the report as a table. Outcomes are colored when w is a
// terminal.
func (r *Report) Write(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Benchmark", "Result", "Time", "Reason"})
	table.SetAutoWrapText(false)
	for _, res := range r.Results {
		table.Append([]string{res.Name, colorOutcome(res.Outcome), timer.Format(res.Duration), res.Reason})
	}
	table.SetFooter([]string{"", fmt.Sprintf("%d/%d passed", r.Count(Pass), len(r.Results)), "", fmt.Sprintf("%d skipped", r.Count(Skip))})
	table.Render()
}

func colorOutcome(o Outcome) string {
	switch o {
	case Pass:
		return color.GreenString(string(o))
	case Fail:
		return color.RedString(string(o))
	}
	return color.YellowString(string(o))
}

// Suite is an ordered collection of smoke tests.
type Suite struct {
	cases []*TestCase
}

// Add appends tc.
func (s *Suite) Add(tc *TestCase) {
	s.cases = append(s.cases, tc)
}

// Cases returns the test cases in order.
func (s *Suite) Cases() []*TestCase {
	return append([]*TestCase(nil), s.cases...)
}

// Len returns the number of test cases.
func (s *Suite) Len() int {
	return len(s.cases)
}

// Names returns the test case names in order.
func (s *Suite) Names() []string {
	rv := make([]string, 0, len(s.cases))
	for _, tc := range s.cases {
		rv = append(rv, tc.Name)
	}
	return rv
}

// Run runs every test case in order, one at a time. Cases whose annotations
// rule out opts.Platform are skipped. The returned error aggregates every
// failure; the report is complete either way.
func (s *Suite) Run(ctx context.Context, opts *benchmark.Options) (*Report, error) {
	report := &Report{}
	var errs *multierror.Error
	for _, tc := range s.cases {
		if err := ctx.Err(); err != nil {
			errs = multierror.Append(errs, skerr.Wrapf(err, "suite interrupted before %s", tc.Name))
			break
		}
		if reason := tc.Annotations.SkipReason(opts.Platform); reason != "" {
			report.Results = append(report.Results, Result{Name: tc.Name, Outcome: Skip, Reason: reason})
			recordResult(tc.Name, Skip, 0)
			continue
		}
		t := timer.New(ctx, tc.Name)
		err := tc.Run(ctx, opts)
		res := Result{Name: tc.Name, Outcome: Pass, Duration: t.Elapsed()}
		if err != nil {
			res.Outcome = Fail
			res.Reason = skerr.Unwrap(err).Error()
			errs = multierror.Append(errs, err)
		}
		report.Results = append(report.Results, res)
		recordResult(tc.Name, res.Outcome, res.Duration)
	}
	return report, errs.ErrorOrNil()
}

func recordResult(name string, o Outcome, d time.Duration) {
	metrics2.GetCounter(metricResults, map[string]string{
		"benchmark": name,
		"result":    strings.ToLower(string(o)),
	}).Inc(1)
	if o != Skip {
		metrics2.GetFloat64SummaryMetric(metricDuration, map[string]string{"benchmark": name}).Observe(d.Seconds())
	}
}

// RunTests runs the suite as Go subtests, one per test case, named after the
// benchmark.
func (s *Suite) RunTests(t *testing.T, opts *benchmark.Options) {
	for _, tc := range s.cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			if reason := tc.Annotations.SkipReason(opts.Platform); reason != "" {
				t.Skip(reason)
			}
			if err := tc.Run(context.Background(), opts); err != nil {
				t.Error(err)
			}
		})
	}
}
