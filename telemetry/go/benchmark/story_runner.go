package benchmark

import (
	"context"
	"time"

	"go.skia.org/perfsmoke/go/skerr"
	"go.skia.org/perfsmoke/go/sklog"
	"go.skia.org/perfsmoke/go/util"
	"go.skia.org/perfsmoke/telemetry/go/action"
	"go.skia.org/perfsmoke/telemetry/go/measurement"
	"go.skia.org/perfsmoke/telemetry/go/page"
)

// RunStories runs b in-process with opts.Launcher. Every page is run
// PageRepeat times per page set repeat, each in a fresh tab. A failing page is
// logged and recorded; the run carries on with the next page.
func RunStories(ctx context.Context, b *Benchmark, opts *Options) int {
	if opts.Launcher == nil {
		sklog.Errorf("Not running %s: no browser launcher configured", b.Name)
		return StatusBadOptions
	}
	ps := b.CreatePageSet(opts)
	if opts.NavigateTimeout > 0 {
		ps = withNavigateTimeout(ps, opts.NavigateTimeout)
	}
	if ps.Len() == 0 {
		sklog.Warningf("%s has no pages to run", b.Name)
		return StatusSuccess
	}
	test := b.CreatePageTest(opts)
	results := measurement.NewResults(opts.ResultsLabel, b.ValueCanBeAdded)

	br, err := opts.Launcher.Launch(ctx, opts.ExtraBrowserArgs)
	if err != nil {
		sklog.Errorf("Failed to launch browser for %s: %s", b.Name, err)
		return StatusFailure
	}
	defer util.Close(br)

	failed := 0
	for i := 0; i < opts.PagesetRepeat; i++ {
		for _, p := range ps.Pages() {
			for j := 0; j < opts.PageRepeat; j++ {
				if err := ctx.Err(); err != nil {
					sklog.Errorf("%s interrupted: %s", b.Name, err)
					return StatusFailure
				}
				if err := runPage(ctx, br, p, test, results); err != nil {
					sklog.Errorf("%s: page %s failed: %s", b.Name, p.DisplayName(), err)
					results.AddFailure(p.DisplayName(), err)
					failed++
				}
			}
		}
	}

	if opts.Output != nil {
		if err := results.Write(opts.Output, opts.OutputFormat); err != nil {
			sklog.Errorf("Failed to write results of %s: %s", b.Name, err)
			return StatusFailure
		}
	}
	if failed > 0 {
		return StatusFailure
	}
	return StatusSuccess
}

func withNavigateTimeout(ps *page.PageSet, d time.Duration) *page.PageSet {
	rv := ps.Copy()
	for _, p := range rv.Pages() {
		if p.NavigateTimeout == 0 {
			p.NavigateTimeout = d
		}
	}
	return rv
}

func runPage(ctx context.Context, br action.Browser, p *page.Page, test measurement.Measurement, results *measurement.Results) error {
	tab, closeTab, err := br.NewTab(ctx)
	if err != nil {
		return skerr.Wrapf(err, "opening tab")
	}
	defer closeTab()
	if err := p.RunNavigateSteps(ctx, tab); err != nil {
		return skerr.Wrap(err)
	}
	if err := p.RunPageInteractions(ctx, tab); err != nil {
		return skerr.Wrap(err)
	}
	return skerr.Wrap(test.Measure(ctx, p, tab, results))
}
