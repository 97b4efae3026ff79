// Package smoke turns the discovered benchmarks into a suite of smoke tests.
// Each test runs the first page of one benchmark per module, once, so the
// whole suite finishes quickly while still touching every module.
package smoke

import (
	"path"
	"strings"

	"go.skia.org/perfsmoke/go/sklog"
	"go.skia.org/perfsmoke/go/util"
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/page"
)

// DefaultExcludedModules are modules whose benchmarks are never smoke tested.
var DefaultExcludedModules = []string{
	"dom_perf",                   // Always fails on cq bot.
	"image_decoding",             // Always fails on Mac10.9 Tests builder.
	"indexeddb_perf",             // Always fails on Win7 & Android Tests builder.
	"rasterize_and_record_micro", // Always fails on cq bot.
	"spaceport",                  // Takes 451 seconds.
	"speedometer",                // Takes 101 seconds.
	"jetstream",                  // Takes 206 seconds.
}

// DefaultReservedPrefixes are benchmark name prefixes smoke testing doesn't
// support yet.
var DefaultReservedPrefixes = []string{
	"session_restore",
	"skpicture_printer",
}

// DefaultTemplate is where every smoke test's annotations start.
// ChromeOS is disabled, crbug.com/351114.
var DefaultTemplate = benchmark.Annotations{Disabled: benchmark.Tags("chromeos")}

// Generator builds smoke suites.
type Generator struct {
	// ExcludedModules holds module base names, e.g. "spaceport".
	ExcludedModules util.StringSet
	// ReservedPrefixes are benchmark name prefixes to skip.
	ReservedPrefixes []string
	// Template holds the annotations every smoke test starts with. They are
	// merged with each benchmark's own.
	Template benchmark.Annotations
}

// NewGenerator returns a Generator with the default exclusions and template.
func NewGenerator() *Generator {
	return &Generator{
		ExcludedModules:  util.NewStringSet(DefaultExcludedModules),
		ReservedPrefixes: util.CopyStringSlice(DefaultReservedPrefixes),
		Template:         DefaultTemplate.Copy(),
	}
}

// Exclusion returns why b gets no smoke test, or "" if it gets one.
func (g *Generator) Exclusion(b *benchmark.Benchmark) string {
	if g.ExcludedModules[path.Base(b.Module)] {
		return "excluded module " + path.Base(b.Module)
	}
	for _, prefix := range g.ReservedPrefixes {
		if strings.HasPrefix(b.Name, prefix) {
			return "reserved prefix " + prefix
		}
	}
	if b.GeneratedProfileArchive != "" {
		return "needs generated profile " + b.GeneratedProfileArchive
	}
	return ""
}

// Generate returns a suite with one test per benchmark that passes the
// filters, in input order.
func (g *Generator) Generate(benchmarks []*benchmark.Benchmark) *Suite {
	s := &Suite{}
	for _, b := range benchmarks {
		if reason := g.Exclusion(b); reason != "" {
			sklog.Debugf("No smoke test for %s: %s", b.Name, reason)
			continue
		}
		s.Add(&TestCase{
			Name:        b.Name,
			Benchmark:   SinglePage(b),
			Annotations: benchmark.MergeAnnotations(g.Template, b.Annotations),
		})
	}
	return s
}

// SinglePage returns a copy of b that runs only the first page of its page
// set, with intra-page waits skipped, exactly once. b is not modified.
func SinglePage(b *benchmark.Benchmark) *benchmark.Benchmark {
	rv := b.Copy()
	if rv.Options == nil {
		rv.Options = map[string]string{}
	}
	rv.Options[benchmark.OptPagesetRepeat] = "1"
	rv.Options[benchmark.OptPageRepeat] = "1"

	createPageSet := b.PageSet
	rv.PageSet = func(opts *benchmark.Options) *page.PageSet {
		ps := createPageSet(opts).Copy()
		if ps.Len() == 0 {
			return ps
		}
		first := ps.UserStories[0]
		first.SkipWaits = true
		ps.UserStories = []*page.Page{first}
		return ps
	}
	return rv
}

// LoadSuite discovers the benchmarks under root, keeping the last benchmark
// of each module, and generates their smoke suite.
func LoadSuite(reg *benchmark.Registry, root string, g *Generator) *Suite {
	return g.Generate(reg.Discover(root, false))
}
