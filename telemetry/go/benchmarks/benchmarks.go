// Package benchmarks declares the perf benchmarks. Each file is one module and
// registers its benchmarks with the default registry from init, so importing
// this package for side effects makes them discoverable under Root.
package benchmarks

import (
	"go.skia.org/perfsmoke/telemetry/go/benchmark"
	"go.skia.org/perfsmoke/telemetry/go/page"
)

// Root is the module prefix every benchmark here is registered under.
const Root = "benchmarks"

func module(name string) string {
	return Root + "/" + name
}

func staticPageSet(f func() *page.PageSet) benchmark.PageSetFunc {
	return func(*benchmark.Options) *page.PageSet { return f() }
}
