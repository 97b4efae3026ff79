package pagesets

import (
	"go.skia.org/perfsmoke/telemetry/go/page"
)

// Page sets of the long-running score suites. Each page publishes its score
// on window once the suite finishes.

// DomPerf runs the DOM micro-benchmarks.
func DomPerf() *page.PageSet {
	return newPageSet("dom_perf", "", nil,
		"file://dom_perf/run.html?run=Accessors",
		"file://dom_perf/run.html?run=CloneNodes",
		"file://dom_perf/run.html?run=CreateNodes",
	)
}

// IndexedDB runs the IndexedDB micro-benchmarks.
func IndexedDB() *page.PageSet {
	return newPageSet("indexeddb_perf", "", nil, "file://indexeddb_perf/perf_test.html")
}

// ImageDecoding decodes a large image.
func ImageDecoding() *page.PageSet {
	return newPageSet("image_decoding", "", nil, "file://image_decoding/image_decoding.html?gif")
}

// RasterizeAndRecordMicro reuses the top 25 sites.
func RasterizeAndRecordMicro() *page.PageSet {
	return Top25Smooth()
}

// Spaceport is the spaceport.io canvas benchmark.
func Spaceport() *page.PageSet {
	return newPageSet("spaceport", "", nil, "file://spaceport/index.html")
}

// Speedometer is the Speedometer suite.
func Speedometer() *page.PageSet {
	return newPageSet("speedometer", "data/speedometer.json", nil, "http://browserbench.org/Speedometer/")
}

// JetStream is the JetStream suite.
func JetStream() *page.PageSet {
	return newPageSet("jetstream", "data/jetstream.json", nil, "http://browserbench.org/JetStream/")
}

// SessionRestore pages are loaded into a profile before the browser restarts.
func SessionRestore() *page.PageSet {
	return newPageSet("session_restore", "", nil, "about:blank")
}

// SkpicturePrinter captures skia pictures of the top 25 sites.
func SkpicturePrinter() *page.PageSet {
	return Top25Smooth()
}
