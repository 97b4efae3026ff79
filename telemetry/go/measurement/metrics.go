package measurement

const (
	loadTimeJS   = `performance.timing.loadEventEnd - performance.timing.navigationStart`
	domReadyJS   = `performance.timing.domContentLoadedEventEnd - performance.timing.navigationStart`
	firstPaintJS = `(performance.getEntriesByName('first-paint')[0] || {startTime: 0}).startTime`
	// Frames painted since navigation, sampled by the rAF counter that
	// frameCounterJS installs.
	frameCounterJS = `(function() {
  if (window.__perfsmokeFrames === undefined) {
    window.__perfsmokeFrames = 0;
    var tick = function() { window.__perfsmokeFrames++; requestAnimationFrame(tick); };
    requestAnimationFrame(tick);
  }
  return window.__perfsmokeFrames;
})()`
	meanFrameTimeJS = `(function() {
  var frames = window.__perfsmokeFrames || 0;
  return frames ? performance.now() / frames : 0;
})()`
	cpuPerSecondJS = `(function() {
  var busy = performance.getEntriesByType('longtask').reduce(function(a, e) { return a + e.duration; }, 0);
  return busy / (performance.now() / 1000);
})()`
	cpuPerFrameJS = `(function() {
  var busy = performance.getEntriesByType('longtask').reduce(function(a, e) { return a + e.duration; }, 0);
  return busy / Math.max(window.__perfsmokeFrames || 0, 1);
})()`
	layerCountJS     = `document.querySelectorAll('*').length`
	visibilityTimeJS = `(function() {
  var e = performance.getEntriesByType('visibility-state').filter(function(x) { return x.name === 'visible'; })[0];
  return e ? e.startTime : performance.now();
})()`
	heapJS = `performance.memory ? performance.memory.usedJSHeapSize / 1024 : 0`
)

// PageLoad records load timings.
func PageLoad() *JSMetrics {
	return NewJSMetrics("page_load",
		Metric{Name: "load_time", Units: "ms", Expression: loadTimeJS},
		Metric{Name: "dom_content_loaded", Units: "ms", Expression: domReadyJS},
		Metric{Name: "first_paint", Units: "ms", Expression: firstPaintJS},
	)
}

// ThreadTimes records main-thread activity per frame and per second. Silk
// details add frame counts and mean frame time.
func ThreadTimes(reportSilkDetails bool) *JSMetrics {
	metrics := []Metric{
		{Name: "thread_renderer_main_cpu_time_per_frame", Units: "ms", Expression: cpuPerFrameJS},
		{Name: "thread_renderer_main_cpu_time_per_second", Units: "ms", Expression: cpuPerSecondJS},
	}
	if reportSilkDetails {
		metrics = append(metrics,
			Metric{Name: "frame_count", Units: "count", Expression: frameCounterJS},
			Metric{Name: "mean_frame_time", Units: "ms", Expression: meanFrameTimeJS},
		)
	}
	return NewJSMetrics("thread_times", metrics...)
}

// DrawProperties records how large the tree that draw properties are computed
// over is, and how long the first paint took.
func DrawProperties() *JSMetrics {
	return NewJSMetrics("draw_properties",
		Metric{Name: "element_count", Units: "count", Expression: layerCountJS},
		Metric{Name: "first_paint", Units: "ms", Expression: firstPaintJS},
	)
}

// TabSwitching records when the tab was first shown.
func TabSwitching() *JSMetrics {
	return NewJSMetrics("tab_switching",
		Metric{Name: "tab_switch_paint_duration", Units: "ms", Expression: visibilityTimeJS},
	)
}

// Smoothness records frame timing while the page scrolls.
func Smoothness() *JSMetrics {
	return NewJSMetrics("smoothness",
		Metric{Name: "frame_count", Units: "count", Expression: frameCounterJS},
		Metric{Name: "mean_frame_time", Units: "ms", Expression: meanFrameTimeJS},
	)
}

// RasterizeAndRecordMicro records paint cost.
func RasterizeAndRecordMicro() *JSMetrics {
	return NewJSMetrics("rasterize_and_record_micro",
		Metric{Name: "first_paint", Units: "ms", Expression: firstPaintJS},
		Metric{Name: "element_count", Units: "count", Expression: layerCountJS},
	)
}

// Memory records JS heap usage.
func Memory() *JSMetrics {
	return NewJSMetrics("memory",
		Metric{Name: "js_heap_used", Units: "kb", Expression: heapJS},
	)
}

// BenchmarkScore reads a score the page publishes on window once it has
// finished, as the dom_perf, speedometer, spaceport and jetstream suites do.
func BenchmarkScore(name, scoreExpression, units string) *JSMetrics {
	return NewJSMetrics(name,
		Metric{Name: "score", Units: units, Expression: scoreExpression},
	)
}
