package metrics2

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"go.skia.org/perfsmoke/go/sklog"
)

var (
	// invalidChar is used to force metric and tag names to conform to Prometheus's restrictions.
	invalidChar = regexp.MustCompile("([^a-zA-Z0-9_:])")
)

func clean(s string) string {
	return invalidChar.ReplaceAllLiteralString(s, "_")
}

// promCounter implements Counter. The value is tracked locally because the
// prometheus client lib doesn't support Get on Gauge values.
type promCounter struct {
	i     int64
	gauge prometheus.Gauge
}

func (c *promCounter) Get() int64 {
	return atomic.LoadInt64(&c.i)
}

func (c *promCounter) Inc(i int64) {
	c.gauge.Set(float64(atomic.AddInt64(&c.i, i)))
}

func (c *promCounter) Dec(i int64) {
	c.Inc(-i)
}

func (c *promCounter) Reset() {
	atomic.StoreInt64(&c.i, 0)
	c.gauge.Set(0)
}

// promFloat64Summary implements Float64SummaryMetric.
type promFloat64Summary struct {
	summary prometheus.Observer
}

func (m *promFloat64Summary) Observe(v float64) {
	m.summary.Observe(v)
}

type promClient struct {
	mtx         sync.Mutex
	gaugeVecs   map[string]*prometheus.GaugeVec
	counters    map[string]*promCounter
	summaryVecs map[string]*prometheus.SummaryVec
	summaries   map[string]*promFloat64Summary
}

func newPromClient() *promClient {
	return &promClient{
		gaugeVecs:   map[string]*prometheus.GaugeVec{},
		counters:    map[string]*promCounter{},
		summaryVecs: map[string]*prometheus.SummaryVec{},
		summaries:   map[string]*promFloat64Summary{},
	}
}

// commonGet does the common work for each of the Get* funcs.
//
// It returns:
//
//	measurement - A clean measurement name.
//	cleanTags   - A clean set of tags.
//	keys        - A slice of the keys of cleanTags, sorted.
//	metricKey   - A name to uniquely identify the metric.
//	vecKey      - A name to uniquely identify the collection of metrics.
func commonGet(measurement string, tags ...map[string]string) (string, map[string]string, []string, string, string) {
	measurement = clean(measurement)

	cleanTags := map[string]string{}
	for _, t := range tags {
		for k, v := range t {
			cleanTags[clean(k)] = v
		}
	}
	keys := make([]string, 0, len(cleanTags))
	for k := range cleanTags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	keySrc := []string{measurement}
	for _, key := range keys {
		keySrc = append(keySrc, key, cleanTags[key])
	}
	return measurement, cleanTags, keys, strings.Join(keySrc, "-"), fmt.Sprintf("%s %v", measurement, keys)
}

func (p *promClient) GetCounter(name string, tags ...map[string]string) Counter {
	measurement, cleanTags, keys, key, vecKey := commonGet(name, tags...)

	p.mtx.Lock()
	defer p.mtx.Unlock()
	if ret, ok := p.counters[key]; ok {
		return ret
	}
	gaugeVec, ok := p.gaugeVecs[vecKey]
	if !ok {
		gaugeVec = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: measurement,
			Help: measurement,
		}, keys)
		if err := prometheus.Register(gaugeVec); err != nil {
			sklog.Fatalf("Failed to register %q: %s", measurement, err)
		}
		p.gaugeVecs[vecKey] = gaugeVec
	}
	gauge, err := gaugeVec.GetMetricWith(prometheus.Labels(cleanTags))
	if err != nil {
		sklog.Fatalf("Failed to get gauge: %s", err)
	}
	ret := &promCounter{gauge: gauge}
	p.counters[key] = ret
	return ret
}

func (p *promClient) GetFloat64SummaryMetric(name string, tags ...map[string]string) Float64SummaryMetric {
	measurement, cleanTags, keys, key, vecKey := commonGet(name, tags...)

	p.mtx.Lock()
	defer p.mtx.Unlock()
	if ret, ok := p.summaries[key]; ok {
		return ret
	}
	summaryVec, ok := p.summaryVecs[vecKey]
	if !ok {
		summaryVec = prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Name:       measurement,
			Help:       measurement,
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}, keys)
		if err := prometheus.Register(summaryVec); err != nil {
			sklog.Fatalf("Failed to register %q %v: %s", measurement, cleanTags, err)
		}
		p.summaryVecs[vecKey] = summaryVec
	}
	summary, err := summaryVec.GetMetricWith(prometheus.Labels(cleanTags))
	if err != nil {
		sklog.Fatalf("Failed to get summary: %s", err)
	}
	ret := &promFloat64Summary{summary: summary}
	p.summaries[key] = ret
	return ret
}
