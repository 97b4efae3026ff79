package measurement

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"
	"go.skia.org/perfsmoke/go/skerr"
	"go.skia.org/perfsmoke/go/util"
)

// Output formats accepted by Results.Write.
const (
	OutputNone  = "none"
	OutputJSON  = "json"
	OutputTable = "table"
)

// OutputFormats lists every supported output format.
var OutputFormats = []string{OutputNone, OutputJSON, OutputTable}

// Value is a single measured number.
type Value struct {
	Page  string  `json:"page"`
	Name  string  `json:"name"`
	Units string  `json:"units"`
	Value float64 `json:"value"`
}

// Failure records a page that could not be measured.
type Failure struct {
	Page  string `json:"page"`
	Error string `json:"error"`
}

// ValuePredicate decides whether a value is reported. isFirstResult is true
// for values from the first repeat of a page.
type ValuePredicate func(v Value, isFirstResult bool) bool

// AllValues is a ValuePredicate that accepts everything.
func AllValues(Value, bool) bool { return true }

// Results accumulates the values and failures of one benchmark run. It is safe
// for concurrent use.
type Results struct {
	Label string

	mtx       sync.Mutex
	values    []Value
	failures  []Failure
	predicate ValuePredicate
	seen      util.StringSet
}

// NewResults returns empty Results that keep only values accepted by
// predicate. A nil predicate keeps everything.
func NewResults(label string, predicate ValuePredicate) *Results {
	if predicate == nil {
		predicate = AllValues
	}
	return &Results{
		Label:     label,
		predicate: predicate,
		seen:      util.StringSet{},
	}
}

// Add records v if the predicate accepts it, and reports whether it did.
func (r *Results) Add(v Value) bool {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	key := v.Page + "/" + v.Name
	first := !r.seen[key]
	r.seen[key] = true
	if !r.predicate(v, first) {
		return false
	}
	r.values = append(r.values, v)
	return true
}

// AddFailure records that page failed with err.
func (r *Results) AddFailure(page string, err error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.failures = append(r.failures, Failure{Page: page, Error: err.Error()})
}

// Values returns a copy of the recorded values in the order they were added.
func (r *Results) Values() []Value {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]Value(nil), r.values...)
}

// Failures returns a copy of the recorded failures.
func (r *Results) Failures() []Failure {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]Failure(nil), r.failures...)
}

// Write renders the results to w in the given output format.
func (r *Results) Write(w io.Writer, format string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	switch format {
	case OutputNone, "":
		return nil
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return skerr.Wrap(enc.Encode(struct {
			Label    string    `json:"label"`
			Values   []Value   `json:"values"`
			Failures []Failure `json:"failures,omitempty"`
		}{
			Label:    r.Label,
			Values:   r.values,
			Failures: r.failures,
		}))
	case OutputTable:
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Page", "Metric", "Value", "Units"})
		for _, v := range r.values {
			table.Append([]string{v.Page, v.Name, strconv.FormatFloat(v.Value, 'f', 3, 64), v.Units})
		}
		for _, f := range r.failures {
			table.Append([]string{f.Page, "FAILED", "", f.Error})
		}
		table.Render()
		return nil
	}
	return skerr.Fmt("unknown output format %q", format)
}

// ValidOutputFormat reports whether format can be passed to Write.
func ValidOutputFormat(format string) bool {
	return format == "" || util.In(format, OutputFormats)
}

func (v Value) String() string {
	return fmt.Sprintf("%s %s=%g%s", v.Page, v.Name, v.Value, v.Units)
}
