package benchmark

import (
	"fmt"
	"strings"

	"go.skia.org/perfsmoke/go/util"
)

// Annotations restrict the platforms a benchmark runs on. Each attribute has
// three states: nil means the attribute is absent, a non-nil empty set means
// "every platform", otherwise it holds platform tags.
type Annotations struct {
	Enabled  util.StringSet
	Disabled util.StringSet
}

// Tags returns a non-nil set of platform tags. Tags() with no arguments is the
// "every platform" set.
func Tags(tags ...string) util.StringSet {
	return util.NewStringSet(tags)
}

// Copy returns a deep copy that preserves absent attributes.
func (a Annotations) Copy() Annotations {
	return Annotations{
		Enabled:  a.Enabled.Copy(),
		Disabled: a.Disabled.Copy(),
	}
}

// MergeAnnotations combines the annotations of a and b attribute by attribute.
// If either side is the "every platform" set, so is the result. If both are
// absent the result is absent. Otherwise the result is the union.
func MergeAnnotations(a, b Annotations) Annotations {
	return Annotations{
		Enabled:  mergeTags(a.Enabled, b.Enabled),
		Disabled: mergeTags(a.Disabled, b.Disabled),
	}
}

func mergeTags(a, b util.StringSet) util.StringSet {
	if (a != nil && len(a) == 0) || (b != nil && len(b) == 0) {
		return util.StringSet{}
	}
	if a == nil && b == nil {
		return nil
	}
	return a.Union(b)
}

// SkipReason returns why a benchmark with these annotations should not run on
// a platform with the given tags, or "" if it should run. Disabled is checked
// first and wins over Enabled.
func (a Annotations) SkipReason(platform util.StringSet) string {
	if a.Disabled != nil {
		if len(a.Disabled) == 0 {
			return "disabled on all platforms"
		}
		if hit := a.Disabled.Intersect(platform); len(hit) > 0 {
			return fmt.Sprintf("disabled on %s", strings.Join(hit.SortedKeys(), ","))
		}
	}
	if len(a.Enabled) > 0 && len(a.Enabled.Intersect(platform)) == 0 {
		return fmt.Sprintf("only enabled on %s", strings.Join(a.Enabled.SortedKeys(), ","))
	}
	return ""
}

// ShouldRun reports whether a benchmark with these annotations runs on a
// platform with the given tags.
func (a Annotations) ShouldRun(platform util.StringSet) bool {
	return a.SkipReason(platform) == ""
}

// String renders the annotations for listings, e.g. "enabled=[android] disabled=all".
func (a Annotations) String() string {
	return fmt.Sprintf("enabled=%s disabled=%s", formatTags(a.Enabled), formatTags(a.Disabled))
}

func formatTags(s util.StringSet) string {
	if s == nil {
		return "-"
	}
	if len(s) == 0 {
		return "all"
	}
	return "[" + strings.Join(s.SortedKeys(), ",") + "]"
}
