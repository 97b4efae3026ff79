package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skia.org/perfsmoke/go/util"
)

func TestMergeAnnotations_EmptyDisabledDominates(t *testing.T) {
	merged := MergeAnnotations(Annotations{Disabled: Tags()}, Annotations{Disabled: Tags("android")})
	require.NotNil(t, merged.Disabled)
	assert.Empty(t, merged.Disabled)
	assert.Nil(t, merged.Enabled)
}

func TestMergeAnnotations_AbsentTemplate_KeepsBenchmarkTags(t *testing.T) {
	merged := MergeAnnotations(Annotations{}, Annotations{Disabled: Tags("win")})
	assert.Equal(t, util.StringSet{"win": true}, merged.Disabled)
	assert.Nil(t, merged.Enabled)
}

func TestMergeAnnotations_Union(t *testing.T) {
	merged := MergeAnnotations(
		Annotations{Disabled: Tags("chromeos")},
		Annotations{Enabled: Tags("has tabs"), Disabled: Tags("android", "chromeos")},
	)
	assert.Equal(t, []string{"android", "chromeos"}, merged.Disabled.SortedKeys())
	assert.Equal(t, []string{"has tabs"}, merged.Enabled.SortedKeys())
}

func TestMergeAnnotations_EmptyEnabledDominates(t *testing.T) {
	merged := MergeAnnotations(Annotations{Enabled: Tags("linux")}, Annotations{Enabled: Tags()})
	require.NotNil(t, merged.Enabled)
	assert.Empty(t, merged.Enabled)
}

func TestMergeAnnotations_InputsUnchanged(t *testing.T) {
	a := Annotations{Disabled: Tags("win")}
	b := Annotations{Disabled: Tags("mac")}
	merged := MergeAnnotations(a, b)
	merged.Disabled["linux"] = true
	assert.Equal(t, []string{"win"}, a.Disabled.SortedKeys())
	assert.Equal(t, []string{"mac"}, b.Disabled.SortedKeys())
}

func TestShouldRun(t *testing.T) {
	linux := Tags("linux", "has tabs")
	android := Tags("android")

	assert.True(t, Annotations{}.ShouldRun(linux))
	assert.False(t, Annotations{Disabled: Tags()}.ShouldRun(linux))
	assert.True(t, Annotations{Enabled: Tags()}.ShouldRun(linux))
	assert.False(t, Annotations{Disabled: Tags("linux")}.ShouldRun(linux))
	assert.True(t, Annotations{Disabled: Tags("linux")}.ShouldRun(android))
	assert.True(t, Annotations{Enabled: Tags("has tabs")}.ShouldRun(linux))
	assert.False(t, Annotations{Enabled: Tags("has tabs")}.ShouldRun(android))

	// Disabled wins over Enabled.
	both := Annotations{Enabled: Tags("has tabs"), Disabled: Tags("linux")}
	assert.False(t, both.ShouldRun(linux))
	assert.Equal(t, "disabled on linux", both.SkipReason(linux))
}

func TestAnnotations_String(t *testing.T) {
	assert.Equal(t, "enabled=- disabled=all", Annotations{Disabled: Tags()}.String())
	assert.Equal(t, "enabled=[android,linux] disabled=-", Annotations{Enabled: Tags("linux", "android")}.String())
}
