package pagesets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skia.org/perfsmoke/telemetry/go/action/mocks"
	"go.skia.org/perfsmoke/telemetry/go/page"
)

func TestPageSets_NonEmptyAndOwned(t *testing.T) {
	for name, ps := range map[string]*page.PageSet{
		"tough_scrolling":   ToughScrollingCases(),
		"top_25":            Top25Smooth(),
		"key_silk":          KeySilkCases(),
		"key_hit_test":      KeyHitTestCases(),
		"key_mobile_sites":  KeyMobileSitesSmooth(),
		"simple_mobile":     SimpleMobileSites(),
		"tough_compositor":  ToughCompositorCases(),
		"polymer":           Polymer(),
		"key_idle_power":    KeyIdlePowerCases(),
		"top_10":            Top10(),
		"typical_25":        Typical25(false),
		"five_blank_pages":  FiveBlankPages(),
		"tough_energy":      ToughEnergyCases(),
		"tough_image":       ToughImageCases(),
		"flash_energy":      FlashEnergyCases(),
		"dom_perf":          DomPerf(),
		"indexeddb":         IndexedDB(),
		"image_decoding":    ImageDecoding(),
		"rasterize":         RasterizeAndRecordMicro(),
		"spaceport":         Spaceport(),
		"speedometer":       Speedometer(),
		"jetstream":         JetStream(),
		"session_restore":   SessionRestore(),
		"skpicture_printer": SkpicturePrinter(),
	} {
		require.NotZero(t, ps.Len(), name)
		for _, p := range ps.Pages() {
			assert.Same(t, ps, p.PageSet, name)
		}
	}
}

func TestPageSets_FreshOnEveryCall(t *testing.T) {
	a := Top10()
	a.UserStories = a.UserStories[:1]
	assert.Equal(t, 10, Top10().Len())
}

func TestKeyMobileSitesSmooth_FirstPageIsFastpath(t *testing.T) {
	filtered := KeyMobileSitesSmooth().FilterByLabel("fastpath")
	assert.Equal(t, 3, filtered.Len())
	assert.True(t, KeyMobileSitesSmooth().Pages()[0].HasLabel("fastpath"))
}

func TestTypical25_NoInteractions(t *testing.T) {
	assert.Nil(t, Typical25(true).Pages()[0].InteractionSteps)
	assert.NotNil(t, Typical25(false).Pages()[0].InteractionSteps)
}

func TestScrollAndSettle_SkipWaits(t *testing.T) {
	ctx := context.Background()
	p := ToughScrollingCases().Pages()[0]
	p.SkipWaits = true
	r := &mocks.Runner{}
	r.On("ScrollPage", ctx, scrollDistance).Return(nil)
	require.NoError(t, p.RunPageInteractions(ctx, r))
	r.AssertNotCalled(t, "Wait", ctx, settleTime)

	p.SkipWaits = false
	r.On("Wait", ctx, 2*time.Second).Return(nil)
	require.NoError(t, p.RunPageInteractions(ctx, r))
	r.AssertNumberOfCalls(t, "Wait", 2)
}
