package page

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skia.org/perfsmoke/go/util"
	"go.skia.org/perfsmoke/telemetry/go/action"
	"go.skia.org/perfsmoke/telemetry/go/action/mocks"
)

func threePages() *PageSet {
	ps := NewPageSet("three", "data/three.json")
	ps.AddURLs("http://a/", "http://b/", "http://c/")
	return ps
}

func TestAddUserStory_SetsOwnerAndKeepsOrder(t *testing.T) {
	ps := threePages()
	require.Equal(t, 3, ps.Len())
	for i, u := range []string{"http://a/", "http://b/", "http://c/"} {
		assert.Equal(t, u, ps.Pages()[i].URL)
		assert.Same(t, ps, ps.Pages()[i].PageSet)
	}
}

func TestCopy_DeepCopy_OriginalUntouched(t *testing.T) {
	ps := threePages()
	ps.Pages()[0].Labels = util.NewStringSet([]string{"fastpath"})

	c := ps.Copy()
	c.Pages()[0].SkipWaits = true
	c.Pages()[0].Labels["other"] = true
	c.UserStories = c.UserStories[:1]

	assert.Equal(t, 3, ps.Len())
	assert.False(t, ps.Pages()[0].SkipWaits)
	assert.False(t, ps.Pages()[0].HasLabel("other"))
	assert.Same(t, c, c.Pages()[0].PageSet)
}

func TestFilterByLabel(t *testing.T) {
	ps := threePages()
	ps.Pages()[1].Labels = util.NewStringSet([]string{"fastpath"})

	filtered := ps.FilterByLabel("fastpath")
	require.Equal(t, 1, filtered.Len())
	assert.Equal(t, "http://b/", filtered.Pages()[0].URL)
	assert.Equal(t, 3, ps.FilterByLabel("").Len())
	assert.Equal(t, 3, ps.Len())
}

func TestArchivePath(t *testing.T) {
	ps := threePages()
	assert.Equal(t, "data/three.json", ps.Pages()[0].ArchivePath())

	ps.BaseDir = "tools/perf/page_sets"
	ps.Pages()[1].ArchiveDataFile = "../data/own.json"
	assert.Equal(t, "tools/perf/page_sets/data/three.json", ps.Pages()[0].ArchivePath())
	assert.Equal(t, "tools/perf/data/own.json", ps.Pages()[1].ArchivePath())

	assert.Equal(t, "", New("http://x/", nil).ArchivePath())
}

func TestRunNavigateSteps_Default_UsesPageTimeout(t *testing.T) {
	ctx := context.Background()
	p := New("http://a/", nil)
	r := &mocks.Runner{}
	r.On("Navigate", ctx, "http://a/", DefaultNavigateTimeout).Return(nil).Once()
	require.NoError(t, p.RunNavigateSteps(ctx, r))

	p.NavigateTimeout = 5 * time.Second
	r.On("Navigate", ctx, "http://a/", 5*time.Second).Return(nil).Once()
	require.NoError(t, p.RunNavigateSteps(ctx, r))
	r.AssertExpectations(t)
}

func TestRunNavigateSteps_Override(t *testing.T) {
	called := false
	p := New("http://a/", nil)
	p.NavigateSteps = func(ctx context.Context, p *Page, r action.Runner) error {
		called = true
		return nil
	}
	require.NoError(t, p.RunNavigateSteps(context.Background(), &mocks.Runner{}))
	assert.True(t, called)
}

func TestRunPageInteractions_SkipWaits_WaitNotForwarded(t *testing.T) {
	ctx := context.Background()
	p := New("http://a/", nil)
	p.InteractionSteps = func(ctx context.Context, p *Page, r action.Runner) error {
		if err := r.Wait(ctx, 10*time.Second); err != nil {
			return err
		}
		return r.ScrollPage(ctx, 500)
	}

	r := &mocks.Runner{}
	r.On("Wait", ctx, 10*time.Second).Return(nil).Once()
	r.On("ScrollPage", ctx, 500).Return(nil).Twice()
	require.NoError(t, p.RunPageInteractions(ctx, r))

	p.SkipWaits = true
	require.NoError(t, p.RunPageInteractions(ctx, r))
	r.AssertExpectations(t)
	r.AssertNumberOfCalls(t, "Wait", 1)
}

func TestRunPageInteractions_ErrorWrapped(t *testing.T) {
	boom := errors.New("boom")
	p := New("http://a/", nil)
	p.InteractionSteps = func(context.Context, *Page, action.Runner) error { return boom }
	err := p.RunPageInteractions(context.Background(), &mocks.Runner{})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "interactions on http://a/")
}

