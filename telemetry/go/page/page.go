// Package page holds the Page and PageSet types: the web pages a benchmark
// loads, in order, along with the replay archive each one is recorded in.
package page

import (
	"context"
	"path/filepath"
	"time"

	"go.skia.org/perfsmoke/go/skerr"
	"go.skia.org/perfsmoke/go/util"
	"go.skia.org/perfsmoke/telemetry/go/action"
)

// DefaultNavigateTimeout bounds navigation for pages that don't set their own.
const DefaultNavigateTimeout = 60 * time.Second

// StepsFunc is a page-specific sequence of actions.
type StepsFunc func(ctx context.Context, p *Page, r action.Runner) error

// Page is a single web page to load. Pages are not modified after their page
// set is populated; use Copy to derive a variant.
type Page struct {
	URL string
	// Name is the story name. Empty means the URL is used.
	Name string
	// PageSet owns the page.
	PageSet *PageSet
	// ArchiveDataFile overrides PageSet.ArchiveDataFile for this page.
	ArchiveDataFile string
	// Labels are matched by the story_label_filter option.
	Labels util.StringSet
	// SkipWaits makes Wait calls made by InteractionSteps return immediately.
	SkipWaits bool
	// NavigateTimeout is used by the default navigation steps. Zero means
	// DefaultNavigateTimeout.
	NavigateTimeout time.Duration
	// NavigateSteps, if set, replaces the default navigation.
	NavigateSteps StepsFunc
	// InteractionSteps run after navigation, e.g. scrolling.
	InteractionSteps StepsFunc
}

// New returns a page for url owned by ps. It is not added to ps.
func New(url string, ps *PageSet) *Page {
	return &Page{
		URL:     url,
		PageSet: ps,
	}
}

// DisplayName returns the story name.
func (p *Page) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.URL
}

// ArchivePath returns the replay archive for the page, relative to the
// directory the page set was declared in.
func (p *Page) ArchivePath() string {
	archive := p.ArchiveDataFile
	if archive == "" && p.PageSet != nil {
		archive = p.PageSet.ArchiveDataFile
	}
	if archive == "" {
		return ""
	}
	if p.PageSet != nil && p.PageSet.BaseDir != "" && !filepath.IsAbs(archive) {
		return filepath.Join(p.PageSet.BaseDir, archive)
	}
	return filepath.Clean(archive)
}

// Timeout returns the navigation timeout for the default navigation steps.
func (p *Page) Timeout() time.Duration {
	if p.NavigateTimeout > 0 {
		return p.NavigateTimeout
	}
	return DefaultNavigateTimeout
}

// RunNavigateSteps loads the page.
func (p *Page) RunNavigateSteps(ctx context.Context, r action.Runner) error {
	if p.NavigateSteps != nil {
		return p.NavigateSteps(ctx, p, r)
	}
	return r.Navigate(ctx, p.URL, p.Timeout())
}

// RunPageInteractions performs the page's interactions, if any.
func (p *Page) RunPageInteractions(ctx context.Context, r action.Runner) error {
	if p.InteractionSteps == nil {
		return nil
	}
	if p.SkipWaits {
		r = action.NoWaits(r)
	}
	return skerr.Wrapf(p.InteractionSteps(ctx, p, r), "interactions on %s", p.DisplayName())
}

// HasLabel reports whether the page carries label.
func (p *Page) HasLabel(label string) bool {
	return p.Labels[label]
}

// Copy returns a copy of the page that can be changed without affecting p.
// The copy still points at p's PageSet.
func (p *Page) Copy() *Page {
	rv := *p
	rv.Labels = p.Labels.Copy()
	return &rv
}
