package pagesets

import (
	"context"
	"time"

	"go.skia.org/perfsmoke/go/sklog"
	"go.skia.org/perfsmoke/telemetry/go/action"
	"go.skia.org/perfsmoke/telemetry/go/page"
)

const (
	safebrowsingArchive = "../data/chrome_proxy_safebrowsing.json"
	safebrowsingURL     = "http://www.ianfette.org/"
	// The "malware ahead" interstitial never finishes loading, so navigation
	// gets a short timeout.
	safebrowsingNavigateTimeout = 5 * time.Second
)

// NewSafebrowsingPage returns a page that navigates to a URL flagged by Safe
// Browsing. If expectTimeout is true a navigation timeout is logged and
// otherwise ignored.
func NewSafebrowsingPage(url string, ps *page.PageSet, expectTimeout bool) *page.Page {
	p := page.New(url, ps)
	p.ArchiveDataFile = safebrowsingArchive
	p.NavigateTimeout = safebrowsingNavigateTimeout
	p.NavigateSteps = func(ctx context.Context, p *page.Page, r action.Runner) error {
		err := r.Navigate(ctx, p.URL, p.NavigateTimeout)
		if err != nil && expectTimeout && action.IsTimeout(err) {
			sklog.Warningf("Navigation timeout on page %s", p.URL)
			return nil
		}
		return err
	}
	return p
}

// SafebrowsingPageSet holds the single Safe Browsing test site.
func SafebrowsingPageSet(expectTimeout bool) *page.PageSet {
	ps := page.NewPageSet("safebrowsing", safebrowsingArchive)
	ps.AddUserStory(NewSafebrowsingPage(safebrowsingURL, ps, expectTimeout))
	return ps
}
