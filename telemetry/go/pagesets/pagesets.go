// Package pagesets declares the page sets benchmarks run against.
package pagesets

import (
	"context"
	"time"

	"go.skia.org/perfsmoke/go/util"
	"go.skia.org/perfsmoke/telemetry/go/action"
	"go.skia.org/perfsmoke/telemetry/go/page"
)

const (
	scrollDistance = 5000
	settleTime     = 2 * time.Second
)

// ScrollAndSettle scrolls the whole page and then idles so the compositor
// settles.
func ScrollAndSettle(ctx context.Context, _ *page.Page, r action.Runner) error {
	if err := r.Wait(ctx, settleTime); err != nil {
		return err
	}
	if err := r.ScrollPage(ctx, scrollDistance); err != nil {
		return err
	}
	return r.Wait(ctx, settleTime)
}

// Idle waits in the foreground, the only interaction of power cases.
func Idle(ctx context.Context, _ *page.Page, r action.Runner) error {
	return r.Wait(ctx, 20*time.Second)
}

func newPageSet(name, archive string, steps page.StepsFunc, urls ...string) *page.PageSet {
	ps := page.NewPageSet(name, archive)
	for _, u := range urls {
		p := page.New(u, ps)
		p.InteractionSteps = steps
		ps.AddUserStory(p)
	}
	return ps
}

// ToughScrollingCases scrolls pages that are expensive to scroll.
func ToughScrollingCases() *page.PageSet {
	return newPageSet("tough_scrolling_cases", "data/tough_scrolling_cases.json", ScrollAndSettle,
		"file://tough_scrolling_cases/text.html",
		"file://tough_scrolling_cases/canvas.html",
		"file://tough_scrolling_cases/fixed_nonstacking.html",
		"file://tough_scrolling_cases/lorem_ipsum.html",
	)
}

// Top25Smooth scrolls popular sites.
func Top25Smooth() *page.PageSet {
	return newPageSet("top_25_smooth", "data/top_25_smooth.json", ScrollAndSettle,
		"https://www.google.com/#hl=en&q=barack+obama",
		"https://mail.google.com/mail/",
		"https://www.youtube.com",
		"https://en.wikipedia.org/wiki/Wikipedia",
		"http://www.facebook.com/barackobama",
		"https://twitter.com/katyperry",
		"http://www.amazon.com",
		"http://www.ebay.com",
	)
}

// KeySilkCases covers interactions the rendering pipeline must keep smooth.
func KeySilkCases() *page.PageSet {
	return newPageSet("key_silk_cases", "data/key_silk_cases.json", ScrollAndSettle,
		"http://groupcloned.com/test/plain/list-recycle-transform.html",
		"http://groupcloned.com/test/plain/sticky-using-webkit-backface-visibility.html",
		"http://jsfiddle.net/ugkd4/10/embedded/result/",
		"http://bl.ocks.org/mbostock/raw/4062085/",
	)
}

// KeyHitTestCases exercises hit testing while the page scrolls.
func KeyHitTestCases() *page.PageSet {
	return newPageSet("key_hit_test_cases", "data/key_hit_test_cases.json", ScrollAndSettle,
		"file://key_hit_test_cases/paper-calculator-no-rendering.html",
	)
}

// KeyMobileSitesSmooth scrolls popular mobile sites. Sites whose scrolling
// stays on the compositor are labeled "fastpath".
func KeyMobileSitesSmooth() *page.PageSet {
	ps := newPageSet("key_mobile_sites_smooth", "data/key_mobile_sites_smooth.json", ScrollAndSettle,
		"http://www.baidu.com/s?wd=barack+obama&rsv_bp=0",
		"http://www.qq.com",
		"http://www.amazon.com/gp/aw/s/?k=nexus",
		"http://m.facebook.com/barackobama",
		"http://www.nytimes.com/2013/09/07/us/politics/obama.html",
	)
	for _, i := range []int{0, 1, 4} {
		ps.Pages()[i].Labels = util.NewStringSet([]string{"fastpath"})
	}
	return ps
}

// SimpleMobileSites scrolls lightweight mobile pages.
func SimpleMobileSites() *page.PageSet {
	return newPageSet("simple_mobile_sites", "data/simple_mobile_sites.json", ScrollAndSettle,
		"http://www.apple.com/mac/",
		"http://www.ebay.co.uk/",
		"http://www.nyc.gov",
	)
}

// ToughCompositorCases scrolls pages with heavy compositing.
func ToughCompositorCases() *page.PageSet {
	return newPageSet("tough_compositor_cases", "data/tough_compositor_cases.json", ScrollAndSettle,
		"http://jsbin.com/UVIgUTa/6/quiet",
		"http://jsbin.com/afAPOmi/1/quiet",
		"http://jsbin.com/kemaroh/1/quiet",
	)
}

// Polymer covers Polymer element demos.
func Polymer() *page.PageSet {
	return newPageSet("polymer", "data/polymer.json", ScrollAndSettle,
		"http://www.polymer-project.org/components/paper-calculator/demo.html",
		"http://www.polymer-project.org/components/paper-shadow/demo.html",
	)
}

// KeyIdlePowerCases are pages that should be idle once loaded.
func KeyIdlePowerCases() *page.PageSet {
	return newPageSet("key_idle_power_cases", "data/key_idle_power_cases.json", Idle,
		"file://key_idle_power_cases/animated-gif.html",
		"file://key_idle_power_cases/blank.html",
		"file://key_idle_power_cases/css-animation.html",
	)
}

// Top10 is a set of popular sites, loaded without interaction.
func Top10() *page.PageSet {
	return newPageSet("top_10", "data/top_10.json", nil,
		"https://www.google.com/#hl=en&q=barack+obama",
		"https://mail.google.com/mail/",
		"https://www.google.com/calendar/",
		"https://www.youtube.com",
		"https://en.wikipedia.org/wiki/Wikipedia",
		"http://www.facebook.com/barackobama",
		"https://twitter.com/katyperry",
		"http://www.amazon.com",
		"http://www.ebay.com",
		"https://www.yahoo.com",
	)
}

// Typical25 is a set of typical sites. Unless runNoPageInteractions is set,
// each page is scrolled.
func Typical25(runNoPageInteractions bool) *page.PageSet {
	var steps page.StepsFunc = ScrollAndSettle
	if runNoPageInteractions {
		steps = nil
	}
	return newPageSet("typical_25", "data/typical_25.json", steps,
		"http://www.df.lt/",
		"http://www.chiefdelphi.com/media/photos/38464",
		"http://www.ncbi.nlm.nih.gov/pubmed/",
		"http://www.craigslist.org/about/sites",
		"http://www.steampowered.com/",
		"http://www.kijiji.ca/",
	)
}

// FiveBlankPages is five about:blank pages.
func FiveBlankPages() *page.PageSet {
	return newPageSet("five_blank_pages", "", nil,
		"about:blank", "about:blank", "about:blank", "about:blank", "about:blank",
	)
}

// ToughEnergyCases are pages written to stress energy usage.
func ToughEnergyCases() *page.PageSet {
	return newPageSet("tough_energy_cases", "data/tough_energy_cases.json", Idle,
		"http://jsbin.com/vaxivi/2/quiet",
		"http://jsbin.com/kafaca/1/quiet",
	)
}

// ToughImageCases are pages with large images.
func ToughImageCases() *page.PageSet {
	return newPageSet("tough_image_cases", "data/tough_image_cases.json", nil,
		"http://www.free-pictures-photos.com/aviation/airplane-306.jpg",
		"http://upload.wikimedia.org/wikipedia/commons/c/cb/General_history%2C_Alaska_Yukon_Pacific_Exposition%2C_fully_illustrated_-_meet_me_in_Seattle_1909_-_Page_78.jpg",
	)
}

// FlashEnergyCases are pages that embed Flash content.
func FlashEnergyCases() *page.PageSet {
	return newPageSet("flash_energy_cases", "data/flash_energy_cases.json", Idle,
		"http://www.cnn.com",
		"http://www.msn.com",
	)
}
