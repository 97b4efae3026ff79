// Package browser launches Chrome through the DevTools protocol and exposes it
// as an action.Browser.
package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"go.skia.org/perfsmoke/go/skerr"
	"go.skia.org/perfsmoke/go/sklog"
	"go.skia.org/perfsmoke/telemetry/go/action"
)

// Launcher starts Chrome. The zero value starts a headless Chrome found on
// PATH.
type Launcher struct {
	// ExecPath is the Chrome binary. Empty means let chromedp find one.
	ExecPath string
	// Headful shows the browser window.
	Headful bool
	// ExtraArgs are appended to every launch, before the benchmark's own.
	ExtraArgs []string
}

// Launch implements action.Launcher.
func (l *Launcher) Launch(ctx context.Context, extraArgs []string) (action.Browser, error) {
	opts := l.allocatorOptions(extraArgs)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.WithoutCancel(ctx), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx, chromedp.WithErrorf(sklog.Errorf))
	// The first Run starts the browser process.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, skerr.Wrapf(err, "failed to start browser %q", l.ExecPath)
	}
	sklog.Infof("Started browser with args %v", append(append([]string{}, l.ExtraArgs...), extraArgs...))
	return &cdpBrowser{
		ctx:           browserCtx,
		browserCancel: browserCancel,
		allocCancel:   allocCancel,
	}, nil
}

func (l *Launcher) allocatorOptions(extraArgs []string) []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if l.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(l.ExecPath))
	}
	if l.Headful {
		opts = append(opts, chromedp.Flag("headless", false))
	}
	for _, arg := range append(append([]string{}, l.ExtraArgs...), extraArgs...) {
		name, value := SplitFlag(arg)
		if name == "" {
			continue
		}
		opts = append(opts, chromedp.Flag(name, value))
	}
	return opts
}

// SplitFlag turns "--name=value" into ("name", "value") and "--name" into
// ("name", true), the shape chromedp.Flag expects.
func SplitFlag(arg string) (string, interface{}) {
	arg = strings.TrimLeft(arg, "-")
	if arg == "" {
		return "", nil
	}
	if name, value, ok := strings.Cut(arg, "="); ok {
		return name, value
	}
	return arg, true
}

type cdpBrowser struct {
	ctx           context.Context
	browserCancel context.CancelFunc
	allocCancel   context.CancelFunc
}

// NewTab implements action.Browser.
func (b *cdpBrowser) NewTab(ctx context.Context) (action.Runner, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, skerr.Wrap(err)
	}
	tabCtx, cancel := chromedp.NewContext(b.ctx)
	if err := chromedp.Run(tabCtx); err != nil {
		cancel()
		return nil, nil, skerr.Wrapf(err, "failed to open tab")
	}
	return &tab{ctx: tabCtx}, cancel, nil
}

// Close implements action.Browser.
func (b *cdpBrowser) Close() error {
	err := chromedp.Cancel(b.ctx)
	b.browserCancel()
	b.allocCancel()
	if err != nil && !errors.Is(err, context.Canceled) {
		return skerr.Wrapf(err, "failed to close browser")
	}
	return nil
}

// tab runs actions against a single target. Calls honor both the tab's own
// context and the caller's.
type tab struct {
	ctx context.Context
}

func (t *tab) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(t.ctx)
	defer cancel()
	if timeout > 0 {
		runCtx, cancel = context.WithTimeout(runCtx, timeout)
		defer cancel()
	}
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	return chromedp.Run(runCtx, actions...)
}

// Navigate implements action.Runner.
func (t *tab) Navigate(ctx context.Context, url string, timeout time.Duration) error {
	err := t.run(ctx, timeout, chromedp.Navigate(url))
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return &action.TimeoutError{URL: url, Timeout: timeout}
	}
	return skerr.Wrapf(err, "failed to navigate to %s", url)
}

// Wait implements action.Runner.
func (t *tab) Wait(ctx context.Context, d time.Duration) error {
	return skerr.Wrap(t.run(ctx, 0, chromedp.Sleep(d)))
}

// Evaluate implements action.Runner.
func (t *tab) Evaluate(ctx context.Context, expression string, res interface{}) error {
	return skerr.Wrapf(t.run(ctx, 0, chromedp.Evaluate(expression, res)), "failed to evaluate %q", expression)
}

// ScrollPage implements action.Runner.
func (t *tab) ScrollPage(ctx context.Context, distance int) error {
	var ignored interface{}
	expr := fmt.Sprintf("window.scrollBy(0, %d)", distance)
	return skerr.Wrap(t.run(ctx, 0, chromedp.Evaluate(expr, &ignored)))
}

var _ action.Launcher = (*Launcher)(nil)
