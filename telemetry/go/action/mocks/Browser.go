package mocks

import (
	"context"
	"sync"
	"time"

	"go.skia.org/perfsmoke/telemetry/go/action"
)

// FakeBrowser is an action.Browser whose tabs record every navigation. It is
// also an action.Launcher that returns itself.
type FakeBrowser struct {
	mtx sync.Mutex

	// NavigateErr, if set, is called for every navigation and its result
	// returned from Navigate.
	NavigateErr func(url string, timeout time.Duration) error
	// EvaluateValue is stored into *float64 results of Evaluate.
	EvaluateValue float64

	Navigations []string
	LaunchArgs  [][]string
	TabsOpened  int
	TabsClosed  int
	Closed      bool
}

// Launch implements action.Launcher.
func (b *FakeBrowser) Launch(_ context.Context, extraArgs []string) (action.Browser, error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	b.LaunchArgs = append(b.LaunchArgs, append([]string(nil), extraArgs...))
	b.Closed = false
	return b, nil
}

// NewTab implements action.Browser.
func (b *FakeBrowser) NewTab(_ context.Context) (action.Runner, func(), error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	b.TabsOpened++
	return &fakeTab{b: b}, func() {
		b.mtx.Lock()
		defer b.mtx.Unlock()
		b.TabsClosed++
	}, nil
}

// Close implements action.Browser.
func (b *FakeBrowser) Close() error {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	b.Closed = true
	return nil
}

// Visited returns a copy of the URLs navigated to, in order.
func (b *FakeBrowser) Visited() []string {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return append([]string(nil), b.Navigations...)
}

type fakeTab struct {
	b *FakeBrowser
}

func (t *fakeTab) Navigate(_ context.Context, url string, timeout time.Duration) error {
	t.b.mtx.Lock()
	t.b.Navigations = append(t.b.Navigations, url)
	fn := t.b.NavigateErr
	t.b.mtx.Unlock()
	if fn != nil {
		return fn(url, timeout)
	}
	return nil
}

func (t *fakeTab) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

func (t *fakeTab) Evaluate(_ context.Context, _ string, res interface{}) error {
	if f, ok := res.(*float64); ok {
		*f = t.b.EvaluateValue
	}
	return nil
}

func (t *fakeTab) ScrollPage(_ context.Context, _ int) error {
	return nil
}

var _ action.Launcher = (*FakeBrowser)(nil)
var _ action.Browser = (*FakeBrowser)(nil)
