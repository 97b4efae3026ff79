// Package action defines how page and benchmark code drives a browser: a
// Browser hands out tabs and each tab is a Runner that navigates, waits and
// evaluates JavaScript. Package browser provides the Chrome implementation.
package action

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Runner performs actions in a single browser tab.
type Runner interface {
	// Navigate loads url and waits for it to finish loading. If that takes
	// longer than timeout, Navigate returns a *TimeoutError.
	Navigate(ctx context.Context, url string, timeout time.Duration) error
	// Wait pauses for d. Pages use it between interactions.
	Wait(ctx context.Context, d time.Duration) error
	// Evaluate runs the JavaScript expression and stores its result in res,
	// which must be a pointer.
	Evaluate(ctx context.Context, expression string, res interface{}) error
	// ScrollPage scrolls the document by distance pixels.
	ScrollPage(ctx context.Context, distance int) error
}

// Browser is a running browser instance.
type Browser interface {
	// NewTab opens a tab. The returned func closes it.
	NewTab(ctx context.Context) (Runner, func(), error)
	// Close shuts the browser down.
	Close() error
}

// Launcher starts a browser with the given extra command-line args.
type Launcher interface {
	Launch(ctx context.Context, extraArgs []string) (Browser, error)
}

// LauncherFunc adapts a func to Launcher.
type LauncherFunc func(ctx context.Context, extraArgs []string) (Browser, error)

// Launch implements Launcher.
func (f LauncherFunc) Launch(ctx context.Context, extraArgs []string) (Browser, error) {
	return f(ctx, extraArgs)
}

// TimeoutError is returned by Runner.Navigate when the page did not finish
// loading in time.
type TimeoutError struct {
	URL     string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s navigating to %s", e.Timeout, e.URL)
}

// IsTimeout reports whether err is, or wraps, a *TimeoutError.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}

// NoWaits wraps r so that Wait returns immediately.
func NoWaits(r Runner) Runner {
	if _, ok := r.(noWaitRunner); ok {
		return r
	}
	return noWaitRunner{Runner: r}
}

type noWaitRunner struct {
	Runner
}

func (noWaitRunner) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
