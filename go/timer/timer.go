// timer makes timing operations easier.
package timer

import (
	"context"
	"time"

	"github.com/hako/durafmt"
	"go.skia.org/perfsmoke/go/now"
	"go.skia.org/perfsmoke/go/sklog"
)

// Timer is for timing events. When finished the duration is reported
// via sklog.
//
// The standard way to use Timer is at the top of the func you
// want to measure:
//
//	defer timer.New(ctx, "database sync time").Stop()
type Timer struct {
	Begin time.Time
	Name  string
	ctx   context.Context
}

// New starts a Timer. The context is only consulted for the current time.
func New(ctx context.Context, name string) *Timer {
	return &Timer{
		Begin: now.Now(ctx),
		Name:  name,
		ctx:   ctx,
	}
}

// Elapsed returns the time since the Timer started.
func (t *Timer) Elapsed() time.Duration {
	return now.Since(t.ctx, t.Begin)
}

// Stop logs the elapsed time and returns it.
func (t *Timer) Stop() time.Duration {
	d := t.Elapsed()
	sklog.Infof("%s %s", t.Name, Format(d))
	return d
}

// Format renders d for humans, e.g. "1 minute 3 seconds".
func Format(d time.Duration) string {
	return durafmt.Parse(d.Round(time.Millisecond)).String()
}
