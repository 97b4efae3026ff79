// Package now provides a function to return the current time that is
// also easily overridden for testing.
package now

import (
	"context"
	"fmt"
	"time"
)

type contextKeyType string

// ContextKey is used by tests to make the time deterministic.
//
// The value stored under ContextKey is either a time.Time, returned as is, or a
// NowProvider, called on every Now.
//
//	ctx = context.WithValue(ctx, now.ContextKey, time.Unix(0, 12).UTC())
const ContextKey contextKeyType = "overwriteNow"

// NowProvider is a func that can be stored under ContextKey. It must be safe
// for concurrent use if the context is shared between goroutines.
type NowProvider func() time.Time

// Now returns the current time or the time from the context.
func Now(ctx context.Context) time.Time {
	if ts := ctx.Value(ContextKey); ts != nil {
		switch v := ts.(type) {
		case NowProvider:
			return v()
		case time.Time:
			return v
		default:
			panic(fmt.Sprintf("Unknown value for ContextKey: %v", v))
		}
	}
	return time.Now()
}

// Since is time.Since using Now(ctx).
func Since(ctx context.Context, t time.Time) time.Duration {
	return Now(ctx).Sub(t)
}

// StepProvider returns a NowProvider that starts at start and advances by step
// on every call. Handy for tests that time something twice.
func StepProvider(start time.Time, step time.Duration) NowProvider {
	ts := start.Add(-step)
	return func() time.Time {
		ts = ts.Add(step)
		return ts
	}
}
