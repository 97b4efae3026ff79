// Package mocks holds testify mocks for the interfaces in package action.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.skia.org/perfsmoke/telemetry/go/action"
)

// Runner is a mock of action.Runner.
type Runner struct {
	mock.Mock
}

// Navigate provides a mock function with given fields: ctx, url, timeout
func (_m *Runner) Navigate(ctx context.Context, url string, timeout time.Duration) error {
	ret := _m.Called(ctx, url, timeout)
	return ret.Error(0)
}

// Wait provides a mock function with given fields: ctx, d
func (_m *Runner) Wait(ctx context.Context, d time.Duration) error {
	ret := _m.Called(ctx, d)
	return ret.Error(0)
}

// Evaluate provides a mock function with given fields: ctx, expression, res
func (_m *Runner) Evaluate(ctx context.Context, expression string, res interface{}) error {
	ret := _m.Called(ctx, expression, res)
	return ret.Error(0)
}

// ScrollPage provides a mock function with given fields: ctx, distance
func (_m *Runner) ScrollPage(ctx context.Context, distance int) error {
	ret := _m.Called(ctx, distance)
	return ret.Error(0)
}

var _ action.Runner = (*Runner)(nil)
