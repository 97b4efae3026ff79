// Package skerr provides errors that carry the file and line where they were
// created or wrapped. Wrapped errors remain reachable with errors.Is and
// errors.As.
package skerr

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// StackTrace identifies a single frame of a call stack.
type StackTrace struct {
	File string
	Line int
}

// String returns "file.go:123".
func (st StackTrace) String() string {
	return fmt.Sprintf("%s:%d", st.File, st.Line)
}

// ErrorWithContext is an error that carries a call stack and context messages
// in addition to its cause.
type ErrorWithContext struct {
	// Wrapped is the original error. Never nil.
	Wrapped error
	// CallStack is the frames at the point where the error was first wrapped.
	CallStack []StackTrace
	// Context holds messages added by Wrapf, outermost first.
	Context []string
}

// Error implements error.
func (err *ErrorWithContext) Error() string {
	var out strings.Builder
	for _, c := range err.Context {
		out.WriteString(c)
		out.WriteString(": ")
	}
	out.WriteString(err.Wrapped.Error())
	out.WriteString(". At")
	for _, st := range err.CallStack {
		out.WriteString(" ")
		out.WriteString(st.String())
	}
	return out.String()
}

// Unwrap allows errors.Is and errors.As to see the cause.
func (err *ErrorWithContext) Unwrap() error {
	return err.Wrapped
}

// CallStack returns up to depth frames, starting at the function that called
// CallStack and skipping startAt frames above it.
func CallStack(depth, startAt int) []StackTrace {
	pcs := make([]uintptr, depth)
	n := runtime.Callers(startAt+2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	rv := make([]StackTrace, 0, n)
	for {
		f, more := frames.Next()
		if f.File != "" {
			rv = append(rv, StackTrace{
				File: filepath.Base(f.File),
				Line: f.Line,
			})
		}
		if !more {
			break
		}
	}
	return rv
}

// Wrap adds stack information to err. If err already has stack information it
// is returned unchanged. Returns nil if err is nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var ewc *ErrorWithContext
	if errors.As(err, &ewc) {
		return err
	}
	return &ErrorWithContext{
		Wrapped:   err,
		CallStack: CallStack(5, 1),
	}
}

// Wrapf is Wrap with a context message prepended to the error text. Returns nil
// if err is nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	var ewc *ErrorWithContext
	if errors.As(err, &ewc) && ewc == err {
		return &ErrorWithContext{
			Wrapped:   ewc.Wrapped,
			CallStack: ewc.CallStack,
			Context:   append([]string{msg}, ewc.Context...),
		}
	}
	return &ErrorWithContext{
		Wrapped:   err,
		CallStack: CallStack(5, 1),
		Context:   []string{msg},
	}
}

// Fmt is fmt.Errorf with stack information attached. %w is honored.
func Fmt(format string, args ...interface{}) error {
	return &ErrorWithContext{
		Wrapped:   fmt.Errorf(format, args...),
		CallStack: CallStack(5, 1),
	}
}

// Unwrap returns the innermost error that is not an *ErrorWithContext.
func Unwrap(err error) error {
	for {
		ewc, ok := err.(*ErrorWithContext)
		if !ok {
			return err
		}
		err = ewc.Wrapped
	}
}
