// Package memlogging implements sklogimpl.Logger by keeping every line in
// memory. It is meant for tests that assert on what was logged.
package memlogging

import (
	"fmt"
	"sync"

	"go.skia.org/perfsmoke/go/sklog"
	"go.skia.org/perfsmoke/go/sklog/sklogimpl"
)

// Entry is one logged line.
type Entry struct {
	Severity sklogimpl.Severity
	Message  string
}

// Logger stores log lines. Fatal lines are stored but do not exit.
type Logger struct {
	mtx     sync.Mutex
	entries []Entry
}

// Log implements sklogimpl.Logger.
func (l *Logger) Log(_ int, severity sklogimpl.Severity, format string, args ...interface{}) {
	msg := fmt.Sprint(args...)
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.entries = append(l.entries, Entry{Severity: severity, Message: msg})
}

// Flush implements sklogimpl.Logger.
func (l *Logger) Flush() {}

// Entries returns a copy of everything logged so far.
func (l *Logger) Entries() []Entry {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Messages returns the messages logged at the given severity.
func (l *Logger) Messages(severity sklogimpl.Severity) []string {
	var rv []string
	for _, e := range l.Entries() {
		if e.Severity == severity {
			rv = append(rv, e.Message)
		}
	}
	return rv
}

// Install makes a new Logger the process-wide logger and returns it along with
// a func that restores the previous one.
func Install() (*Logger, func()) {
	prev := sklogimpl.GetLogger()
	l := &Logger{}
	sklog.SetLogger(l)
	return l, func() { sklog.SetLogger(prev) }
}
