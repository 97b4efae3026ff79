// Package sklogimpl holds the Logger interface and the process-wide logger
// used by package sklog. Only sklog and logger implementations import it.
package sklogimpl

import (
	"fmt"
	"sync"
)

// Severity of a log line.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
	Fatal
)

// String returns the upper-case name of the severity, e.g. "WARNING".
func (s Severity) String() string {
	switch s {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Logger is implemented by every log backend.
//
// depth is the number of stack frames between the user's call site and the
// call to Log. If format is empty, args are formatted with fmt.Sprint.
type Logger interface {
	Log(depth int, severity Severity, format string, args ...interface{})
	Flush()
}

var (
	mtx    sync.RWMutex
	logger Logger
)

// SetLogger replaces the process-wide logger.
func SetLogger(l Logger) {
	mtx.Lock()
	defer mtx.Unlock()
	logger = l
}

// GetLogger returns the process-wide logger.
func GetLogger() Logger {
	mtx.RLock()
	defer mtx.RUnlock()
	return logger
}

// Log sends a line to the process-wide logger.
func Log(depth int, severity Severity, format string, args ...interface{}) {
	GetLogger().Log(depth+1, severity, format, args...)
}

// Flush flushes the process-wide logger.
func Flush() {
	GetLogger().Flush()
}
