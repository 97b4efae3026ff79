// Package sklog defines the logging functions (e.g. Info, Errorf, etc.).
//
// Output goes to stderr by default. Call SetLogger to send it elsewhere.
package sklog

import (
	"os"

	"go.skia.org/perfsmoke/go/sklog/sklogimpl"
	"go.skia.org/perfsmoke/go/sklog/stdlogging"
)

// A logger must be installed before anything logs; otherwise a nil pointer
// panic is likely.
func init() {
	sklogimpl.SetLogger(stdlogging.New(os.Stderr))
}

// SetLogger replaces the logger used by all functions in this package.
func SetLogger(l sklogimpl.Logger) {
	sklogimpl.SetLogger(l)
}

// Functions ending in f use fmt.Sprintf to format the arguments, the others
// use fmt.Sprint.
func Debug(msg ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Debug, "", msg...)
}

func Debugf(format string, v ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Debug, format, v...)
}

func Info(msg ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Info, "", msg...)
}

func Infof(format string, v ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Info, format, v...)
}

// InfofWithDepth lets the caller move the reported call site up the stack;
// 1 means the caller's caller.
func InfofWithDepth(depth int, format string, v ...interface{}) {
	sklogimpl.Log(1+depth, sklogimpl.Info, format, v...)
}

func Warning(msg ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Warning, "", msg...)
}

func Warningf(format string, v ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Warning, format, v...)
}

func Error(msg ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Error, "", msg...)
}

func Errorf(format string, v ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Error, format, v...)
}

func ErrorfWithDepth(depth int, format string, v ...interface{}) {
	sklogimpl.Log(1+depth, sklogimpl.Error, format, v...)
}

// Fatal* exits the program after logging.
func Fatal(msg ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Fatal, "", msg...)
}

func Fatalf(format string, v ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Fatal, format, v...)
}

func Flush() {
	sklogimpl.Flush()
}
