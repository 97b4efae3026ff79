// Package stdlogging is the default sklogimpl.Logger. Lines go to a
// logger.SyncWriter such as os.Stderr, in glog format.
package stdlogging

import (
	"fmt"

	logger "github.com/jcgregorio/logger"
	"go.skia.org/perfsmoke/go/sklog/sklogimpl"
)

// Frames between the caller of sklog.Infof and the jcgregorio/logger call.
const depthDelta = 3

type stdlog struct {
	dst    logger.SyncWriter
	logger *logger.Logger
}

// New returns a sklogimpl.Logger writing to dst. Debug lines are included.
func New(dst logger.SyncWriter) sklogimpl.Logger {
	return &stdlog{
		dst: dst,
		logger: logger.NewFromOptions(&logger.Options{
			SyncWriter:   dst,
			DepthDelta:   depthDelta,
			IncludeDebug: true,
		}),
	}
}

// Log implements sklogimpl.Logger. Unknown severities are logged as errors.
func (s *stdlog) Log(_ int, severity sklogimpl.Severity, format string, args ...interface{}) {
	msg := fmt.Sprint(args...)
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}
	switch severity {
	case sklogimpl.Debug:
		s.logger.Debug(msg)
	case sklogimpl.Info:
		s.logger.Info(msg)
	case sklogimpl.Warning:
		s.logger.Warning(msg)
	case sklogimpl.Fatal:
		s.logger.Fatal(msg)
	default:
		s.logger.Error(msg)
	}
}

// Flush implements sklogimpl.Logger by syncing the destination.
func (s *stdlog) Flush() {
	_ = s.dst.Sync()
}
