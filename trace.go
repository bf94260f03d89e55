package dropdown

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// traceLog is the package logger for widget state tracing.
// Default level is Warn, which suppresses trace and debug entries.
// SetVerbose(true) lowers it to Trace.
var traceLog = newTraceLogger(os.Stderr)

func newTraceLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// SetVerbose enables or disables trace logging for widgets.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		traceLog.SetLevel(logrus.TraceLevel)
	} else {
		traceLog.SetLevel(logrus.WarnLevel)
	}
}

// SetTraceOutput redirects the package logger.
func SetTraceOutput(w io.Writer) {
	traceLog.SetOutput(w)
}

// Logger returns the package logger so hosts can attach hooks or formatters.
func Logger() *logrus.Logger { return traceLog }
