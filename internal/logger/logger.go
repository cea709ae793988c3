// Package logger provides a lightweight, centralized logging facility
// with configurable verbosity levels.
//
// The call-site API stays small (Errorf, Infof, Debugf, Tracef) while
// formatting and output are delegated to logrus.
//
// Verbosity levels (in increasing order):
//
//	Error < Info < Debug < Trace
//
// Example usage:
//
//	logger.SetVerbosity(2) // Debug
//	logger.Infof("pricing %d scenarios", n)
//	logger.Debugf("d1=%f d2=%f", d1, d2)
package logger

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Level represents a logging verbosity level.
// Higher values mean more verbose logging.
type Level int

const (
	Error Level = iota // Error logs only critical failures.
	Info               // Info logs high-level application progress.
	Debug              // Debug logs detailed diagnostic information.
	Trace              // Trace logs very fine-grained execution details.
)

var std = log.New()

func init() {
	// Logs go to stderr so that priced output on stdout stays pipeable.
	std.SetOutput(os.Stderr)
	std.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	SetVerbosity(int(Info))
}

// SetVerbosity sets the global logging verbosity.
// Out-of-range values are clamped to Error or Trace.
func SetVerbosity(v int) {
	switch {
	case v <= int(Error):
		std.SetLevel(log.ErrorLevel)
	case v == int(Info):
		std.SetLevel(log.InfoLevel)
	case v == int(Debug):
		std.SetLevel(log.DebugLevel)
	default:
		std.SetLevel(log.TraceLevel)
	}
}

// Verbosity returns the active verbosity level.
func Verbosity() Level {
	switch std.GetLevel() {
	case log.InfoLevel:
		return Info
	case log.DebugLevel:
		return Debug
	case log.TraceLevel:
		return Trace
	default:
		return Error
	}
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Errorf logs an error-level message.
// Use this for failures that require attention.
func Errorf(format string, args ...any) {
	std.Errorf(format, args...)
}

// Infof logs an informational message.
func Infof(format string, args ...any) {
	std.Infof(format, args...)
}

// Debugf logs debugging information.
func Debugf(format string, args ...any) {
	std.Debugf(format, args...)
}

// Tracef logs very detailed execution traces.
// Use this sparingly due to high volume.
func Tracef(format string, args ...any) {
	std.Tracef(format, args...)
}

// Fatalf logs at fatal level and exits the process with status 1.
func Fatalf(format string, args ...any) {
	std.Fatalf(format, args...)
}
