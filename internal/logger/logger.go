// Package logger carries the debug trace of nvh's supporting packages
// (detection, execution). User-facing output never goes through here; the
// engine's reporter writes it.
package logger

import (
	"fmt"
	"log"
	"os"
)

// EnvVar turns the trace on when set to any non-empty value.
const EnvVar = "NVH_LOG"

// Logger receives printf-style trace lines.
type Logger interface {
	Debug(format string, args ...interface{})
}

// envLogger writes to the standard log package while NVH_LOG is set.
type envLogger struct {
	prefix string
}

// NewEnvLogger returns a Logger gated on NVH_LOG. The prefix, such as
// "[detect]", starts every line.
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if os.Getenv(EnvVar) != "" {
		log.Printf(l.prefix+" "+format, args...)
	}
}

type noopLogger struct{}

// Noop returns a logger that drops everything.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...interface{}) {}

// BufferLogger keeps formatted lines for tests.
type BufferLogger struct {
	Lines []string
}

func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.Lines = append(l.Lines, fmt.Sprintf(format, args...))
}

var defaultLogger = NewEnvLogger("[nvh]")

// Default returns the package-level logger.
func Default() Logger {
	return defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(l Logger) {
	defaultLogger = l
}
