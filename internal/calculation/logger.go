package calculation

import (
	"fmt"
	"io"
)

// Logger is a minimal logging interface for the refund engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// WriterLogger writes leveled lines to an io.Writer. The CLI uses it with
// stderr when --debug is set.
type WriterLogger struct {
	W io.Writer
}

func (l WriterLogger) Debugf(format string, args ...any) { l.printf("DEBUG", format, args...) }
func (l WriterLogger) Infof(format string, args ...any)  { l.printf("INFO", format, args...) }
func (l WriterLogger) Warnf(format string, args ...any)  { l.printf("WARN", format, args...) }
func (l WriterLogger) Errorf(format string, args ...any) { l.printf("ERROR", format, args...) }

func (l WriterLogger) printf(level, format string, args ...any) {
	if l.W == nil {
		return
	}
	fmt.Fprintf(l.W, level+": "+format+"\n", args...)
}
