package log

import "os"

var logger Leveled = NewBasicLogger(os.Stderr, LevelInfo)

// SetLogger replaces the package-wide logging sink. The deserializer and
// the client operations log through the sink set here; it is treated as
// effectively immutable once the first
// operation is issued (see the client package's concurrency notes).
func SetLogger(l Leveled) {
	if l == nil {
		l = Dummy()
	}
	logger = l
}

// Logger returns the currently configured sink.
func Logger() Leveled {
	return logger
}

// Debugf logs a debug-level message through the current sink.
func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }

// Infof logs an info-level message through the current sink.
func Infof(format string, args ...interface{}) { logger.Infof(format, args...) }

// Warningf logs a warning-level message through the current sink.
func Warningf(format string, args ...interface{}) { logger.Warningf(format, args...) }

// Errorf logs an error-level message through the current sink.
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
