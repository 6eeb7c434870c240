package log

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync/atomic"
)

var logSequenceID uint64

// Level defines a logging level used by BasicLogger.
type Level int

// Levels supported by BasicLogger, in increasing severity order.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelUnknown
)

var levelNames = map[Level]string{
	LevelDebug:   "debug",
	LevelInfo:    "info",
	LevelWarning: "warning",
	LevelError:   "error",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLevel parses a Level from its name, case insensitively. An unknown
// name yields LevelUnknown.
func ParseLevel(name string) Level {
	name = strings.ToLower(name)
	for l, n := range levelNames {
		if n == name {
			return l
		}
	}
	return LevelUnknown
}

// Leveled is the interface the rest of this module logs through. It is
// intentionally small so any third-party leveled logger (including
// github.com/neuronlabs/uni-logger's LeveledLogger) can be adapted to it
// with a thin wrapper.
type Leveled interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// BasicLogger is a small leveled logger backed by the standard library
// "log" package, used as the default sink until a caller calls SetLogger.
type BasicLogger struct {
	stdLogger *log.Logger
	level     Level
}

var _ Leveled = (*BasicLogger)(nil)

// NewBasicLogger creates a BasicLogger writing formatted, leveled messages
// to out with the given level as its minimum severity.
func NewBasicLogger(out io.Writer, level Level) *BasicLogger {
	return &BasicLogger{stdLogger: log.New(out, "", log.LstdFlags), level: level}
}

// SetLevel changes the minimum level this logger emits.
func (l *BasicLogger) SetLevel(level Level) {
	l.level = level
}

func (l *BasicLogger) log(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	id := atomic.AddUint64(&logSequenceID, 1)
	msg := fmt.Sprintf(format, args...)
	_ = l.stdLogger.Output(3, fmt.Sprintf("%s|%04x: %s", level, id, msg))
}

func (l *BasicLogger) Debugf(format string, args ...interface{})   { l.log(LevelDebug, format, args...) }
func (l *BasicLogger) Infof(format string, args ...interface{})    { l.log(LevelInfo, format, args...) }
func (l *BasicLogger) Warningf(format string, args ...interface{}) { l.log(LevelWarning, format, args...) }
func (l *BasicLogger) Errorf(format string, args ...interface{})   { l.log(LevelError, format, args...) }
