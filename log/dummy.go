package log

// dummyLogger discards every message. It is never set as the package
// default (BasicLogger is), but is available for callers who want to
// silence the client explicitly: log.SetLogger(log.Dummy()).
type dummyLogger struct{}

var _ Leveled = dummyLogger{}

func (dummyLogger) Debugf(format string, args ...interface{})   {}
func (dummyLogger) Infof(format string, args ...interface{})    {}
func (dummyLogger) Warningf(format string, args ...interface{}) {}
func (dummyLogger) Errorf(format string, args ...interface{})   {}

// Dummy returns a Leveled logger that discards every message.
func Dummy() Leveled {
	return dummyLogger{}
}
