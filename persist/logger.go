package persist

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger wraps a logrus.Logger with a banner-file convention: every log
// file opens with a "STARTUP" line and closes with a "SHUTDOWN" line.
type Logger struct {
	*logrus.Logger
	file *os.File
}

// NewFileLogger opens (creating if necessary) a log file at path and
// returns a Logger that writes both a startup banner and, on Close, a
// shutdown banner to it.
func NewFileLogger(component, path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}

	base := logrus.New()
	base.SetOutput(f)
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	l := &Logger{Logger: base, file: f}
	l.WithField("component", component).Info("STARTUP: log file opened")
	return l, nil
}

// NewMultiLogger is NewFileLogger plus a second writer (typically os.Stdout)
// that also receives every line, for components that want console output
// alongside the persisted log.
func NewMultiLogger(component, path string, extra io.Writer) (*Logger, error) {
	l, err := NewFileLogger(component, path)
	if err != nil {
		return nil, err
	}
	l.SetOutput(io.MultiWriter(l.file, extra))
	return l, nil
}

// Critical logs at Panic level (STARTUP/SHUTDOWN banner semantics aside,
// this always panics after writing the entry) for invariant violations a caller never expects to
// recover from, mirroring build.Critical's always-panic behavior for the
// logging path.
func (l *Logger) Critical(args ...interface{}) {
	l.Logger.WithField("severity", "CRITICAL").Panic(args...)
}

// Close writes the shutdown banner and closes the underlying file.
func (l *Logger) Close() error {
	l.WithField("component", "persist").Info("SHUTDOWN: log file closed")
	return l.file.Close()
}
