// Package log provides package level logger used by encoders.
package log

import (
	"fmt"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Level of logging.
type Level = logrus.Level

// LevelWarning is default level of every named logger.
const LevelWarning = logrus.WarnLevel

var logger = NamedLogger("mcnp")

// NamedLogger creates named package logger.
func NamedLogger(name string) *logrus.Logger {
	return &logrus.Logger{
		Out: os.Stderr,
		Formatter: &CustomTextFormatter{
			Name: name,
			TextFormatter: logrus.TextFormatter{
				ForceColors: true,
			},
		},
		Hooks: make(logrus.LevelHooks),
		Level: LevelWarning,
	}
}

// CustomTextFormatter prefixes every message with caller file and line.
type CustomTextFormatter struct {
	logrus.TextFormatter
	Name string
}

// Format renders a single log entry
func (f *CustomTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	file, no := "???", 0
	if entry.HasCaller() {
		file, no = path.Base(entry.Caller.File), entry.Caller.Line
	} else if _, callerFile, callerNo, ok := runtime.Caller(7); ok {
		file, no = path.Base(callerFile), callerNo
	}
	entry.Message = fmt.Sprintf("[%s][%-15s:%03d]%s", f.Name, file, no, entry.Message)
	return f.TextFormatter.Format(entry)
}

// SetLoggerLevel changes level of package logger.
func SetLoggerLevel(level Level) {
	logger.SetLevel(level)
}

// ParseLevel parses name of logging level e.g. "debug".
func ParseLevel(name string) (Level, error) {
	return logrus.ParseLevel(name)
}

// Debug ...
func Debug(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Info ...
func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Warning ...
func Warning(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error ...
func Error(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
