// Package logger provides the logrus-backed implementation of interfaces.Logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ngmachado/web3-hooks/domain/interfaces"
	"github.com/sirupsen/logrus"
)

const (
	// FormatText renders key=value lines.
	FormatText = "text"
	// FormatJSON renders one JSON object per line.
	FormatJSON = "json"

	serviceName = "web3-hooks"
)

// Options configures a pipeline logger.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

type logrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger returns a text logger on stdout.
func NewLogrusLogger(level string) interfaces.Logger {
	return New(Options{Level: level})
}

// NewLogrusLoggerWithOutput returns a text logger writing to out.
func NewLogrusLoggerWithOutput(level string, out io.Writer) interfaces.Logger {
	return New(Options{Level: level, Output: out})
}

// New builds a logger from opts. Every entry carries service=web3-hooks.
func New(opts Options) interfaces.Logger {
	base := logrus.New()
	base.SetLevel(ParseLevel(opts.Level))

	if opts.Output != nil {
		base.SetOutput(opts.Output)
	} else {
		base.SetOutput(os.Stdout)
	}

	if strings.EqualFold(opts.Format, FormatJSON) {
		base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return &logrusLogger{entry: base.WithField("service", serviceName)}
}

// ParseLevel converts a level name or its numeric alias (1=error .. 4=debug)
// into a logrus level. Unknown values fall back to info.
func ParseLevel(s string) logrus.Level {
	switch s {
	case "1":
		return logrus.ErrorLevel
	case "2":
		return logrus.WarnLevel
	case "3":
		return logrus.InfoLevel
	case "4":
		return logrus.DebugLevel
	}

	level, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (l *logrusLogger) Debug(msg string, fields ...interface{}) {
	l.log(logrus.DebugLevel, msg, fields)
}

func (l *logrusLogger) Info(msg string, fields ...interface{}) {
	l.log(logrus.InfoLevel, msg, fields)
}

func (l *logrusLogger) Warn(msg string, fields ...interface{}) {
	l.log(logrus.WarnLevel, msg, fields)
}

func (l *logrusLogger) Error(msg string, fields ...interface{}) {
	l.log(logrus.ErrorLevel, msg, fields)
}

// Fatal logs at fatal level and exits the process.
func (l *logrusLogger) Fatal(msg string, fields ...interface{}) {
	l.entry.WithFields(parseFields(fields...)).Fatal(msg)
}

func (l *logrusLogger) WithFields(fields map[string]interface{}) interfaces.Logger {
	return &logrusLogger{entry: l.entry.WithFields(fields)}
}

func (l *logrusLogger) WithError(err error) interfaces.Logger {
	return &logrusLogger{entry: l.entry.WithError(err)}
}

func (l *logrusLogger) log(level logrus.Level, msg string, fields []interface{}) {
	if !l.entry.Logger.IsLevelEnabled(level) {
		return
	}
	l.entry.WithFields(parseFields(fields...)).Log(level, msg)
}

// parseFields turns alternating key/value pairs into logrus.Fields.
// Non-string keys are stringified and error values are flattened to their message.
// A trailing key without a value is dropped.
func parseFields(fields ...interface{}) logrus.Fields {
	result := make(logrus.Fields, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprint(fields[i])
		}
		if err, isErr := fields[i+1].(error); isErr && err != nil {
			result[key] = err.Error()
			continue
		}
		result[key] = fields[i+1]
	}
	return result
}
