// Package log provides the prefixed, colored loggers used across the app.
package log

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/amazeing/config"
	"github.com/sirupsen/logrus"
)

// Logger writes leveled lines tagged with a component prefix.
type Logger struct {
	entry *logrus.Entry
}

// New creates a logger writing to out. Every line starts with prefix
// rendered in color; an empty color disables coloring.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if out == nil {
		return nil, errors.New("logger output writer is nil")
	}
	if prefix == "" {
		return nil, errors.New("logger prefix is empty")
	}

	base := logrus.New()
	base.SetOutput(out)
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&prefixFormatter{prefix: prefix, color: color})

	return &Logger{entry: logrus.NewEntry(base)}, nil
}

func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

func (l *Logger) Debug(msg string) {
	l.entry.Debug(msg)
}

// prefixFormatter renders "[PREFIX] time [LEVEL] message".
type prefixFormatter struct {
	prefix string
	color  string
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	if f.color != "" {
		fmt.Fprintf(&b, "%s[%s]%s ", f.color, f.prefix, config.ColorReset)
	} else {
		fmt.Fprintf(&b, "[%s] ", f.prefix)
	}
	fmt.Fprintf(&b, "%s [%s] %s", e.Time.Format("2006/01/02 15:04:05"), levelName(e.Level), e.Message)
	b.WriteByte('\n')

	return b.Bytes(), nil
}

func levelName(level logrus.Level) string {
	if level == logrus.WarnLevel {
		return "WARNING"
	}
	return strings.ToUpper(level.String())
}
