// Package logger provides runtime.Logger implementations for running the bots
// outside a Nakama server.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/sirupsen/logrus"
)

// Logrus adapts a logrus entry to the Nakama runtime.Logger interface.
type Logrus struct {
	entry *logrus.Entry
}

var _ runtime.Logger = (*Logrus)(nil)

// New creates a text logger writing to stderr at the given level
// ("debug", "info", "warn", "error"). An unknown level falls back to info.
func New(level string) *Logrus {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with a custom output.
func NewWithWriter(w io.Writer, level string) *Logrus {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return &Logrus{entry: logrus.NewEntry(l)}
}

func (l *Logrus) Debug(format string, v ...interface{}) { l.entry.Debugf(format, v...) }
func (l *Logrus) Info(format string, v ...interface{})  { l.entry.Infof(format, v...) }
func (l *Logrus) Warn(format string, v ...interface{})  { l.entry.Warnf(format, v...) }
func (l *Logrus) Error(format string, v ...interface{}) { l.entry.Errorf(format, v...) }

func (l *Logrus) WithField(key string, v interface{}) runtime.Logger {
	return &Logrus{entry: l.entry.WithField(key, v)}
}

func (l *Logrus) WithFields(fields map[string]interface{}) runtime.Logger {
	return &Logrus{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *Logrus) Fields() map[string]interface{} {
	out := make(map[string]interface{}, len(l.entry.Data))
	for k, v := range l.entry.Data {
		out[k] = v
	}
	return out
}

// Noop returns a logger that discards everything.
func Noop() runtime.Logger {
	return noop{}
}

type noop struct{}

func (noop) Debug(string, ...interface{}) {}
func (noop) Info(string, ...interface{})  {}
func (noop) Warn(string, ...interface{})  {}
func (noop) Error(string, ...interface{}) {}
func (noop) WithField(string, interface{}) runtime.Logger {
	return noop{}
}
func (noop) WithFields(map[string]interface{}) runtime.Logger {
	return noop{}
}
func (noop) Fields() map[string]interface{} {
	return nil
}

// Recorder keeps formatted messages per level; handy in tests.
type Recorder struct {
	Messages map[string][]string
	fields   map[string]interface{}
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{Messages: make(map[string][]string)}
}

func (r *Recorder) record(level, format string, v ...interface{}) {
	r.Messages[level] = append(r.Messages[level], fmt.Sprintf(format, v...))
}

func (r *Recorder) Debug(format string, v ...interface{}) { r.record("debug", format, v...) }
func (r *Recorder) Info(format string, v ...interface{})  { r.record("info", format, v...) }
func (r *Recorder) Warn(format string, v ...interface{})  { r.record("warn", format, v...) }
func (r *Recorder) Error(format string, v ...interface{}) { r.record("error", format, v...) }

// WithField shares the message store with the parent.
func (r *Recorder) WithField(key string, v interface{}) runtime.Logger {
	return r.WithFields(map[string]interface{}{key: v})
}

func (r *Recorder) WithFields(fields map[string]interface{}) runtime.Logger {
	merged := make(map[string]interface{}, len(r.fields)+len(fields))
	for k, v := range r.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Recorder{Messages: r.Messages, fields: merged}
}

func (r *Recorder) Fields() map[string]interface{} {
	return r.fields
}
