// Package sink displays visibility snapshots one entry at a time.
package sink

import (
	"fmt"
	"io"
	"sort"

	"github.com/akasprzok/legendsnap/internal/legend"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// Sink receives one key/value pair per call.
type Sink interface {
	Display(key, value string)
}

// Func adapts a plain function to a Sink.
type Func func(key, value string)

func (f Func) Display(key, value string) {
	f(key, value)
}

// WriterSink writes "key : value" lines.
type WriterSink struct {
	w     io.Writer
	style *lipgloss.Style
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// WithStyle renders each line through style.
func (s *WriterSink) WithStyle(style lipgloss.Style) *WriterSink {
	s.style = &style
	return s
}

func (s *WriterSink) Display(key, value string) {
	line := fmt.Sprintf("%s : %s", key, value)
	if s.style != nil {
		line = s.style.Render(line)
	}
	fmt.Fprintln(s.w, line)
}

// LogSink emits one log entry per pair.
type LogSink struct {
	logger logrus.FieldLogger
	level  logrus.Level
}

func NewLogSink(logger logrus.FieldLogger, level logrus.Level) *LogSink {
	return &LogSink{logger: logger, level: level}
}

func (s *LogSink) Display(key, value string) {
	entry := s.logger.WithFields(logrus.Fields{
		"series":  key,
		"visible": value,
	})
	switch s.level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		entry.Error("legend series")
	case logrus.WarnLevel:
		entry.Warn("legend series")
	case logrus.InfoLevel:
		entry.Info("legend series")
	default:
		entry.Debug("legend series")
	}
}

// Dump sends every entry of snap to s in key order.
func Dump(s Sink, snap legend.VisibilitySnapshot) {
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		s.Display(k, snap[k])
	}
}
