package log

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Field names shared by log entries across packages
const (
	FieldInspectionID = "inspection_id"
	FieldPartKey      = "part_key"
	FieldEvent        = "event"
)

// NewLogger returns a logrus logger writing to w at the named level. An unrecognized level falls back to info.
func NewLogger(w io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return l
}
