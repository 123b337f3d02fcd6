// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging provides the leveled logger shared by the SDK clients
// and the command line tool.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Tracef(format string, args ...interface{})
	Trace(args ...interface{})
	Debugf(format string, args ...interface{})
	Debug(args ...interface{})
	Infof(format string, args ...interface{})
	Info(args ...interface{})
	Warningf(format string, args ...interface{})
	Warning(args ...interface{})
	Errorf(format string, args ...interface{})
	Error(args ...interface{})
	Fatalf(format string, args ...interface{})
	Fatal(args ...interface{})
	WithField(key string, value interface{}) *logrus.Entry
	WithFields(fields logrus.Fields) *logrus.Entry
}

type logger struct {
	*logrus.Logger
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level logrus.Level) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		FullTimestamp: true,
	}

	return &logger{Logger: l}
}

// Discard returns a logger that drops everything.
func Discard() Logger {
	return New(io.Discard, logrus.PanicLevel)
}

// NewVerbosity returns a logger for a verbosity flag value. Silent
// verbosity discards all output.
func NewVerbosity(w io.Writer, verbosity string) (Logger, error) {
	level, err := ParseVerbosity(verbosity)
	if err != nil {
		return nil, err
	}

	if level == logrus.PanicLevel {
		return Discard(), nil
	}

	return New(w, level), nil
}

// ParseVerbosity maps a verbosity flag value (either a number 0-5 or a level
// name) to a logrus level. Silent maps to PanicLevel.
func ParseVerbosity(verbosity string) (logrus.Level, error) {
	switch strings.ToLower(verbosity) {
	case "0", "silent":
		return logrus.PanicLevel, nil
	case "1", "error":
		return logrus.ErrorLevel, nil
	case "2", "warn":
		return logrus.WarnLevel, nil
	case "3", "info":
		return logrus.InfoLevel, nil
	case "4", "debug":
		return logrus.DebugLevel, nil
	case "5", "trace":
		return logrus.TraceLevel, nil
	default:
		return 0, fmt.Errorf("unknown verbosity level %q", verbosity)
	}
}
