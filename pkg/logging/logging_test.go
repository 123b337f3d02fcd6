// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging_test

import (
	"bytes"
	"testing"

	"github.com/ethersphere/country-sdk/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func Test_ParseVerbosity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected logrus.Level
	}{
		{in: "0", expected: logrus.PanicLevel},
		{in: "silent", expected: logrus.PanicLevel},
		{in: "error", expected: logrus.ErrorLevel},
		{in: "WARN", expected: logrus.WarnLevel},
		{in: "3", expected: logrus.InfoLevel},
		{in: "debug", expected: logrus.DebugLevel},
		{in: "5", expected: logrus.TraceLevel},
	}

	for _, tc := range tests {
		got, err := logging.ParseVerbosity(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, tc.expected, got)
	}

	_, err := logging.ParseVerbosity("loud")
	assert.Error(t, err)
}

func Test_New(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := logging.New(&buf, logrus.InfoLevel)
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 2")
}

func Test_NewVerbosity(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l, err := logging.NewVerbosity(&buf, "silent")
	assert.NoError(t, err)
	l.Errorf("dropped")
	assert.Empty(t, buf.String())

	l, err = logging.NewVerbosity(&buf, "1")
	assert.NoError(t, err)
	l.Warningf("hidden")
	l.Errorf("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = logging.NewVerbosity(&buf, "loud")
	assert.Error(t, err)
}
