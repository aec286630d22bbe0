// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterSinkFormatsLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)
	s.Log(Warn, "parser", "ambiguous input")

	assert.Equal(t, "[WARN] parser: ambiguous input\n", buf.String())
}

func TestNullSinkDiscards(t *testing.T) {
	NullSink.Log(Error, "x", "y")
}

func TestLoggerRespectsLevel(t *testing.T) {
	defer SetLevel(Warn)
	defer SetSink(NewWriterSink(nil))

	var buf bytes.Buffer
	SetSink(NewWriterSink(&buf))
	SetLevel(Warn)

	l := New("matcher")
	l.Debugf("should not appear")
	assert.Empty(t, buf.String())

	l.Warnf("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.Infof("anything")
	})
}
