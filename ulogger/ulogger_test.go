package ulogger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZeroLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewZeroLogger("test", WithWriter(&buf), WithLevel("DEBUG"))
	require.NotNil(t, logger)

	logger.Debugf("hello %s", "world")
	assert.Contains(t, buf.String(), "hello world")
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := NewZeroLogger("test", WithWriter(&buf), WithLevel("ERROR"))

	logger.Infof("should be suppressed")
	assert.NotContains(t, buf.String(), "should be suppressed")

	logger.Errorf("should be logged")
	assert.Contains(t, buf.String(), "should be logged")
}

func TestChildLogger(t *testing.T) {
	var buf bytes.Buffer

	parent := NewZeroLogger("parent", WithWriter(&buf), WithLevel("WARN"))

	child := parent.New("child")
	assert.Equal(t, parent.LogLevel(), child.LogLevel())
}

func TestTestLogger(t *testing.T) {
	logger := NewTestLogger(t)
	logger.Infof("logged through testing.T")
	assert.Equal(t, 0, logger.LogLevel())
}
