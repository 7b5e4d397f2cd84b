package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerIsNeverNil(t *testing.T) {
	// Package init installs a no-op logger so early callers never panic
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() {
		Infow("message before Initialize", "key", "value")
		Errorw("error before Initialize")
	})
}

func TestInitializeConsole(t *testing.T) {
	err := Initialize(false)
	require.NoError(t, err)
	assert.False(t, JSONOutput)
	assert.NotNil(t, Logger)
}

func TestInitializeJSON(t *testing.T) {
	err := Initialize(true)
	require.NoError(t, err)
	assert.True(t, JSONOutput)
	assert.NotNil(t, Logger)
}

func TestPackageHelpersDoNotPanic(t *testing.T) {
	require.NoError(t, Initialize(false))
	assert.NotPanics(t, func() {
		Info("plain")
		Infof("formatted %d", 1)
		Infow("structured", "k", "v")
		Error("plain")
		Errorf("formatted %d", 2)
		Errorw("structured", "k", "v")
		Warnw("warning", "k", "v")
		Debugw("debug", "k", "v")
		Cleanup()
	})
}
