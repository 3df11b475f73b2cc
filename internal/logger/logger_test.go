package logger

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	out := logrus.StandardLogger().Out
	level := logrus.GetLevel()
	t.Cleanup(func() {
		logrus.SetOutput(out)
		logrus.SetLevel(level)
	})
}

func TestSetLevel(t *testing.T) {
	restoreLogger(t)

	logrus.SetLevel(logrus.InfoLevel)
	SetLevel("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	SetLevel("")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	SetLevel("chatty")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestSetupLoggerUsesStderrForAllLevels(t *testing.T) {
	restoreLogger(t)

	SetupLogger()
	assert.Equal(t, os.Stderr, logrus.StandardLogger().Out)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	// warnings must not switch the stream for later entries
	logrus.Warn("display unavailable")
	logrus.Info("registered")
	assert.Equal(t, os.Stderr, logrus.StandardLogger().Out)
}
