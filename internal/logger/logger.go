package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogger sends every log level to stderr. Stdout carries only command
// output, which may be piped as yaml or json.
func SetupLogger() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.InfoLevel)
}

// SetLevel applies a level name from config. Unknown names keep the current
// level and are reported.
func SetLevel(name string) {
	if name == "" {
		return
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		logrus.WithError(err).Warn("invalid log level, keeping ", logrus.GetLevel())
		return
	}
	logrus.SetLevel(level)
}
