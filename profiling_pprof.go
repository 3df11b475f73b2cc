//go:build pprof

package main

import (
	"os"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

// startProfiling writes a CPU profile to $SCREENFIX_CPU_PROFILE, or cpu.pprof.
func startProfiling() func() {
	path := os.Getenv("SCREENFIX_CPU_PROFILE")
	if path == "" {
		path = "cpu.pprof"
	}
	f, err := os.Create(path)
	if err != nil {
		logrus.WithError(err).Warn("could not create CPU profile")
		return func() {}
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		logrus.WithError(err).Warn("could not start CPU profile")
		_ = f.Close()
		return func() {}
	}

	return func() {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("could not close CPU profile")
		}
	}
}
