package main

import (
	"os"

	"github.com/hamidzr/screenfix/internal/cli"
	"github.com/hamidzr/screenfix/internal/logger"
	"github.com/hamidzr/screenfix/model"
	"github.com/sirupsen/logrus"
)

func main() {
	stop := startProfiling()
	cmd := cli.InitCLI()
	logger.SetupLogger()
	err := cmd.Execute()
	stop()
	if err != nil {
		code, cause := model.ExitCodeFromError(err)
		logrus.WithError(cause).Error("screenfix failed")
		os.Exit(int(code))
	}
}
