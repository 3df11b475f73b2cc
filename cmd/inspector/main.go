package main

import (
	"os"

	"github.com/hamidzr/screenfix/core"
	"github.com/hamidzr/screenfix/internal/logger"
	"github.com/hamidzr/screenfix/model"
	"github.com/hamidzr/screenfix/pkg/config"
	"github.com/hamidzr/screenfix/render/cogent"
	"github.com/sirupsen/logrus"
)

func main() {
	logger.SetupLogger()

	cfg, err := config.LoadProfile(os.Getenv("SCREENFIX_PROFILE"))
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}
	logger.SetLevel(cfg.LogLevel)

	plugin, err := core.NewScreenSizeFixPluginFromConfig(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("invalid config")
	}
	host := core.NewApp()
	if err := host.AddPlugins(plugin); err != nil {
		logrus.WithError(err).Fatal("startup failed")
	}
	host.Start()

	cogent.RunInspector(plugin.Platform().String(), core.MustGet[model.ScreenFixedSize](host.Registry()))
}
