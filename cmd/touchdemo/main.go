package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/hamidzr/screenfix/core"
	"github.com/hamidzr/screenfix/internal/logger"
	"github.com/hamidzr/screenfix/pkg/config"
	"github.com/hamidzr/screenfix/render"
	"github.com/sirupsen/logrus"
)

const (
	sidebarWidth = 180
	mainWidth    = 420
	mainHeight   = 640
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

	fyneApp := app.NewWithID("screenfix-touchdemo")
	mainWindow := fyneApp.NewWindow("Touch Fix Demo")

	size, err := core.ScreenFixedSizeFrom(host)
	if err != nil {
		logrus.WithError(err).Fatal("screen fixed size missing")
	}
	fixer := core.NewTouchFixer(size, render.CanvasViewport(mainWindow.Canvas()))

	status := widget.NewLabel(fmt.Sprintf("size: %s\ntouch anywhere", size))
	status.Wrapping = fyne.TextWrapWord
	area := render.NewTouchArea(fixer, func(phase render.TouchPhase, pos fyne.Position) {
		logrus.WithFields(logrus.Fields{"phase": phase, "x": pos.X, "y": pos.Y}).Debug("touch")
		status.SetText(fmt.Sprintf("size: %s\n%s at (%.1f, %.1f)", size, phase, pos.X, pos.Y))
	})

	content := container.New(render.NewSidebarLayout(sidebarWidth), area, status)
	mainWindow.SetContent(content)
	mainWindow.Resize(fyne.NewSize(mainWidth, mainHeight))
	mainWindow.SetOnClosed(func() {
		fyneApp.Quit()
	})
	mainWindow.ShowAndRun()
}
