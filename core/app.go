package core

import (
	fcore "github.com/frostbyte73/core"
	"github.com/hamidzr/screenfix/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Plugin is a unit the host registers during startup. Build runs synchronously.
type Plugin interface {
	Build(app *App) error
}

// App is the host side of the plugin contract: it owns the shared-state
// registry and separates the setup phase from the run phase.
type App struct {
	registry *Registry
	started  fcore.Fuse
}

func NewApp() *App {
	return &App{registry: NewRegistry()}
}

// Registry returns the app's shared-state registry.
func (a *App) Registry() *Registry {
	return a.registry
}

// AddPlugins builds each plugin in order and stops at the first failure.
func (a *App) AddPlugins(plugins ...Plugin) error {
	if a.started.IsBroken() {
		return ErrAppStarted
	}
	for _, p := range plugins {
		if err := p.Build(a); err != nil {
			return errors.Wrapf(err, "build plugin %T", p)
		}
	}
	return nil
}

// Start ends the setup phase. Later AddPlugins calls fail with ErrAppStarted.
func (a *App) Start() {
	a.started.Break()
	logrus.WithField("resources", a.registry.Types()).Debug("app started")
}

func (a *App) Started() bool {
	return a.started.IsBroken()
}

// ScreenFixedSizeFrom reads the value registered by ScreenSizeFixPlugin.
func ScreenFixedSizeFrom(app *App) (model.ScreenFixedSize, error) {
	size, ok := Get[model.ScreenFixedSize](app.Registry())
	if !ok {
		return model.NoOverride(), ErrNotInitialized
	}
	return size, nil
}
