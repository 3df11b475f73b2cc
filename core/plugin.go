package core

import (
	"strings"

	"github.com/hamidzr/screenfix/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MissingDisplayPolicy decides what Initialize does when the native display
// cannot be queried.
type MissingDisplayPolicy int

const (
	// DegradeOnMissing logs a warning and reports no override.
	DegradeOnMissing MissingDisplayPolicy = iota
	// AbortOnMissing returns the error to the host.
	AbortOnMissing
)

// ParseMissingDisplayPolicy accepts "degrade" (or empty) and "abort".
func ParseMissingDisplayPolicy(s string) (MissingDisplayPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", model.OnMissingDegrade:
		return DegradeOnMissing, nil
	case model.OnMissingAbort:
		return AbortOnMissing, nil
	}
	return DegradeOnMissing, errors.Errorf("invalid missing display policy %q, expected %q or %q",
		s, model.OnMissingDegrade, model.OnMissingAbort)
}

func (p MissingDisplayPolicy) String() string {
	if p == AbortOnMissing {
		return model.OnMissingAbort
	}
	return model.OnMissingDegrade
}

// ScreenSizeFixPlugin determines the physical screen size once and registers
// it as a model.ScreenFixedSize.
//
// On iOS real devices the window size the host reports differs from the
// UIKit point size, so touch positions must be rescaled by callers:
//
//	size, _ := core.ScreenFixedSizeFrom(app)
//	fixed := size.FixPosition(touch, viewport)
type ScreenSizeFixPlugin struct {
	platform  Platform
	querier   DisplayQuerier
	onMissing MissingDisplayPolicy
	manual    model.ScreenFixedSize
}

type Option func(*ScreenSizeFixPlugin)

// WithPlatform overrides the detected platform identity.
func WithPlatform(p Platform) Option {
	return func(s *ScreenSizeFixPlugin) { s.platform = p }
}

// WithQuerier replaces the native display querier.
func WithQuerier(q DisplayQuerier) Option {
	return func(s *ScreenSizeFixPlugin) { s.querier = q }
}

func WithMissingDisplayPolicy(p MissingDisplayPolicy) Option {
	return func(s *ScreenSizeFixPlugin) { s.onMissing = p }
}

// WithManualSize skips platform selection and always reports width x height.
// Non-positive values are ignored.
func WithManualSize(width, height float32) Option {
	return func(s *ScreenSizeFixPlugin) {
		if width > 0 && height > 0 {
			s.manual = model.FixedSize(width, height)
		}
	}
}

func NewScreenSizeFixPlugin(opts ...Option) *ScreenSizeFixPlugin {
	p := &ScreenSizeFixPlugin{
		platform:  CurrentPlatform(),
		querier:   NativeDisplay(),
		onMissing: DegradeOnMissing,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewScreenSizeFixPluginFromConfig builds the plugin from loaded configuration.
func NewScreenSizeFixPluginFromConfig(cfg *model.Config, opts ...Option) (*ScreenSizeFixPlugin, error) {
	platform, err := ParsePlatform(cfg.Platform)
	if err != nil {
		return nil, err
	}
	policy, err := ParseMissingDisplayPolicy(cfg.OnMissing)
	if err != nil {
		return nil, err
	}
	base := []Option{
		WithPlatform(platform),
		WithMissingDisplayPolicy(policy),
	}
	if cfg.HasManualOverride() {
		base = append(base, WithManualSize(cfg.OverrideWidth, cfg.OverrideHeight))
	}
	return NewScreenSizeFixPlugin(append(base, opts...)...), nil
}

// Platform returns the platform identity the plugin resolves for.
func (p *ScreenSizeFixPlugin) Platform() Platform {
	return p.platform
}

// Strategy returns the strategy Initialize will use.
func (p *ScreenSizeFixPlugin) Strategy() Strategy {
	if p.manual.HasOverride() {
		return StaticStrategy{Size: p.manual}
	}
	return StrategyFor(p.platform, p.querier)
}

// Initialize computes the ScreenFixedSize. It only fails when the native
// display is missing and the policy is AbortOnMissing.
func (p *ScreenSizeFixPlugin) Initialize() (model.ScreenFixedSize, error) {
	strategy := p.Strategy()
	log := logrus.WithFields(logrus.Fields{
		"platform": p.platform,
		"strategy": strategy.Name(),
	})

	size, err := strategy.Resolve()
	if err != nil {
		if p.onMissing == AbortOnMissing {
			return model.NoOverride(), errors.Wrapf(err, "resolve screen size on %s", p.platform)
		}
		log.WithError(err).Warn("native display unavailable, touch positions will not be corrected")
		return model.NoOverride(), nil
	}
	log.WithField("size", size).Debug("resolved screen fixed size")
	return size, nil
}

// Build implements Plugin. The value replaces any earlier registration.
func (p *ScreenSizeFixPlugin) Build(app *App) error {
	size, err := p.Initialize()
	if err != nil {
		return err
	}
	if _, ok := Get[model.ScreenFixedSize](app.Registry()); ok {
		logrus.Warn("screen fixed size registered more than once, keeping the latest")
	}
	Insert(app.Registry(), size)
	logrus.WithField("size", size).Debug("screen fixed size registered")
	return nil
}
