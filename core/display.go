package core

import (
	"cogentcore.org/core/math32"
	"github.com/hamidzr/screenfix/model"
	"github.com/pkg/errors"
)

// DisplayQuerier is the only boundary to native display code.
type DisplayQuerier interface {
	// NativeDisplaySize returns the main display bounds in physical points.
	NativeDisplaySize() (math32.Vector2, error)
}

// NativeDisplay returns the querier for the platform this binary was built for.
func NativeDisplay() DisplayQuerier {
	return nativeDisplay{}
}

// DisplayQuerierFunc adapts a function to DisplayQuerier.
type DisplayQuerierFunc func() (math32.Vector2, error)

func (f DisplayQuerierFunc) NativeDisplaySize() (math32.Vector2, error) {
	return f()
}

// Strategy decides the ScreenFixedSize for one platform.
type Strategy interface {
	Name() string
	Resolve() (model.ScreenFixedSize, error)
}

// NativeStrategy asks the native display for its physical size.
type NativeStrategy struct {
	Querier DisplayQuerier
}

func (NativeStrategy) Name() string { return "native" }

func (s NativeStrategy) Resolve() (model.ScreenFixedSize, error) {
	if s.Querier == nil {
		return model.NoOverride(), ErrDisplayUnavailable
	}
	size, err := s.Querier.NativeDisplaySize()
	if err != nil {
		return model.NoOverride(), errors.Wrap(err, "query native display size")
	}
	if size.X <= 0 || size.Y <= 0 {
		return model.NoOverride(), errors.Wrapf(ErrInvalidDisplaySize, "%gx%g", size.X, size.Y)
	}
	return model.FixedSize(size.X, size.Y), nil
}

// NoOverrideStrategy never touches native code.
type NoOverrideStrategy struct{}

func (NoOverrideStrategy) Name() string { return "none" }

func (NoOverrideStrategy) Resolve() (model.ScreenFixedSize, error) {
	return model.NoOverride(), nil
}

// StaticStrategy reports a size known ahead of time.
type StaticStrategy struct {
	Size model.ScreenFixedSize
}

func (StaticStrategy) Name() string { return "static" }

func (s StaticStrategy) Resolve() (model.ScreenFixedSize, error) {
	return s.Size, nil
}

// platformStrategies lists platforms that need a correction. Anything absent
// gets NoOverrideStrategy.
var platformStrategies = map[Platform]func(DisplayQuerier) Strategy{
	IOS: func(q DisplayQuerier) Strategy { return NativeStrategy{Querier: q} },
}

// StrategyFor selects the strategy for platform.
func StrategyFor(platform Platform, querier DisplayQuerier) Strategy {
	if build, ok := platformStrategies[platform]; ok {
		return build(querier)
	}
	return NoOverrideStrategy{}
}
