package model

import (
	"encoding/json"
	"fmt"

	"cogentcore.org/core/math32"
)

// ScreenFixedSize is the physical point size of the native display, when the
// running platform needs touch positions corrected against it.
// The zero value means no override.
type ScreenFixedSize struct {
	size math32.Vector2
	ok   bool
}

// NoOverride returns a ScreenFixedSize that tells callers to use the reported
// viewport size unmodified.
func NoOverride() ScreenFixedSize {
	return ScreenFixedSize{}
}

// FixedSize returns a ScreenFixedSize holding the given physical size.
func FixedSize(width, height float32) ScreenFixedSize {
	return ScreenFixedSize{size: math32.Vec2(width, height), ok: true}
}

// Size returns the physical size and whether an override is present.
func (s ScreenFixedSize) Size() (math32.Vector2, bool) {
	return s.size, s.ok
}

// HasOverride reports whether callers must rescale input positions.
func (s ScreenFixedSize) HasOverride() bool {
	return s.ok
}

// FixPosition maps a position reported in viewport space onto the corrected
// position. With no override p is returned unchanged, otherwise
// (p / size) * viewport, component-wise.
func (s ScreenFixedSize) FixPosition(p, viewport math32.Vector2) math32.Vector2 {
	if !s.ok {
		return p
	}
	return p.Div(s.size).Mul(viewport)
}

func (s ScreenFixedSize) String() string {
	if !s.ok {
		return "none"
	}
	return fmt.Sprintf("%gx%g", s.size.X, s.size.Y)
}

type sizeDoc struct {
	Width  float32 `json:"width" yaml:"width"`
	Height float32 `json:"height" yaml:"height"`
}

type screenFixedSizeDoc struct {
	Size *sizeDoc `json:"size" yaml:"size"`
}

func (s ScreenFixedSize) doc() screenFixedSizeDoc {
	if !s.ok {
		return screenFixedSizeDoc{}
	}
	return screenFixedSizeDoc{Size: &sizeDoc{Width: s.size.X, Height: s.size.Y}}
}

// MarshalJSON renders {"size":null} or {"size":{"width":w,"height":h}}.
func (s ScreenFixedSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.doc())
}

// MarshalYAML mirrors MarshalJSON for yaml encoders.
func (s ScreenFixedSize) MarshalYAML() (interface{}, error) {
	return s.doc(), nil
}
