package core

import (
	"cogentcore.org/core/math32"
	"github.com/hamidzr/screenfix/model"
)

// TouchFixer corrects touch positions for one window. The size is injected
// at construction, the viewport is read on every call since windows resize.
type TouchFixer struct {
	size     model.ScreenFixedSize
	viewport func() math32.Vector2
}

func NewTouchFixer(size model.ScreenFixedSize, viewport func() math32.Vector2) *TouchFixer {
	return &TouchFixer{size: size, viewport: viewport}
}

// NewTouchFixerFromApp reads the registered size from app.
func NewTouchFixerFromApp(app *App, viewport func() math32.Vector2) (*TouchFixer, error) {
	size, err := ScreenFixedSizeFrom(app)
	if err != nil {
		return nil, err
	}
	return NewTouchFixer(size, viewport), nil
}

// Fix maps a position reported in the current viewport to the corrected one.
func (f *TouchFixer) Fix(p math32.Vector2) math32.Vector2 {
	if !f.size.HasOverride() || f.viewport == nil {
		return p
	}
	return f.size.FixPosition(p, f.viewport())
}

func (f *TouchFixer) Size() model.ScreenFixedSize {
	return f.size
}
