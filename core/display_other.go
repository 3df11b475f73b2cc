//go:build !ios

package core

import (
	"cogentcore.org/core/math32"
	"github.com/pkg/errors"
)

type nativeDisplay struct{}

// NativeDisplaySize has no native backing outside iOS.
func (nativeDisplay) NativeDisplaySize() (math32.Vector2, error) {
	return math32.Vector2{}, errors.Wrapf(ErrDisplayUnavailable, "no native display query on %s", CurrentPlatform())
}
