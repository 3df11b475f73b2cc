//go:build ios

package core

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework Foundation -framework UIKit
#import <UIKit/UIKit.h>

// 0 ok, 1 no UIScreen class, 2 no main screen.
static int mainScreenSize(double* width, double* height) {
	@autoreleasepool {
		if (NSClassFromString(@"UIScreen") == nil) {
			return 1;
		}
		UIScreen *screen = [UIScreen mainScreen];
		if (screen == nil) {
			return 2;
		}
		CGRect bounds = screen.bounds;
		*width = (double)bounds.size.width;
		*height = (double)bounds.size.height;
		return 0;
	}
}
*/
import "C"

import (
	"cogentcore.org/core/math32"
	"github.com/pkg/errors"
)

type nativeDisplay struct{}

// NativeDisplaySize returns [[UIScreen mainScreen] bounds].size.
func (nativeDisplay) NativeDisplaySize() (math32.Vector2, error) {
	var width, height C.double
	switch C.mainScreenSize(&width, &height) {
	case 1:
		return math32.Vector2{}, errors.Wrap(ErrDisplayUnavailable, "UIScreen class not found")
	case 2:
		return math32.Vector2{}, errors.Wrap(ErrDisplayUnavailable, "UIScreen mainScreen is nil")
	}
	size := math32.Vec2(float32(width), float32(height))
	if size.X <= 0 || size.Y <= 0 {
		return math32.Vector2{}, errors.Wrapf(ErrInvalidDisplaySize, "%gx%g", size.X, size.Y)
	}
	return size, nil
}
