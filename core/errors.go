package core

import "github.com/pkg/errors"

var (
	// ErrDisplayUnavailable implies the native UI subsystem has no main display
	// to query (missing UIScreen class or nil mainScreen), or the platform has
	// no native querier at all.
	ErrDisplayUnavailable = errors.New("native display unavailable")

	// ErrInvalidDisplaySize implies the native display reported a non-positive
	// width or height.
	ErrInvalidDisplaySize = errors.New("native display reported an invalid size")

	// ErrNotInitialized implies a read happened before any plugin registered
	// the requested value.
	ErrNotInitialized = errors.New("screen fixed size is not initialized")

	// ErrAppStarted implies plugins were added after App.Start.
	ErrAppStarted = errors.New("app already started")

	// ErrUnknownPlatform implies a platform identity outside KnownPlatforms.
	ErrUnknownPlatform = errors.New("unknown platform")
)
