package core

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sahilm/fuzzy"
	"golang.org/x/exp/slices"
)

// Platform is a target identity, spelled like runtime.GOOS.
type Platform string

// IOS is the only platform whose touch positions need correcting.
const IOS Platform = "ios"

var knownPlatforms = []Platform{
	"aix", "android", "darwin", "dragonfly", "freebsd", "illumos", IOS, "js",
	"linux", "netbsd", "openbsd", "plan9", "solaris", "wasip1", "windows",
}

// CurrentPlatform returns the platform the binary was built for.
func CurrentPlatform() Platform {
	return Platform(runtime.GOOS)
}

// KnownPlatforms returns the accepted platform identities, sorted.
func KnownPlatforms() []Platform {
	out := slices.Clone(knownPlatforms)
	slices.Sort(out)
	return out
}

// ParsePlatform normalizes name into a Platform. An empty name resolves to
// CurrentPlatform.
func ParsePlatform(name string) (Platform, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return CurrentPlatform(), nil
	}
	p := Platform(name)
	if slices.Contains(knownPlatforms, p) {
		return p, nil
	}
	if suggestion, ok := SuggestPlatform(name); ok {
		return "", errors.Wrapf(ErrUnknownPlatform, "%q, did you mean %q", name, suggestion)
	}
	return "", errors.Wrapf(ErrUnknownPlatform, "%q", name)
}

// SuggestPlatform returns the closest known platform to name, if any matches.
func SuggestPlatform(name string) (Platform, bool) {
	names := make([]string, 0, len(knownPlatforms))
	for _, p := range KnownPlatforms() {
		names = append(names, string(p))
	}
	matches := fuzzy.Find(strings.ToLower(name), names)
	if len(matches) == 0 {
		return "", false
	}
	return Platform(matches[0].Str), true
}

func (p Platform) String() string {
	return string(p)
}
