// Package version reports the build version of datatable.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Set at build time via -ldflags "-X github.com/rshade/datatable/pkg/version.version=...".
//
//nolint:gochecknoglobals // ldflags targets must be package variables.
var (
	version   = "0.0.0-dev"
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the build version, normalized without a leading "v"
// when it is valid semver and unchanged otherwise.
func GetVersion() string {
	v, err := Parse(version)
	if err != nil {
		return version
	}
	return v.String()
}

// GetGitCommit returns the commit the binary was built from, if known.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp, if known.
func GetBuildDate() string {
	return buildDate
}

// Parse parses s as a semantic version.
func Parse(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return v, nil
}

// Full returns the version with commit and build date when they are set.
func Full() string {
	s := GetVersion()
	if commit := GetGitCommit(); commit != "" {
		s += " (" + commit + ")"
	}
	if date := GetBuildDate(); date != "" {
		s += " built " + date
	}
	return s
}
