// Package version exposes the build version of the pokedex binary.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Set at build time with:
//
//	go build -ldflags "-X github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/pkg/version.version=1.2.3"
//
//nolint:gochecknoglobals // Overridden by the linker.
var (
	version   = "2.0.0"
	gitCommit = ""
)

// GetVersion returns the version string the binary was built with.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from, or "" if unknown.
func GetGitCommit() string {
	return gitCommit
}

// Parse returns the build version as a semantic version.
func Parse() (*semver.Version, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("invalid build version %q: %w", version, err)
	}
	return v, nil
}

// IsRelease reports whether the build version is a valid semver without a
// prerelease suffix.
func IsRelease() bool {
	v, err := Parse()
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}

// String returns a display string such as "2.0.0 (abc1234)".
func String() string {
	if gitCommit == "" {
		return version
	}
	commit := gitCommit
	const shortCommit = 7
	if len(commit) > shortCommit {
		commit = commit[:shortCommit]
	}
	return fmt.Sprintf("%s (%s)", version, commit)
}
