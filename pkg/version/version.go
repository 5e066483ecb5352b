// Package version reports the build version injected with -ldflags.
package version

import "fmt"

// Set at build time:
//
//	-ldflags "-X github.com/rshade/aboutlibs/pkg/version.version=v1.2.3 -X ...gitCommit=abc1234"
//
//nolint:gochecknoglobals // Link-time variables.
var (
	version   = "dev"
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the semantic version, "dev" for local builds.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from, if known.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp, if known.
func GetBuildDate() string {
	return buildDate
}

// String renders the version with commit and date when they are set.
func String() string {
	s := version
	if gitCommit != "" {
		s = fmt.Sprintf("%s (commit %s)", s, gitCommit)
	}
	if buildDate != "" {
		s = fmt.Sprintf("%s built %s", s, buildDate)
	}
	return s
}
