// Package version reports the build version of the binaries.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Current is overridden at build time with
// -ldflags "-X github.com/helpdesk-ai/helpdesk/internal/shared/version.Current=v1.2.3".
var Current = "dev"

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// IsRelease reports whether v is a valid semantic version, i.e. not a dev build.
func IsRelease(v string) bool {
	return semver.IsValid(Normalize(v))
}
