package drupal

import (
	"fmt"
	"regexp"
	"slices"
)

// semverPattern matches plain MAJOR.MINOR.PATCH version strings with no
// suffix, the scheme Dependabot reports for contrib projects that actually
// tag releases with the legacy 8.x-MAJOR.MINOR convention.
var semverPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// MapVersionToTag resolves a composer version string to the tag name the
// project actually published. Projects that adopted semantic versioning use
// the version verbatim as their tag; older projects tag 1.2.0 as 8.x-1.2.
// Unknown or malformed versions are returned unchanged.
func MapVersionToTag(version string, tags []string) string {
	if slices.Contains(tags, version) {
		return version
	}

	m := semverPattern.FindStringSubmatch(version)
	if m == nil {
		return version
	}

	legacy := fmt.Sprintf("8.x-%s.%s", m[1], m[2])
	if slices.Contains(tags, legacy) {
		return legacy
	}

	return version
}
