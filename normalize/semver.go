// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package normalize

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	mmsemver "github.com/Masterminds/semver/v3"
	"golang.org/x/mod/semver"
)

// Regex for validating a correct semver.
var ValidSemverRegex = regexp.MustCompile(`^(?P<major>0|[1-9]\d*)\.(?P<minor>0|[1-9]\d*)\.(?P<patch>0|[1-9]\d*)(?:-(?P<prerelease>(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+(?P<buildmetadata>[0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

var versionInvalidCharsRe = regexp.MustCompile(`[^0-9.]`)

// ConvertToSemver converts loosely formatted versions to semantic versioning
// format. It strips a "v" prefix and an "=" prefix, pads missing segments
// ("1.2" -> "1.2.0") and removes leading zeros.
//
// Returns an error if the version core contains anything but digits and dots
// or has more than 3 segments.
func ConvertToSemver(originalVersion string) (string, error) {
	version := strings.TrimSpace(originalVersion)
	if version == "" {
		return "", fmt.Errorf("empty version")
	}

	version = strings.TrimPrefix(version, "=")
	version = strings.TrimPrefix(version, "v")

	var buildMetadata string
	var preRelease string

	if idx := strings.Index(version, "+"); idx != -1 {
		buildMetadata = version[idx+1:]
		version = version[:idx]
	}

	if idx := strings.Index(version, "-"); idx != -1 {
		preRelease = version[idx+1:]
		version = version[:idx]
	}

	if versionInvalidCharsRe.MatchString(version) {
		return "", fmt.Errorf("version contains invalid characters (only 0-9 and . allowed): %s", version)
	}

	segments := strings.Split(version, ".")
	if len(segments) > 3 {
		return "", fmt.Errorf("version has more than 3 segments (expected major.minor.patch): %s", version)
	}

	for i, segment := range segments {
		if segment != "" && segment != "0" {
			segments[i] = strings.TrimLeft(segment, "0")
			if segments[i] == "" {
				segments[i] = "0"
			}
		}
	}

	for len(segments) < 3 {
		segments = append(segments, "0")
	}

	result := strings.Join(segments, ".")
	if preRelease != "" {
		result += "-" + preRelease
	}
	if buildMetadata != "" {
		result += "+" + buildMetadata
	}

	if !ValidSemverRegex.MatchString(result) {
		return "", fmt.Errorf("resulting semver is invalid: %s", result)
	}

	return result, nil
}

// ParseVersion returns the normalized semantic version or false if the
// input cannot be interpreted as one.
func ParseVersion(version string) (*mmsemver.Version, bool) {
	normalized, err := ConvertToSemver(version)
	if err != nil {
		return nil, false
	}
	v, err := mmsemver.StrictNewVersion(normalized)
	if err != nil {
		return nil, false
	}
	return v, true
}

var exactVersionRe = regexp.MustCompile(`^=?v?\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?$`)

// ParseExactVersion only accepts complete major.minor.patch versions. Partial
// versions like "2" or "1.2" are ranges in npm and return false.
func ParseExactVersion(version string) (*mmsemver.Version, bool) {
	version = strings.TrimSpace(version)
	if !exactVersionRe.MatchString(version) {
		return nil, false
	}
	return ParseVersion(version)
}

// IsStable reports whether version is a valid release without prerelease tag.
func IsStable(version string) bool {
	v, ok := ParseVersion(version)
	return ok && v.Prerelease() == ""
}

func SemverCompare(v1, v2 string) int {
	if !strings.HasPrefix(v1, "v") {
		v1 = "v" + v1
	}
	if !strings.HasPrefix(v2, "v") {
		v2 = "v" + v2
	}

	return semver.Compare(v1, v2)
}

// SortVersionsAscending drops every entry that is not a valid semantic
// version and returns the remaining ones in ascending order. The returned
// strings are the original inputs.
func SortVersionsAscending(versions []string) []string {
	type pair struct {
		original   string
		normalized string
	}
	valid := make([]pair, 0, len(versions))
	for _, v := range versions {
		n, err := ConvertToSemver(v)
		if err != nil {
			continue
		}
		valid = append(valid, pair{original: v, normalized: n})
	}

	slices.SortStableFunc(valid, func(a, b pair) int {
		return SemverCompare(a.normalized, b.normalized)
	})

	res := make([]string, 0, len(valid))
	for _, p := range valid {
		res = append(res, p.original)
	}
	return res
}
