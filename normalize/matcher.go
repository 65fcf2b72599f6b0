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
	mmsemver "github.com/Masterminds/semver/v3"
	"github.com/l3montree-dev/depgraph/dtos"
)

// AffectedRange is one OSV style event pair. Introduced is inclusive ("" and
// "0" mean from the beginning), Fixed is exclusive and LastAffected is
// inclusive. Without Fixed and LastAffected the range is open ended.
type AffectedRange struct {
	Introduced   string `json:"introduced,omitempty"`
	Fixed        string `json:"fixed,omitempty"`
	LastAffected string `json:"lastAffected,omitempty"`
}

// AffectedSpec describes which releases of a package a vulnerability
// affects. A version is affected if it matches any of the three parts.
type AffectedSpec struct {
	// npm style range expressions, e.g. "<4.17.21" or ">=1.0.0 <1.2.3"
	Expressions []string        `json:"expressions,omitempty"`
	Ranges      []AffectedRange `json:"ranges,omitempty"`
	Versions    []string        `json:"versions,omitempty"`
}

func (spec AffectedSpec) IsEmpty() bool {
	return len(spec.Expressions) == 0 && len(spec.Ranges) == 0 && len(spec.Versions) == 0
}

// IsAffected reports whether version lies inside the affected spec.
// Versions that are not valid semantic versions are never affected, and
// unparsable parts of the spec are ignored.
func IsAffected(version string, spec AffectedSpec) bool {
	v, ok := ParseVersion(version)
	if !ok {
		return false
	}

	for _, exact := range spec.Versions {
		if ev, ok := ParseVersion(exact); ok && ev.Equal(v) {
			return true
		}
	}

	for _, expr := range spec.Expressions {
		if SatisfiesConstraint(v, expr) {
			return true
		}
	}

	for _, r := range spec.Ranges {
		if r.contains(v) {
			return true
		}
	}

	return false
}

// IsFixed reports whether version is greater or equal to any of the fixed
// versions.
func IsFixed(version string, fixedVersions []string) bool {
	v, ok := ParseVersion(version)
	if !ok {
		return false
	}
	for _, fixed := range fixedVersions {
		fv, ok := ParseVersion(fixed)
		if !ok {
			continue
		}
		if v.Compare(fv) >= 0 {
			return true
		}
	}
	return false
}

func HasVulnerability(version string, spec AffectedSpec, fixedVersions []string) bool {
	return IsAffected(version, spec) && !IsFixed(version, fixedVersions)
}

// SatisfiesConstraint checks v against an npm style range expression.
// Invalid expressions match nothing.
func SatisfiesConstraint(v *mmsemver.Version, expression string) bool {
	c, err := mmsemver.NewConstraint(expression)
	if err != nil {
		return false
	}
	return c.Check(v)
}

// MatchesVersionOrRange is used for governance records which hold either a
// concrete version or a range expression.
func MatchesVersionOrRange(version, versionOrRange string) bool {
	v, ok := ParseVersion(version)
	if !ok {
		return false
	}
	if exact, ok := ParseExactVersion(versionOrRange); ok {
		return exact.Equal(v)
	}
	return SatisfiesConstraint(v, versionOrRange)
}

func (r AffectedRange) contains(v *mmsemver.Version) bool {
	if r.Introduced != "" && r.Introduced != "0" {
		intro, ok := ParseVersion(r.Introduced)
		if !ok || v.LessThan(intro) {
			return false
		}
	}

	if r.Fixed != "" {
		fixed, ok := ParseVersion(r.Fixed)
		if !ok {
			return false
		}
		return v.LessThan(fixed)
	}

	if r.LastAffected != "" {
		last, ok := ParseVersion(r.LastAffected)
		if !ok {
			return false
		}
		return !v.GreaterThan(last)
	}

	return true
}

// AffectedSpecFromOSV collects the affected spec and the fixed versions of
// an advisory for the given package name. Events are paired in order: an
// introduced event opens a range and the next fixed or last_affected event
// closes it.
func AffectedSpecFromOSV(entry dtos.OSV, packageName string) (AffectedSpec, []string) {
	spec := AffectedSpec{}
	fixed := make([]string, 0)

	for _, affected := range entry.Affected {
		if affected.Package.Name != packageName {
			continue
		}
		spec.Versions = append(spec.Versions, affected.Versions...)

		for _, r := range affected.Ranges {
			if r.Type != "SEMVER" && r.Type != "ECOSYSTEM" {
				continue
			}
			var open *AffectedRange
			for _, event := range r.Events {
				switch {
				case event.Introduced != "":
					if open != nil {
						spec.Ranges = append(spec.Ranges, *open)
					}
					open = &AffectedRange{Introduced: event.Introduced}
				case event.Fixed != "":
					fixed = append(fixed, event.Fixed)
					if open == nil {
						open = &AffectedRange{}
					}
					open.Fixed = event.Fixed
					spec.Ranges = append(spec.Ranges, *open)
					open = nil
				case event.LastAffected != "":
					if open == nil {
						open = &AffectedRange{}
					}
					open.LastAffected = event.LastAffected
					spec.Ranges = append(spec.Ranges, *open)
					open = nil
				}
			}
			if open != nil {
				spec.Ranges = append(spec.Ranges, *open)
			}
		}
	}

	return spec, fixed
}
