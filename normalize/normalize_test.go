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
	"testing"

	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/stretchr/testify/assert"
)

func TestConvertToSemver(t *testing.T) {
	t.Run("should normalize loose versions", func(t *testing.T) {
		cases := map[string]string{
			"v1.2":          "1.2.0",
			"=1.2.3":        "1.2.3",
			"01.02.03":      "1.2.3",
			"1":             "1.0.0",
			"1.0.0-beta.1":  "1.0.0-beta.1",
			"2.0.0+build.5": "2.0.0+build.5",
		}
		for input, expected := range cases {
			actual, err := ConvertToSemver(input)
			assert.NoError(t, err, input)
			assert.Equal(t, expected, actual, input)
		}
	})

	t.Run("should reject versions which are not semantic versions", func(t *testing.T) {
		for _, input := range []string{"", "latest", "1.2.3.4", "github:lodash/lodash", "^1.2.3"} {
			_, err := ConvertToSemver(input)
			assert.Error(t, err, input)
		}
	})
}

func TestSortVersionsAscending(t *testing.T) {
	t.Run("should drop invalid versions and keep the original strings", func(t *testing.T) {
		sorted := SortVersionsAscending([]string{"1.10.0", "v1.2.0", "latest", "1.9.3", "1.2.0-rc.1"})
		assert.Equal(t, []string{"1.2.0-rc.1", "v1.2.0", "1.9.3", "1.10.0"}, sorted)
	})
}

func TestIsStable(t *testing.T) {
	assert.True(t, IsStable("4.17.21"))
	assert.False(t, IsStable("5.0.0-beta.3"))
	assert.False(t, IsStable("next"))
}

func TestIsAffected(t *testing.T) {
	t.Run("should match introduced and fixed event pairs", func(t *testing.T) {
		spec := AffectedSpec{Ranges: []AffectedRange{{Introduced: "1.0.0", Fixed: "1.2.3"}}}

		assert.False(t, IsAffected("0.9.9", spec))
		assert.True(t, IsAffected("1.0.0", spec))
		assert.True(t, IsAffected("1.2.2", spec))
		assert.False(t, IsAffected("1.2.3", spec))
	})

	t.Run("should treat introduced 0 as the beginning and last_affected as inclusive", func(t *testing.T) {
		spec := AffectedSpec{Ranges: []AffectedRange{{Introduced: "0", LastAffected: "2.0.0"}}}

		assert.True(t, IsAffected("0.0.1", spec))
		assert.True(t, IsAffected("2.0.0", spec))
		assert.False(t, IsAffected("2.0.1", spec))
	})

	t.Run("should treat a range without upper bound as open ended", func(t *testing.T) {
		spec := AffectedSpec{Ranges: []AffectedRange{{Introduced: "3.0.0"}}}
		assert.True(t, IsAffected("99.0.0", spec))
	})

	t.Run("should match range expressions and single versions", func(t *testing.T) {
		spec := AffectedSpec{
			Expressions: []string{">=4.0.0 <4.17.21"},
			Versions:    []string{"3.10.1"},
		}

		assert.True(t, IsAffected("4.17.20", spec))
		assert.True(t, IsAffected("3.10.1", spec))
		assert.False(t, IsAffected("3.10.2", spec))
		assert.False(t, IsAffected("4.17.21", spec))
	})

	t.Run("should never match invalid versions or invalid specs", func(t *testing.T) {
		assert.False(t, IsAffected("not-a-version", AffectedSpec{Ranges: []AffectedRange{{}}}))
		assert.False(t, IsAffected("1.0.0", AffectedSpec{Expressions: []string{"this is no range"}}))
		assert.False(t, IsAffected("1.0.0", AffectedSpec{}))
	})
}

func TestHasVulnerability(t *testing.T) {
	spec := AffectedSpec{Expressions: []string{"<4.17.21"}}

	t.Run("should be vulnerable if affected and not fixed", func(t *testing.T) {
		assert.True(t, HasVulnerability("4.17.20", spec, []string{"4.17.21"}))
	})

	t.Run("should not be vulnerable once a fixed version is reached", func(t *testing.T) {
		assert.False(t, HasVulnerability("4.17.21", spec, []string{"4.17.21"}))
	})

	t.Run("should ignore invalid fixed versions", func(t *testing.T) {
		assert.True(t, HasVulnerability("4.17.20", spec, []string{"unknown"}))
	})
}

func TestMatchesVersionOrRange(t *testing.T) {
	assert.True(t, MatchesVersionOrRange("1.1.0", "1.1.0"))
	assert.True(t, MatchesVersionOrRange("1.1.0", "v1.1"))
	assert.False(t, MatchesVersionOrRange("1.1.1", "1.1.0"))
	assert.True(t, MatchesVersionOrRange("1.1.5", ">=1.1.0 <1.2.0"))
	assert.False(t, MatchesVersionOrRange("1.2.0", ">=1.1.0 <1.2.0"))
	assert.False(t, MatchesVersionOrRange("garbage", "*"))
	// partial versions are ranges, not padded exact versions
	assert.True(t, MatchesVersionOrRange("1.1.5", "1.1"))
	assert.True(t, MatchesVersionOrRange("1.9.0", "1"))
	assert.False(t, MatchesVersionOrRange("2.0.0", "1"))
	assert.True(t, MatchesVersionOrRange("1.1.3", "1.1.x"))
}

func TestParseExactVersion(t *testing.T) {
	for _, exact := range []string{"1.2.3", "=1.2.3", "v1.2.3", "1.2.3-beta.1", "1.2.3+build.5"} {
		_, ok := ParseExactVersion(exact)
		assert.True(t, ok, exact)
	}
	for _, partial := range []string{"2", "1.2", "1.x", "^1.2.3", "latest", ""} {
		_, ok := ParseExactVersion(partial)
		assert.False(t, ok, partial)
	}
}

func TestAffectedSpecFromOSV(t *testing.T) {
	t.Run("should pair events in order and collect the fixed versions", func(t *testing.T) {
		entry := dtos.OSV{
			Affected: []dtos.Affected{{
				Package: dtos.Package{Name: "minimist", Ecosystem: "npm"},
				Ranges: []dtos.Range{
					{Type: "SEMVER", Events: []dtos.SemverEvent{
						{Introduced: "0"}, {Fixed: "0.2.4"},
						{Introduced: "1.0.0"}, {Fixed: "1.2.6"},
					}},
					{Type: "GIT", Events: []dtos.SemverEvent{{Introduced: "abc"}, {Fixed: "def"}}},
				},
			}},
		}

		spec, fixed := AffectedSpecFromOSV(entry, "minimist")

		assert.Equal(t, []AffectedRange{
			{Introduced: "0", Fixed: "0.2.4"},
			{Introduced: "1.0.0", Fixed: "1.2.6"},
		}, spec.Ranges)
		assert.Equal(t, []string{"0.2.4", "1.2.6"}, fixed)
		assert.True(t, IsAffected("1.2.5", spec))
		assert.False(t, IsAffected("0.2.4", spec))
	})

	t.Run("should ignore other packages of the advisory", func(t *testing.T) {
		entry := dtos.OSV{
			Affected: []dtos.Affected{{
				Package:  dtos.Package{Name: "lodash-es", Ecosystem: "npm"},
				Versions: []string{"4.17.20"},
			}},
		}

		spec, fixed := AffectedSpecFromOSV(entry, "lodash")
		assert.True(t, spec.IsEmpty())
		assert.Empty(t, fixed)
	})
}

func TestNpmPurl(t *testing.T) {
	assert.Equal(t, "pkg:npm/lodash@4.17.21", NpmPurl("lodash", "4.17.21"))

	scoped := NpmPurl("@babel/core", "7.24.0")
	assert.Contains(t, scoped, "pkg:npm/")
	assert.Contains(t, scoped, "babel/core@7.24.0")
}
