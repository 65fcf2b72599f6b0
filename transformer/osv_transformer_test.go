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

package transformer

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/stretchr/testify/assert"
)

func TestOSVToVulnerability(t *testing.T) {
	dependency := models.Dependency{Model: models.Model{ID: uuid.New()}, Name: "lodash"}
	modified := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should keep only the ranges of the dependency and collect fixed versions", func(t *testing.T) {
		entry := dtos.OSV{
			ID:       "GHSA-35jh-r3h4-6jhm",
			Summary:  "Command Injection in lodash",
			Modified: modified,
			Affected: []dtos.Affected{
				{
					Package: dtos.Package{Name: "lodash", Ecosystem: "npm"},
					Ranges: []dtos.Range{{Type: "SEMVER", Events: []dtos.SemverEvent{
						{Introduced: "0"}, {Fixed: "4.17.21"},
					}}},
				},
				{
					Package: dtos.Package{Name: "lodash-es", Ecosystem: "npm"},
					Ranges: []dtos.Range{{Type: "SEMVER", Events: []dtos.SemverEvent{
						{Introduced: "0"}, {Fixed: "4.17.21"},
					}}},
				},
			},
		}

		vuln := OSVToVulnerability(dependency, entry)

		assert.Equal(t, dependency.ID, vuln.DependencyID)
		assert.Equal(t, "GHSA-35jh-r3h4-6jhm", vuln.OsvID)
		assert.Equal(t, "Command Injection in lodash", vuln.Summary)
		assert.Equal(t, []string{"4.17.21"}, []string(vuln.FixedVersions))
		assert.Len(t, vuln.AffectedVersions.Data().Ranges, 1)
		assert.Equal(t, modified, *vuln.ModifiedAt)
		assert.Nil(t, vuln.CVSSVector)
	})

	t.Run("should rate malware as critical and fall back to the details", func(t *testing.T) {
		entry := dtos.OSV{
			ID:      "MAL-2024-1234",
			Details: "malicious code in lodash",
			Affected: []dtos.Affected{
				{Package: dtos.Package{Name: "lodash", Ecosystem: "npm"}, Versions: []string{"4.17.22"}},
			},
		}

		vuln := OSVToVulnerability(dependency, entry)

		assert.Equal(t, dtos.SeverityCritical, vuln.Severity)
		assert.Equal(t, "malicious code in lodash", vuln.Summary)
		assert.Equal(t, []string{"4.17.22"}, vuln.AffectedVersions.Data().Versions)
	})
}
