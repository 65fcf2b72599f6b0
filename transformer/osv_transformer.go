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
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/normalize"
	"github.com/l3montree-dev/depgraph/vulndb"
	"gorm.io/datatypes"
)

// OSVToVulnerability maps an OSV entry to the stored advisory of the
// dependency. Malware entries are always critical.
func OSVToVulnerability(dependency models.Dependency, entry dtos.OSV) models.Vulnerability {
	spec, fixed := normalize.AffectedSpecFromOSV(entry, dependency.Name)

	severity := vulndb.SeverityOf(entry)
	if entry.IsMalware() {
		severity = dtos.SeverityCritical
	}

	var vector *string
	if v, ok := entry.CVSSVector(); ok {
		vector = &v
	}

	modifiedAt := entry.Modified
	summary := entry.Summary
	if summary == "" {
		summary = entry.Details
	}

	return models.Vulnerability{
		DependencyID:     dependency.ID,
		OsvID:            entry.ID,
		Severity:         severity,
		CVSSVector:       vector,
		Summary:          summary,
		AffectedVersions: datatypes.NewJSONType(spec),
		FixedVersions:    fixed,
		ModifiedAt:       &modifiedAt,
	}
}
