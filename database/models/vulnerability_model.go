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

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/normalize"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Vulnerability struct {
	Model
	DependencyID     uuid.UUID                                  `json:"dependencyId" gorm:"type:uuid;not null;uniqueIndex:idx_vulnerabilities_dependency_osv"`
	OsvID            string                                     `json:"osvId" gorm:"type:text;not null;uniqueIndex:idx_vulnerabilities_dependency_osv"`
	Severity         dtos.Severity                              `json:"severity" gorm:"type:text;not null;default:'unknown'"`
	CVSSVector       *string                                    `json:"cvssVector" gorm:"column:cvss_vector;type:text"`
	Summary          string                                     `json:"summary" gorm:"type:text"`
	AffectedVersions datatypes.JSONType[normalize.AffectedSpec] `json:"affectedVersions" gorm:"type:jsonb"`
	FixedVersions    pq.StringArray                             `json:"fixedVersions" gorm:"type:text[]"`
	ModifiedAt       *time.Time                                 `json:"modifiedAt"`
}

func (Vulnerability) TableName() string {
	return "vulnerabilities"
}

// Affects is true if the vulnerability affects version and version is not
// at or above one of the fixed versions.
func (v Vulnerability) Affects(version string) bool {
	return normalize.HasVulnerability(version, v.AffectedVersions.Data(), v.FixedVersions)
}

func (v Vulnerability) IsMalware() bool {
	return strings.HasPrefix(v.OsvID, "MAL-")
}

func (v Vulnerability) ToDTO() dtos.VulnerabilityDTO {
	fixed := []string(v.FixedVersions)
	if fixed == nil {
		fixed = []string{}
	}
	return dtos.VulnerabilityDTO{
		OsvID:         v.OsvID,
		Severity:      v.Severity,
		Summary:       v.Summary,
		FixedVersions: fixed,
	}
}
