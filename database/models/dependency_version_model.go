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
	"time"

	"github.com/google/uuid"
)

// DependencyVersion is a concrete release of a Dependency. It is shared by all
// tenants.
type DependencyVersion struct {
	Model
	DependencyID uuid.UUID  `json:"dependencyId" gorm:"type:uuid;not null;uniqueIndex:idx_dependency_versions_dependency_version"`
	Dependency   Dependency `json:"dependency" gorm:"foreignKey:DependencyID;constraint:OnDelete:CASCADE;"`
	Version      string     `json:"version" gorm:"type:text;not null;uniqueIndex:idx_dependency_versions_dependency_version"`

	Deprecation *string `json:"deprecation" gorm:"type:text"`

	// set by external scanners
	RegistryIntegrityOK *bool `json:"registryIntegrityOk" gorm:"column:registry_integrity_ok"`
	HasInstallScript    *bool `json:"hasInstallScript"`
	HighEntropy         *bool `json:"highEntropy"`

	// EdgesResolvedAt is set once the declared dependencies of this version
	// were resolved, even if there were none.
	EdgesResolvedAt *time.Time `json:"edgesResolvedAt"`
}

func (DependencyVersion) TableName() string {
	return "dependency_versions"
}

// DependencyVersionEdge points from a version to one of the versions its
// declared dependencies resolve to.
type DependencyVersionEdge struct {
	ParentVersionID uuid.UUID `json:"parentVersionId" gorm:"type:uuid;primaryKey"`
	ChildVersionID  uuid.UUID `json:"childVersionId" gorm:"type:uuid;primaryKey;index"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (DependencyVersionEdge) TableName() string {
	return "dependency_version_edges"
}
