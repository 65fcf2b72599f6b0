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
	"github.com/l3montree-dev/depgraph/dtos"
)

// Project is owned by the project management collaborator. Only the fields
// needed to scope bans are mapped.
type Project struct {
	ID             uuid.UUID  `json:"id" gorm:"primarykey;type:uuid"`
	OrganizationID uuid.UUID  `json:"organizationId" gorm:"type:uuid;not null"`
	TeamID         *uuid.UUID `json:"teamId" gorm:"type:uuid"`
}

func (Project) TableName() string {
	return "projects"
}

type DependencySource string

const (
	SourceProd       DependencySource = "prod"
	SourceDev        DependencySource = "dev"
	SourceTransitive DependencySource = "transitive"
)

// ProjectDependency is written by the extraction worker.
type ProjectDependency struct {
	Model
	ProjectID           uuid.UUID          `json:"projectId" gorm:"type:uuid;not null;index"`
	DependencyID        uuid.UUID          `json:"dependencyId" gorm:"type:uuid;not null;index"`
	Dependency          Dependency         `json:"dependency" gorm:"foreignKey:DependencyID"`
	DependencyVersionID *uuid.UUID         `json:"dependencyVersionId" gorm:"type:uuid;index"`
	DependencyVersion   *DependencyVersion `json:"dependencyVersion" gorm:"foreignKey:DependencyVersionID"`
	IsDirect            bool               `json:"isDirect" gorm:"not null;default:false"`
	Source              DependencySource   `json:"source" gorm:"type:text;not null"`
}

func (ProjectDependency) TableName() string {
	return "project_dependencies"
}

// ProjectPolicy is owned by the policy module.
type ProjectPolicy struct {
	ProjectID         uuid.UUID     `json:"projectId" gorm:"primarykey;type:uuid"`
	SeverityThreshold dtos.Severity `json:"severityThreshold" gorm:"type:text;not null"`
	ExcludeBanned     bool          `json:"excludeBanned" gorm:"not null"`
}

func (ProjectPolicy) TableName() string {
	return "project_policies"
}

// BannedVersion is an org or team scoped governance record. BannedVersion
// holds either a concrete version or a range expression.
type BannedVersion struct {
	Model
	OrganizationID uuid.UUID  `json:"organizationId" gorm:"type:uuid;not null;index"`
	TeamID         *uuid.UUID `json:"teamId" gorm:"type:uuid;index"`
	DependencyID   uuid.UUID  `json:"dependencyId" gorm:"type:uuid;not null;index"`
	BannedVersion  string     `json:"bannedVersion" gorm:"type:text;not null"`
	BumpToVersion  *string    `json:"bumpToVersion" gorm:"type:text"`
}

func (BannedVersion) TableName() string {
	return "banned_versions"
}

type WatchlistEntry struct {
	Model
	OrganizationID       uuid.UUID  `json:"organizationId" gorm:"type:uuid;not null"`
	DependencyID         uuid.UUID  `json:"dependencyId" gorm:"type:uuid;not null;index"`
	Dependency           Dependency `json:"dependency" gorm:"foreignKey:DependencyID"`
	LatestAllowedVersion *string    `json:"latestAllowedVersion" gorm:"type:text"`
	ClearedCommit        *string    `json:"clearedCommit" gorm:"type:text"`
	ClearedAt            *time.Time `json:"clearedAt"`
}

func (WatchlistEntry) TableName() string {
	return "watchlist_entries"
}

type Config struct {
	Key string `gorm:"primarykey"`
	Val string `gorm:"type:text"`
}

func (Config) TableName() string {
	return "configs"
}
