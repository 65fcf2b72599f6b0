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

package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/dtos"
	"gorm.io/gorm"
)

type projectRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Project]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Project](db),
	}
}

type projectDependencyRepository struct {
	db *gorm.DB
}

func NewProjectDependencyRepository(db *gorm.DB) *projectDependencyRepository {
	return &projectDependencyRepository{
		db: db,
	}
}

func (r *projectDependencyRepository) preload(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Dependency").Preload("DependencyVersion.Dependency")
}

func (r *projectDependencyRepository) Read(ctx context.Context, id uuid.UUID) (models.ProjectDependency, error) {
	var projectDependency models.ProjectDependency
	err := r.preload(ctx).First(&projectDependency, "id = ?", id).Error
	return projectDependency, err
}

func (r *projectDependencyRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]models.ProjectDependency, error) {
	var projectDependencies []models.ProjectDependency
	err := r.preload(ctx).Where("project_id = ?", projectID).Order("created_at ASC").Find(&projectDependencies).Error
	return projectDependencies, err
}

func (r *projectDependencyRepository) GetByDependencyID(ctx context.Context, dependencyID uuid.UUID) ([]models.ProjectDependency, error) {
	var projectDependencies []models.ProjectDependency
	err := r.db.WithContext(ctx).Where("dependency_id = ?", dependencyID).Find(&projectDependencies).Error
	return projectDependencies, err
}

type projectPolicyRepository struct {
	db *gorm.DB
}

func NewProjectPolicyRepository(db *gorm.DB) *projectPolicyRepository {
	return &projectPolicyRepository{
		db: db,
	}
}

func DefaultProjectPolicy(projectID uuid.UUID) models.ProjectPolicy {
	return models.ProjectPolicy{
		ProjectID:         projectID,
		SeverityThreshold: dtos.SeverityHigh,
		ExcludeBanned:     true,
	}
}

func (r *projectPolicyRepository) GetPolicyThresholds(ctx context.Context, projectID uuid.UUID) (models.ProjectPolicy, error) {
	var policy models.ProjectPolicy
	err := r.db.WithContext(ctx).First(&policy, "project_id = ?", projectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultProjectPolicy(projectID), nil
	}
	if err != nil {
		return models.ProjectPolicy{}, err
	}
	threshold, ok := dtos.ParseSeverity(string(policy.SeverityThreshold))
	if !ok || threshold == dtos.SeverityUnknown {
		threshold = dtos.SeverityHigh
	}
	policy.SeverityThreshold = threshold
	return policy, nil
}
