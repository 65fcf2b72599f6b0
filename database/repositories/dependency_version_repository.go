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
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/database"
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type dependencyVersionRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.DependencyVersion]
}

func NewDependencyVersionRepository(db *gorm.DB) *dependencyVersionRepository {
	return &dependencyVersionRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.DependencyVersion](db),
	}
}

func (r *dependencyVersionRepository) PutIfAbsent(ctx context.Context, dependencyID uuid.UUID, version string) (models.DependencyVersion, error) {
	dependencyVersion := models.DependencyVersion{
		DependencyID: dependencyID,
		Version:      version,
	}
	err := r.db.WithContext(ctx).Omit("Dependency").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "dependency_id"}, {Name: "version"}},
		DoNothing: true,
	}).Create(&dependencyVersion).Error
	if err != nil && !database.IsIgnorableUpsertError(err) {
		return models.DependencyVersion{}, errors.Wrap(err, "could not insert dependency version")
	}

	var winner models.DependencyVersion
	err = r.db.WithContext(ctx).Preload("Dependency").
		Where("dependency_id = ? AND version = ?", dependencyID, version).
		First(&winner).Error
	return winner, err
}

func (r *dependencyVersionRepository) Read(ctx context.Context, id uuid.UUID) (models.DependencyVersion, error) {
	var dependencyVersion models.DependencyVersion
	err := r.db.WithContext(ctx).Preload("Dependency").First(&dependencyVersion, "id = ?", id).Error
	return dependencyVersion, err
}

func (r *dependencyVersionRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.DependencyVersion, error) {
	return listChunked[uuid.UUID, models.DependencyVersion](ctx, r.db, "id", ids, preloadDependency)
}

func (r *dependencyVersionRepository) MarkEdgesResolved(ctx context.Context, id uuid.UUID, deprecation *string, hasInstallScript bool) error {
	return r.db.WithContext(ctx).Model(&models.DependencyVersion{}).Where("id = ?", id).Updates(map[string]any{
		"edges_resolved_at":  time.Now(),
		"deprecation":        deprecation,
		"has_install_script": hasInstallScript,
	}).Error
}

func (r *dependencyVersionRepository) FindUnresolved(ctx context.Context, limit int) ([]models.DependencyVersion, error) {
	var versions []models.DependencyVersion
	query := r.db.WithContext(ctx).Preload("Dependency").
		Where("edges_resolved_at IS NULL").
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&versions).Error
	return versions, err
}

func preloadDependency(db *gorm.DB) *gorm.DB {
	return db.Preload("Dependency")
}
