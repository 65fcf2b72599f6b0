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

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/database/models"
	"gorm.io/gorm"
)

type bannedVersionRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.BannedVersion]
}

func NewBannedVersionRepository(db *gorm.DB) *bannedVersionRepository {
	return &bannedVersionRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.BannedVersion](db),
	}
}

func (r *bannedVersionRepository) GetBannedVersions(ctx context.Context, organizationID uuid.UUID, teamID *uuid.UUID, dependencyIDs []uuid.UUID) ([]models.BannedVersion, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("organization_id = ?", organizationID)
		if teamID == nil {
			return db.Where("team_id IS NULL")
		}
		return db.Where("team_id IS NULL OR team_id = ?", *teamID)
	}
	return listChunked[uuid.UUID, models.BannedVersion](ctx, r.db, "dependency_id", dependencyIDs, scope)
}

func (r *bannedVersionRepository) Create(ctx context.Context, ban *models.BannedVersion) error {
	return r.GormRepository.Create(ctx, nil, ban)
}

func (r *bannedVersionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BannedVersion{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type watchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) *watchlistRepository {
	return &watchlistRepository{
		db: db,
	}
}

func (r *watchlistRepository) GetWatchedDependencies(ctx context.Context) ([]models.Dependency, error) {
	var dependencies []models.Dependency
	err := r.db.WithContext(ctx).
		Where("id IN (?)", r.db.Model(&models.WatchlistEntry{}).Select("dependency_id")).
		Order("score_updated_at ASC NULLS FIRST").
		Find(&dependencies).Error
	return dependencies, err
}
