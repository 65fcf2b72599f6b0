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
	"github.com/l3montree-dev/depgraph/normalize"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type dependencyRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Dependency]
}

func NewDependencyRepository(db *gorm.DB) *dependencyRepository {
	return &dependencyRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Dependency](db),
	}
}

func (r *dependencyRepository) PutIfAbsent(ctx context.Context, name string) (models.Dependency, error) {
	dependency := models.Dependency{
		Name: name,
		Purl: normalize.NpmPurl(name, ""),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&dependency).Error
	if err != nil && !database.IsIgnorableUpsertError(err) {
		return models.Dependency{}, errors.Wrap(err, "could not insert dependency")
	}
	// the row of whoever won the insert
	return r.FindByName(ctx, name)
}

func (r *dependencyRepository) FindByName(ctx context.Context, name string) (models.Dependency, error) {
	var dependency models.Dependency
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&dependency).Error
	return dependency, err
}

func (r *dependencyRepository) FindByNames(ctx context.Context, names []string) ([]models.Dependency, error) {
	return listChunked[string, models.Dependency](ctx, r.db, "name", names)
}

func (r *dependencyRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Dependency, error) {
	return r.List(ctx, ids)
}

func (r *dependencyRepository) SaveScore(ctx context.Context, dependency *models.Dependency) error {
	return r.db.WithContext(ctx).Model(dependency).Select(
		"latest_version",
		"repository_url",
		"licenses",
		"scorecard_score",
		"weekly_downloads",
		"releases_last_12_months",
		"slsa_level",
		"is_malicious",
		"score",
		"openssf_penalty",
		"popularity_penalty",
		"maintenance_penalty",
		"score_updated_at",
	).Updates(dependency).Error
}

// FindOutdatedScores returns dependencies which were never scored first, then
// the ones with the oldest score.
func (r *dependencyRepository) FindOutdatedScores(ctx context.Context, olderThan time.Time, limit int) ([]models.Dependency, error) {
	var dependencies []models.Dependency
	err := r.db.WithContext(ctx).
		Where("score_updated_at IS NULL OR score_updated_at < ?", olderThan).
		Order("score_updated_at ASC NULLS FIRST").
		Limit(limit).
		Find(&dependencies).Error
	return dependencies, err
}
