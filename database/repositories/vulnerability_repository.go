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
	"github.com/l3montree-dev/depgraph/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type vulnerabilityRepository struct {
	db *gorm.DB
}

func NewVulnerabilityRepository(db *gorm.DB) *vulnerabilityRepository {
	return &vulnerabilityRepository{
		db: db,
	}
}

func (r *vulnerabilityRepository) GetByDependencyIDs(ctx context.Context, dependencyIDs []uuid.UUID) ([]models.Vulnerability, error) {
	return listChunked[uuid.UUID, models.Vulnerability](ctx, r.db, "dependency_id", dependencyIDs)
}

func (r *vulnerabilityRepository) Upsert(ctx context.Context, vulnerabilities []models.Vulnerability) error {
	if len(vulnerabilities) == 0 {
		return nil
	}
	now := time.Now()
	for i := range vulnerabilities {
		vulnerabilities[i].UpdatedAt = now
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "dependency_id"}, {Name: "osv_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"severity",
			"cvss_vector",
			"summary",
			"affected_versions",
			"fixed_versions",
			"modified_at",
			"updated_at",
		}),
	}).CreateInBatches(vulnerabilities, maxInClauseSize).Error
}
