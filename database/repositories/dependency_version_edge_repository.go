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
	"github.com/l3montree-dev/depgraph/database"
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type dependencyVersionEdgeRepository struct {
	db *gorm.DB
}

func NewDependencyVersionEdgeRepository(db *gorm.DB) *dependencyVersionEdgeRepository {
	return &dependencyVersionEdgeRepository{
		db: db,
	}
}

func (r *dependencyVersionEdgeRepository) HasEdges(ctx context.Context, parentVersionID uuid.UUID) (bool, error) {
	var edges []models.DependencyVersionEdge
	err := r.db.WithContext(ctx).Where("parent_version_id = ?", parentVersionID).Limit(1).Find(&edges).Error
	return len(edges) > 0, err
}

func (r *dependencyVersionEdgeRepository) PutIfAbsent(ctx context.Context, edge models.DependencyVersionEdge) (bool, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&edge)
	if result.Error != nil {
		if database.IsDuplicateKeyError(result.Error) {
			return false, nil
		}
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *dependencyVersionEdgeRepository) GetChildren(ctx context.Context, parentVersionID uuid.UUID) ([]models.DependencyVersion, error) {
	var children []models.DependencyVersion
	err := r.db.WithContext(ctx).Preload("Dependency").
		Joins("JOIN dependency_version_edges ON dependency_version_edges.child_version_id = dependency_versions.id").
		Where("dependency_version_edges.parent_version_id = ?", parentVersionID).
		Find(&children).Error
	return children, err
}

func (r *dependencyVersionEdgeRepository) GetEdgesWithin(ctx context.Context, versionIDs []uuid.UUID) ([]models.DependencyVersionEdge, error) {
	inSet := make(map[uuid.UUID]struct{}, len(versionIDs))
	for _, id := range versionIDs {
		inSet[id] = struct{}{}
	}

	edges := make([]models.DependencyVersionEdge, 0)
	for _, chunk := range utils.Chunk(versionIDs, maxInClauseSize) {
		var chunkEdges []models.DependencyVersionEdge
		if err := r.db.WithContext(ctx).Where("child_version_id IN ?", chunk).Find(&chunkEdges).Error; err != nil {
			return nil, err
		}
		for _, edge := range chunkEdges {
			if _, ok := inSet[edge.ParentVersionID]; ok {
				edges = append(edges, edge)
			}
		}
	}
	return edges, nil
}
