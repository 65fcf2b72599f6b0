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

	"github.com/l3montree-dev/depgraph/utils"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	// maxInClauseSize bounds the number of parameters of a single IN (...) query.
	maxInClauseSize      = 150
	parallelChunkQueries = 4
)

type GormRepository[ID comparable, T utils.Tabler] struct {
	db *gorm.DB
}

func newGormRepository[ID comparable, T utils.Tabler](db *gorm.DB) *GormRepository[ID, T] {
	return &GormRepository[ID, T]{
		db: db,
	}
}

func (g *GormRepository[ID, T]) GetDB(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return g.db.WithContext(ctx)
}

func (g *GormRepository[ID, T]) Read(ctx context.Context, id ID) (T, error) {
	var t T
	err := g.GetDB(ctx, nil).First(&t, "id = ?", id).Error
	return t, err
}

func (g *GormRepository[ID, T]) Create(ctx context.Context, tx *gorm.DB, t *T) error {
	return g.GetDB(ctx, tx).Create(t).Error
}

func (g *GormRepository[ID, T]) Delete(ctx context.Context, tx *gorm.DB, id ID) error {
	var t T
	return g.GetDB(ctx, tx).Delete(&t, "id = ?", id).Error
}

// List reads the rows with the given ids. The ids are queried in chunks.
func (g *GormRepository[ID, T]) List(ctx context.Context, ids []ID) ([]T, error) {
	return listChunked[ID, T](ctx, g.GetDB(ctx, nil), "id", ids)
}

// listChunked splits keys into IN clauses of at most maxInClauseSize entries
// and runs the chunk queries in parallel.
func listChunked[K any, T any](ctx context.Context, db *gorm.DB, column string, keys []K, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	chunks := utils.Chunk(keys, maxInClauseSize)
	results := make([][]T, len(chunks))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(parallelChunkQueries)
	for i, chunk := range chunks {
		group.Go(func() error {
			var ts []T
			if err := db.WithContext(groupCtx).Scopes(scopes...).Where(column+" IN ?", chunk).Find(&ts).Error; err != nil {
				return err
			}
			results[i] = ts
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	result := make([]T, 0, len(keys))
	for _, ts := range results {
		result = append(result, ts...)
	}
	return result, nil
}
