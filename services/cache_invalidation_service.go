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

package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/cache"
	"github.com/l3montree-dev/depgraph/monitoring"
	"github.com/l3montree-dev/depgraph/shared"
)

// CacheInvalidationService knows which cached reads depend on which graph
// mutation. Every write path of the engine calls exactly one of its methods
// after the write succeeded.
type CacheInvalidationService struct {
	cache                       shared.Cache
	projectDependencyRepository shared.ProjectDependencyRepository
}

var _ shared.CacheInvalidationService = (*CacheInvalidationService)(nil)

func NewCacheInvalidationService(cache shared.Cache, projectDependencyRepository shared.ProjectDependencyRepository) *CacheInvalidationService {
	return &CacheInvalidationService{
		cache:                       cache,
		projectDependencyRepository: projectDependencyRepository,
	}
}

// referencingKeys returns the safe version keys of every project dependency
// referencing the dependency and the enriched keys of their projects.
func (s *CacheInvalidationService) referencingKeys(ctx context.Context, dependencyID uuid.UUID, withSafeVersions bool) ([]string, bool) {
	projectDependencies, err := s.projectDependencyRepository.GetByDependencyID(ctx, dependencyID)
	if err != nil {
		slog.Warn("could not load project dependencies for invalidation", "dependencyId", dependencyID, "err", err)
		return nil, false
	}

	keys := make([]string, 0, len(projectDependencies)*9)
	projects := make(map[uuid.UUID]struct{})
	for _, pd := range projectDependencies {
		if withSafeVersions {
			keys = append(keys, cache.SafeVersionKeys(pd.ID)...)
		}
		if _, ok := projects[pd.ProjectID]; !ok {
			projects[pd.ProjectID] = struct{}{}
			keys = append(keys, cache.EnrichedKey(pd.ProjectID))
		}
	}
	return keys, true
}

func (s *CacheInvalidationService) InvalidateForBan(ctx context.Context, dependencyID uuid.UUID) {
	monitoring.CacheInvalidationsTotal.WithLabelValues("ban").Inc()
	keys, ok := s.referencingKeys(ctx, dependencyID, true)
	if !ok {
		// without the referencing rows the exact key set is unknown
		s.cache.DeletePrefix(ctx, cache.ClassPrefix(cache.SafeVersionClass), cache.ClassPrefix(cache.EnrichedClass))
		return
	}
	s.cache.Delete(ctx, keys...)
}

// InvalidateForVulnerabilities purges whole classes: ancestors of the
// dependency are not tracked per key, so every cached subgraph might contain it.
func (s *CacheInvalidationService) InvalidateForVulnerabilities(ctx context.Context, dependencyID uuid.UUID) {
	monitoring.CacheInvalidationsTotal.WithLabelValues("vulnerabilities").Inc()
	s.cache.DeletePrefix(ctx,
		cache.ClassPrefix(cache.SafeVersionClass),
		cache.ClassPrefix(cache.SupplyChainClass),
		cache.ClassPrefix(cache.ChildrenClass),
	)
	keys, ok := s.referencingKeys(ctx, dependencyID, false)
	if !ok {
		s.cache.DeletePrefix(ctx, cache.ClassPrefix(cache.EnrichedClass))
		return
	}
	s.cache.Delete(ctx, keys...)
}

func (s *CacheInvalidationService) InvalidateForScore(ctx context.Context, dependencyID uuid.UUID) {
	monitoring.CacheInvalidationsTotal.WithLabelValues("score").Inc()
	s.cache.Delete(ctx, cache.ScoreKey(dependencyID))
	s.cache.DeletePrefix(ctx,
		cache.ClassPrefix(cache.ChildrenClass),
		cache.ClassPrefix(cache.SupplyChainClass),
		cache.ClassPrefix(cache.EnrichedClass),
	)
}

func (s *CacheInvalidationService) InvalidateForEdges(ctx context.Context, parentVersionID uuid.UUID) {
	monitoring.CacheInvalidationsTotal.WithLabelValues("edges").Inc()
	s.cache.Delete(ctx, cache.ChildrenKey(parentVersionID))
	s.cache.DeletePrefix(ctx, cache.ClassPrefix(cache.SupplyChainClass))
}
