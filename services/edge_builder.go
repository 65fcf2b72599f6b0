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
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/monitoring"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/l3montree-dev/depgraph/utils"
	"github.com/pkg/errors"
)

// children are resolved concurrently, the registry gate still serializes the
// actual requests
const childResolutionConcurrency = 8

type EdgeBuilder struct {
	registryClient                  shared.RegistryClient
	dependencyRepository            shared.DependencyRepository
	dependencyVersionRepository     shared.DependencyVersionRepository
	dependencyVersionEdgeRepository shared.DependencyVersionEdgeRepository
	cacheInvalidationService        shared.CacheInvalidationService
}

var _ shared.EdgeBuilder = (*EdgeBuilder)(nil)

func NewEdgeBuilder(registryClient shared.RegistryClient, dependencyRepository shared.DependencyRepository, dependencyVersionRepository shared.DependencyVersionRepository, dependencyVersionEdgeRepository shared.DependencyVersionEdgeRepository, cacheInvalidationService shared.CacheInvalidationService) *EdgeBuilder {
	return &EdgeBuilder{
		registryClient:                  registryClient,
		dependencyRepository:            dependencyRepository,
		dependencyVersionRepository:     dependencyVersionRepository,
		dependencyVersionEdgeRepository: dependencyVersionEdgeRepository,
		cacheInvalidationService:        cacheInvalidationService,
	}
}

// EnsureEdges resolves the declared dependencies of name@version once and
// stores them as edges of parentVersionID. It returns the number of edges
// this call inserted. Versions whose edges were resolved before are never
// resolved again.
func (b *EdgeBuilder) EnsureEdges(ctx context.Context, parentVersionID uuid.UUID, name, version string) (int, error) {
	parent, err := b.dependencyVersionRepository.Read(ctx, parentVersionID)
	if err != nil {
		return 0, errors.Wrap(err, "could not read parent version")
	}
	if parent.EdgesResolvedAt != nil {
		return 0, nil
	}

	hasEdges, err := b.dependencyVersionEdgeRepository.HasEdges(ctx, parentVersionID)
	if err != nil {
		return 0, errors.Wrap(err, "could not check for existing edges")
	}
	if hasEdges {
		return 0, nil
	}

	resolved, err := b.registryClient.Resolve(ctx, name, version)
	if err != nil {
		if errors.Is(err, shared.ErrPackageNotFound) {
			slog.Debug("could not resolve parent, skipping", "name", name, "version", version)
			return 0, nil
		}
		return 0, err
	}

	group := utils.ErrGroup[childOutcome](childResolutionConcurrency)
	for childName, childRange := range resolved.Dependencies {
		group.Go(func() (childOutcome, error) {
			return b.ensureEdge(ctx, parentVersionID, childName, childRange)
		})
	}
	results, err := group.WaitAndCollect()
	if err != nil {
		return 0, err
	}

	inserted := len(utils.Filter(results, func(o childOutcome) bool { return o.inserted }))
	skipped := len(utils.Filter(results, func(o childOutcome) bool { return !o.resolved }))

	// a skipped child may be a registry hiccup, the version stays open for the next call
	if skipped == 0 {
		if err := b.dependencyVersionRepository.MarkEdgesResolved(ctx, parentVersionID, resolved.Deprecation, resolved.HasInstallScript); err != nil {
			return inserted, errors.Wrap(err, "could not mark edges as resolved")
		}
	} else {
		slog.Warn("children left unresolved, edges stay open", "name", name, "version", version, "skipped", skipped, "declared", len(resolved.Dependencies))
	}

	if inserted > 0 {
		monitoring.EdgesInsertedTotal.Add(float64(inserted))
		b.cacheInvalidationService.InvalidateForEdges(ctx, parentVersionID)
	}
	return inserted, nil
}

type childOutcome struct {
	resolved bool
	inserted bool
}

// ensureEdge stores the edge to one declared child. Unresolvable children
// are skipped and reported as not resolved.
func (b *EdgeBuilder) ensureEdge(ctx context.Context, parentVersionID uuid.UUID, childName, childRange string) (childOutcome, error) {
	child, err := b.registryClient.Resolve(ctx, childName, childRange)
	if err != nil {
		if errors.Is(err, shared.ErrPackageNotFound) {
			slog.Debug("could not resolve child, skipping", "name", childName, "range", childRange)
			return childOutcome{}, nil
		}
		return childOutcome{}, err
	}

	dependency, err := b.dependencyRepository.PutIfAbsent(ctx, child.Name)
	if err != nil {
		return childOutcome{}, err
	}
	childVersion, err := b.dependencyVersionRepository.PutIfAbsent(ctx, dependency.ID, child.Version)
	if err != nil {
		return childOutcome{}, err
	}

	inserted, err := b.dependencyVersionEdgeRepository.PutIfAbsent(ctx, models.DependencyVersionEdge{
		ParentVersionID: parentVersionID,
		ChildVersionID:  childVersion.ID,
	})
	return childOutcome{resolved: true, inserted: inserted}, err
}
