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
	"strings"
	"sync/atomic"

	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/monitoring"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

type PopulationService struct {
	config                      shared.EngineConfig
	registryClient              shared.RegistryClient
	dependencyRepository        shared.DependencyRepository
	dependencyVersionRepository shared.DependencyVersionRepository
	scoreService                shared.ScoreService
	edgeBuilder                 shared.EdgeBuilder

	// one population job per process, a second caller is rejected
	inFlight atomic.Bool
}

var _ shared.PopulationService = (*PopulationService)(nil)

func NewPopulationService(config shared.EngineConfig, registryClient shared.RegistryClient, dependencyRepository shared.DependencyRepository, dependencyVersionRepository shared.DependencyVersionRepository, scoreService shared.ScoreService, edgeBuilder shared.EdgeBuilder) *PopulationService {
	return &PopulationService{
		config:                      config,
		registryClient:              registryClient,
		dependencyRepository:        dependencyRepository,
		dependencyVersionRepository: dependencyVersionRepository,
		scoreService:                scoreService,
		edgeBuilder:                 edgeBuilder,
	}
}

func (s *PopulationService) acquire() error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return shared.ErrPopulationInFlight
	}
	return nil
}

func (s *PopulationService) release() {
	s.inFlight.Store(false)
}

// runBatch runs fn for every item and records one result per item in input
// order. A failing item never stops the others.
func (s *PopulationService) runBatch(ctx context.Context, items []string, fn func(ctx context.Context, item string) error) []dtos.BatchItemResult {
	results := make([]dtos.BatchItemResult, len(items))
	var group errgroup.Group
	group.SetLimit(max(1, s.config.PopulationConcurrent))
	for i, item := range items {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = dtos.NewBatchItemResult(item, err)
				return nil
			}
			results[i] = dtos.NewBatchItemResult(item, fn(ctx, item))
			return nil
		})
	}
	_ = group.Wait()
	return results
}

// PopulateScores scores the named packages, creating their dependency rows
// on first sighting.
func (s *PopulationService) PopulateScores(ctx context.Context, names []string) ([]dtos.BatchItemResult, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	timer := prometheus.NewTimer(monitoring.PopulationJobDuration.WithLabelValues("scores"))
	defer timer.ObserveDuration()

	return s.runBatch(ctx, uniqueNames(names), s.populateScore), nil
}

func (s *PopulationService) populateScore(ctx context.Context, name string) error {
	resolved, err := s.registryClient.Resolve(ctx, name, "latest")
	if err != nil {
		return err
	}
	dependency, err := s.dependencyRepository.PutIfAbsent(ctx, resolved.Name)
	if err != nil {
		return err
	}
	_, err = s.scoreService.RefreshScore(ctx, dependency)
	return err
}

// BackfillEdges resolves the edges of up to limit versions which were never
// resolved. A limit of 0 processes all of them.
func (s *PopulationService) BackfillEdges(ctx context.Context, limit int) ([]dtos.BatchItemResult, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	timer := prometheus.NewTimer(monitoring.PopulationJobDuration.WithLabelValues("edges"))
	defer timer.ObserveDuration()

	versions, err := s.dependencyVersionRepository.FindUnresolved(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "could not load unresolved versions")
	}

	byLabel := make(map[string]models.DependencyVersion, len(versions))
	labels := make([]string, 0, len(versions))
	for _, v := range versions {
		label := v.Dependency.Name + "@" + v.Version
		byLabel[label] = v
		labels = append(labels, label)
	}

	return s.runBatch(ctx, labels, func(ctx context.Context, label string) error {
		v := byLabel[label]
		_, err := s.edgeBuilder.EnsureEdges(ctx, v.ID, v.Dependency.Name, v.Version)
		return err
	}), nil
}

func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result
}
