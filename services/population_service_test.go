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
	"fmt"
	"testing"

	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/mocks"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type populationMocks struct {
	registryClient *mocks.RegistryClient
	dependencies   *mocks.DependencyRepository
	versions       *mocks.DependencyVersionRepository
	scoreService   *mocks.ScoreService
	edgeBuilder    *mocks.EdgeBuilder
}

func newTestPopulationService(t *testing.T) (*PopulationService, populationMocks) {
	m := populationMocks{
		registryClient: mocks.NewRegistryClient(t),
		dependencies:   mocks.NewDependencyRepository(t),
		versions:       mocks.NewDependencyVersionRepository(t),
		scoreService:   mocks.NewScoreService(t),
		edgeBuilder:    mocks.NewEdgeBuilder(t),
	}
	config := shared.EngineConfig{PopulationConcurrent: 2}
	return NewPopulationService(config, m.registryClient, m.dependencies, m.versions, m.scoreService, m.edgeBuilder), m
}

func TestPopulateScores(t *testing.T) {
	ctx := context.Background()

	t.Run("should report one result per unique name in input order", func(t *testing.T) {
		service, m := newTestPopulationService(t)
		lodash := models.Dependency{Name: "lodash"}
		react := models.Dependency{Name: "react"}

		m.registryClient.On("Resolve", mock.Anything, "lodash", "latest").Return(dtos.ResolvedPackage{Name: "lodash", Version: "4.17.21"}, nil)
		m.registryClient.On("Resolve", mock.Anything, "react", "latest").Return(dtos.ResolvedPackage{Name: "react", Version: "18.3.1"}, nil)
		m.registryClient.On("Resolve", mock.Anything, "does-not-exist", "latest").Return(dtos.ResolvedPackage{}, fmt.Errorf("does-not-exist@latest: %w", shared.ErrPackageNotFound))
		m.dependencies.On("PutIfAbsent", mock.Anything, "lodash").Return(lodash, nil)
		m.dependencies.On("PutIfAbsent", mock.Anything, "react").Return(react, nil)
		m.scoreService.On("RefreshScore", mock.Anything, lodash).Return(lodash, nil)
		m.scoreService.On("RefreshScore", mock.Anything, react).Return(react, assert.AnError)

		results, err := service.PopulateScores(ctx, []string{"lodash", " react ", "does-not-exist", "lodash", ""})
		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.Equal(t, "lodash", results[0].Name)
		assert.True(t, results[0].Success)
		assert.Equal(t, "react", results[1].Name)
		assert.False(t, results[1].Success)
		assert.Equal(t, "does-not-exist", results[2].Name)
		assert.False(t, results[2].Success)
		require.NotNil(t, results[2].Error)
		assert.Contains(t, *results[2].Error, shared.ErrPackageNotFound.Error())

		m.registryClient.AssertNumberOfCalls(t, "Resolve", 3)
	})

	t.Run("should reject a second job while one is running", func(t *testing.T) {
		service, m := newTestPopulationService(t)
		started := make(chan struct{})
		release := make(chan struct{})

		m.registryClient.On("Resolve", mock.Anything, "lodash", "latest").Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).Return(dtos.ResolvedPackage{}, shared.ErrPackageNotFound)

		done := make(chan []dtos.BatchItemResult)
		go func() {
			results, _ := service.PopulateScores(ctx, []string{"lodash"})
			done <- results
		}()
		<-started

		_, err := service.PopulateScores(ctx, []string{"react"})
		assert.ErrorIs(t, err, shared.ErrPopulationInFlight)
		_, err = service.BackfillEdges(ctx, 10)
		assert.ErrorIs(t, err, shared.ErrPopulationInFlight)

		close(release)
		assert.Len(t, <-done, 1)

		// released again
		m.versions.On("FindUnresolved", mock.Anything, 10).Return([]models.DependencyVersion{}, nil)
		results, err := service.BackfillEdges(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestBackfillEdges(t *testing.T) {
	t.Run("should ensure the edges of every unresolved version", func(t *testing.T) {
		service, m := newTestPopulationService(t)
		express := testVersion("express", "4.18.2")
		debug := testVersion("debug", "2.6.9")

		m.versions.On("FindUnresolved", mock.Anything, 0).Return([]models.DependencyVersion{express, debug}, nil)
		m.edgeBuilder.On("EnsureEdges", mock.Anything, express.ID, "express", "4.18.2").Return(31, nil)
		m.edgeBuilder.On("EnsureEdges", mock.Anything, debug.ID, "debug", "2.6.9").Return(0, assert.AnError)

		results, err := service.BackfillEdges(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, []dtos.BatchItemResult{
			{Name: "express@4.18.2", Success: true},
			dtos.NewBatchItemResult("debug@2.6.9", assert.AnError),
		}, results)
	})

	t.Run("should fail if the unresolved versions cannot be loaded", func(t *testing.T) {
		service, m := newTestPopulationService(t)
		m.versions.On("FindUnresolved", mock.Anything, 5).Return(nil, assert.AnError)

		_, err := service.BackfillEdges(context.Background(), 5)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
