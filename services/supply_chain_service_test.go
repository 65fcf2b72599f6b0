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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/mocks"
	"github.com/l3montree-dev/depgraph/normalize"
	"github.com/l3montree-dev/depgraph/utils"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func testVersion(name, version string) models.DependencyVersion {
	dependencyID := uuid.New()
	return models.DependencyVersion{
		Model:        models.Model{ID: uuid.New()},
		DependencyID: dependencyID,
		Dependency:   models.Dependency{Model: models.Model{ID: dependencyID}, Name: name},
		Version:      version,
	}
}

func testVulnerability(dependencyID uuid.UUID, osvID string, severity dtos.Severity, affected string, fixed ...string) models.Vulnerability {
	return models.Vulnerability{
		DependencyID:     dependencyID,
		OsvID:            osvID,
		Severity:         severity,
		AffectedVersions: datatypes.NewJSONType(normalize.AffectedSpec{Expressions: []string{affected}}),
		FixedVersions:    pq.StringArray(fixed),
	}
}

func TestFindAncestorPaths(t *testing.T) {
	a, b, c, d, target := uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()

	t.Run("should terminate on cycles without revisiting nodes", func(t *testing.T) {
		// target <- a <- b <- a, nothing is direct
		parents := map[uuid.UUID][]uuid.UUID{
			target: {a},
			a:      {b},
			b:      {a},
		}
		paths := findAncestorPaths(target, parents, map[uuid.UUID]bool{})
		assert.Empty(t, paths)
	})

	t.Run("should stop at the first direct node", func(t *testing.T) {
		parents := map[uuid.UUID][]uuid.UUID{
			target: {a},
			a:      {b},
			b:      {c},
		}
		paths := findAncestorPaths(target, parents, map[uuid.UUID]bool{b: true, c: true})
		require.Len(t, paths, 1)
		assert.Equal(t, []uuid.UUID{target, a, b}, paths[0])
	})

	t.Run("should find cyclic paths which still reach a direct node", func(t *testing.T) {
		parents := map[uuid.UUID][]uuid.UUID{
			target: {a},
			a:      {b, target},
			b:      {a, d},
		}
		paths := findAncestorPaths(target, parents, map[uuid.UUID]bool{d: true})
		require.Len(t, paths, 1)
		assert.Equal(t, []uuid.UUID{target, a, b, d}, paths[0])
		for _, path := range paths {
			assert.Len(t, utils.UniqBy(path, func(id uuid.UUID) uuid.UUID { return id }), len(path))
		}
	})

	t.Run("should return at most five paths", func(t *testing.T) {
		parents := map[uuid.UUID][]uuid.UUID{target: {}}
		direct := map[uuid.UUID]bool{}
		for i := 0; i < 8; i++ {
			id := uuid.New()
			parents[target] = append(parents[target], id)
			direct[id] = true
		}
		assert.Len(t, findAncestorPaths(target, parents, direct), maxAncestorPaths)
	})

	t.Run("should drop paths longer than the maximum depth", func(t *testing.T) {
		parents := map[uuid.UUID][]uuid.UUID{}
		chain := []uuid.UUID{target}
		for i := 0; i < maxAncestorDepth+1; i++ {
			next := uuid.New()
			parents[chain[len(chain)-1]] = []uuid.UUID{next}
			chain = append(chain, next)
		}
		// the direct node is 11 edges away
		assert.Empty(t, findAncestorPaths(target, parents, map[uuid.UUID]bool{chain[len(chain)-1]: true}))

		// and 10 edges away is still fine
		assert.Len(t, findAncestorPaths(target, parents, map[uuid.UUID]bool{chain[maxAncestorDepth]: true}), 1)
	})
}

type supplyChainMocks struct {
	edgeBuilder     *mocks.EdgeBuilder
	registryClient  *mocks.RegistryClient
	versions        *mocks.DependencyVersionRepository
	edges           *mocks.DependencyVersionEdgeRepository
	vulnerabilities *mocks.VulnerabilityRepository
	projectDeps     *mocks.ProjectDependencyRepository
	cache           *mocks.Cache
}

func newTestSupplyChainService(t *testing.T) (*SupplyChainService, supplyChainMocks) {
	m := supplyChainMocks{
		edgeBuilder:     mocks.NewEdgeBuilder(t),
		registryClient:  mocks.NewRegistryClient(t),
		versions:        mocks.NewDependencyVersionRepository(t),
		edges:           mocks.NewDependencyVersionEdgeRepository(t),
		vulnerabilities: mocks.NewVulnerabilityRepository(t),
		projectDeps:     mocks.NewProjectDependencyRepository(t),
		cache:           mocks.NewCache(t),
	}
	return NewSupplyChainService(m.edgeBuilder, m.registryClient, m.versions, m.edges, m.vulnerabilities, m.projectDeps, m.cache), m
}

func TestChildren(t *testing.T) {
	ctx := context.Background()

	t.Run("should ensure edges and sort by vulnerability count, then name", func(t *testing.T) {
		service, m := newTestSupplyChainService(t)
		parent := testVersion("express", "4.17.0")
		zebra := testVersion("zebra", "1.0.0")
		alpha := testVersion("alpha", "1.0.0")
		vulnerable := testVersion("qs", "6.5.0")

		m.cache.On("Get", mock.Anything, "children:"+parent.ID.String(), mock.Anything).Return(false)
		m.cache.On("Generation", mock.Anything).Return(uint64(0))
		m.versions.On("Read", mock.Anything, parent.ID).Return(parent, nil)
		m.edgeBuilder.On("EnsureEdges", mock.Anything, parent.ID, "express", "4.17.0").Return(3, nil)
		m.edges.On("GetChildren", mock.Anything, parent.ID).Return([]models.DependencyVersion{zebra, vulnerable, alpha}, nil)
		m.vulnerabilities.On("GetByDependencyIDs", mock.Anything, mock.Anything).Return([]models.Vulnerability{
			testVulnerability(vulnerable.DependencyID, "GHSA-1", dtos.SeverityHigh, "<6.5.3", "6.5.3"),
			testVulnerability(zebra.DependencyID, "GHSA-2", dtos.SeverityLow, "<1.0.0", "1.0.0"),
		}, nil)
		m.cache.On("Set", mock.Anything, "children:"+parent.ID.String(), uint64(0), mock.Anything).Return()

		nodes, err := service.Children(ctx, parent.ID)
		require.NoError(t, err)
		require.Len(t, nodes, 3)
		assert.Equal(t, "qs", nodes[0].Name)
		assert.Len(t, nodes[0].Vulnerabilities, 1)
		assert.Equal(t, "alpha", nodes[1].Name)
		assert.Equal(t, "zebra", nodes[2].Name)
		// 1.0.0 is fixed
		assert.Empty(t, nodes[2].Vulnerabilities)
	})

	t.Run("should serve cached children", func(t *testing.T) {
		service, m := newTestSupplyChainService(t)
		id := uuid.New()
		m.cache.On("Get", mock.Anything, "children:"+id.String(), mock.Anything).Return(true)

		_, err := service.Children(ctx, id)
		require.NoError(t, err)
		m.edgeBuilder.AssertNotCalled(t, "EnsureEdges", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSubgraph(t *testing.T) {
	ctx := context.Background()

	t.Run("should walk a cyclic graph once and respect the depth", func(t *testing.T) {
		service, m := newTestSupplyChainService(t)
		root := testVersion("a", "1.0.0")
		b := testVersion("b", "1.0.0")
		c := testVersion("c", "1.0.0")

		m.versions.On("Read", mock.Anything, root.ID).Return(root, nil)
		m.edgeBuilder.On("EnsureEdges", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(0, nil)
		// a -> b -> (a, c)
		m.edges.On("GetChildren", mock.Anything, root.ID).Return([]models.DependencyVersion{b}, nil)
		m.edges.On("GetChildren", mock.Anything, b.ID).Return([]models.DependencyVersion{root, c}, nil)
		m.vulnerabilities.On("GetByDependencyIDs", mock.Anything, mock.Anything).Return(nil, nil)

		nodes, err := service.Subgraph(ctx, root.ID, 2, 150)
		require.NoError(t, err)
		names := utils.Map(nodes, func(n dtos.SupplyChainNode) string { return n.Name })
		assert.Equal(t, []string{"b", "c"}, names)
		m.edges.AssertNotCalled(t, "GetChildren", mock.Anything, c.ID)
	})

	t.Run("should stop at the node limit", func(t *testing.T) {
		service, m := newTestSupplyChainService(t)
		root := testVersion("a", "1.0.0")
		children := []models.DependencyVersion{testVersion("b", "1.0.0"), testVersion("c", "1.0.0"), testVersion("d", "1.0.0")}

		m.versions.On("Read", mock.Anything, root.ID).Return(root, nil)
		m.edgeBuilder.On("EnsureEdges", mock.Anything, root.ID, "a", "1.0.0").Return(0, nil)
		m.edges.On("GetChildren", mock.Anything, root.ID).Return(children, nil)
		m.vulnerabilities.On("GetByDependencyIDs", mock.Anything, mock.Anything).Return(nil, nil)

		nodes, err := service.Subgraph(ctx, root.ID, 5, 2)
		require.NoError(t, err)
		assert.Len(t, nodes, 2)
	})
}

func TestAncestorPaths(t *testing.T) {
	ctx := context.Background()

	t.Run("should return nothing for direct dependencies", func(t *testing.T) {
		service, _ := newTestSupplyChainService(t)
		versionID := uuid.New()
		paths, err := service.AncestorPaths(ctx, models.ProjectDependency{IsDirect: true, DependencyVersionID: &versionID})
		require.NoError(t, err)
		assert.Empty(t, paths)
	})

	t.Run("should build paths from the direct dependency down to the target", func(t *testing.T) {
		service, m := newTestSupplyChainService(t)
		projectID := uuid.New()
		express := testVersion("express", "4.17.0")
		body := testVersion("body-parser", "1.19.0")
		qs := testVersion("qs", "6.7.0")

		rows := []models.ProjectDependency{
			{ProjectID: projectID, DependencyVersionID: &express.ID, IsDirect: true},
			{ProjectID: projectID, DependencyVersionID: &body.ID},
			{ProjectID: projectID, DependencyVersionID: &qs.ID},
		}
		m.projectDeps.On("GetByProjectID", mock.Anything, projectID).Return(rows, nil)
		m.edges.On("GetEdgesWithin", mock.Anything, mock.Anything).Return([]models.DependencyVersionEdge{
			{ParentVersionID: express.ID, ChildVersionID: body.ID},
			{ParentVersionID: body.ID, ChildVersionID: qs.ID},
			{ParentVersionID: express.ID, ChildVersionID: qs.ID},
		}, nil)
		m.versions.On("ListByIDs", mock.Anything, mock.Anything).Return([]models.DependencyVersion{express, body, qs}, nil)
		m.vulnerabilities.On("GetByDependencyIDs", mock.Anything, mock.Anything).Return(nil, nil)

		paths, err := service.AncestorPaths(ctx, rows[2])
		require.NoError(t, err)
		require.Len(t, paths, 2)

		// the shorter path is found first
		assert.Equal(t, []string{"express", "qs"}, utils.Map(paths[0], func(n dtos.SupplyChainNode) string { return n.Name }))
		assert.Equal(t, []string{"express", "body-parser", "qs"}, utils.Map(paths[1], func(n dtos.SupplyChainNode) string { return n.Name }))
		assert.True(t, paths[1][0].IsDirect)
		assert.False(t, paths[1][2].IsDirect)
	})

	t.Run("should build missing edges of the project versions before searching", func(t *testing.T) {
		service, m := newTestSupplyChainService(t)
		projectID := uuid.New()
		express := testVersion("express", "4.17.0")
		qs := testVersion("qs", "6.7.0")
		resolvedAt := time.Now()
		leaf := testVersion("left-pad", "1.3.0")
		leaf.EdgesResolvedAt = &resolvedAt

		rows := []models.ProjectDependency{
			{ProjectID: projectID, DependencyVersionID: &express.ID, DependencyVersion: &express, Dependency: express.Dependency, IsDirect: true},
			{ProjectID: projectID, DependencyVersionID: &leaf.ID, DependencyVersion: &leaf, Dependency: leaf.Dependency, IsDirect: true},
			{ProjectID: projectID, DependencyVersionID: &qs.ID, DependencyVersion: &qs, Dependency: qs.Dependency},
		}
		m.projectDeps.On("GetByProjectID", mock.Anything, projectID).Return(rows, nil)
		m.edgeBuilder.On("EnsureEdges", mock.Anything, express.ID, "express", "4.17.0").Return(1, nil).Once()
		m.edgeBuilder.On("EnsureEdges", mock.Anything, qs.ID, "qs", "6.7.0").Return(0, assert.AnError).Once()
		m.edges.On("GetEdgesWithin", mock.Anything, mock.Anything).Return([]models.DependencyVersionEdge{
			{ParentVersionID: express.ID, ChildVersionID: qs.ID},
		}, nil)
		m.versions.On("ListByIDs", mock.Anything, mock.Anything).Return([]models.DependencyVersion{express, qs}, nil)
		m.vulnerabilities.On("GetByDependencyIDs", mock.Anything, mock.Anything).Return(nil, nil)

		paths, err := service.AncestorPaths(ctx, rows[2])
		require.NoError(t, err)
		require.Len(t, paths, 1)
		assert.Equal(t, []string{"express", "qs"}, utils.Map(paths[0], func(n dtos.SupplyChainNode) string { return n.Name }))
		m.edgeBuilder.AssertNotCalled(t, "EnsureEdges", mock.Anything, leaf.ID, mock.Anything, mock.Anything)
	})
}
