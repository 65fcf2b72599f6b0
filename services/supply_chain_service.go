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
	"cmp"
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/cache"
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/l3montree-dev/depgraph/utils"
	"github.com/pkg/errors"
)

const (
	maxAncestorDepth = 10
	maxAncestorPaths = 5
	// upper bound of partial paths the ancestor search expands, dense project
	// graphs would otherwise grow the queue exponentially before depth 10
	maxAncestorExpansions = 10_000
	// versions of a project whose edges are built before the ancestor search,
	// the backfill daemon covers the rest
	maxProjectEdgeBuilds   = 150
	projectEdgeConcurrency = 4
)

type SupplyChainService struct {
	edgeBuilder                     shared.EdgeBuilder
	registryClient                  shared.RegistryClient
	dependencyVersionRepository     shared.DependencyVersionRepository
	dependencyVersionEdgeRepository shared.DependencyVersionEdgeRepository
	vulnerabilityRepository         shared.VulnerabilityRepository
	projectDependencyRepository     shared.ProjectDependencyRepository
	cache                           shared.Cache
}

var _ shared.SupplyChainService = (*SupplyChainService)(nil)

func NewSupplyChainService(edgeBuilder shared.EdgeBuilder, registryClient shared.RegistryClient, dependencyVersionRepository shared.DependencyVersionRepository, dependencyVersionEdgeRepository shared.DependencyVersionEdgeRepository, vulnerabilityRepository shared.VulnerabilityRepository, projectDependencyRepository shared.ProjectDependencyRepository, cache shared.Cache) *SupplyChainService {
	return &SupplyChainService{
		edgeBuilder:                     edgeBuilder,
		registryClient:                  registryClient,
		dependencyVersionRepository:     dependencyVersionRepository,
		dependencyVersionEdgeRepository: dependencyVersionEdgeRepository,
		vulnerabilityRepository:         vulnerabilityRepository,
		projectDependencyRepository:     projectDependencyRepository,
		cache:                           cache,
	}
}

// buildNodes annotates the versions with score, licenses and the
// vulnerabilities affecting exactly that version.
func (s *SupplyChainService) buildNodes(ctx context.Context, versions []models.DependencyVersion) ([]dtos.SupplyChainNode, error) {
	dependencyIDs := utils.Map(utils.UniqBy(versions, func(v models.DependencyVersion) uuid.UUID {
		return v.DependencyID
	}), func(v models.DependencyVersion) uuid.UUID {
		return v.DependencyID
	})

	vulns, err := s.vulnerabilityRepository.GetByDependencyIDs(ctx, dependencyIDs)
	if err != nil {
		return nil, errors.Wrap(err, "could not load vulnerabilities")
	}
	vulnsByDependency := make(map[uuid.UUID][]models.Vulnerability)
	for _, v := range vulns {
		vulnsByDependency[v.DependencyID] = append(vulnsByDependency[v.DependencyID], v)
	}

	nodes := make([]dtos.SupplyChainNode, 0, len(versions))
	for _, version := range versions {
		affecting := make([]dtos.VulnerabilityDTO, 0)
		for _, v := range vulnsByDependency[version.DependencyID] {
			if v.Affects(version.Version) {
				affecting = append(affecting, v.ToDTO())
			}
		}
		nodes = append(nodes, dtos.SupplyChainNode{
			DependencyVersionID: version.ID,
			DependencyID:        version.DependencyID,
			Name:                version.Dependency.Name,
			Version:             version.Version,
			Score:               version.Dependency.Score,
			Licenses:            version.Dependency.LicenseList(),
			Vulnerabilities:     affecting,
		})
	}
	return nodes, nil
}

// Children returns the direct children of the version, most vulnerable first.
func (s *SupplyChainService) Children(ctx context.Context, versionID uuid.UUID) ([]dtos.SupplyChainNode, error) {
	key := cache.ChildrenKey(versionID)
	var nodes []dtos.SupplyChainNode
	if s.cache.Get(ctx, key, &nodes) {
		return nodes, nil
	}
	generation := s.cache.Generation(key)

	version, err := s.dependencyVersionRepository.Read(ctx, versionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.edgeBuilder.EnsureEdges(ctx, version.ID, version.Dependency.Name, version.Version); err != nil {
		return nil, err
	}

	children, err := s.dependencyVersionEdgeRepository.GetChildren(ctx, versionID)
	if err != nil {
		return nil, errors.Wrap(err, "could not load children")
	}

	nodes, err = s.buildNodes(ctx, children)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(nodes, func(a, b dtos.SupplyChainNode) int {
		return cmp.Or(
			cmp.Compare(len(b.Vulnerabilities), len(a.Vulnerabilities)),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.Version, b.Version),
		)
	})

	s.cache.Set(ctx, key, generation, nodes)
	return nodes, nil
}

// Subgraph collects the descendants of the version breadth first. The version
// itself is not part of the result.
func (s *SupplyChainService) Subgraph(ctx context.Context, versionID uuid.UUID, maxDepth, maxNodes int) ([]dtos.SupplyChainNode, error) {
	root, err := s.dependencyVersionRepository.Read(ctx, versionID)
	if err != nil {
		return nil, err
	}

	visited := map[uuid.UUID]struct{}{root.ID: {}}
	frontier := []models.DependencyVersion{root}
	collected := make([]models.DependencyVersion, 0)

bfs:
	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		next := make([]models.DependencyVersion, 0)
		for _, version := range frontier {
			if _, err := s.edgeBuilder.EnsureEdges(ctx, version.ID, version.Dependency.Name, version.Version); err != nil {
				return nil, err
			}
			children, err := s.dependencyVersionEdgeRepository.GetChildren(ctx, version.ID)
			if err != nil {
				return nil, errors.Wrap(err, "could not load children")
			}
			for _, child := range children {
				if _, ok := visited[child.ID]; ok {
					continue
				}
				if len(collected) >= maxNodes {
					break bfs
				}
				visited[child.ID] = struct{}{}
				collected = append(collected, child)
				next = append(next, child)
			}
		}
		frontier = next
	}

	return s.buildNodes(ctx, collected)
}

type ancestorSearchPath struct {
	versionIDs []uuid.UUID
	visited    map[uuid.UUID]struct{}
}

// AncestorPaths finds up to five paths from a transitive project dependency
// to direct project dependencies. Only edges between versions of the same
// project are followed. Each path starts at the direct dependency and ends at
// the requested one.
func (s *SupplyChainService) AncestorPaths(ctx context.Context, projectDependency models.ProjectDependency) ([][]dtos.SupplyChainNode, error) {
	if projectDependency.IsDirect || projectDependency.DependencyVersionID == nil {
		return [][]dtos.SupplyChainNode{}, nil
	}
	target := *projectDependency.DependencyVersionID

	projectDependencies, err := s.projectDependencyRepository.GetByProjectID(ctx, projectDependency.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "could not load project dependencies")
	}

	direct := make(map[uuid.UUID]bool)
	for _, pd := range projectDependencies {
		if pd.DependencyVersionID == nil {
			continue
		}
		direct[*pd.DependencyVersionID] = direct[*pd.DependencyVersionID] || pd.IsDirect
	}

	s.ensureProjectEdges(ctx, projectDependencies)

	edges, err := s.dependencyVersionEdgeRepository.GetEdgesWithin(ctx, slices.Collect(maps.Keys(direct)))
	if err != nil {
		return nil, errors.Wrap(err, "could not load project edges")
	}
	parents := make(map[uuid.UUID][]uuid.UUID)
	for _, edge := range edges {
		parents[edge.ChildVersionID] = append(parents[edge.ChildVersionID], edge.ParentVersionID)
	}
	for child := range parents {
		slices.SortFunc(parents[child], func(a, b uuid.UUID) int {
			return cmp.Compare(a.String(), b.String())
		})
	}

	found := findAncestorPaths(target, parents, direct)
	if len(found) == 0 {
		return [][]dtos.SupplyChainNode{}, nil
	}

	ids := utils.UniqBy(utils.Flat(found), func(id uuid.UUID) uuid.UUID { return id })
	versions, err := s.dependencyVersionRepository.ListByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "could not load path versions")
	}
	nodes, err := s.buildNodes(ctx, versions)
	if err != nil {
		return nil, err
	}
	nodesByID := make(map[uuid.UUID]dtos.SupplyChainNode, len(nodes))
	for _, node := range nodes {
		node.IsDirect = direct[node.DependencyVersionID]
		nodesByID[node.DependencyVersionID] = node
	}

	paths := make([][]dtos.SupplyChainNode, 0, len(found))
	for _, path := range found {
		nodePath := make([]dtos.SupplyChainNode, 0, len(path))
		for i := len(path) - 1; i >= 0; i-- {
			node, ok := nodesByID[path[i]]
			if !ok {
				slog.Warn("version of ancestor path vanished", "dependencyVersionId", path[i])
				nodePath = nil
				break
			}
			nodePath = append(nodePath, node)
		}
		if nodePath != nil {
			paths = append(paths, nodePath)
		}
	}
	return paths, nil
}

// ensureProjectEdges builds the missing edges of the project's versions so a
// fresh project does not report empty ancestor paths. Failures are logged,
// the search then runs on the edges that exist.
func (s *SupplyChainService) ensureProjectEdges(ctx context.Context, projectDependencies []models.ProjectDependency) {
	open := utils.Filter(projectDependencies, func(pd models.ProjectDependency) bool {
		return pd.DependencyVersion != nil && pd.DependencyVersion.EdgesResolvedAt == nil
	})
	open = utils.UniqBy(open, func(pd models.ProjectDependency) uuid.UUID { return pd.DependencyVersion.ID })
	if len(open) > maxProjectEdgeBuilds {
		open = open[:maxProjectEdgeBuilds]
	}

	group := utils.ErrGroup[int](projectEdgeConcurrency)
	for _, pd := range open {
		group.Go(func() (int, error) {
			count, err := s.edgeBuilder.EnsureEdges(ctx, pd.DependencyVersion.ID, pd.Dependency.Name, pd.DependencyVersion.Version)
			if err != nil {
				slog.Warn("could not ensure edges of project version", "name", pd.Dependency.Name, "version", pd.DependencyVersion.Version, "err", err)
			}
			return count, nil
		})
	}
	group.WaitAndCollect() // nolint: errcheck
}

// findAncestorPaths walks the reversed edges breadth first. The returned
// paths start at target and end at the first direct node reached.
func findAncestorPaths(target uuid.UUID, parents map[uuid.UUID][]uuid.UUID, direct map[uuid.UUID]bool) [][]uuid.UUID {
	found := make([][]uuid.UUID, 0, maxAncestorPaths)
	queue := []ancestorSearchPath{{
		versionIDs: []uuid.UUID{target},
		visited:    map[uuid.UUID]struct{}{target: {}},
	}}

	expansions := 0
	for len(queue) > 0 && len(found) < maxAncestorPaths && expansions < maxAncestorExpansions {
		path := queue[0]
		queue = queue[1:]
		expansions++

		if len(path.versionIDs)-1 >= maxAncestorDepth {
			continue
		}

		last := path.versionIDs[len(path.versionIDs)-1]
		for _, parent := range parents[last] {
			if _, ok := path.visited[parent]; ok {
				continue
			}
			versionIDs := append(slices.Clone(path.versionIDs), parent)
			if direct[parent] {
				found = append(found, versionIDs)
				if len(found) == maxAncestorPaths {
					break
				}
				continue
			}
			visited := maps.Clone(path.visited)
			visited[parent] = struct{}{}
			queue = append(queue, ancestorSearchPath{versionIDs: versionIDs, visited: visited})
		}
	}
	return found
}

func (s *SupplyChainService) GetSupplyChain(ctx context.Context, projectDependencyID uuid.UUID) (dtos.SupplyChainResponse, error) {
	key := cache.SupplyChainKey(projectDependencyID)
	var response dtos.SupplyChainResponse
	if s.cache.Get(ctx, key, &response) {
		return response, nil
	}
	generation := s.cache.Generation(key)

	projectDependency, err := s.projectDependencyRepository.Read(ctx, projectDependencyID)
	if err != nil {
		return response, err
	}
	if projectDependency.DependencyVersion == nil {
		return response, shared.ErrUnresolvedProjectDependency
	}

	parents, err := s.buildNodes(ctx, []models.DependencyVersion{*projectDependency.DependencyVersion})
	if err != nil {
		return response, err
	}
	parent := parents[0]
	parent.IsDirect = projectDependency.IsDirect

	children, err := s.Children(ctx, parent.DependencyVersionID)
	if err != nil {
		return response, err
	}

	ancestors, err := s.AncestorPaths(ctx, projectDependency)
	if err != nil {
		return response, err
	}

	availableVersions := make([]string, 0)
	published, err := s.registryClient.Versions(ctx, parent.Name)
	if err != nil {
		slog.Debug("could not fetch available versions", "name", parent.Name, "err", err)
	}
	for _, v := range published {
		availableVersions = append(availableVersions, v.Version)
	}

	response = dtos.SupplyChainResponse{
		Parent:            parent,
		Children:          children,
		Ancestors:         ancestors,
		AvailableVersions: availableVersions,
	}
	s.cache.Set(ctx, key, generation, response)
	return response, nil
}
