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

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/cache"
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/l3montree-dev/depgraph/utils"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type DependencyService struct {
	projectRepository           shared.ProjectRepository
	projectDependencyRepository shared.ProjectDependencyRepository
	vulnerabilityRepository     shared.VulnerabilityRepository
	bannedVersionRepository     shared.BannedVersionRepository
	cache                       shared.Cache
}

var _ shared.DependencyService = (*DependencyService)(nil)

func NewDependencyService(projectRepository shared.ProjectRepository, projectDependencyRepository shared.ProjectDependencyRepository, vulnerabilityRepository shared.VulnerabilityRepository, bannedVersionRepository shared.BannedVersionRepository, cache shared.Cache) *DependencyService {
	return &DependencyService{
		projectRepository:           projectRepository,
		projectDependencyRepository: projectDependencyRepository,
		vulnerabilityRepository:     vulnerabilityRepository,
		bannedVersionRepository:     bannedVersionRepository,
		cache:                       cache,
	}
}

// GetEnrichedDependencies loads the dependency list of a project in two
// parallel waves: the project and its rows first, then vulnerabilities and
// bans of all referenced dependencies.
func (s *DependencyService) GetEnrichedDependencies(ctx context.Context, projectID uuid.UUID) ([]dtos.EnrichedDependency, error) {
	key := cache.EnrichedKey(projectID)
	var enriched []dtos.EnrichedDependency
	if s.cache.Get(ctx, key, &enriched) {
		return enriched, nil
	}
	generation := s.cache.Generation(key)

	var (
		project             models.Project
		projectDependencies []models.ProjectDependency
	)
	wave, waveCtx := errgroup.WithContext(ctx)
	wave.Go(func() (err error) {
		project, err = s.projectRepository.Read(waveCtx, projectID)
		return err
	})
	wave.Go(func() (err error) {
		projectDependencies, err = s.projectDependencyRepository.GetByProjectID(waveCtx, projectID)
		return errors.Wrap(err, "could not load project dependencies")
	})
	if err := wave.Wait(); err != nil {
		return nil, err
	}

	dependencyIDs := utils.Map(utils.UniqBy(projectDependencies, func(pd models.ProjectDependency) uuid.UUID {
		return pd.DependencyID
	}), func(pd models.ProjectDependency) uuid.UUID {
		return pd.DependencyID
	})

	var (
		vulns []models.Vulnerability
		bans  []models.BannedVersion
	)
	wave, waveCtx = errgroup.WithContext(ctx)
	wave.Go(func() (err error) {
		vulns, err = s.vulnerabilityRepository.GetByDependencyIDs(waveCtx, dependencyIDs)
		return errors.Wrap(err, "could not load vulnerabilities")
	})
	wave.Go(func() (err error) {
		bans, err = s.bannedVersionRepository.GetBannedVersions(waveCtx, project.OrganizationID, project.TeamID, dependencyIDs)
		return errors.Wrap(err, "could not load banned versions")
	})
	if err := wave.Wait(); err != nil {
		return nil, err
	}

	vulnsByDependency := make(map[uuid.UUID][]models.Vulnerability)
	for _, v := range vulns {
		vulnsByDependency[v.DependencyID] = append(vulnsByDependency[v.DependencyID], v)
	}
	bansByDependency := make(map[uuid.UUID][]models.BannedVersion)
	for _, b := range bans {
		bansByDependency[b.DependencyID] = append(bansByDependency[b.DependencyID], b)
	}

	enriched = make([]dtos.EnrichedDependency, 0, len(projectDependencies))
	for _, pd := range projectDependencies {
		row := dtos.EnrichedDependency{
			ProjectDependencyID: pd.ID,
			DependencyID:        pd.DependencyID,
			Name:                pd.Dependency.Name,
			IsDirect:            pd.IsDirect,
			Source:              string(pd.Source),
			Score:               pd.Dependency.Score,
			Licenses:            pd.Dependency.LicenseList(),
		}
		if pd.DependencyVersion != nil {
			row.Version = pd.DependencyVersion.Version
			row.Deprecation = pd.DependencyVersion.Deprecation
			for _, v := range vulnsByDependency[pd.DependencyID] {
				if v.Affects(row.Version) {
					row.VulnCounts.Add(v.Severity)
				}
			}
			row.IsBanned = isBanned(row.Version, bansByDependency[pd.DependencyID])
		}
		enriched = append(enriched, row)
	}

	s.cache.Set(ctx, key, generation, enriched)
	return enriched, nil
}
