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
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/cache"
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/monitoring"
	"github.com/l3montree-dev/depgraph/normalize"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/l3montree-dev/depgraph/utils"
	"github.com/pkg/errors"
)

const (
	reasonCurrentIsSafe = "current version is safe"
	reasonNoSafeVersion = "no safe version found"
	reasonInvalidSemver = "current version is not a valid semantic version"
)

type SafeVersionService struct {
	config                      shared.EngineConfig
	registryClient              shared.RegistryClient
	supplyChainService          shared.SupplyChainService
	projectRepository           shared.ProjectRepository
	projectDependencyRepository shared.ProjectDependencyRepository
	projectPolicyRepository     shared.ProjectPolicyRepository
	bannedVersionRepository     shared.BannedVersionRepository
	vulnerabilityRepository     shared.VulnerabilityRepository
	dependencyVersionRepository shared.DependencyVersionRepository
	cache                       shared.Cache
}

var _ shared.SafeVersionService = (*SafeVersionService)(nil)

func NewSafeVersionService(config shared.EngineConfig, registryClient shared.RegistryClient, supplyChainService shared.SupplyChainService, projectRepository shared.ProjectRepository, projectDependencyRepository shared.ProjectDependencyRepository, projectPolicyRepository shared.ProjectPolicyRepository, bannedVersionRepository shared.BannedVersionRepository, vulnerabilityRepository shared.VulnerabilityRepository, dependencyVersionRepository shared.DependencyVersionRepository, cache shared.Cache) *SafeVersionService {
	return &SafeVersionService{
		config:                      config,
		registryClient:              registryClient,
		supplyChainService:          supplyChainService,
		projectRepository:           projectRepository,
		projectDependencyRepository: projectDependencyRepository,
		projectPolicyRepository:     projectPolicyRepository,
		bannedVersionRepository:     bannedVersionRepository,
		vulnerabilityRepository:     vulnerabilityRepository,
		dependencyVersionRepository: dependencyVersionRepository,
		cache:                       cache,
	}
}

// SafeVersionWithPolicy uses the thresholds of the project's policy.
func (s *SafeVersionService) SafeVersionWithPolicy(ctx context.Context, projectDependencyID uuid.UUID) (dtos.LatestSafeVersionResponse, error) {
	projectDependency, err := s.projectDependencyRepository.Read(ctx, projectDependencyID)
	if err != nil {
		return dtos.LatestSafeVersionResponse{}, err
	}
	policy, err := s.projectPolicyRepository.GetPolicyThresholds(ctx, projectDependency.ProjectID)
	if err != nil {
		return dtos.LatestSafeVersionResponse{}, errors.Wrap(err, "could not load policy thresholds")
	}
	return s.safeVersion(ctx, projectDependency, policy.SeverityThreshold, policy.ExcludeBanned)
}

// SafeVersion returns the smallest version >= the current one which is not
// banned, not affected by a vulnerability at or above the threshold and whose
// descendants are not affected either.
func (s *SafeVersionService) SafeVersion(ctx context.Context, projectDependencyID uuid.UUID, severityThreshold dtos.Severity, excludeBanned bool) (dtos.LatestSafeVersionResponse, error) {
	projectDependency, err := s.projectDependencyRepository.Read(ctx, projectDependencyID)
	if err != nil {
		return dtos.LatestSafeVersionResponse{}, err
	}
	return s.safeVersion(ctx, projectDependency, severityThreshold, excludeBanned)
}

func (s *SafeVersionService) safeVersion(ctx context.Context, projectDependency models.ProjectDependency, threshold dtos.Severity, excludeBanned bool) (dtos.LatestSafeVersionResponse, error) {
	if threshold == dtos.SeverityUnknown {
		threshold = dtos.SeverityMedium
	}

	key := cache.SafeVersionKey(projectDependency.ID, threshold, excludeBanned)
	var response dtos.LatestSafeVersionResponse
	if s.cache.Get(ctx, key, &response) {
		return response, nil
	}
	generation := s.cache.Generation(key)

	if projectDependency.DependencyVersion == nil {
		return response, shared.ErrUnresolvedProjectDependency
	}
	current := *projectDependency.DependencyVersion

	candidates, complete, ok := s.candidates(ctx, projectDependency.Dependency.Name, current.Version)
	if !ok {
		return dtos.LatestSafeVersionResponse{Reason: reasonInvalidSemver}, nil
	}

	var bans []models.BannedVersion
	if excludeBanned {
		project, err := s.projectRepository.Read(ctx, projectDependency.ProjectID)
		if err != nil {
			return response, errors.Wrap(err, "could not load project")
		}
		bans, err = s.bannedVersionRepository.GetBannedVersions(ctx, project.OrganizationID, project.TeamID, []uuid.UUID{projectDependency.DependencyID})
		if err != nil {
			return response, errors.Wrap(err, "could not load banned versions")
		}
	}

	vulns, err := s.vulnerabilityRepository.GetByDependencyIDs(ctx, []uuid.UUID{projectDependency.DependencyID})
	if err != nil {
		return response, errors.Wrap(err, "could not load vulnerabilities")
	}
	relevant := utils.Filter(vulns, func(v models.Vulnerability) bool {
		return v.Severity.AtLeast(threshold)
	})

	response = dtos.LatestSafeVersionResponse{Reason: reasonNoSafeVersion}
	evaluated := 0
	for _, candidate := range candidates {
		evaluated++
		if isBanned(candidate, bans) {
			continue
		}
		if utils.Any(relevant, func(v models.Vulnerability) bool { return v.Affects(candidate) }) {
			continue
		}

		versionID := current.ID
		if candidate != current.Version {
			candidateVersion, err := s.dependencyVersionRepository.PutIfAbsent(ctx, projectDependency.DependencyID, candidate)
			if err != nil {
				return dtos.LatestSafeVersionResponse{}, err
			}
			versionID = candidateVersion.ID
		}

		clean, err := s.subgraphIsClean(ctx, versionID, threshold)
		if err != nil {
			return dtos.LatestSafeVersionResponse{}, err
		}
		if !clean {
			continue
		}

		response.SafeVersion = utils.Ptr(candidate)
		if candidate == current.Version {
			response.Reason = reasonCurrentIsSafe
		} else {
			response.Reason = fmt.Sprintf("upgrade to %s", candidate)
		}
		break
	}
	monitoring.SafeVersionCandidatesEvaluated.Observe(float64(evaluated))

	// without the published versions only the current one was checked
	if complete {
		s.cache.Set(ctx, key, generation, response)
	}
	return response, nil
}

// candidates returns the current version and every stable version above it
// in ascending order, capped at the configured maximum. complete is false if
// the published versions could not be fetched. ok is false if the current
// version cannot be evaluated.
func (s *SafeVersionService) candidates(ctx context.Context, name, current string) (versions []string, complete bool, ok bool) {
	currentVersion, ok := normalize.ParseVersion(current)
	if !ok {
		return nil, false, false
	}

	published, err := s.registryClient.Versions(ctx, name)
	if err != nil {
		slog.Debug("could not fetch versions, only checking the current one", "name", name, "err", err)
	}

	versions = []string{current}
	for _, p := range published {
		v, ok := normalize.ParseVersion(p.Version)
		if !ok || v.Prerelease() != "" || !v.GreaterThan(currentVersion) {
			continue
		}
		versions = append(versions, p.Version)
	}

	versions = normalize.SortVersionsAscending(versions)
	if s.config.SafeVersionMaxCand > 0 && len(versions) > s.config.SafeVersionMaxCand {
		versions = versions[:s.config.SafeVersionMaxCand]
	}
	return versions, err == nil, true
}

func (s *SafeVersionService) subgraphIsClean(ctx context.Context, versionID uuid.UUID, threshold dtos.Severity) (bool, error) {
	nodes, err := s.supplyChainService.Subgraph(ctx, versionID, s.config.SubgraphDepth, s.config.SubgraphMaxNodes)
	if err != nil {
		return false, err
	}
	for _, node := range nodes {
		for _, v := range node.Vulnerabilities {
			if v.Severity.AtLeast(threshold) {
				return false, nil
			}
		}
	}
	return true, nil
}

func isBanned(version string, bans []models.BannedVersion) bool {
	return utils.Any(bans, func(ban models.BannedVersion) bool {
		return normalize.MatchesVersionOrRange(version, ban.BannedVersion)
	})
}
