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
	"math"
	"time"

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
	maxPenalty                = 33.0
	unknownOpenSSFPenalty     = 11.0
	unknownPopularityPenalty  = 16.0
	unknownMaintenancePenalty = 16.0
	maliciousMultiplier       = 0.15
)

func roundToOneDecimal(f float64) float64 {
	return math.Round(f*10) / 10
}

func openSSFPenalty(scorecardScore *float64) float64 {
	if scorecardScore == nil {
		return unknownOpenSSFPenalty
	}
	s := math.Max(0, math.Min(10, *scorecardScore))
	return roundToOneDecimal((10 - s) * 3.3)
}

func popularityPenalty(weeklyDownloads *int64) float64 {
	if weeklyDownloads == nil {
		return unknownPopularityPenalty
	}
	dl := math.Max(0, float64(*weeklyDownloads))
	return roundToOneDecimal(math.Max(0, math.Min(maxPenalty, 34-7*math.Log10(dl+1))))
}

func maintenancePenalty(releasesLast12Months *int) float64 {
	if releasesLast12Months == nil {
		return unknownMaintenancePenalty
	}
	switch r := *releasesLast12Months; {
	case r >= 12:
		return 0
	case r >= 6:
		return 8
	case r >= 3:
		return 16
	case r >= 1:
		return 24
	}
	return maxPenalty
}

func slsaMultiplier(level *int) float64 {
	if level == nil {
		return 1
	}
	switch {
	case *level >= 3:
		return 1.10
	case *level >= 1:
		return 1.05
	}
	return 1
}

// Score is the reputation of a package between 0 and 100. It only depends on
// the signals, so a stored score can always be recomputed.
func Score(signals dtos.ScoreSignals) dtos.ScoreResult {
	breakdown := dtos.ScoreBreakdown{
		OpenSSFPenalty:      openSSFPenalty(signals.ScorecardScore),
		PopularityPenalty:   popularityPenalty(signals.WeeklyDownloads),
		MaintenancePenalty:  maintenancePenalty(signals.ReleasesLast12Months),
		SLSAMultiplier:      slsaMultiplier(signals.SLSALevel),
		MaliciousMultiplier: 1,
	}
	if signals.IsMalicious {
		breakdown.MaliciousMultiplier = maliciousMultiplier
	}

	base := 100 - (breakdown.OpenSSFPenalty + breakdown.PopularityPenalty + breakdown.MaintenancePenalty)
	score := base * breakdown.SLSAMultiplier * breakdown.MaliciousMultiplier

	return dtos.ScoreResult{
		Score:     int(math.Round(math.Max(0, math.Min(100, score)))),
		Breakdown: breakdown,
	}
}

type ScoreService struct {
	registryClient           shared.RegistryClient
	openSourceInsightService shared.OpenSourceInsightService
	maliciousPackageChecker  shared.MaliciousPackageChecker
	dependencyRepository     shared.DependencyRepository
	vulnerabilityRepository  shared.VulnerabilityRepository
	cacheInvalidationService shared.CacheInvalidationService
	cache                    shared.Cache
	now                      func() time.Time
}

var _ shared.ScoreService = (*ScoreService)(nil)

func NewScoreService(registryClient shared.RegistryClient, openSourceInsightService shared.OpenSourceInsightService, maliciousPackageChecker shared.MaliciousPackageChecker, dependencyRepository shared.DependencyRepository, vulnerabilityRepository shared.VulnerabilityRepository, cacheInvalidationService shared.CacheInvalidationService, cache shared.Cache) *ScoreService {
	return &ScoreService{
		registryClient:           registryClient,
		openSourceInsightService: openSourceInsightService,
		maliciousPackageChecker:  maliciousPackageChecker,
		dependencyRepository:     dependencyRepository,
		vulnerabilityRepository:  vulnerabilityRepository,
		cacheInvalidationService: cacheInvalidationService,
		cache:                    cache,
		now:                      time.Now,
	}
}

// RefreshScore fetches the signals of the dependency, scores it and persists
// the result. Signals which cannot be fetched stay unknown.
func (s *ScoreService) RefreshScore(ctx context.Context, dependency models.Dependency) (models.Dependency, error) {
	now := s.now()

	results := utils.Concurrently(
		func() any {
			versions, err := s.registryClient.Versions(ctx, dependency.Name)
			if err != nil {
				slog.Debug("could not fetch versions", "dependency", dependency.Name, "err", err)
				return []dtos.PublishedVersion(nil)
			}
			return versions
		},
		func() any {
			downloads, err := s.registryClient.WeeklyDownloads(ctx, dependency.Name)
			if err != nil {
				slog.Debug("could not fetch weekly downloads", "dependency", dependency.Name, "err", err)
				return (*int64)(nil)
			}
			return &downloads
		},
		func() any {
			vulns, err := s.vulnerabilityRepository.GetByDependencyIDs(ctx, []uuid.UUID{dependency.ID})
			if err != nil {
				slog.Warn("could not fetch vulnerabilities", "dependency", dependency.Name, "err", err)
				return []models.Vulnerability(nil)
			}
			return vulns
		},
	)
	versions := results[0].([]dtos.PublishedVersion)
	downloads := results[1].(*int64)
	vulns := results[2].([]models.Vulnerability)

	if ctx.Err() != nil {
		return dependency, ctx.Err()
	}

	signals := dtos.ScoreSignals{
		WeeklyDownloads: downloads,
	}

	if versions != nil {
		signals.ReleasesLast12Months = utils.Ptr(releasesSince(versions, now.AddDate(-1, 0, 0)))
	}

	if latest, ok := s.latestVersion(ctx, dependency.Name, versions); ok {
		dependency.LatestVersion = &latest
		s.applyInsights(ctx, &dependency, &signals, latest)
	}

	malicious, _ := s.maliciousPackageChecker.IsMalicious("npm", dependency.Name, "")
	signals.IsMalicious = malicious || utils.Any(vulns, func(v models.Vulnerability) bool {
		return v.IsMalware()
	})
	if signals.IsMalicious {
		monitoring.MaliciousPackagesDetectedTotal.Inc()
	}

	result := Score(signals)
	dependency.ApplyScore(signals, result, now)
	if err := s.dependencyRepository.SaveScore(ctx, &dependency); err != nil {
		return dependency, errors.Wrap(err, "could not save score")
	}

	monitoring.ScoresComputedTotal.Inc()
	s.cacheInvalidationService.InvalidateForScore(ctx, dependency.ID)
	return dependency, nil
}

func (s *ScoreService) latestVersion(ctx context.Context, name string, versions []dtos.PublishedVersion) (string, bool) {
	resolved, err := s.registryClient.Resolve(ctx, name, "latest")
	if err == nil {
		return resolved.Version, true
	}
	sorted := normalize.SortVersionsAscending(utils.Map(versions, func(v dtos.PublishedVersion) string {
		return v.Version
	}))
	for i := len(sorted) - 1; i >= 0; i-- {
		if normalize.IsStable(sorted[i]) {
			return sorted[i], true
		}
	}
	return "", false
}

// applyInsights reads licenses, provenance and the scorecard from deps.dev.
func (s *ScoreService) applyInsights(ctx context.Context, dependency *models.Dependency, signals *dtos.ScoreSignals, version string) {
	insight, err := s.openSourceInsightService.GetVersion(ctx, "npm", dependency.Name, version)
	if err != nil {
		slog.Debug("could not get version information", "dependency", dependency.Name, "version", version, "err", err)
		return
	}

	if len(insight.Licenses) > 0 {
		dependency.Licenses = insight.Licenses
	}
	signals.SLSALevel = insight.SlsaLevel()

	projectKey, ok := insight.SourceRepository()
	if !ok {
		return
	}
	dependency.RepositoryURL = utils.Ptr("https://" + projectKey)

	project, err := s.openSourceInsightService.GetProject(ctx, projectKey)
	if err != nil {
		slog.Debug("could not get project information", "projectKey", projectKey, "err", err)
		return
	}
	if project.Scorecard != nil {
		signals.ScorecardScore = utils.Ptr(project.Scorecard.OverallScore)
	}
}

func releasesSince(versions []dtos.PublishedVersion, since time.Time) int {
	count := 0
	for _, v := range versions {
		if v.PublishedAt.After(since) {
			count++
		}
	}
	return count
}

// GetScore returns the stored score. A dependency which was never scored is
// scored from its (unknown) signals without persisting anything.
func (s *ScoreService) GetScore(ctx context.Context, dependencyID uuid.UUID) (dtos.ScoreResponse, error) {
	key := cache.ScoreKey(dependencyID)
	var response dtos.ScoreResponse
	if s.cache.Get(ctx, key, &response) {
		return response, nil
	}
	generation := s.cache.Generation(key)

	dependency, err := s.dependencyRepository.Read(ctx, dependencyID)
	if err != nil {
		return response, err
	}

	signals := dependency.Signals()
	response = dtos.ScoreResponse{
		DependencyID: dependency.ID,
		Name:         dependency.Name,
		Signals:      signals,
		ScoreResult:  Score(signals),
		UpdatedAt:    dependency.ScoreUpdatedAt,
	}
	if dependency.ScoreUpdatedAt != nil {
		s.cache.Set(ctx, key, generation, response)
	}
	return response, nil
}
