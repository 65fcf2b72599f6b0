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

package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/dtos"
)

type DependencyRepository interface {
	// PutIfAbsent returns the dependency with the given name and creates it
	// first if it does not exist. Concurrent callers all receive the same row.
	PutIfAbsent(ctx context.Context, name string) (models.Dependency, error)
	Read(ctx context.Context, id uuid.UUID) (models.Dependency, error)
	FindByName(ctx context.Context, name string) (models.Dependency, error)
	FindByNames(ctx context.Context, names []string) ([]models.Dependency, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Dependency, error)
	SaveScore(ctx context.Context, dependency *models.Dependency) error
	FindOutdatedScores(ctx context.Context, olderThan time.Time, limit int) ([]models.Dependency, error)
}

type DependencyVersionRepository interface {
	PutIfAbsent(ctx context.Context, dependencyID uuid.UUID, version string) (models.DependencyVersion, error)
	Read(ctx context.Context, id uuid.UUID) (models.DependencyVersion, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.DependencyVersion, error)
	MarkEdgesResolved(ctx context.Context, id uuid.UUID, deprecation *string, hasInstallScript bool) error
	FindUnresolved(ctx context.Context, limit int) ([]models.DependencyVersion, error)
}

type DependencyVersionEdgeRepository interface {
	HasEdges(ctx context.Context, parentVersionID uuid.UUID) (bool, error)
	// PutIfAbsent reports whether the edge was inserted by this call.
	PutIfAbsent(ctx context.Context, edge models.DependencyVersionEdge) (bool, error)
	GetChildren(ctx context.Context, parentVersionID uuid.UUID) ([]models.DependencyVersion, error)
	// GetEdgesWithin returns the edges whose both endpoints are in versionIDs.
	GetEdgesWithin(ctx context.Context, versionIDs []uuid.UUID) ([]models.DependencyVersionEdge, error)
}

type VulnerabilityRepository interface {
	GetByDependencyIDs(ctx context.Context, dependencyIDs []uuid.UUID) ([]models.Vulnerability, error)
	Upsert(ctx context.Context, vulnerabilities []models.Vulnerability) error
}

type ProjectDependencyRepository interface {
	Read(ctx context.Context, id uuid.UUID) (models.ProjectDependency, error)
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]models.ProjectDependency, error)
	GetByDependencyID(ctx context.Context, dependencyID uuid.UUID) ([]models.ProjectDependency, error)
}

type ProjectRepository interface {
	Read(ctx context.Context, id uuid.UUID) (models.Project, error)
}

type ProjectPolicyRepository interface {
	// GetPolicyThresholds falls back to the default policy if the project has none.
	GetPolicyThresholds(ctx context.Context, projectID uuid.UUID) (models.ProjectPolicy, error)
}

type BannedVersionRepository interface {
	// GetBannedVersions returns the bans of the organization and, if teamID is
	// set, of the team for the given dependencies.
	GetBannedVersions(ctx context.Context, organizationID uuid.UUID, teamID *uuid.UUID, dependencyIDs []uuid.UUID) ([]models.BannedVersion, error)
	Create(ctx context.Context, ban *models.BannedVersion) error
	Read(ctx context.Context, id uuid.UUID) (models.BannedVersion, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type WatchlistRepository interface {
	GetWatchedDependencies(ctx context.Context) ([]models.Dependency, error)
}

type ConfigRepository interface {
	GetByKey(key string) (models.Config, error)
	Save(config *models.Config) error
	DeleteByKey(key string) error
}

type ConfigService interface {
	GetJSONConfig(key string, v any) error
	SetJSONConfig(key string, v any) error
	RemoveConfig(key string) error
}

type RegistryClient interface {
	// Resolve returns ErrPackageNotFound if name@versionRange cannot be resolved.
	Resolve(ctx context.Context, name, versionRange string) (dtos.ResolvedPackage, error)
	Versions(ctx context.Context, name string) ([]dtos.PublishedVersion, error)
	WeeklyDownloads(ctx context.Context, name string) (int64, error)
}

type OpenSourceInsightService interface {
	GetProject(ctx context.Context, projectID string) (dtos.OpenSourceInsightsProjectResponse, error)
	GetVersion(ctx context.Context, ecosystem, packageName, version string) (dtos.OpenSourceInsightsVersionResponse, error)
}

type MaliciousPackageChecker interface {
	IsMalicious(ecosystem, packageName, version string) (bool, *dtos.OSV)
}

type OSVService interface {
	QueryPackage(ctx context.Context, ecosystem, packageName string) ([]dtos.OSV, error)
}

type EdgeBuilder interface {
	EnsureEdges(ctx context.Context, parentVersionID uuid.UUID, name, version string) (int, error)
}

type ScoreService interface {
	RefreshScore(ctx context.Context, dependency models.Dependency) (models.Dependency, error)
	GetScore(ctx context.Context, dependencyID uuid.UUID) (dtos.ScoreResponse, error)
}

type SupplyChainService interface {
	Children(ctx context.Context, versionID uuid.UUID) ([]dtos.SupplyChainNode, error)
	Subgraph(ctx context.Context, versionID uuid.UUID, maxDepth, maxNodes int) ([]dtos.SupplyChainNode, error)
	AncestorPaths(ctx context.Context, projectDependency models.ProjectDependency) ([][]dtos.SupplyChainNode, error)
	GetSupplyChain(ctx context.Context, projectDependencyID uuid.UUID) (dtos.SupplyChainResponse, error)
}

type SafeVersionService interface {
	SafeVersion(ctx context.Context, projectDependencyID uuid.UUID, severityThreshold dtos.Severity, excludeBanned bool) (dtos.LatestSafeVersionResponse, error)
	SafeVersionWithPolicy(ctx context.Context, projectDependencyID uuid.UUID) (dtos.LatestSafeVersionResponse, error)
}

type DependencyService interface {
	GetEnrichedDependencies(ctx context.Context, projectID uuid.UUID) ([]dtos.EnrichedDependency, error)
}

type PopulationService interface {
	PopulateScores(ctx context.Context, names []string) ([]dtos.BatchItemResult, error)
	BackfillEdges(ctx context.Context, limit int) ([]dtos.BatchItemResult, error)
}

type VulnerabilitySyncService interface {
	SyncDependency(ctx context.Context, dependency models.Dependency) (int, error)
}

type BannedVersionService interface {
	Ban(ctx context.Context, ban models.BannedVersion) (models.BannedVersion, error)
	Unban(ctx context.Context, id uuid.UUID) error
}

type CacheInvalidationService interface {
	InvalidateForBan(ctx context.Context, dependencyID uuid.UUID)
	InvalidateForVulnerabilities(ctx context.Context, dependencyID uuid.UUID)
	InvalidateForScore(ctx context.Context, dependencyID uuid.UUID)
	InvalidateForEdges(ctx context.Context, parentVersionID uuid.UUID)
}

// Cache never returns errors. A failing backend degrades to a miss.
type Cache interface {
	// Get decodes the cached value into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest any) bool
	// Generation identifies the invalidation state of the key. Read it after a
	// miss, before loading the value from the store.
	Generation(key string) uint64
	// Set stores the value with the ttl of the key's data class unless the key
	// was invalidated since generation was read. It does not block.
	Set(ctx context.Context, key string, generation uint64, value any)
	Delete(ctx context.Context, keys ...string)
	DeletePrefix(ctx context.Context, prefixes ...string)
}

type LeaderElector interface {
	IsLeader() bool
	IfLeader(ctx context.Context, fn func() error)
}

type DaemonRunner interface {
	// Start runs the due daemons periodically on the leading instance until ctx is done.
	Start(ctx context.Context)
	// RunDaemons runs the named daemons now, regardless of when they last ran.
	RunDaemons(ctx context.Context, names ...string) error
}
