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

package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/integrationtestutil"
	"github.com/l3montree-dev/depgraph/normalize"
	"github.com/l3montree-dev/depgraph/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestRepositoriesIntegration(t *testing.T) {
	db, terminate := integrationtestutil.InitDatabaseContainer(t)
	defer terminate()

	ctx := context.Background()
	dependencyRepository := NewDependencyRepository(db)
	versionRepository := NewDependencyVersionRepository(db)
	edgeRepository := NewDependencyVersionEdgeRepository(db)
	vulnerabilityRepository := NewVulnerabilityRepository(db)
	bannedVersionRepository := NewBannedVersionRepository(db)
	policyRepository := NewProjectPolicyRepository(db)

	t.Run("should return the same dependency for concurrent PutIfAbsent calls", func(t *testing.T) {
		var wg sync.WaitGroup
		ids := make([]uuid.UUID, 10)
		for i := range ids {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				dependency, err := dependencyRepository.PutIfAbsent(ctx, "lodash")
				assert.NoError(t, err)
				ids[i] = dependency.ID
			}(i)
		}
		wg.Wait()

		for _, id := range ids {
			assert.Equal(t, ids[0], id)
		}

		dependency, err := dependencyRepository.FindByName(ctx, "lodash")
		require.NoError(t, err)
		assert.Equal(t, "pkg:npm/lodash", dependency.Purl)
	})

	t.Run("should return the same version for repeated PutIfAbsent calls", func(t *testing.T) {
		dependency, err := dependencyRepository.PutIfAbsent(ctx, "express")
		require.NoError(t, err)

		first, err := versionRepository.PutIfAbsent(ctx, dependency.ID, "4.18.2")
		require.NoError(t, err)
		second, err := versionRepository.PutIfAbsent(ctx, dependency.ID, "4.18.2")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "express", second.Dependency.Name)
	})

	t.Run("should insert an edge only once", func(t *testing.T) {
		parentDependency, err := dependencyRepository.PutIfAbsent(ctx, "parent-pkg")
		require.NoError(t, err)
		childDependency, err := dependencyRepository.PutIfAbsent(ctx, "child-pkg")
		require.NoError(t, err)
		parent, err := versionRepository.PutIfAbsent(ctx, parentDependency.ID, "1.0.0")
		require.NoError(t, err)
		child, err := versionRepository.PutIfAbsent(ctx, childDependency.ID, "2.0.0")
		require.NoError(t, err)

		hasEdges, err := edgeRepository.HasEdges(ctx, parent.ID)
		require.NoError(t, err)
		assert.False(t, hasEdges)

		edge := models.DependencyVersionEdge{ParentVersionID: parent.ID, ChildVersionID: child.ID}
		inserted, err := edgeRepository.PutIfAbsent(ctx, edge)
		require.NoError(t, err)
		assert.True(t, inserted)

		inserted, err = edgeRepository.PutIfAbsent(ctx, edge)
		require.NoError(t, err)
		assert.False(t, inserted)

		children, err := edgeRepository.GetChildren(ctx, parent.ID)
		require.NoError(t, err)
		require.Len(t, children, 1)
		assert.Equal(t, child.ID, children[0].ID)
		assert.Equal(t, "child-pkg", children[0].Dependency.Name)

		edges, err := edgeRepository.GetEdgesWithin(ctx, []uuid.UUID{parent.ID, child.ID})
		require.NoError(t, err)
		assert.Len(t, edges, 1)

		edges, err = edgeRepository.GetEdgesWithin(ctx, []uuid.UUID{child.ID})
		require.NoError(t, err)
		assert.Empty(t, edges)
	})

	t.Run("should mark a version as resolved", func(t *testing.T) {
		dependency, err := dependencyRepository.PutIfAbsent(ctx, "leaf-pkg")
		require.NoError(t, err)
		version, err := versionRepository.PutIfAbsent(ctx, dependency.ID, "0.0.1")
		require.NoError(t, err)

		unresolved, err := versionRepository.FindUnresolved(ctx, 0)
		require.NoError(t, err)
		assert.True(t, utils.Any(unresolved, func(v models.DependencyVersion) bool { return v.ID == version.ID }))

		require.NoError(t, versionRepository.MarkEdgesResolved(ctx, version.ID, utils.Ptr("use something else"), true))

		read, err := versionRepository.Read(ctx, version.ID)
		require.NoError(t, err)
		assert.NotNil(t, read.EdgesResolvedAt)
		assert.Equal(t, "use something else", *read.Deprecation)
		assert.True(t, *read.HasInstallScript)
	})

	t.Run("should upsert vulnerabilities by dependency and advisory id", func(t *testing.T) {
		dependency, err := dependencyRepository.PutIfAbsent(ctx, "vulnerable-pkg")
		require.NoError(t, err)

		vulnerability := models.Vulnerability{
			DependencyID: dependency.ID,
			OsvID:        "GHSA-xxxx-yyyy-zzzz",
			Severity:     dtos.SeverityMedium,
			AffectedVersions: datatypes.NewJSONType(normalize.AffectedSpec{
				Ranges: []normalize.AffectedRange{{Introduced: "0", Fixed: "1.2.3"}},
			}),
			FixedVersions: []string{"1.2.3"},
		}
		require.NoError(t, vulnerabilityRepository.Upsert(ctx, []models.Vulnerability{vulnerability}))

		vulnerability.Severity = dtos.SeverityCritical
		require.NoError(t, vulnerabilityRepository.Upsert(ctx, []models.Vulnerability{vulnerability}))

		vulnerabilities, err := vulnerabilityRepository.GetByDependencyIDs(ctx, []uuid.UUID{dependency.ID})
		require.NoError(t, err)
		require.Len(t, vulnerabilities, 1)
		assert.Equal(t, dtos.SeverityCritical, vulnerabilities[0].Severity)
		assert.True(t, vulnerabilities[0].Affects("1.0.0"))
		assert.False(t, vulnerabilities[0].Affects("1.2.3"))
	})

	t.Run("should scope banned versions to the organization and team", func(t *testing.T) {
		dependency, err := dependencyRepository.PutIfAbsent(ctx, "banned-pkg")
		require.NoError(t, err)

		orgID := uuid.New()
		teamID := uuid.New()
		otherTeamID := uuid.New()

		for _, ban := range []models.BannedVersion{
			{OrganizationID: orgID, DependencyID: dependency.ID, BannedVersion: "1.0.0"},
			{OrganizationID: orgID, TeamID: &teamID, DependencyID: dependency.ID, BannedVersion: "2.0.0"},
			{OrganizationID: orgID, TeamID: &otherTeamID, DependencyID: dependency.ID, BannedVersion: "3.0.0"},
			{OrganizationID: uuid.New(), DependencyID: dependency.ID, BannedVersion: "4.0.0"},
		} {
			require.NoError(t, bannedVersionRepository.Create(ctx, &ban))
		}

		orgOnly, err := bannedVersionRepository.GetBannedVersions(ctx, orgID, nil, []uuid.UUID{dependency.ID})
		require.NoError(t, err)
		assert.Len(t, orgOnly, 1)

		withTeam, err := bannedVersionRepository.GetBannedVersions(ctx, orgID, &teamID, []uuid.UUID{dependency.ID})
		require.NoError(t, err)
		versions := utils.Map(withTeam, func(b models.BannedVersion) string { return b.BannedVersion })
		assert.ElementsMatch(t, []string{"1.0.0", "2.0.0"}, versions)

		require.NoError(t, bannedVersionRepository.Delete(ctx, withTeam[0].ID))
		assert.Error(t, bannedVersionRepository.Delete(ctx, withTeam[0].ID))
	})

	t.Run("should fall back to the default policy", func(t *testing.T) {
		policy, err := policyRepository.GetPolicyThresholds(ctx, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, dtos.SeverityHigh, policy.SeverityThreshold)
		assert.True(t, policy.ExcludeBanned)
	})

	t.Run("should return dependencies without a score first", func(t *testing.T) {
		scored, err := dependencyRepository.PutIfAbsent(ctx, "scored-pkg")
		require.NoError(t, err)
		scored.ApplyScore(dtos.ScoreSignals{}, dtos.ScoreResult{Score: 50}, time.Now())
		require.NoError(t, dependencyRepository.SaveScore(ctx, &scored))

		outdated, err := dependencyRepository.FindOutdatedScores(ctx, time.Now().Add(-time.Hour), 1000)
		require.NoError(t, err)
		assert.False(t, utils.Any(outdated, func(d models.Dependency) bool { return d.ID == scored.ID }))
		assert.NotEmpty(t, outdated)
	})
}
