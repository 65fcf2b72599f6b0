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

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/cache"
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/mocks"
	"github.com/l3montree-dev/depgraph/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetEnrichedDependencies(t *testing.T) {
	ctx := context.Background()

	t.Run("should count affecting vulnerabilities and mark banned versions", func(t *testing.T) {
		projects := mocks.NewProjectRepository(t)
		projectDeps := mocks.NewProjectDependencyRepository(t)
		vulnerabilities := mocks.NewVulnerabilityRepository(t)
		bans := mocks.NewBannedVersionRepository(t)
		c := mocks.NewCache(t)
		service := NewDependencyService(projects, projectDeps, vulnerabilities, bans, c)

		project := models.Project{ID: uuid.New(), OrganizationID: uuid.New()}
		lodash := testProjectDependency("lodash", "4.17.20")
		lodash.ProjectID = project.ID
		lodash.Dependency.Score = utils.Ptr(93)
		deprecated := "use something else"
		lodash.DependencyVersion.Deprecation = &deprecated
		unresolved := testProjectDependency("local-package", "1.0.0")
		unresolved.ProjectID = project.ID
		unresolved.DependencyVersion = nil
		unresolved.DependencyVersionID = nil

		c.On("Get", mock.Anything, cache.EnrichedKey(project.ID), mock.Anything).Return(false)
		c.On("Generation", mock.Anything).Return(uint64(0))
		projects.On("Read", mock.Anything, project.ID).Return(project, nil)
		projectDeps.On("GetByProjectID", mock.Anything, project.ID).Return([]models.ProjectDependency{lodash, unresolved}, nil)
		vulnerabilities.On("GetByDependencyIDs", mock.Anything, []uuid.UUID{lodash.DependencyID, unresolved.DependencyID}).Return([]models.Vulnerability{
			testVulnerability(lodash.DependencyID, "GHSA-1", dtos.SeverityCritical, "<4.17.21", "4.17.21"),
			testVulnerability(lodash.DependencyID, "GHSA-2", dtos.SeverityHigh, "<4.17.19", "4.17.19"),
			testVulnerability(lodash.DependencyID, "GHSA-3", dtos.SeverityLow, "<4.17.21", "4.17.21"),
		}, nil)
		bans.On("GetBannedVersions", mock.Anything, project.OrganizationID, (*uuid.UUID)(nil), mock.Anything).Return([]models.BannedVersion{
			{DependencyID: lodash.DependencyID, BannedVersion: "<4.17.21"},
		}, nil)
		c.On("Set", mock.Anything, cache.EnrichedKey(project.ID), uint64(0), mock.Anything).Return()

		rows, err := service.GetEnrichedDependencies(ctx, project.ID)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "lodash", rows[0].Name)
		assert.Equal(t, "4.17.20", rows[0].Version)
		assert.Equal(t, dtos.VulnCounts{Critical: 1, Low: 1}, rows[0].VulnCounts)
		assert.True(t, rows[0].IsBanned)
		assert.Equal(t, utils.Ptr(93), rows[0].Score)
		assert.Equal(t, &deprecated, rows[0].Deprecation)

		assert.Equal(t, "local-package", rows[1].Name)
		assert.Empty(t, rows[1].Version)
		assert.False(t, rows[1].IsBanned)
		assert.Equal(t, dtos.VulnCounts{}, rows[1].VulnCounts)
	})

	t.Run("should fail if the project does not exist", func(t *testing.T) {
		projects := mocks.NewProjectRepository(t)
		projectDeps := mocks.NewProjectDependencyRepository(t)
		c := mocks.NewCache(t)
		service := NewDependencyService(projects, projectDeps, mocks.NewVulnerabilityRepository(t), mocks.NewBannedVersionRepository(t), c)
		projectID := uuid.New()

		c.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false)
		c.On("Generation", mock.Anything).Return(uint64(0))
		projects.On("Read", mock.Anything, projectID).Return(models.Project{}, assert.AnError)
		projectDeps.On("GetByProjectID", mock.Anything, projectID).Return(nil, nil).Maybe()

		_, err := service.GetEnrichedDependencies(ctx, projectID)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
