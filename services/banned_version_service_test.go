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
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBannedVersionService(t *testing.T) {
	ctx := context.Background()
	dependencyID := uuid.New()

	t.Run("should invalidate after creating a ban", func(t *testing.T) {
		repository := mocks.NewBannedVersionRepository(t)
		invalidation := mocks.NewCacheInvalidationService(t)
		service := NewBannedVersionService(repository, invalidation)

		repository.On("Create", mock.Anything, mock.AnythingOfType("*models.BannedVersion")).Run(func(args mock.Arguments) {
			args.Get(1).(*models.BannedVersion).ID = uuid.New()
		}).Return(nil)
		invalidation.On("InvalidateForBan", mock.Anything, dependencyID).Return()

		ban, err := service.Ban(ctx, models.BannedVersion{OrganizationID: uuid.New(), DependencyID: dependencyID, BannedVersion: "^1.1.0"})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, ban.ID)
	})

	t.Run("should not invalidate if the ban could not be stored", func(t *testing.T) {
		repository := mocks.NewBannedVersionRepository(t)
		service := NewBannedVersionService(repository, mocks.NewCacheInvalidationService(t))

		repository.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

		_, err := service.Ban(ctx, models.BannedVersion{DependencyID: dependencyID, BannedVersion: "1.1.0"})
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("should invalidate the dependency of a removed ban", func(t *testing.T) {
		repository := mocks.NewBannedVersionRepository(t)
		invalidation := mocks.NewCacheInvalidationService(t)
		service := NewBannedVersionService(repository, invalidation)
		id := uuid.New()

		repository.On("Read", mock.Anything, id).Return(models.BannedVersion{Model: models.Model{ID: id}, DependencyID: dependencyID}, nil)
		repository.On("Delete", mock.Anything, id).Return(nil)
		invalidation.On("InvalidateForBan", mock.Anything, dependencyID).Return()

		require.NoError(t, service.Unban(ctx, id))
	})
}
