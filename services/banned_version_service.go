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
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/pkg/errors"
)

// BannedVersionService is the write path of the policy workflow. Bans are
// only changed through it so that cached recommendations never outlive them.
type BannedVersionService struct {
	bannedVersionRepository  shared.BannedVersionRepository
	cacheInvalidationService shared.CacheInvalidationService
}

var _ shared.BannedVersionService = (*BannedVersionService)(nil)

func NewBannedVersionService(bannedVersionRepository shared.BannedVersionRepository, cacheInvalidationService shared.CacheInvalidationService) *BannedVersionService {
	return &BannedVersionService{
		bannedVersionRepository:  bannedVersionRepository,
		cacheInvalidationService: cacheInvalidationService,
	}
}

func (s *BannedVersionService) Ban(ctx context.Context, ban models.BannedVersion) (models.BannedVersion, error) {
	if err := s.bannedVersionRepository.Create(ctx, &ban); err != nil {
		return ban, errors.Wrap(err, "could not create banned version")
	}
	s.cacheInvalidationService.InvalidateForBan(ctx, ban.DependencyID)
	return ban, nil
}

func (s *BannedVersionService) Unban(ctx context.Context, id uuid.UUID) error {
	ban, err := s.bannedVersionRepository.Read(ctx, id)
	if err != nil {
		return err
	}
	if err := s.bannedVersionRepository.Delete(ctx, id); err != nil {
		return err
	}
	s.cacheInvalidationService.InvalidateForBan(ctx, ban.DependencyID)
	return nil
}
