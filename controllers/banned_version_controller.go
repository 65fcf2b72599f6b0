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

package controllers

import (
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/l3montree-dev/depgraph/transformer"
)

// BannedVersionController is called by the policy workflow. Permission checks
// happen before the request reaches this service.
type BannedVersionController struct {
	bannedVersionService shared.BannedVersionService
}

func NewBannedVersionController(bannedVersionService shared.BannedVersionService) *BannedVersionController {
	return &BannedVersionController{
		bannedVersionService: bannedVersionService,
	}
}

func (c *BannedVersionController) Create(ctx shared.Context) error {
	var req dtos.BanVersionRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	ban, err := c.bannedVersionService.Ban(ctx.Request().Context(), transformer.BanVersionRequestToModel(req))
	if err != nil {
		return toHTTPError(ctx, err, "could not ban version")
	}
	return ctx.JSON(201, ban)
}

func (c *BannedVersionController) Delete(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.bannedVersionService.Unban(ctx.Request().Context(), id); err != nil {
		return toHTTPError(ctx, err, "could not remove ban")
	}
	return ctx.NoContent(200)
}
