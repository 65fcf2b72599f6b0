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
)

type PopulationController struct {
	populationService shared.PopulationService
}

func NewPopulationController(populationService shared.PopulationService) *PopulationController {
	return &PopulationController{
		populationService: populationService,
	}
}

// @Summary Score a batch of packages
// @Tags Population
// @Accept json
// @Produce json
// @Param body body dtos.PopulateScoresRequest true "Package names"
// @Success 200 {array} dtos.BatchItemResult
// @Failure 409 {object} object{message=string} "Another population job is running"
// @Router /population/scores/ [post]
func (c *PopulationController) PopulateScores(ctx shared.Context) error {
	var req dtos.PopulateScoresRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	results, err := c.populationService.PopulateScores(ctx.Request().Context(), req.Names)
	if err != nil {
		return toHTTPError(ctx, err, "could not populate scores")
	}
	return ctx.JSON(200, results)
}

// @Summary Resolve the edges of versions which were never resolved
// @Tags Population
// @Accept json
// @Produce json
// @Param body body dtos.BackfillEdgesRequest true "Maximum number of versions, 0 for all"
// @Success 200 {array} dtos.BatchItemResult
// @Failure 409 {object} object{message=string} "Another population job is running"
// @Router /population/edges/ [post]
func (c *PopulationController) BackfillEdges(ctx shared.Context) error {
	var req dtos.BackfillEdgesRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	results, err := c.populationService.BackfillEdges(ctx.Request().Context(), req.Limit)
	if err != nil {
		return toHTTPError(ctx, err, "could not backfill edges")
	}
	return ctx.JSON(200, results)
}
