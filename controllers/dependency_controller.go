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
	"github.com/l3montree-dev/depgraph/shared"
)

type DependencyController struct {
	dependencyService shared.DependencyService
	scoreService      shared.ScoreService
}

func NewDependencyController(dependencyService shared.DependencyService, scoreService shared.ScoreService) *DependencyController {
	return &DependencyController{
		dependencyService: dependencyService,
		scoreService:      scoreService,
	}
}

// @Summary List the dependencies of a project
// @Description Every project dependency with score, licenses, vulnerability counts, deprecation and ban state
// @Tags Dependencies
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {array} dtos.EnrichedDependency
// @Failure 400 {object} object{message=string} "Invalid project id"
// @Failure 404 {object} object{message=string} "Project not found"
// @Router /projects/{projectID}/dependencies/ [get]
func (c *DependencyController) ListEnriched(ctx shared.Context) error {
	projectID, err := uuidParam(ctx, "projectID")
	if err != nil {
		return err
	}

	enriched, err := c.dependencyService.GetEnrichedDependencies(ctx.Request().Context(), projectID)
	if err != nil {
		return toHTTPError(ctx, err, "could not load dependencies")
	}
	return ctx.JSON(200, enriched)
}

// @Summary Get the reputation score of a dependency
// @Tags Dependencies
// @Produce json
// @Param dependencyID path string true "Dependency ID"
// @Success 200 {object} dtos.ScoreResponse
// @Router /dependencies/{dependencyID}/score/ [get]
func (c *DependencyController) Score(ctx shared.Context) error {
	dependencyID, err := uuidParam(ctx, "dependencyID")
	if err != nil {
		return err
	}

	score, err := c.scoreService.GetScore(ctx.Request().Context(), dependencyID)
	if err != nil {
		return toHTTPError(ctx, err, "could not load score")
	}
	return ctx.JSON(200, score)
}
