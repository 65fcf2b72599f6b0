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
	"github.com/labstack/echo/v4"
)

type SupplyChainController struct {
	supplyChainService          shared.SupplyChainService
	safeVersionService          shared.SafeVersionService
	edgeBuilder                 shared.EdgeBuilder
	dependencyVersionRepository shared.DependencyVersionRepository
}

func NewSupplyChainController(supplyChainService shared.SupplyChainService, safeVersionService shared.SafeVersionService, edgeBuilder shared.EdgeBuilder, dependencyVersionRepository shared.DependencyVersionRepository) *SupplyChainController {
	return &SupplyChainController{
		supplyChainService:          supplyChainService,
		safeVersionService:          safeVersionService,
		edgeBuilder:                 edgeBuilder,
		dependencyVersionRepository: dependencyVersionRepository,
	}
}

// @Summary Get the supply chain of a project dependency
// @Description Direct children, up to five ancestor paths to direct dependencies and the available versions
// @Tags Supply Chain
// @Produce json
// @Param projectDependencyID path string true "Project dependency ID"
// @Success 200 {object} dtos.SupplyChainResponse
// @Failure 404 {object} object{message=string} "Project dependency not found"
// @Failure 422 {object} object{message=string} "Project dependency has no resolved version"
// @Router /project-dependencies/{projectDependencyID}/supply-chain/ [get]
func (c *SupplyChainController) SupplyChain(ctx shared.Context) error {
	projectDependencyID, err := uuidParam(ctx, "projectDependencyID")
	if err != nil {
		return err
	}

	response, err := c.supplyChainService.GetSupplyChain(ctx.Request().Context(), projectDependencyID)
	if err != nil {
		return toHTTPError(ctx, err, "could not load supply chain")
	}
	return ctx.JSON(200, response)
}

// @Summary Get the closest safe version of a project dependency
// @Description Without query parameters the thresholds of the project policy are used
// @Tags Supply Chain
// @Produce json
// @Param projectDependencyID path string true "Project dependency ID"
// @Param severity query string false "Minimum severity which makes a version unsafe (critical, high, medium, low)"
// @Param excludeBanned query bool false "Skip banned versions"
// @Success 200 {object} dtos.LatestSafeVersionResponse
// @Router /project-dependencies/{projectDependencyID}/safe-version/ [get]
func (c *SupplyChainController) SafeVersion(ctx shared.Context) error {
	projectDependencyID, err := uuidParam(ctx, "projectDependencyID")
	if err != nil {
		return err
	}
	severity, excludeBanned, ok, err := shared.GetSafeVersionQuery(ctx)
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	var response dtos.LatestSafeVersionResponse
	if ok {
		response, err = c.safeVersionService.SafeVersion(ctx.Request().Context(), projectDependencyID, severity, excludeBanned)
	} else {
		response, err = c.safeVersionService.SafeVersionWithPolicy(ctx.Request().Context(), projectDependencyID)
	}
	if err != nil {
		return toHTTPError(ctx, err, "could not calculate safe version")
	}
	return ctx.JSON(200, response)
}

// @Summary Resolve the dependencies of a version
// @Tags Supply Chain
// @Produce json
// @Param versionID path string true "Dependency version ID"
// @Success 200 {object} dtos.EdgeCountResponse
// @Router /dependency-versions/{versionID}/edges/ [post]
func (c *SupplyChainController) EnsureEdges(ctx shared.Context) error {
	versionID, err := uuidParam(ctx, "versionID")
	if err != nil {
		return err
	}

	version, err := c.dependencyVersionRepository.Read(ctx.Request().Context(), versionID)
	if err != nil {
		return toHTTPError(ctx, err, "could not load dependency version")
	}

	count, err := c.edgeBuilder.EnsureEdges(ctx.Request().Context(), version.ID, version.Dependency.Name, version.Version)
	if err != nil {
		return toHTTPError(ctx, err, "could not resolve edges")
	}
	return ctx.JSON(200, dtos.EdgeCountResponse{EdgeCount: count})
}
