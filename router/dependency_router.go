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

package router

import (
	"github.com/l3montree-dev/depgraph/controllers"
	"github.com/labstack/echo/v4"
)

// DependencyRouter serves the read side of the graph: enriched project
// dependencies, supply chains, safe versions and scores.
type DependencyRouter struct {
	*echo.Group
}

func NewDependencyRouter(
	apiV1Router APIV1Router,
	dependencyController *controllers.DependencyController,
	supplyChainController *controllers.SupplyChainController,
) DependencyRouter {
	apiV1Router.GET("/projects/:projectID/dependencies/", dependencyController.ListEnriched)
	apiV1Router.GET("/dependencies/:dependencyID/score/", dependencyController.Score)

	projectDependencyRouter := apiV1Router.Group.Group("/project-dependencies/:projectDependencyID")
	projectDependencyRouter.GET("/supply-chain/", supplyChainController.SupplyChain)
	projectDependencyRouter.GET("/safe-version/", supplyChainController.SafeVersion)

	apiV1Router.POST("/dependency-versions/:versionID/edges/", supplyChainController.EnsureEdges)

	return DependencyRouter{
		Group: projectDependencyRouter,
	}
}
