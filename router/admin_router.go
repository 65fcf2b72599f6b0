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

// AdminRouter holds the write endpoints used by operators and the policy
// workflow.
type AdminRouter struct {
	*echo.Group
}

func NewAdminRouter(
	apiV1Router APIV1Router,
	populationController *controllers.PopulationController,
	bannedVersionController *controllers.BannedVersionController,
) AdminRouter {
	populationRouter := apiV1Router.Group.Group("/population")
	populationRouter.POST("/scores/", populationController.PopulateScores)
	populationRouter.POST("/edges/", populationController.BackfillEdges)

	apiV1Router.POST("/banned-versions/", bannedVersionController.Create)
	apiV1Router.DELETE("/banned-versions/:id/", bannedVersionController.Delete)

	return AdminRouter{
		Group: populationRouter,
	}
}
