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
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// population jobs usually finish within a minute
const populationRetryAfter = 60

// toHTTPError maps service errors to responses. Everything unknown becomes a
// 500 with the error attached as internal.
func toHTTPError(ctx shared.Context, err error, message string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(404, fmt.Sprintf("%s: not found", message)).WithInternal(err)
	case errors.Is(err, shared.ErrUnresolvedProjectDependency):
		return echo.NewHTTPError(422, fmt.Sprintf("%s: %s", message, shared.ErrUnresolvedProjectDependency.Error())).WithInternal(err)
	case errors.Is(err, shared.ErrPopulationInFlight):
		ctx.Response().Header().Set("Retry-After", strconv.Itoa(populationRetryAfter))
		return echo.NewHTTPError(409, shared.ErrPopulationInFlight.Error()).WithInternal(err)
	}
	return echo.NewHTTPError(500, message).WithInternal(err)
}

func bindAndValidate(ctx shared.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}
	return nil
}

func uuidParam(ctx shared.Context, param string) (uuid.UUID, error) {
	id, err := shared.GetUUIDParam(ctx, param)
	if err != nil {
		return id, echo.NewHTTPError(400, err.Error())
	}
	return id, nil
}
