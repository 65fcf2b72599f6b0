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

package shared

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/dtos"
)

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		fallback := ctx.Get(param)
		if fallback == nil {
			return ""
		}
		return fallback.(string)
	}
	return SanitizeParam(v)
}

func GetUUIDParam(ctx Context, param string) (uuid.UUID, error) {
	v := GetParam(ctx, param)
	if v == "" {
		return uuid.Nil, fmt.Errorf("missing path parameter %s", param)
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid path parameter %s: %w", param, err)
	}
	return id, nil
}

// GetSafeVersionQuery reads the severity and excludeBanned query parameters.
// ok is false if neither was given and the project policy should be used.
func GetSafeVersionQuery(ctx Context) (severity dtos.Severity, excludeBanned bool, ok bool, err error) {
	severityParam := ctx.QueryParam("severity")
	excludeBannedParam := ctx.QueryParam("excludeBanned")
	if severityParam == "" && excludeBannedParam == "" {
		return "", false, false, nil
	}

	severity = dtos.SeverityHigh
	if severityParam != "" {
		parsed, valid := dtos.ParseSeverity(severityParam)
		if !valid {
			return "", false, false, fmt.Errorf("invalid severity %q", severityParam)
		}
		severity = parsed
	}

	excludeBanned = true
	if excludeBannedParam != "" {
		excludeBanned, err = strconv.ParseBool(excludeBannedParam)
		if err != nil {
			return "", false, false, fmt.Errorf("invalid excludeBanned %q", excludeBannedParam)
		}
	}
	return severity, excludeBanned, true, nil
}
