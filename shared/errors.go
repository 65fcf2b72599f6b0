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

import "errors"

// ErrPackageNotFound is returned by the registry client whenever a package
// reference cannot be resolved. This includes timeouts and transient
// errors. Callers skip the reference.
var ErrPackageNotFound = errors.New("package not found")

// ErrPopulationInFlight is returned if a population job is already running in
// this process. The caller may retry later.
var ErrPopulationInFlight = errors.New("population job already running")

// ErrUnresolvedProjectDependency is returned for project dependencies the
// extraction worker could not map to a concrete version.
var ErrUnresolvedProjectDependency = errors.New("project dependency does not reference a version")
