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

package repositories

import (
	"github.com/l3montree-dev/depgraph/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewDependencyRepository, fx.As(new(shared.DependencyRepository)))),
	fx.Provide(fx.Annotate(NewDependencyVersionRepository, fx.As(new(shared.DependencyVersionRepository)))),
	fx.Provide(fx.Annotate(NewDependencyVersionEdgeRepository, fx.As(new(shared.DependencyVersionEdgeRepository)))),
	fx.Provide(fx.Annotate(NewVulnerabilityRepository, fx.As(new(shared.VulnerabilityRepository)))),
	fx.Provide(fx.Annotate(NewProjectRepository, fx.As(new(shared.ProjectRepository)))),
	fx.Provide(fx.Annotate(NewProjectDependencyRepository, fx.As(new(shared.ProjectDependencyRepository)))),
	fx.Provide(fx.Annotate(NewProjectPolicyRepository, fx.As(new(shared.ProjectPolicyRepository)))),
	fx.Provide(fx.Annotate(NewBannedVersionRepository, fx.As(new(shared.BannedVersionRepository)))),
	fx.Provide(fx.Annotate(NewWatchlistRepository, fx.As(new(shared.WatchlistRepository)))),
	fx.Provide(fx.Annotate(NewConfigRepository, fx.As(new(shared.ConfigRepository)))),
)
