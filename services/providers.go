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

package services

import (
	"context"

	"github.com/l3montree-dev/depgraph/shared"
	"go.uber.org/fx"
)

func newLeaderElector(lc fx.Lifecycle, configService shared.ConfigService) shared.LeaderElector {
	elector := NewDatabaseLeaderElector(configService)
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go elector.Run(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return elector
}

// ServiceModule provides all service constructors as their interfaces
var ServiceModule = fx.Options(
	fx.Provide(fx.Annotate(NewConfigService, fx.As(new(shared.ConfigService)))),
	fx.Provide(newLeaderElector),
	fx.Provide(fx.Annotate(NewCacheInvalidationService, fx.As(new(shared.CacheInvalidationService)))),
	fx.Provide(fx.Annotate(NewEdgeBuilder, fx.As(new(shared.EdgeBuilder)))),
	fx.Provide(fx.Annotate(NewScoreService, fx.As(new(shared.ScoreService)))),
	fx.Provide(fx.Annotate(NewSupplyChainService, fx.As(new(shared.SupplyChainService)))),
	fx.Provide(fx.Annotate(NewSafeVersionService, fx.As(new(shared.SafeVersionService)))),
	fx.Provide(fx.Annotate(NewDependencyService, fx.As(new(shared.DependencyService)))),
	fx.Provide(fx.Annotate(NewPopulationService, fx.As(new(shared.PopulationService)))),
	fx.Provide(fx.Annotate(NewVulnerabilitySyncService, fx.As(new(shared.VulnerabilitySyncService)))),
	fx.Provide(fx.Annotate(NewBannedVersionService, fx.As(new(shared.BannedVersionService)))),
)
