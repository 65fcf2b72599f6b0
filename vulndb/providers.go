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

package vulndb

import (
	"context"

	"github.com/l3montree-dev/depgraph/shared"
	"go.uber.org/fx"
)

func startMaliciousPackageChecker(lc fx.Lifecycle, checker *MaliciousPackageChecker) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go checker.Start(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

var Module = fx.Module("vulndb",
	fx.Provide(NewRegistryRateLimiter),
	fx.Provide(fx.Annotate(NewNpmRegistryClient, fx.As(new(shared.RegistryClient)))),
	fx.Provide(fx.Annotate(NewOpenSourceInsightService, fx.As(new(shared.OpenSourceInsightService)))),
	fx.Provide(fx.Annotate(NewOSVService, fx.As(new(shared.OSVService)))),
	fx.Provide(NewMaliciousPackageChecker),
	fx.Provide(func(c *MaliciousPackageChecker) shared.MaliciousPackageChecker { return c }),
	fx.Invoke(startMaliciousPackageChecker),
)
