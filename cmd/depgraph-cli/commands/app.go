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

package commands

import (
	"context"

	"github.com/l3montree-dev/depgraph/cache"
	"github.com/l3montree-dev/depgraph/daemons"
	"github.com/l3montree-dev/depgraph/database"
	"github.com/l3montree-dev/depgraph/database/repositories"
	"github.com/l3montree-dev/depgraph/services"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/l3montree-dev/depgraph/vulndb"
	"go.uber.org/fx"
)

// withApp starts the engine without the http server and the periodic daemons,
// fills targets (pointers to the wanted components) and calls fn.
func withApp(ctx context.Context, fn func() error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(shared.GetEngineConfigFromEnv),
		database.Module,
		repositories.Module,
		cache.Module,
		vulndb.Module,
		services.ServiceModule,
		daemons.Module,
		fx.Populate(targets...),
	)
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer app.Stop(context.Background()) // nolint: errcheck

	return fn()
}
