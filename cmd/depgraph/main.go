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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/depgraph/cache"
	"github.com/l3montree-dev/depgraph/controllers"
	"github.com/l3montree-dev/depgraph/daemons"
	"github.com/l3montree-dev/depgraph/database"
	"github.com/l3montree-dev/depgraph/database/repositories"
	"github.com/l3montree-dev/depgraph/monitoring"
	"github.com/l3montree-dev/depgraph/router"
	"github.com/l3montree-dev/depgraph/services"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/l3montree-dev/depgraph/vulndb"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var release string // Will be filled at build time

//	@title			depgraph API
//	@version		v1
//	@description	npm dependency graph and vulnerability resolution engine

//	@license.name	AGPL-3

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger(shared.ParseLogLevel(os.Getenv("LOG_LEVEL")))

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	shutdownTracing, err := monitoring.InitTracing(context.Background(), "depgraph")
	if err != nil {
		slog.Error("could not initialize tracing", "err", err)
	} else {
		defer shutdownTracing(context.Background()) // nolint: errcheck
	}

	fx.New(
		fx.Provide(shared.GetEngineConfigFromEnv),
		database.Module,
		repositories.Module,
		cache.Module,
		vulndb.Module,
		services.ServiceModule,
		controllers.ControllerModule,
		router.RouterModule,
		daemons.Module,
		daemons.StartModule,

		fx.Invoke(func(server *echo.Echo) {}),
	).Run()
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     release,

		// In debug mode, the debug information is printed to stdout to help you
		// understand what Sentry is doing.
		Debug: environment == "dev",

		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("Failed to init logger", "err", err)
	}
}
