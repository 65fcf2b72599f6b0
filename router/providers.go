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
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/l3montree-dev/depgraph/middlewares"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

func getServerAddress() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

func newServer(lc fx.Lifecycle) *echo.Echo {
	e := middlewares.Server()
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			address := getServerAddress()
			go func() {
				slog.Info("starting server", "address", address)
				if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("server stopped", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return e.Shutdown(ctx)
		},
	})
	return e
}

var RouterModule = fx.Options(
	fx.Provide(newServer),
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewDependencyRouter),
	fx.Provide(NewAdminRouter),
	// routers register their routes on construction
	fx.Invoke(func(DependencyRouter, AdminRouter) {}),
)
