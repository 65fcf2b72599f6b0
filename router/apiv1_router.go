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
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/depgraph/database"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/l3montree-dev/depgraph/utils"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var startedAt = time.Now()

type APIV1Router struct {
	*echo.Group
}

// pingDatabase returns a short reason if the database is not reachable.
func pingDatabase(ctx context.Context, db shared.DB) *string {
	sqlDB, err := db.DB()
	if err != nil {
		return utils.Ptr("failed to get database instance")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return utils.Ptr("database ping failed")
	}
	return nil
}

func NewAPIV1Router(srv *echo.Echo, db shared.DB, pool *pgxpool.Pool) APIV1Router {
	apiV1Router := srv.Group("/api/v1")

	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		if reason := pingDatabase(ctx.Request().Context(), db); reason != nil {
			return ctx.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unhealthy", "error": *reason})
		}
		return ctx.JSON(http.StatusOK, echo.Map{"status": "healthy"})
	})
	apiV1Router.GET("/info/", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, collectInfo(ctx.Request().Context(), db, pool))
	})

	return APIV1Router{Group: apiV1Router}
}

func collectInfo(ctx context.Context, db shared.DB, pool *pgxpool.Pool) InfoResponse {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	resp := InfoResponse{
		GoVersion: runtime.Version(),
		Uptime:    time.Since(startedAt).Round(time.Second).String(),
		Runtime: RuntimeInfo{
			Goroutines:     runtime.NumGoroutine(),
			HeapAllocBytes: mem.HeapAlloc,
			SysBytes:       mem.Sys,
		},
	}
	resp.Version, resp.Commit = buildInfo()
	resp.Hostname, _ = os.Hostname()

	if reason := pingDatabase(ctx, db); reason != nil {
		resp.Database.Error = reason
		return resp
	}
	resp.Database.Healthy = true

	if pool != nil {
		stats := pool.Stat()
		resp.Database.Pool = &PoolInfo{
			TotalConns:    stats.TotalConns(),
			IdleConns:     stats.IdleConns(),
			AcquiredConns: stats.AcquiredConns(),
			MaxConns:      stats.MaxConns(),
		}
	}

	migration := &MigrationInfo{}
	if ver, dirty, err := database.GetMigrationVersionWithDB(db); err == nil {
		migration.Version, migration.Dirty = ver, dirty
	} else {
		migration.Error = utils.Ptr(err.Error())
	}
	resp.Database.Migration = migration
	return resp
}

// buildInfo reads the module version and the vcs revision stamped by go build.
func buildInfo() (version, commit string) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, setting := range bi.Settings {
		if setting.Key == "vcs.revision" {
			commit = setting.Value
		}
	}
	return bi.Main.Version, commit
}
