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

package database

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/depgraph/shared"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func newPool(lc fx.Lifecycle, cfg PoolConfig) (*pgxpool.Pool, error) {
	pool, err := NewPgxConnPool(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(pool.Close))
	return pool, nil
}

func newBroker(lc fx.Lifecycle, pool *pgxpool.Pool) *PostgreSQLBroker {
	broker := NewPostgreSQLBroker(pool)
	lc.Append(fx.StopHook(broker.Close))
	return broker
}

func runMigrations(lc fx.Lifecycle, db *gorm.DB) {
	if os.Getenv("DISABLE_AUTOMIGRATE") == "true" {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
		return
	}
	lc.Append(fx.StartHook(func(context.Context) error {
		slog.Info("running database migrations...")
		return RunMigrationsWithDB(db)
	}))
}

// Module provides the connection pool, the gorm instance and the pubsub broker.
// Pending migrations are applied on start.
var Module = fx.Module("database",
	fx.Provide(GetPoolConfigFromEnv),
	fx.Provide(newPool),
	fx.Provide(NewGormDB),
	fx.Provide(newBroker),
	fx.Provide(func(b *PostgreSQLBroker) shared.PubSubBroker { return b }),
	fx.Invoke(runMigrations),
)
