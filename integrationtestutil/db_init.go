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

package integrationtestutil

import (
	"context"
	"log"
	"log/slog"
	"testing"

	"github.com/l3montree-dev/depgraph/database"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	dbName     = "depgraph"
	dbUser     = "user"
	dbPassword = "password"
)

// InitDatabaseContainer starts a postgres container and runs all migrations.
// Tests calling it are skipped in short mode.
func InitDatabaseContainer(t *testing.T) (shared.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}

	cfg, terminate := InitSQLDatabaseContainer(t)

	pool, err := database.NewPgxConnPool(cfg)
	if err != nil {
		terminate()
		t.Fatalf("failed to create connection pool: %s", err)
	}

	db, err := database.NewGormDB(pool)
	if err != nil {
		terminate()
		t.Fatalf("failed to connect to database: %s", err)
	}

	if err := database.RunMigrationsWithDB(db); err != nil {
		terminate()
		t.Fatalf("failed to run migrations: %s", err)
	}

	return db, func() {
		pool.Close()
		terminate()
	}
}

// InitSQLDatabaseContainer starts a postgres container and returns its pool
// config instead of a connection.
func InitSQLDatabaseContainer(t *testing.T) (database.PoolConfig, func()) {
	t.Helper()
	ctx := context.Background()

	postgresC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)

	terminate := func() {
		if err := testcontainers.TerminateContainer(postgresC); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	if err != nil {
		slog.Info("failed to start postgres container", "error", err)
		t.Fatalf("failed to start postgres container: %s", err)
	}

	host, err := postgresC.Host(ctx)
	if err != nil {
		terminate()
		t.Fatalf("failed to get container host: %s", err)
	}
	port, err := postgresC.MappedPort(ctx, "5432")
	if err != nil {
		terminate()
		t.Fatalf("failed to get container port: %s", err)
	}

	return database.PoolConfig{
		User:         dbUser,
		Password:     dbPassword,
		Host:         host,
		Port:         port.Port(),
		DBName:       dbName,
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MinConns:     1,
	}, terminate
}
