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
	"fmt"
	"log/slog"

	"github.com/l3montree-dev/depgraph/database"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

func NewMigrateCommand() *cobra.Command {
	migrate := cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database schema",
	}

	migrate.AddCommand(
		newMigrateUpCommand(),
		newMigrateDownCommand(),
		newMigrateVersionCommand(),
	)
	return &migrate
}

func openDatabase() (*gorm.DB, func(), error) {
	pool, err := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	if err != nil {
		return nil, nil, err
	}
	db, err := database.NewGormDB(pool)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	return db, pool.Close, nil
}

func newMigrateUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := openDatabase()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return err
			}
			defer closeDB()

			return database.RunMigrationsWithDB(db)
		},
	}
}

func newMigrateDownCommand() *cobra.Command {
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the given number of migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := viper.GetInt("steps")
			if steps <= 0 {
				return fmt.Errorf("steps must be positive")
			}

			db, closeDB, err := openDatabase()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return err
			}
			defer closeDB()

			return database.RollbackMigrationsWithDB(db, steps)
		},
	}

	down.Flags().Int("steps", 1, "number of migrations to roll back")
	return down
}

func newMigrateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current migration version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := openDatabase()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return err
			}
			defer closeDB()

			version, dirty, err := database.GetMigrationVersionWithDB(db)
			if err != nil {
				return err
			}
			fmt.Printf("version: %d (dirty: %t)\n", version, dirty)
			return nil
		},
	}
}
