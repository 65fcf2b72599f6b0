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
	"log/slog"
	"os"
	"strconv"
	"time"
)

// PoolConfig is shared by the gorm connection and the pgx pool which backs
// the bulk edge inserts and the cache invalidation broker.
type PoolConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string

	MaxOpenConns    int32
	MinConns        int32
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envInt32 ignores values below floor. A bad value is logged and the fallback is used.
func envInt32(key string, fallback, floor int32) int32 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || int32(val) < floor {
		slog.Warn("ignoring invalid pool setting", "key", key, "value", raw)
		return fallback
	}
	return int32(val)
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	val, err := time.ParseDuration(raw)
	if err != nil || val <= 0 {
		slog.Warn("ignoring invalid pool setting", "key", key, "value", raw)
		return fallback
	}
	return val
}

// GetPoolConfigFromEnv reads the POSTGRES_* connection settings and the
// DB_MAX_OPEN_CONNS, DB_MIN_CONNS, DB_CONN_MAX_LIFETIME and
// DB_CONN_MAX_IDLE_TIME pool settings.
func GetPoolConfigFromEnv() PoolConfig {
	return PoolConfig{
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		Host:     envOr("POSTGRES_HOST", "localhost"),
		Port:     envOr("POSTGRES_PORT", "5432"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  envOr("POSTGRES_SSLMODE", "disable"),

		MaxOpenConns:    envInt32("DB_MAX_OPEN_CONNS", 25, 1),
		MinConns:        envInt32("DB_MIN_CONNS", 5, 0),
		ConnMaxLifetime: envDuration("DB_CONN_MAX_LIFETIME", 4*time.Hour),
		ConnMaxIdleTime: envDuration("DB_CONN_MAX_IDLE_TIME", 15*time.Minute),
	}
}
