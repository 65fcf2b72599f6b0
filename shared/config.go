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

package shared

import (
	"os"
	"strconv"
	"time"
)

// EngineConfig holds the tuning knobs of the resolution engine.
type EngineConfig struct {
	RegistryURL          string
	DownloadsURL         string
	DepsDevURL           string
	OSVURL               string
	RegistryMinInterval  time.Duration
	RegistryTimeout      time.Duration
	RegistryMaxRetries   int
	PackumentCacheTTL    time.Duration
	SafeVersionMaxCand   int
	SubgraphDepth        int
	SubgraphMaxNodes     int
	PopulationConcurrent int
	ScoreMaxAge          time.Duration
}

// GetEngineConfigFromEnv reads the engine configuration from environment variables
// Falls back to sensible defaults if not specified
//
// Environment variables:
// - REGISTRY_URL: npm registry base url (default: https://registry.npmjs.org)
// - REGISTRY_MIN_INTERVAL: minimum time between two registry calls, process wide (default: 600ms)
// - REGISTRY_TIMEOUT: timeout of a single registry call (default: 10s)
// - REGISTRY_MAX_RETRIES: retries on 429 responses (default: 3)
// - SAFE_VERSION_MAX_CANDIDATES: candidates evaluated per safe version request (default: 50)
// - SAFE_VERSION_SUBGRAPH_DEPTH: depth of the transitive check of a candidate (default: 2)
// - SAFE_VERSION_SUBGRAPH_MAX_NODES: node limit of the transitive check (default: 150)
// - POPULATION_CONCURRENCY: parallel items of the population job (default: 8)
// - SCORE_MAX_AGE: scores older than this are refreshed by the daemon (default: 24h)
func GetEngineConfigFromEnv() EngineConfig {
	cfg := EngineConfig{
		RegistryURL:          "https://registry.npmjs.org",
		DownloadsURL:         "https://api.npmjs.org/downloads/point/last-week",
		DepsDevURL:           "https://api.deps.dev/v3",
		OSVURL:               "https://api.osv.dev/v1",
		RegistryMinInterval:  600 * time.Millisecond,
		RegistryTimeout:      10 * time.Second,
		RegistryMaxRetries:   3,
		PackumentCacheTTL:    5 * time.Minute,
		SafeVersionMaxCand:   50,
		SubgraphDepth:        2,
		SubgraphMaxNodes:     150,
		PopulationConcurrent: 8,
		ScoreMaxAge:          24 * time.Hour,
	}

	stringFromEnv(&cfg.RegistryURL, "REGISTRY_URL")
	stringFromEnv(&cfg.DownloadsURL, "REGISTRY_DOWNLOADS_URL")
	stringFromEnv(&cfg.DepsDevURL, "DEPS_DEV_URL")
	stringFromEnv(&cfg.OSVURL, "OSV_URL")
	durationFromEnv(&cfg.RegistryMinInterval, "REGISTRY_MIN_INTERVAL")
	durationFromEnv(&cfg.RegistryTimeout, "REGISTRY_TIMEOUT")
	durationFromEnv(&cfg.PackumentCacheTTL, "REGISTRY_PACKUMENT_CACHE_TTL")
	durationFromEnv(&cfg.ScoreMaxAge, "SCORE_MAX_AGE")
	intFromEnv(&cfg.RegistryMaxRetries, "REGISTRY_MAX_RETRIES")
	intFromEnv(&cfg.SafeVersionMaxCand, "SAFE_VERSION_MAX_CANDIDATES")
	intFromEnv(&cfg.SubgraphDepth, "SAFE_VERSION_SUBGRAPH_DEPTH")
	intFromEnv(&cfg.SubgraphMaxNodes, "SAFE_VERSION_SUBGRAPH_MAX_NODES")
	intFromEnv(&cfg.PopulationConcurrent, "POPULATION_CONCURRENCY")

	return cfg
}

func stringFromEnv(target *string, key string) {
	if val := os.Getenv(key); val != "" {
		*target = val
	}
}

func durationFromEnv(target *time.Duration, key string) {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil && d >= 0 {
			*target = d
		}
	}
}

func intFromEnv(target *int, key string) {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil && i >= 0 {
			*target = i
		}
	}
}
