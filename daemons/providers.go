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

package daemons

import (
	"context"
	"time"

	"github.com/l3montree-dev/depgraph/monitoring"
	"github.com/l3montree-dev/depgraph/shared"
	"go.uber.org/fx"
)

const (
	EdgeBackfillDaemon      = "edgeBackfill"
	ScoreRefreshDaemon      = "scoreRefresh"
	VulnerabilitySyncDaemon = "vulnerabilitySync"
)

// Names lists the daemons in the order they run.
var Names = []string{EdgeBackfillDaemon, ScoreRefreshDaemon, VulnerabilitySyncDaemon}

// DaemonRunner encapsulates daemon dependencies and lifecycle
type DaemonRunner struct {
	config                   shared.EngineConfig
	configService            shared.ConfigService
	leaderElector            shared.LeaderElector
	populationService        shared.PopulationService
	scoreService             shared.ScoreService
	vulnerabilitySyncService shared.VulnerabilitySyncService
	dependencyRepository     shared.DependencyRepository
	watchlistRepository      shared.WatchlistRepository

	now func() time.Time
}

var _ shared.DaemonRunner = (*DaemonRunner)(nil)

// NewDaemonRunner creates a new daemon runner with injected dependencies
func NewDaemonRunner(
	config shared.EngineConfig,
	configService shared.ConfigService,
	leaderElector shared.LeaderElector,
	populationService shared.PopulationService,
	scoreService shared.ScoreService,
	vulnerabilitySyncService shared.VulnerabilitySyncService,
	dependencyRepository shared.DependencyRepository,
	watchlistRepository shared.WatchlistRepository,
) *DaemonRunner {
	return &DaemonRunner{
		config:                   config,
		configService:            configService,
		leaderElector:            leaderElector,
		populationService:        populationService,
		scoreService:             scoreService,
		vulnerabilitySyncService: vulnerabilitySyncService,
		dependencyRepository:     dependencyRepository,
		watchlistRepository:      watchlistRepository,
		now:                      time.Now,
	}
}

func (runner *DaemonRunner) daemons() []daemon {
	return []daemon{
		{name: EdgeBackfillDaemon, interval: 30 * time.Minute, duration: monitoring.EdgeBackfillDaemonDuration, run: runner.BackfillEdges},
		{name: ScoreRefreshDaemon, interval: time.Hour, duration: monitoring.ScoreRefreshDaemonDuration, run: runner.RefreshScores},
		{name: VulnerabilitySyncDaemon, interval: 6 * time.Hour, duration: monitoring.VulnerabilitySyncDaemonDuration, run: runner.SyncVulnerabilities},
	}
}

func startDaemonRunner(lc fx.Lifecycle, runner shared.DaemonRunner) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			runner.Start(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

// Module provides the runner. StartModule additionally starts it with the app.
var Module = fx.Module("daemons",
	fx.Provide(fx.Annotate(NewDaemonRunner, fx.As(new(shared.DaemonRunner)))),
)

var StartModule = fx.Invoke(startDaemonRunner)
