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
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/mocks"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/l3montree-dev/depgraph/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type daemonMocks struct {
	configService            *mocks.ConfigService
	leaderElector            *mocks.LeaderElector
	populationService        *mocks.PopulationService
	scoreService             *mocks.ScoreService
	vulnerabilitySyncService *mocks.VulnerabilitySyncService
	dependencyRepository     *mocks.DependencyRepository
	watchlistRepository      *mocks.WatchlistRepository
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestDaemonRunner(t *testing.T) (*DaemonRunner, daemonMocks) {
	m := daemonMocks{
		configService:            mocks.NewConfigService(t),
		leaderElector:            mocks.NewLeaderElector(t),
		populationService:        mocks.NewPopulationService(t),
		scoreService:             mocks.NewScoreService(t),
		vulnerabilitySyncService: mocks.NewVulnerabilitySyncService(t),
		dependencyRepository:     mocks.NewDependencyRepository(t),
		watchlistRepository:      mocks.NewWatchlistRepository(t),
	}
	runner := NewDaemonRunner(
		shared.EngineConfig{PopulationConcurrent: 2, ScoreMaxAge: 24 * time.Hour},
		m.configService,
		m.leaderElector,
		m.populationService,
		m.scoreService,
		m.vulnerabilitySyncService,
		m.dependencyRepository,
		m.watchlistRepository,
	)
	runner.now = func() time.Time { return testNow }
	return runner, m
}

func lastRunAt(at time.Time) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		b, _ := json.Marshal(map[string]time.Time{"time": at})
		_ = json.Unmarshal(b, args.Get(1))
	}
}

func testDependency(name string) models.Dependency {
	return models.Dependency{Model: models.Model{ID: uuid.New()}, Name: name}
}

func TestRunDaemons(t *testing.T) {
	t.Run("should return an error for an unknown daemon", func(t *testing.T) {
		runner, _ := newTestDaemonRunner(t)
		err := runner.RunDaemons(context.Background(), "doesNotExist")
		assert.ErrorContains(t, err, "unknown daemon")
	})

	t.Run("should run the named daemon and mark it as run", func(t *testing.T) {
		runner, m := newTestDaemonRunner(t)
		m.populationService.On("BackfillEdges", mock.Anything, edgeBackfillLimit).Return([]dtos.BatchItemResult{
			{Name: "express@4.18.2", Success: true},
			{Name: "left-pad@1.3.0", Success: false, Error: utils.Ptr("not found")},
		}, nil)
		m.configService.On("SetJSONConfig", "daemons.edgeBackfill", mock.Anything).Return(nil)

		assert.NoError(t, runner.RunDaemons(context.Background(), EdgeBackfillDaemon))
	})

	t.Run("should not mark a failed daemon as run", func(t *testing.T) {
		runner, m := newTestDaemonRunner(t)
		m.populationService.On("BackfillEdges", mock.Anything, edgeBackfillLimit).Return(nil, fmt.Errorf("db down"))

		err := runner.RunDaemons(context.Background(), EdgeBackfillDaemon)
		assert.ErrorContains(t, err, "db down")
		m.configService.AssertNotCalled(t, "SetJSONConfig", mock.Anything, mock.Anything)
	})
}

func TestBackfillEdges(t *testing.T) {
	t.Run("should skip the run if a population job is in flight", func(t *testing.T) {
		runner, m := newTestDaemonRunner(t)
		m.populationService.On("BackfillEdges", mock.Anything, edgeBackfillLimit).Return(nil, shared.ErrPopulationInFlight)

		assert.NoError(t, runner.BackfillEdges(context.Background()))
	})
}

func TestRefreshScores(t *testing.T) {
	t.Run("should refresh watched dependencies and outdated ones exactly once", func(t *testing.T) {
		runner, m := newTestDaemonRunner(t)
		express := testDependency("express")
		lodash := testDependency("lodash")

		m.watchlistRepository.On("GetWatchedDependencies", mock.Anything).Return([]models.Dependency{express}, nil)
		m.dependencyRepository.On("FindOutdatedScores", mock.Anything, testNow.Add(-24*time.Hour), scoreRefreshLimit).Return([]models.Dependency{express, lodash}, nil)
		m.scoreService.On("RefreshScore", mock.Anything, express).Return(express, nil).Once()
		// a failing item does not fail the run
		m.scoreService.On("RefreshScore", mock.Anything, lodash).Return(models.Dependency{}, fmt.Errorf("registry down")).Once()

		assert.NoError(t, runner.RefreshScores(context.Background()))
	})

	t.Run("should fail if the watchlist cannot be read", func(t *testing.T) {
		runner, m := newTestDaemonRunner(t)
		m.watchlistRepository.On("GetWatchedDependencies", mock.Anything).Return(nil, fmt.Errorf("db down"))

		assert.ErrorContains(t, runner.RefreshScores(context.Background()), "db down")
	})
}

func TestSyncVulnerabilities(t *testing.T) {
	t.Run("should sync every candidate and tolerate failing items", func(t *testing.T) {
		runner, m := newTestDaemonRunner(t)
		qs := testDependency("qs")
		minimist := testDependency("minimist")

		m.watchlistRepository.On("GetWatchedDependencies", mock.Anything).Return(nil, nil)
		m.dependencyRepository.On("FindOutdatedScores", mock.Anything, mock.Anything, vulnerabilitySyncLimit).Return([]models.Dependency{qs, minimist}, nil)
		m.vulnerabilitySyncService.On("SyncDependency", mock.Anything, qs).Return(3, nil).Once()
		m.vulnerabilitySyncService.On("SyncDependency", mock.Anything, minimist).Return(0, fmt.Errorf("osv down")).Once()

		assert.NoError(t, runner.SyncVulnerabilities(context.Background()))
	})
}

func TestRunDueDaemons(t *testing.T) {
	t.Run("should only run daemons whose interval elapsed", func(t *testing.T) {
		runner, m := newTestDaemonRunner(t)

		// edges ran 10 minutes ago, scores never ran, vulnerabilities ran a day ago
		m.configService.On("GetJSONConfig", "daemons.edgeBackfill", mock.Anything).Run(lastRunAt(testNow.Add(-10*time.Minute))).Return(nil)
		m.configService.On("GetJSONConfig", "daemons.scoreRefresh", mock.Anything).Return(gorm.ErrRecordNotFound)
		m.configService.On("GetJSONConfig", "daemons.vulnerabilitySync", mock.Anything).Run(lastRunAt(testNow.Add(-24*time.Hour))).Return(nil)

		m.watchlistRepository.On("GetWatchedDependencies", mock.Anything).Return(nil, nil)
		m.dependencyRepository.On("FindOutdatedScores", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

		m.configService.On("SetJSONConfig", "daemons.scoreRefresh", mock.Anything).Return(nil).Once()
		m.configService.On("SetJSONConfig", "daemons.vulnerabilitySync", mock.Anything).Return(nil).Once()

		assert.NoError(t, runner.runDueDaemons(context.Background()))
		m.populationService.AssertNotCalled(t, "BackfillEdges", mock.Anything, mock.Anything)
	})

	t.Run("should skip a daemon if its last run cannot be read", func(t *testing.T) {
		runner, m := newTestDaemonRunner(t)
		m.configService.On("GetJSONConfig", mock.Anything, mock.Anything).Return(fmt.Errorf("db down"))

		assert.NoError(t, runner.runDueDaemons(context.Background()))
	})
}

func TestStart(t *testing.T) {
	t.Run("should do nothing on a follower", func(t *testing.T) {
		runner, m := newTestDaemonRunner(t)
		ctx, cancel := context.WithCancel(context.Background())

		called := make(chan struct{})
		// the mocked elector never calls fn, like a follower
		m.leaderElector.On("IfLeader", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
			close(called)
			cancel()
		}).Return().Once()

		runner.Start(ctx)
		<-called
	})
}

func TestReset(t *testing.T) {
	t.Run("should remove the last run of every named daemon", func(t *testing.T) {
		configService := mocks.NewConfigService(t)
		configService.On("RemoveConfig", "daemons.scoreRefresh").Return(nil)
		configService.On("RemoveConfig", "daemons.vulnerabilitySync").Return(nil)

		assert.NoError(t, Reset(configService, ScoreRefreshDaemon, VulnerabilitySyncDaemon))
	})

	t.Run("should reject unknown daemons before removing anything", func(t *testing.T) {
		configService := mocks.NewConfigService(t)

		err := Reset(configService, ScoreRefreshDaemon, "doesNotExist")
		assert.ErrorContains(t, err, "unknown daemon: doesNotExist")
		configService.AssertNotCalled(t, "RemoveConfig", mock.Anything)
	})
}
