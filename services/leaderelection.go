package services

import (
	"context"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/monitoring"
	"github.com/l3montree-dev/depgraph/shared"
)

const leaderElectionKey = "leaderElection"

// a leader which did not ping for this long is considered dead
const leaderTimeout = 360 * time.Second

type leaderElectionConfig struct {
	LeaderID string `json:"leaderId"`
	LastPing int64  `json:"lastPing"`
}

type databaseLeaderElector struct {
	leaderElectorID string
	configService   shared.ConfigService
	isLeader        atomic.Bool // this variable gets updated by a daemon goroutine. Usage of atomic is required.
	now             func() time.Time
}

var _ shared.LeaderElector = (*databaseLeaderElector)(nil)

func NewDatabaseLeaderElector(configService shared.ConfigService) *databaseLeaderElector {
	return &databaseLeaderElector{
		configService: configService,
		// generate a random ID for this leader elector
		leaderElectorID: uuid.New().String(),
		now:             time.Now,
	}
}

func randomNumberBetween(min, max int) int {
	return rand.Intn(max-min) + min // #nosec
}

// Run checks the leadership until ctx is done. The interval is randomized so
// that instances started at the same time do not race each other.
func (e *databaseLeaderElector) Run(ctx context.Context) {
	for {
		e.refresh()

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(randomNumberBetween(60, 359)) * time.Second):
		}
	}
}

func (e *databaseLeaderElector) refresh() {
	isLeader, err := e.checkIfLeader()
	if err != nil {
		slog.Error("could not check if leader", "err", err)
	}
	e.isLeader.Store(isLeader)
}

func (e *databaseLeaderElector) IsLeader() bool {
	return e.isLeader.Load()
}

// IfLeader runs fn only on the leading instance. Errors are reported, never
// returned, since nobody waits for them.
func (e *databaseLeaderElector) IfLeader(ctx context.Context, fn func() error) {
	if !e.IsLeader() || ctx.Err() != nil {
		return
	}
	if err := fn(); err != nil {
		monitoring.Alert("leader task failed", err)
	}
}

func (e *databaseLeaderElector) ping() error {
	return e.configService.SetJSONConfig(leaderElectionKey, leaderElectionConfig{
		LeaderID: e.leaderElectorID,
		LastPing: e.now().Unix(),
	})
}

func (e *databaseLeaderElector) checkIfLeader() (bool, error) {
	var config leaderElectionConfig

	err := e.configService.GetJSONConfig(leaderElectionKey, &config)
	if err != nil {
		slog.Info("could not get leader election config", "err", err)
		// there is no leader yet - overwrite it.
		return true, e.ping()
	}

	if config.LeaderID == e.leaderElectorID {
		return true, e.ping()
	}

	if e.now().Unix()-config.LastPing > int64(leaderTimeout.Seconds()) {
		// probably the leader died - overwrite it.
		return true, e.ping()
	}

	return false, nil
}
