package services

import (
	"context"
	"testing"
	"time"

	"github.com/l3montree-dev/depgraph/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestLeaderElector(t *testing.T, now time.Time) (*databaseLeaderElector, *mocks.ConfigService) {
	configService := mocks.NewConfigService(t)
	elector := NewDatabaseLeaderElector(configService)
	elector.now = func() time.Time { return now }
	return elector, configService
}

func storedLeader(leaderID string, lastPing time.Time) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		config := args.Get(1).(*leaderElectionConfig)
		config.LeaderID = leaderID
		config.LastPing = lastPing.Unix()
	}
}

func TestLeaderElection(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should take the lead if there is no leader yet", func(t *testing.T) {
		elector, configService := newTestLeaderElector(t, now)
		configService.On("GetJSONConfig", leaderElectionKey, mock.Anything).Return(assert.AnError)
		configService.On("SetJSONConfig", leaderElectionKey, leaderElectionConfig{LeaderID: elector.leaderElectorID, LastPing: now.Unix()}).Return(nil)

		elector.refresh()
		assert.True(t, elector.IsLeader())
	})

	t.Run("should not take the lead from a living leader", func(t *testing.T) {
		elector, configService := newTestLeaderElector(t, now)
		configService.On("GetJSONConfig", leaderElectionKey, mock.Anything).Run(storedLeader("other", now.Add(-time.Minute))).Return(nil)

		elector.refresh()
		assert.False(t, elector.IsLeader())
		configService.AssertNotCalled(t, "SetJSONConfig", mock.Anything, mock.Anything)
	})

	t.Run("should take the lead from a dead leader", func(t *testing.T) {
		elector, configService := newTestLeaderElector(t, now)
		configService.On("GetJSONConfig", leaderElectionKey, mock.Anything).Run(storedLeader("other", now.Add(-10*time.Minute))).Return(nil)
		configService.On("SetJSONConfig", leaderElectionKey, mock.Anything).Return(nil)

		elector.refresh()
		assert.True(t, elector.IsLeader())
	})

	t.Run("should keep its own lead alive", func(t *testing.T) {
		elector, configService := newTestLeaderElector(t, now)
		configService.On("GetJSONConfig", leaderElectionKey, mock.Anything).Run(storedLeader(elector.leaderElectorID, now.Add(-5*time.Minute))).Return(nil)
		configService.On("SetJSONConfig", leaderElectionKey, leaderElectionConfig{LeaderID: elector.leaderElectorID, LastPing: now.Unix()}).Return(nil)

		elector.refresh()
		assert.True(t, elector.IsLeader())
	})

	t.Run("should only run leader tasks on the leader", func(t *testing.T) {
		elector, _ := newTestLeaderElector(t, now)
		ran := 0
		task := func() error {
			ran++
			return nil
		}

		elector.IfLeader(context.Background(), task)
		assert.Equal(t, 0, ran)

		elector.isLeader.Store(true)
		elector.IfLeader(context.Background(), task)
		assert.Equal(t, 1, ran)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		elector.IfLeader(ctx, task)
		assert.Equal(t, 1, ran)
	})
}
