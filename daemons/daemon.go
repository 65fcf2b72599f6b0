package daemons

import (
	"context"
	"log/slog"
	"time"

	"github.com/l3montree-dev/depgraph/monitoring"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/l3montree-dev/depgraph/utils"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

const tickInterval = 5 * time.Minute

type daemon struct {
	name     string
	interval time.Duration
	duration prometheus.Histogram
	run      func(ctx context.Context) error
}

func getLastRunTime(configService shared.ConfigService, key string) (time.Time, error) {
	var lastRun struct {
		Time time.Time `json:"time"`
	}

	err := configService.GetJSONConfig(key, &lastRun)

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Error("could not get last run time", "err", err, "key", key)
		return time.Time{}, err
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Info("no last run time found. Setting to 0", "key", key)
		return time.Time{}, nil
	}

	return lastRun.Time, nil
}

func (runner *DaemonRunner) shouldRun(d daemon) bool {
	lastTime, err := getLastRunTime(runner.configService, configKey(d.name))
	if err != nil {
		return false
	}

	return runner.now().Sub(lastTime) > d.interval
}

func (runner *DaemonRunner) markRun(d daemon) error {
	return runner.configService.SetJSONConfig(configKey(d.name), struct {
		Time time.Time `json:"time"`
	}{
		Time: runner.now(),
	})
}

func configKey(name string) string {
	return "daemons." + name
}

func (runner *DaemonRunner) execute(ctx context.Context, d daemon) error {
	start := time.Now()
	slog.Info("starting daemon", "daemon", d.name)
	err := d.run(ctx)
	d.duration.Observe(time.Since(start).Minutes())
	if err != nil {
		monitoring.DaemonErrorsTotal.WithLabelValues(d.name).Inc()
		return errors.Wrapf(err, "daemon %s failed", d.name)
	}
	// a failed run is retried on the next tick
	if err := runner.markRun(d); err != nil {
		slog.Error("could not mark daemon as run", "err", err, "daemon", d.name)
	}
	slog.Info("daemon finished", "daemon", d.name, "duration", time.Since(start))
	return nil
}

func (runner *DaemonRunner) runDueDaemons(ctx context.Context) error {
	daemonStart := time.Now()
	slog.Info("starting background jobs", "time", daemonStart)

	for _, d := range runner.daemons() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !runner.shouldRun(d) {
			continue
		}
		if err := runner.execute(ctx, d); err != nil {
			// one broken daemon must not starve the others
			monitoring.Alert("background job failed", err)
		}
	}

	slog.Info("background jobs finished", "duration", time.Since(daemonStart))
	return nil
}

// RunDaemons runs the named daemons, or all of them if no name is given.
func (runner *DaemonRunner) RunDaemons(ctx context.Context, names ...string) error {
	all := runner.daemons()
	selected := make([]daemon, 0, len(all))
	if len(names) == 0 {
		selected = all
	}
	for _, name := range names {
		found := false
		for _, d := range all {
			if d.name == name {
				selected = append(selected, d)
				found = true
				break
			}
		}
		if !found {
			return errors.Errorf("unknown daemon: %s", name)
		}
	}

	for _, d := range selected {
		if err := runner.execute(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

// Start ticks until ctx is done. Only the leading instance does any work.
func (runner *DaemonRunner) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()
		for {
			runner.leaderElector.IfLeader(ctx, func() error {
				return runner.runDueDaemons(ctx)
			})

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// Reset forgets the last run of the named daemons so the leader picks them
// up on its next tick.
func Reset(configService shared.ConfigService, names ...string) error {
	for _, name := range names {
		if !utils.Contains(Names, name) {
			return errors.Errorf("unknown daemon: %s", name)
		}
	}
	for _, name := range names {
		if err := configService.RemoveConfig(configKey(name)); err != nil {
			return err
		}
	}
	return nil
}
