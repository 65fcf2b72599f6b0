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
	"log/slog"
	"time"

	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/utils"
	"github.com/pkg/errors"
)

// vulnerabilitySyncLimit bounds the unwatched dependencies synced per run.
// Dependencies with the oldest scores are synced first, the score daemon
// keeps rotating that order.
const vulnerabilitySyncLimit = 500

func (runner *DaemonRunner) SyncVulnerabilities(ctx context.Context) error {
	dependencies, err := runner.scoreCandidates(ctx, func() ([]models.Dependency, error) {
		oldest, err := runner.dependencyRepository.FindOutdatedScores(ctx, runner.now().Add(time.Second), vulnerabilitySyncLimit)
		return oldest, errors.Wrap(err, "could not list dependencies")
	})
	if err != nil {
		return err
	}

	// OSV is rate limited per client, a small fan out is enough
	group := utils.ErrGroup[int](2)
	for _, dependency := range dependencies {
		group.Go(func() (int, error) {
			n, err := runner.vulnerabilitySyncService.SyncDependency(ctx, dependency)
			if err != nil {
				slog.Warn("could not sync vulnerabilities", "err", err, "dependency", dependency.Name)
				return 0, nil
			}
			return n, nil
		})
	}
	counts, err := group.WaitAndCollect()
	if err != nil {
		return err
	}

	total := utils.Reduce(counts, func(acc int, n int) int { return acc + n }, 0)
	slog.Info("vulnerabilities synced", "dependencies", len(dependencies), "advisories", total)
	return nil
}
