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

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/utils"
	"github.com/pkg/errors"
)

// dependencies are rescored in batches of this size per run
const scoreRefreshLimit = 500

// scoreCandidates returns the watched dependencies first, followed by the
// dependencies returned by fetchRest. Duplicates are removed.
func (runner *DaemonRunner) scoreCandidates(ctx context.Context, fetchRest func() ([]models.Dependency, error)) ([]models.Dependency, error) {
	watched, err := runner.watchlistRepository.GetWatchedDependencies(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not get watched dependencies")
	}
	rest, err := fetchRest()
	if err != nil {
		return nil, err
	}
	return utils.UniqBy(append(watched, rest...), func(d models.Dependency) uuid.UUID {
		return d.ID
	}), nil
}

func (runner *DaemonRunner) RefreshScores(ctx context.Context) error {
	dependencies, err := runner.scoreCandidates(ctx, func() ([]models.Dependency, error) {
		outdated, err := runner.dependencyRepository.FindOutdatedScores(ctx, runner.now().Add(-runner.config.ScoreMaxAge), scoreRefreshLimit)
		return outdated, errors.Wrap(err, "could not find outdated scores")
	})
	if err != nil {
		return err
	}

	group := utils.ErrGroup[bool](runner.config.PopulationConcurrent)
	for _, dependency := range dependencies {
		group.Go(func() (bool, error) {
			if _, err := runner.scoreService.RefreshScore(ctx, dependency); err != nil {
				slog.Warn("could not refresh score", "err", err, "dependency", dependency.Name)
				return false, nil
			}
			return true, nil
		})
	}
	results, err := group.WaitAndCollect()
	if err != nil {
		return err
	}

	refreshed := len(utils.Filter(results, func(ok bool) bool { return ok }))
	slog.Info("scores refreshed", "dependencies", len(dependencies), "refreshed", refreshed)
	return nil
}
