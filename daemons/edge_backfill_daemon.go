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

	"github.com/l3montree-dev/depgraph/shared"
	"github.com/pkg/errors"
)

// edges of this many versions are resolved per run
const edgeBackfillLimit = 500

func (runner *DaemonRunner) BackfillEdges(ctx context.Context) error {
	results, err := runner.populationService.BackfillEdges(ctx, edgeBackfillLimit)
	if errors.Is(err, shared.ErrPopulationInFlight) {
		// a manually triggered job does the same work right now
		slog.Info("population job in flight, skipping edge backfill")
		return nil
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		if !result.Success {
			failed++
		}
	}
	slog.Info("edges backfilled", "versions", len(results), "failed", failed)
	return nil
}
