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

package commands

import (
	"log/slog"
	"strings"

	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/l3montree-dev/depgraph/utils"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func NewScoreCommand() *cobra.Command {
	score := &cobra.Command{
		Use:   "score <package>...",
		Short: "Refresh the reputation score of the given npm packages",
		Long: `Refresh the reputation score of the given npm packages.
Unknown packages are created. One failing package does not abort the others.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dependencyRepository shared.DependencyRepository
			var scoreService shared.ScoreService

			return withApp(cmd.Context(), func() error {
				results := scorePackages(cmd, dependencyRepository, scoreService, args)
				printBatchResults(results)
				return nil
			}, &dependencyRepository, &scoreService)
		},
	}

	return score
}

func scorePackages(cmd *cobra.Command, dependencyRepository shared.DependencyRepository, scoreService shared.ScoreService, names []string) []dtos.BatchItemResult {
	bar := progressbar.Default(int64(len(names)), "scoring")
	results := make([]dtos.BatchItemResult, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		result := dtos.BatchItemResult{Name: name, Success: true}

		dependency, err := dependencyRepository.PutIfAbsent(cmd.Context(), name)
		if err == nil {
			_, err = scoreService.RefreshScore(cmd.Context(), dependency)
		}
		if err != nil {
			slog.Debug("could not score package", "err", err, "package", name)
			result.Success = false
			result.Error = utils.Ptr(err.Error())
		}

		results = append(results, result)
		bar.Add(1) // nolint: errcheck
	}
	return results
}
