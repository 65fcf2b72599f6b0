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
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewEdgesCommand() *cobra.Command {
	edges := &cobra.Command{
		Use:   "edges",
		Short: "Manage the transitive dependency edges",
	}

	edges.AddCommand(newEdgesBackfillCommand())
	return edges
}

func newEdgesBackfillCommand() *cobra.Command {
	backfill := &cobra.Command{
		Use:   "backfill",
		Short: "Resolve the edges of versions which were never resolved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var populationService shared.PopulationService

			return withApp(cmd.Context(), func() error {
				results, err := populationService.BackfillEdges(cmd.Context(), viper.GetInt("limit"))
				if err != nil {
					return err
				}
				printBatchResults(results)
				return nil
			}, &populationService)
		},
	}

	backfill.Flags().Int("limit", 500, "maximum number of versions to resolve")
	return backfill
}
