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
	"fmt"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/l3montree-dev/depgraph/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewSafeVersionCommand() *cobra.Command {
	safeVersion := &cobra.Command{
		Use:   "safe-version <projectDependencyID>",
		Short: "Print the latest safe version of a project dependency",
		Long: `Print the latest safe version of a project dependency.
Without --severity and --exclude-banned the policy of the project is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDependencyID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid project dependency id: %w", err)
			}

			usePolicy := !cmd.Flags().Changed("severity") && !cmd.Flags().Changed("exclude-banned") &&
				!viper.IsSet("severity") && !viper.IsSet("exclude-banned")
			severity, ok := dtos.ParseSeverity(viper.GetString("severity"))
			if !ok {
				return fmt.Errorf("invalid severity: %s", viper.GetString("severity"))
			}

			var safeVersionService shared.SafeVersionService
			return withApp(cmd.Context(), func() error {
				var resp dtos.LatestSafeVersionResponse
				if usePolicy {
					resp, err = safeVersionService.SafeVersionWithPolicy(cmd.Context(), projectDependencyID)
				} else {
					resp, err = safeVersionService.SafeVersion(cmd.Context(), projectDependencyID, severity, viper.GetBool("exclude-banned"))
				}
				if err != nil {
					return err
				}
				fmt.Printf("safe version: %s\nreason: %s\n", utils.OrDefault(resp.SafeVersion, "none"), resp.Reason)
				return nil
			}, &safeVersionService)
		},
	}

	safeVersion.Flags().String("severity", "high", "ignore vulnerabilities below this severity (critical, high, medium, low)")
	safeVersion.Flags().Bool("exclude-banned", true, "skip banned versions")
	return safeVersion
}

func NewSupplyChainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "supply-chain <projectDependencyID>",
		Short: "Print the direct children and the ancestor paths of a project dependency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDependencyID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid project dependency id: %w", err)
			}

			var supplyChainService shared.SupplyChainService
			return withApp(cmd.Context(), func() error {
				resp, err := supplyChainService.GetSupplyChain(cmd.Context(), projectDependencyID)
				if err != nil {
					return err
				}
				printSupplyChain(resp)
				return nil
			}, &supplyChainService)
		},
	}
}
