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
	"github.com/l3montree-dev/depgraph/daemons"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewDaemonCommand() *cobra.Command {
	daemon := cobra.Command{
		Use:   "daemon",
		Short: "daemon",
	}

	daemon.AddCommand(newTriggerCommand(), newResetCommand())
	return &daemon
}

func newTriggerCommand() *cobra.Command {
	trigger := &cobra.Command{
		Use:   "trigger",
		Short: "Will trigger the background jobs",
		Long:  "Will trigger the background jobs. They run even if they ran recently or another instance is the leader.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var runner shared.DaemonRunner
			return withApp(cmd.Context(), func() error {
				return runner.RunDaemons(cmd.Context(), viper.GetStringSlice("daemons")...)
			}, &runner)
		},
	}

	trigger.Flags().StringSliceP("daemons", "d", daemons.Names, "List of daemons to trigger")
	return trigger
}

func newResetCommand() *cobra.Command {
	reset := &cobra.Command{
		Use:   "reset",
		Short: "Forgets when the background jobs last ran",
		Long:  "Forgets when the background jobs last ran. The leading server instance runs them on its next tick.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var configService shared.ConfigService
			return withApp(cmd.Context(), func() error {
				return daemons.Reset(configService, viper.GetStringSlice("daemons")...)
			}, &configService)
		},
	}

	reset.Flags().StringSliceP("daemons", "d", daemons.Names, "List of daemons to reset")
	return reset
}
