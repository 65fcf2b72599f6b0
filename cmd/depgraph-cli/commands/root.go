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
	"log/slog"
	"strings"

	"github.com/l3montree-dev/depgraph/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultConfigFilename = ".depgraph"

var cfgFile string

var rootCmd = &cobra.Command{
	SilenceUsage: true,
	Use:          "depgraph-cli",
	Short:        "Management cli",
	Long: `The depgraph cli operates directly on the depgraph database.
It can populate scores, backfill dependency edges, trigger background jobs and
run migrations. Configuration can be provided via a ./.depgraph config file or
environment variables (prefix DEPGRAPH_). Database settings are read from the
usual POSTGRES_* variables.`,
	Example: `  # Score a set of packages
  depgraph-cli score express lodash

  # Resolve edges of up to 1000 versions
  depgraph-cli edges backfill --limit 1000

  # Latest safe version of a project dependency
  depgraph-cli safe-version 3f0c... --severity critical`,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		shared.LoadConfig() // nolint: errcheck

		level, err := cmd.Flags().GetString("logLevel")
		if err != nil {
			return err
		}
		shared.InitLogger(shared.ParseLogLevel(level))

		return initializeConfig(cmd)
	},
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.depgraph.yaml)")
	rootCmd.PersistentFlags().StringP("logLevel", "l", "info", "Set the log level. Options: debug, info, warn, error")

	rootCmd.AddCommand(
		NewScoreCommand(),
		NewEdgesCommand(),
		NewSafeVersionCommand(),
		NewSupplyChainCommand(),
		NewDaemonCommand(),
		NewMigrateCommand(),
	)
}

func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(defaultConfigFilename)
	}
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/depgraph/")

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if there isn't a config file
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		slog.Debug("no config file found")
	}

	viper.SetEnvPrefix("DEPGRAPH")
	// --exclude-banned becomes DEPGRAPH_EXCLUDE_BANNED
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	bindFlags(cmd)
	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && viper.IsSet(f.Name) {
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", viper.Get(f.Name))) // nolint: errcheck
		}

		if err := viper.BindPFlag(f.Name, f); err != nil {
			slog.Error("could not bind flag to viper", "err", err)
		}
	})
}
