/*
Copyright © 2017 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mullach/allfed-integrated-model/internal/hash"
	"github.com/mullach/allfed-integrated-model/internal/run"
	"github.com/mullach/allfed-integrated-model/scenario"
)

const version = "0.1.0"

// These variables specify configuration flags.
var (
	// configFile specifies the location of the scenario configuration
	// file.
	configFile string

	// plotFile, if set, writes the percent-fed-by-month chart to this path.
	plotFile string

	// verbose raises the run's log level to debug.
	verbose bool
)

func init() {
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(validateCmd)

	Root.PersistentFlags().StringVar(&configFile, "config", "", "scenario configuration file location (YAML, TOML, or JSON); omit to use the reference defaults")
	runCmd.Flags().StringVar(&plotFile, "plot", "", "write a percent-fed-by-month PNG chart to this path")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "raise the log level to debug")
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "foodmodel",
	Short: "A global food-supply-shock resource allocation model.",
	Long: `foodmodel estimates the maximum fraction of nutritional need that can be
met worldwide each month following a large-scale food-production shock, by
deriving monthly production for every food source and solving a linear
program that maximizes the minimum monthly percent-of-need-fed.`,
	DisableAutoGenTag: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("foodmodel v%s\n", version)
	},
	DisableAutoGenTag: true,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a scenario configuration file without running it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := scenario.ReadConfigFile(configFile)
		if err != nil {
			return err
		}
		fmt.Printf("scenario %s is valid (%d months, starting month %d)\n", hash.ScenarioKey(in), in.NMonths, in.StartingMonthNum)
		return nil
	},
	DisableAutoGenTag: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the model for one scenario.",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := scenario.ReadConfigFile(configFile)
		if err != nil {
			return err
		}

		opts := run.Options{Verbose: verbose || in.Verbose, PlotFile: plotFile}
		result, err := run.Run(in, opts)
		if err != nil {
			return err
		}

		fmt.Printf("scenario %s solved: minimum monthly percent fed = %.2f%%\n",
			hash.ScenarioKey(in), result.MinPercentFed())
		if err := result.Report.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "warning:", err)
		}
		return nil
	},
	DisableAutoGenTag: true,
}
