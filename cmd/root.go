package cmd

import (
	"planter/meta"

	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "planter",
		Short:         "Move advisor for two-player role selection",
		Long:          "planter ranks the moves available in a two-player round of a colonization-style role-selection game and explains each score. It tracks both boards as picks are made.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default planter.yaml or planter.toml in . or ~/.config/planter)")
	flags.String("log-level", meta.DefaultLogLevel, "log level: trace, debug, info, warn, error")
	flags.String("tuning", "", "YAML or TOML file with scoring weight overrides")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRecommendCmd(a),
		newPlayCmd(a),
		newSimulateCmd(a),
		newServeCmd(a),
		newCatalogCmd(),
		newWeightsCmd(a),
	)

	return rootCmd
}
