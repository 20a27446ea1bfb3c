package cmd

import (
	"planter/tuning"

	"github.com/spf13/cobra"
)

func newWeightsCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Print the active scoring weights as a tuning file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := tuning.Encode(format, a.settings.Weights)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "yaml or toml")
	return cmd
}
