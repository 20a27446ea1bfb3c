package cmd

import (
	"fmt"
	"text/tabwriter"

	"planter/experiments"

	"github.com/spf13/cobra"
)

func newSimulateCmd(a *app) *cobra.Command {
	cfg := experiments.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play advisor-driven games against a baseline policy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.Weights = a.settings.Weights
			result, err := experiments.Run(cfg)
			if err != nil {
				return err
			}

			s := result.Summary
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "games\t%d\n", s.Games)
			fmt.Fprintf(w, "\tyou (%s)\topponent (%s)\n", cfg.YouPolicy, cfg.OpponentPolicy)
			fmt.Fprintf(w, "doubloons\t%.2f\t%.2f\n", s.YouMoney, s.OpponentMoney)
			fmt.Fprintf(w, "plantations\t%.2f\t%.2f\n", s.YouResources, s.OpponentResources)
			fmt.Fprintf(w, "buildings\t%.2f\t%.2f\n", s.YouBuildings, s.OpponentBuildings)
			if err := w.Flush(); err != nil {
				return err
			}
			if result.Dir != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "records written to %s\n", result.Dir)
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&cfg.Games, "games", cfg.Games, "number of games")
	flags.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "rounds per game")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	flags.StringVar(&cfg.YouPolicy, "you", cfg.YouPolicy, "policy for you: advisor or random")
	flags.StringVar(&cfg.OpponentPolicy, "opponent", cfg.OpponentPolicy, "policy for the opponent: advisor or random")
	flags.StringVar(&cfg.OutDir, "out", "", "directory for CSV records, empty to skip")
	return cmd
}
