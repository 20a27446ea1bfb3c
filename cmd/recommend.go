package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"planter/advisor"
	"planter/communication"
	"planter/engine"
	"planter/meta"
	"planter/render"

	"github.com/spf13/cobra"
)

func newRecommendCmd(a *app) *cobra.Command {
	var (
		statePath string
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank the moves of an observed state",
		Long:  "recommend reads an observed state as JSON from a file, or from stdin with --state -, and prints the ranked candidate moves.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if statePath == "" {
				return errors.New("--state is required, use - for stdin")
			}
			raw, err := readInput(cmd, statePath)
			if err != nil {
				return err
			}

			session := engine.NewSession(a.sessionOptions()...)
			state, err := communication.DecodeState(raw, session.Catalog())
			if err != nil {
				return err
			}
			candidates := advisor.Limit(session.RecommendMoves(state), a.settings.Count)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(communication.FromCandidates(candidates))
			}
			_, err = fmt.Fprintln(out, render.Candidates(candidates))
			return err
		},
	}
	cmd.Flags().StringVar(&statePath, "state", "", "state JSON file, - for stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	cmd.Flags().Int("count", meta.DefaultCount, "number of moves to show, 0 for all")
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return raw, nil
}
