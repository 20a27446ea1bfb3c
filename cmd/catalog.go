package cmd

import (
	"encoding/json"
	"fmt"

	"planter/game"
	"planter/render"

	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List buildings and plantation values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := game.StandardCatalog()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(c.All())
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), render.Catalog(c))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
