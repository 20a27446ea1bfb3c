package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"planter/engine"
	"planter/meta"
	"planter/server"

	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the advisor over HTTP and websocket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			session := engine.NewSession(a.sessionOptions(engine.WithHolder(a.settings.FirstPlayer))...)
			srv := server.New(session,
				server.WithCount(a.settings.Count),
				server.WithSessionOptions(a.sessionOptions()...),
			)
			return srv.ListenAndServe(ctx, fmt.Sprintf(":%d", a.settings.Port))
		},
	}
	cmd.Flags().Int("port", meta.DefaultPort, "port to listen on")
	cmd.Flags().Int("count", meta.DefaultCount, "number of moves per response, 0 for all")
	cmd.Flags().String("first", meta.DefaultFirstPlayer, "who holds first player in the shared session")
	return cmd
}
