package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP key service until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			appCtx.Log.Info("starting",
				"listen_addr", appCtx.Config.ListenAddr,
				"iris", appCtx.Identity.IrisAvailable(),
				"session_ttl", appCtx.Config.Sessions.TTL,
			)
			if !appCtx.Identity.IrisAvailable() {
				appCtx.Log.Warn("no iris extractor configured; keys derive from image pixels")
			}
			return appCtx.Server.Run(ctx)
		},
	}
	cmd.Flags().String("listen", "", "listen address (default :5000)")
	cmd.Flags().Duration("session-ttl", 0, "session lifetime (default 30m)")
	cmd.Flags().Int("max-sessions", 0, "maximum concurrent sessions (default 10000)")
	cmd.Flags().Bool("no-ratelimit", false, "disable the per-client rate limiter")
	return cmd
}
