package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cjdelfin.dev/internal/app"
)

func newServeCmd(rt *runtime) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server. SIGINT or SIGTERM shuts it down gracefully,
waiting up to SHUTDOWN_TIMEOUT for in-flight requests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				rt.cfg.ServerAddr = addr
			}

			a, err := app.New(rt.cfg, rt.logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := a.Close(); err != nil {
					rt.logger.Warn("close contact log", zap.Error(err))
				}
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides SERVER_ADDR)")
	return cmd
}
