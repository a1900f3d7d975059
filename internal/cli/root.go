// Package cli implements the portfolio command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cjdelfin.dev/internal/config"
	"cjdelfin.dev/internal/logging"
)

// runtime is populated before any subcommand runs
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Portfolio site server and catalog tools",
		Long: formatTitle("portfolio") + " - personal portfolio site\n\n" +
			"Serve the site, browse the project catalog and review contact\n" +
			"submissions from the terminal.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger, err := logging.New(cfg.Env)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			rt.cfg, rt.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.logger != nil {
				_ = rt.logger.Sync()
			}
		},
	}

	root.AddCommand(
		newServeCmd(rt),
		newProjectsCmd(rt),
		newSearchCmd(rt),
		newSkillsCmd(rt),
		newMessagesCmd(rt),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
