package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/salescopilot/copilot/internal/config"
	"github.com/salescopilot/copilot/internal/observability"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "copilot",
	Short: "Sales copilot planning engine",
	Long: `Copilot turns a sales goal into an ordered execution plan over the
workspace's enabled skills.

Planning asks the configured LLM provider for a plan first and falls
back to deterministic keyword matching when the provider is
unreachable. The engine always produces a plan: when no skill covers
the goal, the plan reports capability gaps instead of failing.`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command with signal-aware cancellation.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

// loadConfig runs before every command: it loads the config file (or
// defaults when none exists) and builds the logger.
func loadConfig(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = "copilot.yaml"
	}

	var err error
	cfg, err = config.Load(path)
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger = observability.NewLogger(cmd.ErrOrStderr(), level, cfg.Logging.Format)

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path (default: copilot.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, yaml, json")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(versionCmd)
}
