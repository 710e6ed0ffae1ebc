// Package commands provides the CLI commands for the web3 hooks service.
// It contains the serve, fetch, history and version commands with their flags and handlers.
package commands

import (
	"fmt"

	"github.com/ngmachado/web3-hooks/infrastructure/config"
	"github.com/spf13/cobra"
)

// Runtime holds state shared by all commands: the config path and the lazily built container.
type Runtime struct {
	ConfigPath string
	LogLevel   string
	Container  *config.Container
}

// Load reads configuration and builds the dependency container.
func (r *Runtime) Load() error {
	if r.Container != nil {
		return nil
	}

	cfg, err := config.LoadConfig(r.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if r.LogLevel != "" {
		cfg.LogLevel = r.LogLevel
	}

	container, err := config.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	r.Container = container

	return nil
}

// Close releases the container's resources.
func (r *Runtime) Close() {
	if r.Container == nil {
		return
	}
	if err := r.Container.Close(); err != nil {
		r.Container.Logger.Error("Failed to close container", "error", err)
	}
	r.Container = nil
}

// NewRootCommand creates the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	rt := &Runtime{}

	rootCmd := &cobra.Command{
		Use:   "web3-hooks",
		Short: "Token upgrade/downgrade notifier",
		Long: `Receives indexer webhooks for super token upgrades and downgrades,
waits for the subgraph to index the block, and posts every matching event
above the minimum amount to a chat channel.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipContainerKV] == "true" {
				return nil
			}
			return rt.Load()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			rt.Close()
		},
	}

	// Global flags.
	rootCmd.PersistentFlags().StringVarP(&rt.ConfigPath, configFlag, "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&rt.LogLevel, logLevelFlag, "l", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(
		NewServeCommand(rt),
		NewFetchCommand(rt),
		NewHistoryCommand(rt),
		NewVersionCommand(),
	)

	return rootCmd
}
