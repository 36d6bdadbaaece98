// Command polyglot runs the front door and the five reference backing
// services. Configuration comes from POLYGLOT_* environment variables.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"polyglot/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(config.FromEnv()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "polyglot",
		Short:         "Front-door orchestrator over five polyglot data services",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.Registry.File, "registry", cfg.Registry.File, "YAML service registry overriding the built-in endpoints")
	root.PersistentFlags().StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "debug, info, warn or error")

	root.AddCommand(
		newServeCmd(&cfg),
		newCatalogCmd(&cfg),
		newSessionCartCmd(&cfg),
		newStatementsCmd(&cfg),
		newLogStoreCmd(&cfg),
		newGraphCmd(&cfg),
		newHealthCmd(&cfg),
	)
	return root
}
