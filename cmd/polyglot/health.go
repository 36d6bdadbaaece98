package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"polyglot/internal/health"
	"polyglot/internal/platform/config"
	"polyglot/internal/platform/logger"
	"polyglot/internal/registry"
)

func newHealthCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe every backing service once and print the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := registry.Load(cfg.Registry.File)
			if err != nil {
				return err
			}
			monitor, err := health.New(reg,
				health.WithLogger(logger.New(config.LogConfig{Level: "error", Format: cfg.Log.Format})),
				health.WithTimeout(cfg.Health.Timeout),
			)
			if err != nil {
				return err
			}
			down := printHealth(cmd.Context(), cmd.OutOrStdout(), reg, monitor)
			if down > 0 {
				return fmt.Errorf("%d service(s) unavailable", down)
			}
			return nil
		},
	}
}

// printHealth writes one row per service and returns how many are down.
func printHealth(ctx context.Context, w io.Writer, reg *registry.Registry, monitor *health.Monitor) int {
	snapshot := monitor.ProbeAll(ctx)
	names := make([]string, 0, len(snapshot))
	for svc := range snapshot {
		names = append(names, string(svc))
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SERVICE\tTAG\tURL\tSTATUS")
	down := 0
	for _, name := range names {
		svc := registry.ServiceName(name)
		url, _ := reg.HealthURL(svc)
		status := "available"
		if !snapshot[svc] {
			status = "unavailable"
			down++
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, reg.Tag(svc), url, status)
	}
	_ = tw.Flush()
	return down
}
