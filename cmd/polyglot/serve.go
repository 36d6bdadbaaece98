package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"polyglot/internal/audit"
	"polyglot/internal/catalog/filter"
	"polyglot/internal/clients"
	"polyglot/internal/health"
	jwttoken "polyglot/internal/jwt_token"
	"polyglot/internal/orchestrator"
	"polyglot/internal/platform/config"
	"polyglot/internal/platform/httpserver"
	"polyglot/internal/platform/logger"
	"polyglot/internal/ratelimit"
	"polyglot/internal/registry"
	httptransport "polyglot/internal/transport/http"
	"polyglot/pkg/platform/circuit"
)

const (
	accessTokenAudience = "polyglot-frontdoor"
	sweepInterval       = time.Minute
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the front-door HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Server.Addr, "addr", cfg.Server.Addr, "listen address")
	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	log := logger.New(cfg.Log)

	reg, err := registry.Load(cfg.Registry.File)
	if err != nil {
		return err
	}
	monitor, err := health.New(reg, health.WithLogger(log), health.WithTimeout(cfg.Health.Timeout))
	if err != nil {
		return err
	}
	caller, err := clients.NewCaller(reg, clients.WithTimeout(cfg.Client.Timeout))
	if err != nil {
		return err
	}
	logStore := clients.NewLogStoreClient(caller)

	auditOpts := []audit.Option{
		audit.WithLogger(log),
		audit.WithMetrics(audit.NewMetrics()),
		audit.WithBreaker(circuit.New(string(registry.LogStore))),
		audit.WithBufferSize(cfg.Audit.BufferSize),
	}
	if !cfg.Audit.Async {
		auditOpts = append(auditOpts, audit.WithSync())
	}
	auditor, err := audit.New(logStore, monitor, auditOpts...)
	if err != nil {
		return err
	}

	table := orchestrator.NewSessionTable(time.Now)
	svc, err := orchestrator.New(orchestrator.Backends{
		Catalog:    clients.NewCatalogClient(caller, filter.Default()),
		Sessions:   clients.NewSessionCartClient(caller),
		Statements: clients.NewStatementClient(caller),
		Graph:      clients.NewGraphClient(caller),
		Logs:       logStore,
	}, monitor, auditor, reg,
		orchestrator.WithLogger(log),
		orchestrator.WithMetrics(orchestrator.NewMetrics()),
		orchestrator.WithSessionTTL(cfg.Session.TTL),
		orchestrator.WithSessionTable(table),
	)
	if err != nil {
		return err
	}

	jwtService := jwttoken.NewJWTService(cfg.Server.JWTSigningKey, cfg.Server.JWTIssuer, accessTokenAudience)
	limiter := ratelimit.New(cfg.Server.LoginRatePerMinute)
	handler := httptransport.NewHandler(svc, jwtService, monitor, log)
	router := httptransport.NewRouter(handler, httptransport.RouterDeps{
		Validator: jwttoken.NewJWTServiceAdapter(jwtService),
		Sessions:  table,
		Limiter:   limiter,
		Logger:    log,
	})

	probeCtx, cancel := context.WithTimeout(ctx, cfg.Health.Timeout+time.Second)
	logHealth(log, monitor.ProbeAll(probeCtx))
	cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpserver.Run(gctx, httpserver.New(cfg.Server.Addr, router), log)
	})
	g.Go(func() error {
		monitor.Run(gctx, cfg.Health.RefreshInterval)
		return nil
	})
	g.Go(func() error {
		sweep(gctx, table, limiter)
		return nil
	})
	runErr := g.Wait()

	closeCtx, cancelClose := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelClose()
	if err := auditor.Close(closeCtx); err != nil {
		log.Warn("audit drain incomplete", "error", err)
	}
	if runErr != nil {
		return fmt.Errorf("front door: %w", runErr)
	}
	return nil
}

// sweep drops expired sessions and idle rate-limit buckets until ctx ends.
func sweep(ctx context.Context, table *orchestrator.SessionTable, limiter *ratelimit.Limiter) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			table.Sweep()
			limiter.Sweep()
		}
	}
}

func logHealth(log *slog.Logger, snapshot map[registry.ServiceName]bool) {
	for svc, up := range snapshot {
		if up {
			log.Info("backing service available", "service", svc)
			continue
		}
		log.Warn("backing service unavailable", "service", svc)
	}
}
