package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"polyglot/internal/backends"
	"polyglot/internal/backends/catalog"
	"polyglot/internal/backends/graph"
	"polyglot/internal/backends/logstore"
	"polyglot/internal/backends/sessioncart"
	"polyglot/internal/backends/statement"
	"polyglot/internal/catalog/filter"
	"polyglot/internal/platform/config"
	"polyglot/internal/platform/httpserver"
	"polyglot/internal/platform/kafka"
	"polyglot/internal/platform/logger"
	"polyglot/internal/platform/postgres"
	"polyglot/internal/platform/redis"
	id "polyglot/pkg/domain"
)

// mirrorFlushTimeout bounds how long shutdown waits for buffered log mirror records.
const mirrorFlushTimeout = 5 * time.Second

// serveBackend runs one backing service until ctx ends.
func serveBackend(ctx context.Context, name, addr string, log *slog.Logger, svc backends.Registrar) error {
	srv := httpserver.New(addr, backends.NewRouter(name, log, svc))
	if err := httpserver.Run(ctx, srv, log.With("server", name)); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func backendCmd(cfg *config.Config, name, short, defaultAddr string, run func(ctx context.Context, cfg config.Config, addr string) error) *cobra.Command {
	addr := config.ServiceAddr(name, defaultAddr)
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), *cfg, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", addr, "listen address")
	return cmd
}

func newCatalogCmd(cfg *config.Config) *cobra.Command {
	cmd := backendCmd(cfg, "catalog", "Run the relational catalog/auth service", ":5001",
		func(ctx context.Context, cfg config.Config, addr string) error {
			log := logger.New(cfg.Log)
			store, closeDB, err := openCatalog(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeDB()
			return serveBackend(ctx, "catalog", addr, log, catalog.New(store, filter.Default(), log))
		})
	cmd.AddCommand(newAddUserCmd(cfg), newAddProductCmd(cfg))
	return cmd
}

func openCatalog(ctx context.Context, cfg config.Config) (*catalog.PostgresStore, func(), error) {
	db, err := postgres.Open(ctx, cfg.Postgres)
	if err != nil {
		return nil, nil, err
	}
	store := catalog.NewPostgres(db, filter.Default())
	if err := store.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return store, func() { _ = db.Close() }, nil
}

func newAddUserCmd(cfg *config.Config) *cobra.Command {
	var (
		username string
		password string
		admin    bool
	)
	cmd := &cobra.Command{
		Use:   "adduser",
		Short: "Create a catalog user with a bcrypt-hashed password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if username == "" || password == "" {
				return errors.New("--username and --password are required")
			}
			store, closeDB, err := openCatalog(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			defer closeDB()
			userID, err := store.CreateUser(cmd.Context(), username, password, admin)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %s with id %d\n", username, userID)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "login name")
	cmd.Flags().StringVar(&password, "password", "", "plaintext password, stored hashed")
	cmd.Flags().BoolVar(&admin, "admin", false, "grant log read access for every user")
	return cmd
}

// productFlags are the catalog row fields settable from the command line.
type productFlags struct {
	vendor    string
	kind      string
	condition string
	mpn       string
	price     string
	stock     int
	warranty  int
	attrs     map[string]string
}

func (f productFlags) product() (id.Product, error) {
	if f.vendor == "" || f.kind == "" || f.condition == "" {
		return id.Product{}, errors.New("--vendor, --type and --condition are required")
	}
	price, err := decimal.NewFromString(f.price)
	if err != nil {
		return id.Product{}, fmt.Errorf("--price %q: %w", f.price, err)
	}
	if price.IsNegative() {
		return id.Product{}, errors.New("--price must not be negative")
	}
	if f.stock < 0 || f.warranty < 0 {
		return id.Product{}, errors.New("--stock and --warranty must not be negative")
	}
	return id.Product{
		Vendor:           f.vendor,
		ProductType:      f.kind,
		ProductCondition: f.condition,
		MPN:              f.mpn,
		Price:            price,
		StockQuantity:    f.stock,
		WarrantyMonths:   f.warranty,
		Attributes:       f.attrs,
	}, nil
}

func newAddProductCmd(cfg *config.Config) *cobra.Command {
	var flags productFlags
	cmd := &cobra.Command{
		Use:   "addproduct",
		Short: "Add a product to the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := flags.product()
			if err != nil {
				return err
			}
			store, closeDB, err := openCatalog(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			defer closeDB()
			productID, err := store.AddProduct(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created product %d (%s %s)\n", productID, p.Vendor, p.MPN)
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.vendor, "vendor", "", "vendor name")
	cmd.Flags().StringVar(&flags.kind, "type", "", "product type")
	cmd.Flags().StringVar(&flags.condition, "condition", "", "product condition")
	cmd.Flags().StringVar(&flags.mpn, "mpn", "", "manufacturer part number")
	cmd.Flags().StringVar(&flags.price, "price", "0", "unit price")
	cmd.Flags().IntVar(&flags.stock, "stock", 0, "stock quantity")
	cmd.Flags().IntVar(&flags.warranty, "warranty", 0, "warranty in months")
	cmd.Flags().StringToStringVar(&flags.attrs, "attr", nil, "extra attributes as key=value")
	return cmd
}

func newSessionCartCmd(cfg *config.Config) *cobra.Command {
	return backendCmd(cfg, "sessioncart", "Run the key-value session and cart service", ":5002",
		func(ctx context.Context, cfg config.Config, addr string) error {
			log := logger.New(cfg.Log)
			client, err := redis.Open(ctx, cfg.Redis)
			if err != nil {
				return err
			}
			defer client.Close()
			return serveBackend(ctx, "sessioncart", addr, log, sessioncart.New(sessioncart.NewRedis(client), log))
		})
}

func newStatementsCmd(cfg *config.Config) *cobra.Command {
	cmd := backendCmd(cfg, "statement", "Run the statement ledger service", ":5003",
		func(ctx context.Context, cfg config.Config, addr string) error {
			log := logger.New(cfg.Log)
			pool, err := postgres.OpenPool(ctx, cfg.Postgres)
			if err != nil {
				return err
			}
			defer pool.Close()
			store := statement.NewPostgres(pool)
			if err := store.Migrate(ctx); err != nil {
				return err
			}
			return serveBackend(ctx, "statement", addr, log, statement.New(store, log))
		})
	cmd.Use = "statements"
	return cmd
}

func newLogStoreCmd(cfg *config.Config) *cobra.Command {
	return backendCmd(cfg, "logstore", "Run the append-only log service", ":5004",
		func(ctx context.Context, cfg config.Config, addr string) error {
			log := logger.New(cfg.Log)
			store, err := logstore.OpenBadger(cfg.Badger, log)
			if err != nil {
				return err
			}
			defer store.Close()

			var opts []logstore.Option
			producer, err := kafka.NewClient(cfg.Kafka)
			if err != nil {
				return err
			}
			if producer != nil {
				mirror := logstore.NewKafkaMirror(producer, log)
				defer func() {
					if err := mirror.Close(mirrorFlushTimeout); err != nil {
						log.Warn("log mirror closed with unflushed records", "error", err)
					}
				}()
				if err := kafka.EnsureTopic(ctx, producer, cfg.Kafka.Topic, 1, 1); err != nil {
					log.Warn("log mirror topic not provisioned", "topic", cfg.Kafka.Topic, "error", err)
				}
				opts = append(opts, logstore.WithMirror(mirror))
			}
			return serveBackend(ctx, "logstore", addr, log, logstore.New(store, log, opts...))
		})
}

func newGraphCmd(cfg *config.Config) *cobra.Command {
	return backendCmd(cfg, "graph", "Run the relationship and recommendation service", ":5005",
		func(ctx context.Context, cfg config.Config, addr string) error {
			log := logger.New(cfg.Log)
			db, err := postgres.Open(ctx, cfg.Postgres)
			if err != nil {
				return err
			}
			defer db.Close()
			store := graph.NewPostgres(db)
			if err := store.Migrate(ctx); err != nil {
				return err
			}
			return serveBackend(ctx, "graph", addr, log, graph.New(store, log))
		})
}
