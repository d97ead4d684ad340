package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bargom/sitekit/internal/api"
	"github.com/bargom/sitekit/internal/api/handlers"
	"github.com/bargom/sitekit/internal/config"
	"github.com/bargom/sitekit/internal/database"
	"github.com/bargom/sitekit/internal/database/repository"
	"github.com/bargom/sitekit/internal/health"
	"github.com/bargom/sitekit/internal/health/checks"
	"github.com/bargom/sitekit/pkg/logging"
	"github.com/bargom/sitekit/pkg/metrics"
	"github.com/spf13/cobra"
)

var (
	// serverAddr overrides the configured listen address
	serverAddr string
	// dbDriver overrides the configured database driver
	dbDriver string
	// dbDSN overrides the configured database DSN
	dbDSN string
	// skipMigrations starts the server without applying pending migrations
	skipMigrations bool
	// migrateDryRun shows pending migrations without applying
	migrateDryRun bool
	// migrateDown rolls back the most recent migration
	migrateDown bool
)

// newServerCmd creates the server command with subcommands.
func newServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Server management commands",
		Long:  `Commands for managing the sitekit HTTP API server and database.`,
	}

	cmd.AddCommand(newServerStartCmd())
	cmd.AddCommand(newServerMigrateCmd())

	return cmd
}

// loadConfig builds the effective configuration from file, environment,
// and command line flags, in increasing order of precedence.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if serverAddr != "" {
		cfg.Server.Addr = serverAddr
	}
	if dbDriver != "" {
		cfg.Database.Driver = dbDriver
	}
	if dbDSN != "" {
		cfg.Database.DSN = dbDSN
	}
	return cfg, nil
}

func addDatabaseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&dbDriver, "db-driver", "", "database driver (sqlite|postgres)")
	cmd.Flags().StringVar(&dbDSN, "db-dsn", "", "database connection string")
}

// newServerStartCmd creates the server start subcommand.
func newServerStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start HTTP API server",
		Long: `Start the sitekit HTTP API server.

The server provides REST endpoints for categories, news, products,
and contact messages, plus health and metrics endpoints.`,
		Example: `  sitekit server start
  sitekit server start --addr :3000
  sitekit server start --db-driver postgres --db-dsn "postgres://localhost/sitekit?sslmode=disable"`,
		RunE: runServerStart,
	}

	cmd.Flags().StringVar(&serverAddr, "addr", "", "address to listen on")
	addDatabaseFlags(cmd)
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on startup")

	return cmd
}

func runServerStart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logCfg := logging.ConfigFromEnv()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	if verbose {
		logCfg.Level = "debug"
	}
	logger := logging.New(logCfg)

	db, dialect, err := database.Connect(database.Config{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
	})
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer database.Close(db)

	if err := database.Ping(db); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("connected to database", "driver", cfg.Database.Driver)

	if !skipMigrations {
		migrator := database.NewMigrator(db, dialect)
		if err := migrator.MigrateUp(); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
	}

	repos := repository.NewRepositories(db, dialect)
	handler := handlers.NewHandler(repos, logger)

	healthRegistry := health.NewRegistry(Version)
	healthRegistry.Register(checks.NewDatabaseChecker(db))

	var metricsRegistry *metrics.Registry
	if cfg.Metrics.Enabled {
		metricsRegistry = metrics.NewRegistry(cfg.Metrics.Namespace)

		poolCtx, stopPool := context.WithCancel(cmd.Context())
		defer stopPool()
		go func() {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-poolCtx.Done():
					return
				case <-ticker.C:
					metricsRegistry.ObservePoolStats(db.Stats())
				}
			}
		}()
	}

	router := api.NewRouterWithConfig(handler, api.RouterConfig{
		Logger:        logger,
		Metrics:       metricsRegistry,
		HealthHandler: health.NewHandler(healthRegistry),
	})

	server := api.NewServer(router, cfg.Server.Addr, logger)

	// Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case err := <-serverErr:
		// Start failed before any signal, e.g. the address is already bound.
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-quit:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("forced shutdown", "error", err)
		}
		if err := <-serverErr; err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	logger.Info("server stopped")

	return nil
}

// newServerMigrateCmd creates the server migrate subcommand.
func newServerMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Run database migrations to set up or update the schema.

Use --dry-run to see what migrations would be applied without
actually running them.`,
		Example: `  sitekit server migrate
  sitekit server migrate --dry-run
  sitekit server migrate --down`,
		RunE: runServerMigrate,
	}

	cmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "show pending migrations without applying")
	cmd.Flags().BoolVar(&migrateDown, "down", false, "roll back the most recent migration")
	addDatabaseFlags(cmd)

	return cmd
}

func runServerMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, dialect, err := database.Connect(database.Config{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
	})
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer database.Close(db)

	migrator := database.NewMigrator(db, dialect)

	if migrateDryRun {
		pending, err := migrator.Pending()
		if err != nil {
			return fmt.Errorf("listing pending migrations: %w", err)
		}
		if len(pending) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No pending migrations")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Pending migrations:")
		for _, m := range pending {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s_%s\n", m.Version, m.Name)
		}
		return nil
	}

	if migrateDown {
		if err := migrator.MigrateDown(); err != nil {
			return fmt.Errorf("rollback failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Rolled back one migration")
		return nil
	}

	if err := migrator.MigrateUp(); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
	return nil
}
