package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	pg "betterbrand/internal/adapters/postgres"
	"betterbrand/internal/config"
	"betterbrand/internal/logging"
)

var (
	// Global flags
	verbose bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Better Brand Directory",
	Long: `Better Brand Directory serves a read-only catalog of brands ranked by
how much verifiable testing data they publish.

Configuration is read from the environment (DATABASE_URL, LISTEN_ADDR,
BRANDFETCH_API_KEY, ...).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil && !errors.Is(err, config.ErrNoDatabase) {
			return err
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(cfg.IsDevelopment(), level)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply pending migrations before serving")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

// connect opens the pool; every subcommand needs the database.
func connect(ctx context.Context) (*pg.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, config.ErrNoDatabase
	}
	db, err := pg.Connect(ctx, cfg.DatabaseURL, pg.Options{MaxConns: cfg.DBMaxConns})
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	return db, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
