// Package main provides the CLI entrypoint for bountycatch. It wires
// subcommands (add, count, print, export, delete), loads configuration, and
// initializes logging.
package main

import (
	"bountycatch/internal/config"
	"bountycatch/pkg/logger"
	"bountycatch/pkg/storage/redisstore"
	"context"
	"flag"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getStorage creates a Redis-backed domain store using configuration values
// and returns it along with a cleanup function to close the connection pool.
// A store that cannot be reached is fatal: every subcommand needs it.
func getStorage(ctx context.Context, cfg *config.Config) (*redisstore.Redis, func()) {
	strg, err := redisstore.New(ctx, redisstore.Options{
		Host:           cfg.Redis.Host,
		Port:           cfg.Redis.Port,
		DB:             cfg.Redis.DB,
		MaxConnections: cfg.Redis.MaxConnections,
		PoolTimeout:    cfg.Redis.PoolTimeout,
		DialTimeout:    cfg.Redis.DialTimeout,
		ReadTimeout:    cfg.Redis.ReadTimeout,
		WriteTimeout:   cfg.Redis.WriteTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to domain store", zap.Error(err))
	}

	return strg, func() {
		if err := strg.Close(); err != nil {
			logger.Warn(ctx, "could not close domain store client", zap.Error(err))
		}
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:           "bountycatch",
		Short:         "Manages per-project domain sets for reconnaissance workflows",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following lines are just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Bool("v", false, "Enable verbose logging")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx := context.Background()

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger.Setup("debug", cfg.Logging.Format)
		}
	}

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		addCommand(cfg),
		countCommand(cfg),
		printCommand(cfg),
		exportCommand(cfg),
		deleteCommand(cfg),
	)

	err = rootCmd.Execute()
	if err != nil {
		logger.Error(ctx, "command failed", zap.Error(err))
	}
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
