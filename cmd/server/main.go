package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/WuFaChieh/Mostra-exhibition/internal/config"
)

var (
	configPath string
	addr       string
	verbose    bool

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mostra",
	Short: "Mostra exhibition discovery service",
	Long: `Mostra serves the exhibition catalogue, the swipe discovery deck and
per-session bookmarks over a JSON API.

Run without a subcommand to start the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if addr != "" {
			cfg.Server.Addr = addr
		}

		zc := zap.NewProductionConfig()
		if level, err := zap.ParseAtomicLevel(cfg.Logging.Level); err == nil {
			zc.Level = level
		}
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in catalogue into the SQLite database",
	Long: `Creates the SQLite catalogue at storage.sqlite_path (or MOSTRA_DB) and
inserts the built-in exhibitions. Records that already exist are left alone.`,
	RunE: runSeed,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "mostra.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
