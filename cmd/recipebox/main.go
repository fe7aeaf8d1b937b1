package main

import (
	"fmt"
	"os"

	"recipebox/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Set up by the root command before any subcommand runs
	cfg       *config.Config
	cfgSource string
	logger    *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "recipebox",
	Short: "Search recipes, scale servings, keep a shopping list and likes",
	Long: `recipebox searches a recipe API, scales a recipe's ingredients to the
number of servings you want, and keeps a shopping list and liked recipes
in a local SQLite database.

Run "recipebox serve" for the HTTP API with live updates over SSE, or use
the subcommands directly from the shell.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, cfgSource, err = config.LoadFromPath(configPath)
		} else {
			cfg, cfgSource, err = config.Load()
		}
		if err != nil {
			return err
		}

		logger, err = newLogger(cfg.Log, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if cfgSource != "" {
			logger.Debug("config loaded", zap.String("path", cfgSource))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: search "+config.EnvConfigPath+", ./"+config.ConfigFileName+", XDG, /etc)")

	rootCmd.AddCommand(
		serveCmd,
		searchCmd,
		recipeCmd,
		listCmd,
		likesCmd,
		likeCmd,
		exportCmd,
		importCmd,
		resetCmd,
		configCmd,
	)
}

// newLogger builds the zap logger for the configured level
func newLogger(lc config.LogConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	// CLI output goes to stdout; keep logs off it
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
