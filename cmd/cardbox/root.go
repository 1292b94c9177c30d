package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cardbox-app/cardbox"
	"github.com/cardbox-app/cardbox/internal/config"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	boxPath string
	backend string
	verbose bool

	cfg config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cardbox",
	Short: "A pinboard note keeper for your terminal",
	Long: `cardbox keeps short text and checklist notes in a single local box.
Notes can be pinned, colored, searched, and reordered; the box is one
JSON blob on disk, importable and exportable as-is.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		cfg, err = config.Parse(cfgFile)
		if err != nil {
			fatal("Failed to load configuration", err)
		}

		level := parseLevel(cfg.LogLevel)
		if verbose {
			level = slog.LevelDebug
		}

		var handler slog.Handler
		if cfg.Pretty {
			handler = tint.NewHandler(os.Stderr, &tint.Options{
				Level:      level,
				TimeFormat: time.Kitchen,
			})
		} else {
			handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})
		}
		slog.SetDefault(slog.New(handler))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&boxPath, "box", "", "Box location (overrides config)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Storage backend: file or sqlite (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// effectiveBackend resolves the backend with flag precedence.
func effectiveBackend() string {
	if backend != "" {
		return backend
	}
	if cfg.Backend != "" {
		return cfg.Backend
	}
	return cardbox.BackendFile
}

// effectivePath resolves the box location with flag precedence.
func effectivePath() (string, error) {
	if boxPath != "" {
		return boxPath, nil
	}
	c := cfg
	c.Backend = effectiveBackend()
	return c.ResolvePath()
}

// openSession loads the box according to config and flags.
func openSession(ctx context.Context) (*cardbox.Session, error) {
	path, err := effectivePath()
	if err != nil {
		return nil, err
	}
	return cardbox.Open(ctx, path,
		cardbox.WithBackend(effectiveBackend()),
		cardbox.WithLogger(slog.Default()),
		cardbox.WithDefaultColor(cfg.DefaultColor),
	)
}
