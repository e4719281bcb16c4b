// Package cli implements the command-line interface for gocube-perm.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_perm"
	"github.com/SeamusWaldron/gocube_perm/internal/config"
)

const version = "0.2.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool

	// cfg is loaded before any subcommand runs.
	cfg config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "gocube-perm",
	Short: "Rubik's cube permutation toolkit",
	Long: `gocube-perm treats a 3x3 cube as a permutation of its 48 movable facelets.

Compose move sequences, inspect their cycle structure and order, invert and
simplify them, step through them in an interactive player, keep a catalog
of named algorithms, or follow a GoCube smart cube live over Bluetooth.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $GOCUBE_PERM_CONFIG or ~/.config/gocube_perm/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Algorithm catalog path (overrides database.path)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.SilenceErrors = true
}

// setup loads configuration, applies flag overrides and installs the logger.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dbPath != "" {
		c.Database.Path = dbPath
	}
	if verbose {
		c.Log.Level = "debug"
	}
	cfg = c

	gocube.SetLogger(newLogger(cmd.ErrOrStderr(), c.Log))
	return nil
}

func newLogger(w io.Writer, lc config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(lc.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(lc.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
