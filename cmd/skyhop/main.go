// skyhop is a gap-flying arcade game for the terminal and the desktop.
//
// Usage:
//
//	skyhop play              - Play in the terminal
//	skyhop window            - Play in a desktop window
//	skyhop simulate          - Run a headless, seeded simulation
//	skyhop scores            - Show the high score and run history
//	skyhop config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.skyhop/scores.db)
//	--config <path>      - Path to a custom config YAML
//	--preset <name>      - Difficulty preset: easy, normal, hard, classic
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log destination for the terminal game
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyhop",
	Short: "skyhop - fly through the gaps",
	Long: `skyhop is a one-button arcade game. Your entity falls under gravity;
flap to climb and fly through the gaps between scrolling obstacles.
Every obstacle pair you clear scores a point.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  simulate  - Run a headless, seeded simulation
  scores    - Show the high score and run history
  config    - Print the effective configuration

Examples:
  skyhop play
  skyhop play --preset easy
  skyhop window --width 800 --height 600
  skyhop simulate --seed 42 --lift-every 20
  skyhop scores --plain`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyhop/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, classic")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.skyhop/skyhop.log", "Log file used while the terminal game owns the screen")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the game config from --config and --preset.
func loadConfig() (config.GameConfig, error) {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.GameConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// newLogger builds the structured logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyhop",
		Level:           level,
	}), nil
}

// openLogFile opens --log-file for appending, creating its directory.
func openLogFile() (*os.File, error) {
	path, err := expandHome(flagLogFile)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// openStore opens the scores database. Failures are logged and the game
// runs without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		return nil
	}
	return store
}

// terminalRuntime returns the runtime config sized to the terminal.
func terminalRuntime() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	return rt
}
