package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/platform/window"
)

var (
	flagWindowWidth  int
	flagWindowHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a resizable desktop window.

The play area is the window's size in pixels.

Controls:
  Space/Up/W/Click  - Start, then flap
  R                 - Restart (after game over)
  Q/Esc             - Quit

Examples:
  skyhop window
  skyhop window --preset classic --width 1280 --height 800`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowWidth, "width", 800, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagWindowHeight, "height", 600, "Window height in pixels")
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	runErr := window.Run(window.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  flagWindowWidth,
			ScreenH:  flagWindowHeight,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Config: cfg,
		Store:  store,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
