package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Each terminal cell shows surface.cell_width x surface.cell_height
play-area pixels, so the playfield follows the terminal size.

Controls:
  Space/Up/W/Click  - Start, then flap
  R                 - Restart (after game over)
  Q/Esc/Ctrl+C      - Quit

Examples:
  skyhop play
  skyhop play --preset hard
  skyhop play --config ./my-skyhop.yaml --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns stdout, so logs go to a file.
	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	runErr := tui.Run(tui.Options{
		Runtime: terminalRuntime(),
		Config:  cfg,
		Store:   store,
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
