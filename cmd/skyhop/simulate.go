package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/driver"
	"github.com/vovakirdan/skyhop/internal/game"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var (
	flagSimFrames   int
	flagSimLift     int
	flagSimWidth    float64
	flagSimHeight   float64
	flagSimRealtime bool
	flagSimRecord   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless, seeded simulation",
	Long: `Play one run without a screen and print the result.

The entity flaps every --lift-every frames. With a fixed --seed the
result is reproducible, which makes this useful for tuning configs.
By default frames run as fast as possible; --realtime paces them at --fps.

Examples:
  skyhop simulate --seed 42
  skyhop simulate --seed 42 --lift-every 18 --frames 10000
  skyhop simulate --preset classic --width 800 --height 800
  skyhop simulate --realtime --record`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimFrames, "frames", 5000, "Maximum number of frames")
	simulateCmd.Flags().IntVar(&flagSimLift, "lift-every", 20, "Flap every N frames (0 = never)")
	simulateCmd.Flags().Float64Var(&flagSimWidth, "width", 640, "Play area width in pixels")
	simulateCmd.Flags().Float64Var(&flagSimHeight, "height", 384, "Play area height in pixels")
	simulateCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace frames at --fps")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the run and high score to --db")
}

// simulation is one headless run.
type simulation struct {
	session *game.Session
	frames  int
	done    chan game.Result
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	params, err := game.NewParams(cfg)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var store *storage.Store
	if flagSimRecord {
		store = openStore(logger)
		if store != nil {
			defer store.Close()
		}
	}
	key := cfg.Persistence.HighScoreKey

	sim := &simulation{done: make(chan game.Result, 1)}
	manual := driver.NewManual()
	ticker := driver.NewTicker(flagFPS, logger)

	var base driver.Driver = manual
	if flagSimRealtime {
		base = ticker
	}

	opts := game.Options{
		Params:       params,
		Seed:         seed,
		Width:        flagSimWidth,
		Height:       flagSimHeight,
		HighScoreKey: key,
		Logger:       logger,
		Driver: driver.Hooked{
			Driver: base,
			Before: sim.beforeFrame,
		},
		OnGameOver: func(res game.Result) {
			if store != nil {
				if _, err := store.SaveRun(storage.Run{Key: key, Score: res.Score, Frames: res.Frames}); err != nil {
					logger.Warn("could not save run", "error", err)
				}
			}
			sim.done <- res
		},
	}
	if store != nil {
		opts.Store = store
	}
	sim.session = game.NewSession(opts)

	logger.Debug("simulation started", "seed", seed, "width", flagSimWidth, "height", flagSimHeight, "realtime", flagSimRealtime)
	sim.session.Start()

	var st *game.State
	var res game.Result
	ended := false

	if flagSimRealtime {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		limit := time.Duration(flagSimFrames) * driver.Interval(flagFPS)

		select {
		case res = <-sim.done:
			ended = true
		case <-time.After(limit):
		case <-ctx.Done():
		}
		ticker.Stop()
		ticker.Do(func() { st = sim.session.State().Clone() })
	} else {
		manual.Advance(flagSimFrames)
		manual.Stop()
		st = sim.session.State()
		select {
		case res = <-sim.done:
			ended = true
		default:
		}
	}

	printSimulation(seed, st, res, ended)
	return nil
}

// beforeFrame flaps on the configured cadence.
func (s *simulation) beforeFrame() {
	if flagSimLift > 0 && s.frames%flagSimLift == 0 {
		s.session.Lift()
	}
	s.frames++
}

func printSimulation(seed int64, st *game.State, res game.Result, ended bool) {
	outcome := "frame limit reached"
	if ended {
		outcome = "collision"
	}

	fmt.Printf("Seed:       %d\n", seed)
	fmt.Printf("Outcome:    %s\n", outcome)
	fmt.Printf("Score:      %d\n", st.Score)
	fmt.Printf("Frames:     %d\n", st.Frame)
	fmt.Printf("High score: %d\n", st.HighScore)
	if ended && res.NewHighScore {
		fmt.Println()
		fmt.Println("New high score!")
	}
}
