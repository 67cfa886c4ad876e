// Package window runs skyhop in a desktop window using Ebitengine.
// It renders the same frames as the terminal front end at full pixel resolution.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/driver"
	"github.com/vovakirdan/skyhop/internal/game"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// Options configures the window front end.
type Options struct {
	Runtime core.RuntimeConfig // Window size in pixels, TPS and seed
	Config  config.GameConfig
	Store   *storage.Store
	Logger  *log.Logger
}

// overlay is the session's Presenter for the window.
type overlay struct {
	phase     game.Phase
	score     string
	highScore string
}

func (o *overlay) ShowIntro(highScore string) {
	o.phase = game.PhaseIntro
	o.highScore = highScore
}

func (o *overlay) ShowPlaying() {
	o.phase = game.PhasePlaying
}

func (o *overlay) ShowGameOver(score, highScore string) {
	o.phase = game.PhaseGameOver
	o.score = score
	o.highScore = highScore
}

// Game implements ebiten.Game. Ebitengine calls Update at a fixed TPS, so a
// Manual driver advanced once per Update is the frame loop.
type Game struct {
	session *game.Session
	driver  *driver.Manual
	canvas  *imageCanvas
	overlay *overlay
	store   *storage.Store
	logger  *log.Logger
	key     string

	width  int
	height int
}

// New creates the window game and shows the intro.
func New(opts Options) (*Game, error) {
	params, err := game.NewParams(opts.Config)
	if err != nil {
		return nil, err
	}

	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		driver:  driver.NewManual(),
		canvas:  &imageCanvas{},
		overlay: &overlay{},
		store:   opts.Store,
		logger:  logger,
		key:     opts.Config.Persistence.HighScoreKey,
		width:   rt.ScreenW,
		height:  rt.ScreenH,
	}

	sessionOpts := game.Options{
		Params:       params,
		Seed:         rt.Seed,
		Width:        float64(rt.ScreenW),
		Height:       float64(rt.ScreenH),
		HighScoreKey: g.key,
		Presenter:    g.overlay,
		Driver:       g.driver,
		Canvas:       g.canvas,
		Logger:       logger,
		OnGameOver:   g.saveRun,
	}
	if g.store != nil {
		sessionOpts.Store = g.store
	}
	g.session = game.NewSession(sessionOpts)
	g.session.ShowIntro()

	return g, nil
}

func (g *Game) saveRun(res game.Result) {
	if g.store == nil {
		return
	}
	if _, err := g.store.SaveRun(storage.Run{Key: g.key, Score: res.Score, Frames: res.Frames}); err != nil {
		g.logger.Warn("could not save run", "error", err)
	}
}

// Update handles input and advances one frame while a run is active.
func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.driver.Stop()
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace),
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		inpututil.IsKeyJustPressed(ebiten.KeyW),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.session.Activate()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.session.Restart()
	}

	g.driver.Advance(1)
	return nil
}

// Draw paints the visible surface.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.overlay.phase {
	case game.PhaseIntro:
		screen.Fill(core.ColorDark)
		g.printCentered(screen, []string{
			"S K Y H O P",
			"",
			"High score: " + g.overlay.highScore,
			"",
			"press space or click to start",
		})
	case game.PhaseGameOver:
		screen.Fill(core.ColorDark)
		g.printCentered(screen, []string{
			"GAME OVER",
			"",
			"Score: " + g.overlay.score,
			"High score: " + g.overlay.highScore,
			"",
			"press r to play again",
		})
	default:
		g.canvas.bind(screen)
		g.session.Render()
		g.canvas.unbind()
	}
}

func (g *Game) printCentered(screen *ebiten.Image, lines []string) {
	top := g.height/2 - len(lines)*debugGlyphHeight/2
	for i, line := range lines {
		x := g.width/2 - len(line)*6/2 // debug font glyphs are 6px wide
		ebitenutil.DebugPrintAt(screen, line, x, top+i*debugGlyphHeight)
	}
}

// Layout keeps one logical pixel per device-independent pixel and reports
// size changes to the session.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.Resize(float64(outsideWidth), float64(outsideHeight))
		g.logger.Debug("window resized", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	ebiten.SetWindowTitle("skyhop")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(max(opts.Runtime.TickRate, 1))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
