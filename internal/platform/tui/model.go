package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/game"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// statusLines is the number of terminal rows reserved below the play area.
const statusLines = 1

// Options configures the terminal front end.
type Options struct {
	Runtime core.RuntimeConfig // Initial terminal size, tick rate and seed
	Config  config.GameConfig
	Store   *storage.Store // Optional; the game works without persistence
	Logger  *log.Logger
}

// Model is the Bubble Tea model for the game.
type Model struct {
	session  *game.Session
	driver   *teaDriver
	surfaces *surfaces
	screen   *core.Screen
	raster   *core.Raster
	store    *storage.Store
	logger   *log.Logger
	key      string

	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates the model and shows the intro surface.
func NewModel(opts Options) (Model, error) {
	params, err := game.NewParams(opts.Config)
	if err != nil {
		return Model{}, err
	}

	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		driver:   newTeaDriver(rt.TickRate),
		surfaces: &surfaces{},
		screen:   core.NewScreen(rt.ScreenW, max(rt.ScreenH-statusLines, 1)),
		store:    opts.Store,
		logger:   logger,
		key:      opts.Config.Persistence.HighScoreKey,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		width:    rt.ScreenW,
		height:   rt.ScreenH,
	}
	m.raster = core.NewRaster(m.screen, opts.Config.Surface.CellWidth, opts.Config.Surface.CellHeight)
	w, h := m.raster.PlaySize()

	sessionOpts := game.Options{
		Params:       params,
		Seed:         rt.Seed,
		Width:        w,
		Height:       h,
		HighScoreKey: m.key,
		Presenter:    m.surfaces,
		Driver:       m.driver,
		Canvas:       m.raster,
		Logger:       logger,
		OnGameOver:   m.saveRun,
	}
	if m.store != nil {
		sessionOpts.Store = m.store
	}
	m.session = game.NewSession(sessionOpts)
	m.session.ShowIntro()

	return m, nil
}

// saveRun appends a finished run to the history.
func (m Model) saveRun(res game.Result) {
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(storage.Run{Key: m.key, Score: res.Score, Frames: res.Frames}); err != nil {
		// Continue without storage - game still works
		m.logger.Warn("could not save run", "error", err)
	}
}

// Init sets the window title. The frame loop starts with the first run.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("skyhop")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.apply(core.ActionActivate)
		}
		return m, m.driver.Arm()

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.driver.Handle(msg)
		return m, m.driver.Arm()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.driver.Stop()
		return m, tea.Quit
	}

	m.apply(action)
	return m, m.driver.Arm()
}

// apply forwards an action to the session. Inputs take effect immediately.
func (m Model) apply(action core.Action) {
	switch action {
	case core.ActionActivate:
		started := m.session.Phase() == game.PhaseIntro
		m.session.Activate()
		if started {
			m.session.Render()
		}
	case core.ActionRestart:
		m.session.Restart()
		m.session.Render()
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(msg.Height-statusLines, 1))

	w, h := m.raster.PlaySize()
	m.session.Resize(w, h)
	m.session.Render()
	m.logger.Debug("terminal resized", "cols", msg.Width, "rows", msg.Height, "play_w", w, "play_h", h)

	return m, nil
}

// View renders the visible surface.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.surfaces.phase {
	case game.PhaseIntro:
		body = introPanel(m.surfaces.highScore, m.width, m.screen.Height())
	case game.PhaseGameOver:
		body = gameOverPanel(m.surfaces.score, m.surfaces.highScore, m.width, m.screen.Height())
	default:
		body = RenderScreen(m.screen)
	}

	status := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}

// Session exposes the underlying game session.
func (m Model) Session() *game.Session {
	return m.session
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks flap too
	)

	_, err = p.Run()
	return err
}
