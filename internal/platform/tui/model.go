package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/raster"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// footerRows is the number of terminal rows below the playfield:
// one status line and one help line.
const footerRows = 2

// Options configures a terminal Pong session.
type Options struct {
	Config  config.PongConfig
	Runtime core.RuntimeConfig

	// Logger receives session events. Nil discards them.
	Logger *log.Logger

	// ScreenshotDir is where ctrl+s writes PNG frames.
	// Empty means ~/.pong/screenshots.
	ScreenshotDir string

	// Clock is used for key hold tracking. Nil means time.Now.
	Clock func() time.Time
}

// Model is the Bubble Tea model running a single hot-seat match.
type Model struct {
	game     *pong.Game
	screen   *core.Screen
	surface  *ScreenSurface
	keys     KeyMap
	help     help.Model
	holds    *holdTracker
	logger   *log.Logger
	cfg      config.PongConfig
	runtime  core.RuntimeConfig
	shotDir  string
	clock    func() time.Time
	last     pong.Snapshot
	status   string
	quitting bool
}

// NewModel creates a model with a fresh match and draws its first frame.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = defaultScreenshotDir()
	}

	cfg := opts.Config
	screen := core.NewScreen(rt.ScreenW, fieldRows(rt.ScreenH))
	surface := NewScreenSurface(screen, cfg.Field.Width, cfg.Field.Height,
		core.NewRect(0, 0, screen.Width(), screen.Height()))

	game := pong.New(cfg, rand.New(rand.NewSource(rt.Seed)))
	game.Draw(surface)

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		game:    game,
		screen:  screen,
		surface: surface,
		keys:    NewKeyMap(cfg.Controls),
		help:    h,
		holds:   newHoldTracker(cfg.Input.HoldInitial, cfg.Input.HoldRepeat),
		logger:  logger,
		cfg:     cfg,
		runtime: rt,
		shotDir: shotDir,
		clock:   clock,
		last:    game.Snapshot(),
	}
}

// Game returns the running match.
func (m Model) Game() *pong.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("match started", "seed", m.runtime.Seed,
		"field", fmt.Sprintf("%gx%g", m.cfg.Field.Width, m.cfg.Field.Height),
		"interval", m.cfg.Timing.Interval)
	return tickCmd(m.cfg.Timing.Interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Every press, including terminal
// auto-repeat, is delivered to the game as a key-down.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		s := m.game.Snapshot()
		m.logger.Info("match ended", "score", fmt.Sprintf("%d-%d", s.Score1, s.Score2), "ticks", s.Tick)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	c := m.keys.Control(msg)
	if c == core.ControlNone {
		return m, nil
	}

	if c == core.ControlPause {
		m.game.KeyDown(c)
		m.logger.Debug("pause toggled", "paused", m.game.Paused())
		return m, nil
	}

	m.holds.press(c, m.clock())
	m.game.KeyDown(c)
	return m, nil
}

// handleResize reprojects the playfield onto the new terminal size.
// The match carries on; only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, fieldRows(msg.Height))
	m.screen.Clear()
	m.surface.SetArea(core.NewRect(0, 0, m.screen.Width(), m.screen.Height()))
	m.help.Width = msg.Width

	m.game.Draw(m.surface)
	return m, nil
}

// handleTick releases controls whose keys went quiet, then advances the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, c := range m.holds.expired(m.clock()) {
		m.game.KeyUp(c)
	}

	m.game.Tick(m.surface)

	snap := m.game.Snapshot()
	if p := snap.Scored(m.last); p != 0 {
		m.logger.Debug("point", "player", p, "score", fmt.Sprintf("%d-%d", snap.Score1, snap.Score2), "tick", snap.Tick)
	}
	m.last = snap

	return m, tickCmd(m.cfg.Timing.Interval)
}

// saveScreenshot rasterises the current match state into a PNG.
func (m *Model) saveScreenshot() {
	s, err := raster.New(m.cfg.Field.Width, m.cfg.Field.Height, raster.Options{})
	if err != nil {
		m.logger.Error("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.game.Draw(s)

	name := fmt.Sprintf("pong_%s.png", m.clock().Format("20060102_150405.000"))
	path := filepath.Join(m.shotDir, name)
	if err := s.SavePNG(path); err != nil {
		m.logger.Error("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}

	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

// View renders the playfield, the status line and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := statusStyle.Render(m.status)
	if m.game.Paused() {
		status = pausedStyle.Render("PAUSED") + " " + status
	}

	return RenderScreen(m.screen) + "\n" + status + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the match is quit.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func fieldRows(screenH int) int {
	return max(1, screenH-footerRows)
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".pong", "screenshots")
	}
	return filepath.Join(home, ".pong", "screenshots")
}
