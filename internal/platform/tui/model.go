package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shapeclick/internal/config"
	"github.com/vovakirdan/shapeclick/internal/core"
	"github.com/vovakirdan/shapeclick/internal/quiz"
)

// Options configure a Model. The zero value is usable.
type Options struct {
	// Logger receives session events. Nil discards them.
	Logger *log.Logger

	// Renderer styles the board. Nil uses the default renderer.
	Renderer *lipgloss.Renderer

	// ScreenshotDir is where ctrl+s writes the board.
	// Defaults to ~/.shapeclick/screenshots.
	ScreenshotDir string

	// NoScreenshots disables ctrl+s, e.g. for remote players whose
	// files would land on the server.
	NoScreenshots bool
}

// Model is the Bubble Tea model for one quiz session.
type Model struct {
	session    *quiz.Session
	screen     *core.Screen
	styler     *Styler
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	config     core.RuntimeConfig
	shotDir    string
	inputFrame core.InputFrame
	err        error
	quitting   bool
}

// NewModel creates a model running a fresh quiz session. The bottom row of
// the terminal holds the help line; the rest is the board.
func NewModel(quizCfg config.QuizConfig, cfg core.RuntimeConfig, opts Options) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.TickRate = quizCfg.Gameplay.TickRate

	screen := core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH))
	measure := NewMeasurer(quizCfg.Layout.ViewWidth, screen)
	session, err := quiz.NewSession(quizCfg, measure, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("session", session.ID().String()[:8])

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".shapeclick", "screenshots")
	}

	keys := DefaultKeyMap()
	keys.Screenshot.SetEnabled(!opts.NoScreenshots)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session:    session,
		screen:     screen,
		styler:     NewStyler(opts.Renderer),
		keys:       keys,
		help:       h,
		logger:     logger,
		config:     cfg,
		shotDir:    shotDir,
		inputFrame: core.NewInputFrame(),
	}, nil
}

func boardHeight(termH int) int {
	return max(termH-1, 0)
}

// Session returns the quiz session driven by the model.
func (m Model) Session() *quiz.Session {
	return m.session
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Init starts the tick loop. The first tick deals the first round.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session created", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.logger.Info("quit", "score", m.session.Score())
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}

	case core.ActionRestart:
		if m.session.Status().Terminal() {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleMouse turns a left press on the board into a click for the next tick.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if p, ok := m.viewport().Click(msg.X, msg.Y); ok {
		m.inputFrame.SetClick(p)
	}
	return m, nil
}

// handleResize processes window resize events. The session keeps running;
// only the mapping to cells changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the session by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Hold the clock until the board has a size to measure text against.
	if m.screen.Width() == 0 || m.screen.Height() == 0 {
		return m, tickCmd(m.config.TickRate)
	}

	res, err := m.session.Advance(m.inputFrame)
	m.inputFrame.Clear()
	m.logEvents(res.Events)
	if err != nil {
		m.logger.Error("tick failed", "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(events []quiz.Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case quiz.GameStartedEvent:
			m.logger.Info("game started", "game", ev.Game, "ticks", ev.Countdown)
		case quiz.RoundStartedEvent:
			m.logger.Debug("round dealt", "round", ev.Round, "clue", ev.Clue)
		case quiz.AnsweredEvent:
			m.logger.Info("answered",
				"round", ev.Round,
				"outcome", ev.Outcome,
				"clicked", ev.Clicked.Describe(),
				"score", ev.Score,
			)
		case quiz.GameOverEvent:
			m.logger.Info("game over", "status", ev.Status, "reason", ev.Reason, "score", ev.Score)
		}
	}
}

func (m Model) viewport() Viewport {
	cfg := m.session.Config().Layout
	return NewViewport(cfg.ViewWidth, cfg.ViewHeight, m.screen.Width(), m.screen.Height())
}

// saveScreenshot writes the board as plain text.
func (m Model) saveScreenshot() (string, error) {
	Draw(m.screen, m.session.Frame())

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("shapeclick_%s_%s.txt", m.session.ID().String()[:8], timestamp)
	path := filepath.Join(m.shotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the board and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.session.Frame())

	keys := m.keys
	keys.Restart.SetEnabled(m.session.Status().Terminal())
	return m.styler.RenderScreen(m.screen) + "\n" + m.help.View(keys)
}

// Run starts the Bubble Tea program for a local quiz session.
func Run(quizCfg config.QuizConfig, cfg core.RuntimeConfig, opts Options) error {
	model, err := NewModel(quizCfg, cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
