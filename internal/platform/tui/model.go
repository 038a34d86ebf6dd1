package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/binary-swipes/internal/core"
	"github.com/vovakirdan/binary-swipes/internal/registry"
	"github.com/vovakirdan/binary-swipes/internal/storage"
)

// OutcomeQuit marks a run the player abandoned.
const OutcomeQuit = "quit"

// RunRecorder stores finished runs. *storage.Store satisfies it.
type RunRecorder interface {
	SaveRun(run storage.Run) (string, error)
}

// Model is the Bubble Tea model for a running game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	runs       RunRecorder
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
	standalone bool // Owns the program, so going back ends it
	loop       uint64
}

// NewModel creates a new Bubble Tea model for the given game.
// runs may be nil, in which case nothing is recorded.
func NewModel(game registry.Game, runs RunRecorder, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		runs:       runs,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		loop:       newLoopID(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.loop, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.recordAbandoned()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.recordAbandoned()
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps play state when the game can adapt in place.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the run once per game over; a retry starts a new one.
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun(m.gameState.Outcome)
		m.runSaved = true
	} else if !m.gameState.GameOver {
		m.runSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.loop, m.config.TickRate)
}

// recordAbandoned saves a run the player left before it ended.
func (m *Model) recordAbandoned() {
	if m.runSaved || m.gameState.Score == 0 {
		return
	}
	m.saveRun(OutcomeQuit)
	m.runSaved = true
}

func (m *Model) saveRun(outcome string) {
	if m.runs == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.runs.SaveRun(storage.Run{
		Mode:    m.game.ID(),
		Level:   m.gameState.Level,
		Score:   m.gameState.Score,
		Outcome: outcome,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".swipes", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state seen on the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts a Bubble Tea program for a single game.
func Run(game registry.Game, runs RunRecorder, cfg core.RuntimeConfig) error {
	model := NewModel(game, runs, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
