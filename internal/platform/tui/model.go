package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-picross/internal/config"
	"github.com/vovakirdan/tui-picross/internal/core"
	"github.com/vovakirdan/tui-picross/internal/leaderboard"
	"github.com/vovakirdan/tui-picross/internal/registry"
	"github.com/vovakirdan/tui-picross/internal/storage"
)

// Options say where a finished game is recorded.
type Options struct {
	Store           *storage.Store
	Player          string
	LeaderboardPath string
	LeaderboardSize int
}

// resizer is implemented by games that adapt to a new terminal size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// resultSource is implemented by games that describe their result for the
// score history and leaderboard.
type resultSource interface {
	ModeName() string
	PuzzleID() string
	Mistakes() int
	Elapsed() float64
	Ranked() bool
}

// failer is implemented by games that can fail to start.
type failer interface {
	Err() error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	painter    *Painter
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	standalone bool // Owns the program; quits on back
	quitting   bool
	backToMenu bool
	saved      bool // Whether the result has been recorded for current game over
	notice     string
	saveErr    error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		painter:    defaultPainter,
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// WithPainter sets the painter used by View.
func (m Model) WithPainter(p *Painter) Model {
	if p != nil {
		m.painter = p
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
		m.notice = ""
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.saved {
		// A game that never started has no result
		if f, ok := m.game.(failer); !ok || f.Err() == nil {
			m.notice, m.saveErr = m.record()
		}
		m.saved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// record stores the finished game in the score history and, for ranked
// wins, on the leaderboard. It returns a line to show the player.
func (m Model) record() (string, error) {
	res := storage.GameResult{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  m.gameState.Score,
		Won:    m.gameState.Won,
	}
	src, hasSource := m.game.(resultSource)
	if hasSource {
		res.Mode = src.ModeName()
		res.PuzzleID = src.PuzzleID()
		res.Mistakes = src.Mistakes()
		res.Duration = int(src.Elapsed())
	}

	if m.opts.Store != nil {
		if _, err := m.opts.Store.SaveResult(res); err != nil {
			return "", err
		}
	}

	if !hasSource || !src.Ranked() || !res.Won || m.opts.LeaderboardPath == "" || m.opts.Player == "" {
		return "", nil
	}
	path, err := config.ExpandHome(m.opts.LeaderboardPath)
	if err != nil {
		return "", err
	}
	board, placed, err := leaderboard.Submit(path, m.opts.LeaderboardSize, m.opts.Player, res.Score)
	if err != nil {
		return "", err
	}
	if !placed {
		return fmt.Sprintf("%d points - not on the board (top %d)", res.Score, board.Size()), nil
	}
	return fmt.Sprintf("%s made the leaderboard with %d points!", m.opts.Player, res.Score), nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".picross", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.gameState.GameOver && m.screen.Height() > 0 {
		switch {
		case m.saveErr != nil:
			m.screen.DrawTextCentered(m.screen.Height()-1, "could not save result: "+m.saveErr.Error(), core.ColorRed)
		case m.notice != "":
			m.screen.DrawTextCentered(m.screen.Height()-1, m.notice, core.ColorBrightYellow)
		}
	}

	return m.painter.Paint(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// SaveErr returns the error from recording the last finished game.
func (m Model) SaveErr() error {
	return m.saveErr
}

// Run starts the Bubble Tea program with the given game. It reports whether
// the player asked to go back to the menu.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, opts, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse (for future use)
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), fm.SaveErr()
	}
	return false, nil
}
