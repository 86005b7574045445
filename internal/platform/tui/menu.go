package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-picross/internal/config"
	"github.com/vovakirdan/tui-picross/internal/core"
	"github.com/vovakirdan/tui-picross/internal/games/picross"
	"github.com/vovakirdan/tui-picross/internal/levels"
	"github.com/vovakirdan/tui-picross/internal/mode"
)

// Menu rows above the modifier toggles.
const (
	rowRules = iota
	rowPuzzle
	rowFirstModifier
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuOnStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// modifier is one toggleable layer in the setup menu.
type modifier struct {
	Title string
	Hint  string
	get   func(*mode.Config) *bool
}

var modifiers = []modifier{
	{"Time", "hearts drain over time", func(c *mode.Config) *bool { return &c.Time }},
	{"Spiders", "spiders web your hints", func(c *mode.Config) *bool { return &c.Spiders }},
	{"Alchemy", "potions heal, clear webs, double points", func(c *mode.Config) *bool { return &c.Alchemy }},
	{"Torch", "only cells near the cursor are lit", func(c *mode.Config) *bool { return &c.Torch }},
	{"Disco Fever", "fevers add bonus points", func(c *mode.Config) *bool { return &c.DiscoFever }},
	{"Enderman", "don't touch the board while it stares", func(c *mode.Config) *bool { return &c.Enderman }},
}

// PuzzleChoice is a random preset or a fixed level.
type PuzzleChoice struct {
	Label  string
	Preset config.Preset
	Level  *levels.Level
}

// PuzzleChoices lists the presets of pc followed by the given levels.
func PuzzleChoices(pc config.PicrossConfig, lvls []levels.Level) []PuzzleChoice {
	out := make([]PuzzleChoice, 0, len(pc.Difficulty.Presets)+len(lvls))
	for _, name := range pc.Difficulty.PresetNames() {
		p, err := pc.Difficulty.Preset(name)
		if err != nil {
			continue
		}
		out = append(out, PuzzleChoice{
			Label:  fmt.Sprintf("Random %s (%dx%d)", name, p.Size, p.Size),
			Preset: p,
		})
	}
	for i := range lvls {
		l := &lvls[i]
		name := l.Name
		if name == "" {
			name = l.ID
		}
		out = append(out, PuzzleChoice{
			Label: fmt.Sprintf("%s (%dx%d)", name, l.Size, l.Size),
			Level: l,
		})
	}
	return out
}

// MenuModel is the Bubble Tea model for the setup screen: rules, puzzle
// and modifiers.
type MenuModel struct {
	base           mode.BaseKind
	puzzles        []PuzzleChoice
	puzzle         int
	modes          mode.Config
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	started        bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model. The puzzle list must not be empty
// for the menu to start a game.
func NewMenuModel(pc config.PicrossConfig, puzzles []PuzzleChoice, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		base:      mode.BaseMistakes,
		puzzles:   puzzles,
		modes:     mode.Config{Tuning: pc.Modes},
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// WithSetup preselects the rule, puzzle and modifiers from an earlier game.
func (m MenuModel) WithSetup(base mode.BaseKind, s picross.Setup) MenuModel {
	m.base = base
	tuning := m.modes.Tuning
	m.modes = s.Modes
	m.modes.Tuning = tuning
	for i, p := range m.puzzles {
		if (s.Level != nil && p.Level != nil && p.Level.ID == s.Level.ID) ||
			(s.Level == nil && p.Level == nil && p.Preset == s.Preset) {
			m.puzzle = i
			break
		}
	}
	return m
}

func (m MenuModel) rows() int {
	return rowFirstModifier + len(modifiers) + 1
}

func (m MenuModel) startRow() int {
	return m.rows() - 1
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < m.rows()-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionSelect:
		if m.cursor == m.startRow() {
			if len(m.puzzles) == 0 {
				return m, nil
			}
			m.started = true
			return m, tea.Quit
		}
		m.cycle(1)

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// cycle changes the value on the current row.
func (m *MenuModel) cycle(dir int) {
	switch {
	case m.cursor == rowRules:
		if m.base == mode.BaseScore {
			m.base = mode.BaseMistakes
		} else {
			m.base = mode.BaseScore
		}
	case m.cursor == rowPuzzle:
		if n := len(m.puzzles); n > 0 {
			m.puzzle = (m.puzzle + dir + n) % n
		}
	case m.cursor < m.startRow():
		on := modifiers[m.cursor-rowFirstModifier].get(&m.modes)
		*on = !*on
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  P I C R O S S  "), m.width))
	b.WriteString("\n\n")

	rules := "Mistakes (three strikes)"
	if m.base == mode.BaseScore {
		rules = "Score (points, no strikes)"
	}
	puzzle := "no puzzles available"
	if len(m.puzzles) > 0 {
		puzzle = m.puzzles[m.puzzle].Label
	}

	lines := []string{
		m.row(rowRules, fmt.Sprintf("Rules:  < %s >", rules)),
		m.row(rowPuzzle, fmt.Sprintf("Puzzle: < %s >", puzzle)),
		"",
	}
	for i, mod := range modifiers {
		box := "[ ]"
		if *mod.get(&m.modes) {
			box = menuOnStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s %-12s %s", box, mod.Title, menuDimStyle.Render(mod.Hint))
		lines = append(lines, m.row(rowFirstModifier+i, line))
	}
	lines = append(lines, "", m.row(m.startRow(), "Start"))

	block := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Left/Right/Enter: Change  |  Tab: Scores  |  Q: Quit"
	b.WriteString(menuDimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) row(i int, text string) string {
	if i == m.cursor {
		return menuSelectedStyle.Render("> " + text)
	}
	return "  " + text
}

// Setup returns the chosen game setup.
func (m MenuModel) Setup() picross.Setup {
	s := picross.Setup{Modes: m.modes}
	if len(m.puzzles) > 0 {
		p := m.puzzles[m.puzzle]
		s.Level = p.Level
		s.Preset = p.Preset
	}
	return s
}

// GameID returns the registry id for the chosen rules.
func (m MenuModel) GameID() string {
	if m.base == mode.BaseScore {
		return picross.IDScore
	}
	return picross.IDMistakes
}

// Base returns the chosen base rule.
func (m MenuModel) Base() mode.BaseKind {
	return m.base
}

// Started returns true if the player chose Start.
func (m MenuModel) Started() bool {
	return m.started
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Base            mode.BaseKind
	Setup           picross.Setup
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the setup menu and returns the selection result. A non-nil
// previous result preselects its choices.
func RunMenu(pc config.PicrossConfig, puzzles []PuzzleChoice, cfg core.RuntimeConfig, previous *MenuResult) (MenuResult, error) {
	model := NewMenuModel(pc, puzzles, cfg)
	if previous != nil && previous.GameID != "" {
		model = model.WithSetup(previous.Base, previous.Setup)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}

// Result summarizes the menu's final state.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Started():
		result.GameID = m.GameID()
		result.Base = m.Base()
		result.Setup = m.Setup()
	default:
		result.Quit = true
	}
	return result
}
