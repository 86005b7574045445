package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-picross/internal/config"
	"github.com/vovakirdan/tui-picross/internal/leaderboard"
	"github.com/vovakirdan/tui-picross/internal/registry"
	"github.com/vovakirdan/tui-picross/internal/storage"
)

const (
	maxScores      = 100           // Max results to load per game
	leaderboardTab = "leaderboard" // Pseudo game id of the plain-text leaderboard
	chromeLines    = 10            // Title, tabs, borders, footer and help
)

var (
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Help    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.PrevTab, k.Back, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextTab, k.PrevTab},
		{k.Back, k.Quit, k.Help},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the score history of each game and the
// leaderboard, one tab each.
type ScoreboardModel struct {
	tabs      []registry.GameInfo
	tab       int
	opts      Options
	results   []storage.GameResult
	entries   []leaderboard.Entry
	stats     *storage.GameStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a new scoreboard model. Only the store and the
// leaderboard fields of opts are used.
func NewScoreboardModel(opts Options, width, height int) ScoreboardModel {
	tabs := registry.List()
	if opts.LeaderboardPath != "" {
		tabs = append(tabs, registry.GameInfo{ID: leaderboardTab, Title: "Leaderboard"})
	}

	m := ScoreboardModel{
		tabs:   tabs,
		opts:   opts,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.load()
	return m
}

// current returns the id of the selected tab.
func (m ScoreboardModel) current() string {
	if len(m.tabs) == 0 {
		return ""
	}
	return m.tabs[m.tab].ID
}

// load reads the data of the selected tab and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.results, m.entries, m.stats, m.loadErr = nil, nil, nil, nil

	switch id := m.current(); {
	case id == "":
	case id == leaderboardTab:
		m.entries, m.loadErr = loadBoard(m.opts)
	case m.opts.Store != nil:
		m.results, m.loadErr = m.opts.Store.TopScores(id, maxScores)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.opts.Store.GetGameStats(id)
		}
	}

	m.table = m.buildTable()
}

func loadBoard(opts Options) ([]leaderboard.Entry, error) {
	path, err := config.ExpandHome(opts.LeaderboardPath)
	if err != nil {
		return nil, err
	}
	b, err := leaderboard.Load(path, opts.LeaderboardSize)
	if err != nil {
		return nil, err
	}
	return b.Entries, nil
}

// buildTable lays out columns for the width and fills the rows.
func (m ScoreboardModel) buildTable() table.Model {
	inner := max(30, m.width-6) // Panel border and padding

	var columns []table.Column
	var rows []table.Row
	if m.current() == leaderboardTab {
		columns = []table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Name", Width: min(24, inner-20)},
			{Title: "Score", Width: 8},
		}
		for i, e := range m.entries {
			rows = append(rows, table.Row{fmt.Sprintf("#%d", i+1), e.Name, fmt.Sprint(e.Score)})
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 6},
			{Title: "Puzzle", Width: 10},
			{Title: "Won", Width: 4},
			{Title: "Date", Width: 12},
		}
		// The mode column only appears when there is room for it
		wide := inner-48 >= 12
		if wide {
			columns = append(columns, table.Column{Title: "Mode", Width: min(40, inner-48)})
		}
		for i, r := range m.results {
			won := "no"
			if r.Won {
				won = "yes"
			}
			row := table.Row{fmt.Sprintf("#%d", i+1), fmt.Sprint(r.Score), r.PuzzleID, won, r.CreatedAt.Format("Jan 02 15:04")}
			if wide {
				row = append(row, r.Mode)
			}
			rows = append(rows, row)
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-chromeLines)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			if n := len(m.tabs); n > 0 {
				m.tab = (m.tab + 1) % n
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			if n := len(m.tabs); n > 0 {
				m.tab = (m.tab - 1 + n) % n
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.buildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SCORES"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.tabs))
	for i, g := range m.tabs {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(tabLine) > m.width && len(m.tabs) > 0 {
		tabLine = activeTabStyle.Render("< " + m.tabs[m.tab].Title + " >")
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panelStyle.Render(m.body())))
	b.WriteString("\n")

	if s := m.stats; s != nil && s.GamesCount > 0 {
		footer := fmt.Sprintf("%d games  |  %.0f%% won  |  best %d  |  average %.0f",
			s.GamesCount, s.WinRate()*100, s.HighScore, s.AvgScore)
		b.WriteString(menuDimStyle.Render(centerText(footer, m.width)))
		b.WriteString("\n")
	}

	b.WriteString(menuDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// body renders the table, an error or an empty message.
func (m ScoreboardModel) body() string {
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(2, 4).
			Render("Could not load scores:\n" + m.loadErr.Error())
	case m.current() == leaderboardTab && len(m.entries) == 0:
		return empty.Render("The leaderboard is empty.\nWin a score game to get on it!")
	case m.current() != leaderboardTab && len(m.results) == 0:
		return empty.Render("No games recorded yet.\nSolve a puzzle to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(opts Options, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(opts, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
