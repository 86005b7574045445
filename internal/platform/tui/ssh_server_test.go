package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-picross/internal/assets"
	"github.com/vovakirdan/tui-picross/internal/config"
	"github.com/vovakirdan/tui-picross/internal/errs"
	"github.com/vovakirdan/tui-picross/internal/games/picross"
	"github.com/vovakirdan/tui-picross/internal/levels"
)

func sessionPress(m SessionModel, keys ...string) (SessionModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(SessionModel)
	}
	return m, cmd
}

func TestSessionFlow(t *testing.T) {
	pc := config.DefaultPicrossConfig()
	m := NewSessionModel(Options{}, pc, PuzzleChoices(pc, []levels.Level{topRow}), testRuntime())

	m, _ = sessionPress(m, "tab")
	if m.screen != screenScores {
		t.Fatalf("screen = %d, want scores", m.screen)
	}
	m, cmd := sessionPress(m, "esc")
	if m.screen != screenMenu || m.quitting {
		t.Fatalf("screen = %d quitting = %v after esc", m.screen, m.quitting)
	}
	if cmd != nil {
		t.Error("leaving the scoreboard ended the session")
	}

	m, _ = sessionPress(m, "right") // score rules
	for i := 0; i < 8; i++ {
		m, _ = sessionPress(m, "down")
	}
	m, _ = sessionPress(m, "enter")
	if m.screen != screenGame || m.game == nil {
		t.Fatalf("screen = %d, want game", m.screen)
	}
	if m.game.game.ID() != "picross_score" {
		t.Errorf("game = %q", m.game.game.ID())
	}

	m, _ = sessionPress(m, "p")
	next, _ := m.Update(TickMsg{})
	m = next.(SessionModel)
	m, _ = sessionPress(m, "esc")
	if m.screen != screenMenu {
		t.Fatalf("screen = %d, want menu after back", m.screen)
	}
	if m.menu.Base() != "score" {
		t.Error("menu lost the previous rules")
	}

	m, cmd = sessionPress(m, "q")
	if !m.quitting || cmd == nil {
		t.Error("q did not end the session")
	}
	if m.View() != "" {
		t.Error("view not cleared")
	}
}

func TestSessionChecksConfiguredAssets(t *testing.T) {
	pc := config.DefaultPicrossConfig()
	m := NewSessionModel(Options{}, pc, PuzzleChoices(pc, []levels.Level{topRow}), testRuntime())
	m.assets = assets.NewManifest(nil, nil)

	for i := 0; i < 8; i++ {
		m, _ = sessionPress(m, "down")
	}
	m, _ = sessionPress(m, "enter")
	if m.screen != screenGame || m.game == nil {
		t.Fatalf("screen = %d, want game", m.screen)
	}

	g, ok := m.game.game.(*picross.Game)
	if !ok {
		t.Fatalf("game is %T", m.game.game)
	}
	if !errors.Is(g.Err(), errs.ErrAssetLoad) {
		t.Errorf("Err = %v, want ErrAssetLoad", g.Err())
	}
}
