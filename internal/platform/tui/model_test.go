package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-colorhunt/internal/core"
	"github.com/vovakirdan/tui-colorhunt/internal/games/colorhunt"
)

func newTestModel(t *testing.T) (Model, *colorhunt.Game) {
	t.Helper()
	game := colorhunt.New()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, FrameRate: 30, Seed: 7}
	m := NewModel(game, cfg, log.New(io.Discard))
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should start the frame loop")
	}
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelStartsCountdownOnConfirm(t *testing.T) {
	m, _ := newTestModel(t)

	// Clock messages before play are ignored
	m, cmd := update(t, m, ClockMsg{Gen: m.clockGen})
	if cmd != nil || !m.state.Waiting {
		t.Error("clock should not run on the instructions screen")
	}

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("starting play should schedule the countdown")
	}
	if !m.state.Running() || m.state.SecondsLeft != 60 {
		t.Errorf("state after start = %+v", m.state)
	}
	if m.clockGen != 1 {
		t.Errorf("clockGen = %d, expected 1", m.clockGen)
	}
}

func TestModelCountdownToGameOverAndRestart(t *testing.T) {
	m, game := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	answer := game.Session().CurrentRound().Text
	m, _ = update(t, m, runeKey([]rune(colorhunt.ShortcutKey(answer))[0]))
	if m.state.Score != 1 {
		t.Fatalf("Score = %d after correct key, expected 1", m.state.Score)
	}

	var cmd tea.Cmd
	for i := 0; i < 60; i++ {
		m, cmd = update(t, m, ClockMsg{Gen: m.clockGen})
	}
	if !m.state.GameOver || m.state.SecondsLeft != 0 {
		t.Fatalf("state after 60 clock messages = %+v", m.state)
	}
	if cmd != nil {
		t.Error("clock should stop at game over")
	}

	// Extra clock messages are ignored
	m, _ = update(t, m, ClockMsg{Gen: m.clockGen})
	if m.state.Score != 1 {
		t.Error("clock after game over changed state")
	}

	oldGen := m.clockGen
	m, cmd = update(t, m, runeKey('y'))
	if cmd == nil || m.clockGen == oldGen {
		t.Fatal("play again should start a new clock chain")
	}
	if !m.state.Running() || m.state.Score != 0 || m.state.SecondsLeft != 60 {
		t.Errorf("state after restart = %+v", m.state)
	}

	// A tick from the previous chain must not count
	m, _ = update(t, m, ClockMsg{Gen: oldGen})
	if m.state.SecondsLeft != 60 {
		t.Errorf("stale clock message ticked: SecondsLeft = %d", m.state.SecondsLeft)
	}
	m, _ = update(t, m, ClockMsg{Gen: m.clockGen})
	if m.state.SecondsLeft != 59 {
		t.Errorf("current clock message did not tick: SecondsLeft = %d", m.state.SecondsLeft)
	}
}

func TestModelDeclineQuitsAfterGameOver(t *testing.T) {
	m, _ := newTestModel(t)

	// n means nothing before game over
	m, cmd := update(t, m, runeKey('n'))
	if m.quitting || cmd != nil {
		t.Error("n should not quit during instructions")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for m.state.Running() {
		m, _ = update(t, m, ClockMsg{Gen: m.clockGen})
	}

	m, cmd = update(t, m, runeKey('n'))
	if !m.quitting || cmd == nil {
		t.Error("n after game over should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty once quitting")
	}
}

func TestModelQuitKey(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := update(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelMouseClickGuesses(t *testing.T) {
	m, game := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	answer := game.Session().CurrentRound().Text

	// Find the button's position by scanning for a hit
	var cx, cy int
	found := false
	for y := 0; y < 24 && !found; y++ {
		for x := 0; x < 80; x++ {
			if i, ok := game.HitTest(x, y); ok && i == int(answer) {
				cx, cy, found = x, y, true
				break
			}
		}
	}
	if !found {
		t.Fatalf("no button found for %v", answer)
	}

	// Releases and other buttons are ignored
	m, _ = update(t, m, tea.MouseMsg{X: cx, Y: cy, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: cx, Y: cy, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if m.state.Score != 0 {
		t.Fatal("only left presses should guess")
	}

	m, _ = update(t, m, tea.MouseMsg{X: cx, Y: cy, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.state.Score != 1 {
		t.Errorf("Score = %d after clicking the answer, expected 1", m.state.Score)
	}
}

func TestModelFrameKeepsStateAndView(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	before := m.state

	m, cmd := update(t, m, FrameMsg{})
	if cmd == nil {
		t.Error("frame loop should continue")
	}
	if m.state != before {
		t.Error("animation frames must not change game state")
	}

	view := m.View()
	if !strings.Contains(view, "Time:") || !strings.Contains(view, "Score:") {
		t.Error("view should contain the HUD")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, game := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, runeKey([]rune(colorhunt.ShortcutKey(game.Session().CurrentRound().Text))[0]))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
	if game.State().Score != 1 {
		t.Error("resize should not reset the session")
	}
}
