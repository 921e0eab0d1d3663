package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/storage"
)

func seedSessions(t *testing.T, store *storage.Store) {
	t.Helper()
	sessions := []storage.Session{
		{GameID: "zz_tui_step", Player: "alice", Score: 30, Coins: 3},
		{GameID: "zz_tui_step", Player: "bob", Score: 90, Coins: 9},
		{GameID: "zz_tui_step", Player: "alice", Score: 50, Coins: 5},
		{GameID: "other", Player: "alice", Score: 999},
	}
	for _, s := range sessions {
		if _, err := store.SaveSession(s); err != nil {
			t.Fatalf("SaveSession: %v", err)
		}
	}
}

func TestScoreboardShowsStats(t *testing.T) {
	store := openStore(t)
	seedSessions(t, store)

	m := NewScoreboardModel(store, "alice", 100, 30)
	if len(m.scores) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(m.scores))
	}
	if m.scores[0].Score != 90 {
		t.Errorf("best session first, got %d", m.scores[0].Score)
	}

	view := m.View()
	if !strings.Contains(view, "Sessions: 3  Best: 90") {
		t.Errorf("stats line missing:\n%s", view)
	}
	if !strings.Contains(view, "Coins: 17") {
		t.Errorf("coin total missing:\n%s", view)
	}
}

func TestScoreboardOnlyMine(t *testing.T) {
	store := openStore(t)
	seedSessions(t, store)

	m := NewScoreboardModel(store, "alice", 100, 30)
	next, _ := m.Update(runeKey("m"))
	m = next.(ScoreboardModel)

	if len(m.scores) != 2 {
		t.Fatalf("expected alice's 2 sessions for this game, got %d", len(m.scores))
	}
	if m.scores[0].Score != 50 || m.scores[1].Score != 30 {
		t.Errorf("scores = %d, %d; want 50, 30", m.scores[0].Score, m.scores[1].Score)
	}
	if !strings.Contains(m.View(), "(alice)") {
		t.Error("title should name the filtered player")
	}

	next, _ = m.Update(runeKey("m"))
	m = next.(ScoreboardModel)
	if len(m.scores) != 3 {
		t.Errorf("toggle off should show everyone, got %d", len(m.scores))
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "", 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Errorf("empty view missing:\n%s", m.View())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if !next.(ScoreboardModel).IsGoingBack() || !isQuit(cmd) {
		t.Error("standalone back should quit")
	}
}
