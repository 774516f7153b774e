package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scasella/AgentPulse/internal/display"
	"github.com/scasella/AgentPulse/internal/models"
	"github.com/scasella/AgentPulse/internal/poll"
	"github.com/scasella/AgentPulse/internal/store"
)

func testModel(snap *store.Snapshot) Model {
	opts := display.DefaultOpts()
	opts.ColorEnabled = false
	return Model{
		snap: snap,
		opts: opts,
		keys: defaultKeyMap(),
	}
}

func testSnapshot() *store.Snapshot {
	return &store.Snapshot{
		Teams: []models.Team{
			{Name: "alpha", Description: "first team", CreatedAt: 2000},
			{Name: "beta", CreatedAt: 1000},
		},
		TasksByTeam: map[string][]models.Task{
			"alpha": {
				{ID: "1", Subject: "Parse configs", Status: models.TaskStatusCompleted},
				{ID: "2", Subject: "Build snapshot", Status: models.TaskStatusInProgress, ActiveForm: "Building snapshot"},
				{ID: "3", Subject: "Render views", Status: models.TaskStatusPending, BlockedBy: []string{"2"}},
			},
			"beta": {},
		},
		TakenAt: time.Now(),
	}
}

func TestViewShowsTeamsAndBadge(t *testing.T) {
	m := testModel(testSnapshot())

	view := m.View()
	for _, want := range []string{"AgentPulse", "1 in progress", "alpha", "beta", "Teams", "Tasks"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewShowsSelectedTeamTasks(t *testing.T) {
	m := testModel(testSnapshot())

	view := m.View()
	for _, want := range []string{"Parse configs", "Building snapshot", "blocked by 2", "(1/3 done)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewEmptySnapshot(t *testing.T) {
	m := testModel(&store.Snapshot{TasksByTeam: map[string][]models.Task{}})

	view := m.View()
	if !strings.Contains(view, "no teams") {
		t.Error("view missing empty-teams placeholder")
	}
	if !strings.Contains(view, "idle") {
		t.Error("badge should read idle with nothing in progress")
	}
}

func TestUpdateCursorNavigation(t *testing.T) {
	m := testModel(testSnapshot())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	if m.teamCursor != 1 {
		t.Errorf("teamCursor = %d, want 1", m.teamCursor)
	}

	// Clamped at the end of the list
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	if m.teamCursor != 1 {
		t.Errorf("teamCursor = %d, want 1 (clamped)", m.teamCursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	if m.teamCursor != 0 {
		t.Errorf("teamCursor = %d, want 0", m.teamCursor)
	}
}

func TestUpdatePaneSwitch(t *testing.T) {
	m := testModel(testSnapshot())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.focus != paneTasks {
		t.Error("tab should focus the tasks pane")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.focus != paneTeams {
		t.Error("tab should toggle back to the teams pane")
	}
}

func TestUpdateQuit(t *testing.T) {
	m := testModel(testSnapshot())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("expected tea.Quit, got %T", msg)
	}
}

func TestUpdateSnapshotReplacesAndClamps(t *testing.T) {
	m := testModel(testSnapshot())
	m.teamCursor = 1

	replacement := &store.Snapshot{
		Teams:       []models.Team{{Name: "solo", CreatedAt: 1}},
		TasksByTeam: map[string][]models.Task{"solo": {}},
		TakenAt:     time.Now(),
	}

	m.poller = poll.New(store.NewLoader(t.TempDir()), time.Hour, false)
	next, _ := m.Update(snapshotMsg(replacement))
	m = next.(Model)

	if m.snap != replacement {
		t.Error("snapshot should be replaced wholesale")
	}
	if m.teamCursor != 0 {
		t.Errorf("teamCursor = %d, want 0 after shrink", m.teamCursor)
	}
}

func TestUpdateRefreshKeyDoesNotBlock(t *testing.T) {
	m := testModel(testSnapshot())
	m.poller = poll.New(store.NewLoader(t.TempDir()), time.Hour, false)

	// No goroutine is draining the poller; repeated presses must still
	// coalesce instead of blocking the update loop
	for i := 0; i < 5; i++ {
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
		m = next.(Model)
		if cmd != nil {
			t.Fatal("refresh should not emit a command")
		}
	}
}
