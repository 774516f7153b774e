package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scasella/AgentPulse/internal/config"
	"github.com/scasella/AgentPulse/internal/display"
	"github.com/scasella/AgentPulse/internal/models"
	"github.com/scasella/AgentPulse/internal/poll"
	"github.com/scasella/AgentPulse/internal/store"
	"github.com/scasella/AgentPulse/internal/summary"
)

type pane int

const (
	paneTeams pane = iota
	paneTasks
)

// snapshotMsg carries a freshly published snapshot from the poller
type snapshotMsg *store.Snapshot

type tickMsg time.Time

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Switch  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "enter"),
			key.WithHelp("tab", "switch pane"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model represents the dashboard state
type Model struct {
	poller *poll.Poller
	snap   *store.Snapshot
	opts   display.Opts
	keys   keyMap

	focus      pane
	teamCursor int
	taskCursor int

	width  int
	height int
}

// New creates a dashboard model around a running poller
func New(poller *poll.Poller, opts display.Opts) Model {
	return Model{
		poller: poller,
		snap:   poller.Current(),
		opts:   opts,
		keys:   defaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForUpdate(m.poller), tickCmd())
}

// waitForUpdate blocks on the poller's notification channel and feeds the
// next snapshot into the update loop
func waitForUpdate(p *poll.Poller) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(<-p.Updates())
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotMsg:
		m.snap = (*store.Snapshot)(msg)
		m.clampCursors()
		return m, waitForUpdate(m.poller)

	case tickMsg:
		// Keep the tick chain alive so the "refreshed Ns ago" line stays
		// current even when the store is quiet
		return m, tickCmd()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			m.poller.Refresh()
			return m, nil

		case key.Matches(msg, m.keys.Switch):
			if m.focus == paneTeams {
				m.focus = paneTasks
			} else {
				m.focus = paneTeams
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
			return m, nil
		}
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.focus == paneTeams {
		m.teamCursor += delta
		m.taskCursor = 0
	} else {
		m.taskCursor += delta
	}
	m.clampCursors()
}

func (m *Model) clampCursors() {
	m.teamCursor = clamp(m.teamCursor, 0, len(m.snap.Teams)-1)

	taskCount := 0
	if team, ok := m.selectedTeam(); ok {
		taskCount = len(m.snap.Tasks(team.Name))
	}
	m.taskCursor = clamp(m.taskCursor, 0, taskCount-1)
}

func (m Model) selectedTeam() (models.Team, bool) {
	if len(m.snap.Teams) == 0 {
		return models.Team{}, false
	}
	return m.snap.Teams[m.teamCursor], true
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.viewHeader())
	sb.WriteString("\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.viewTeams(), " ", m.viewTasks()))
	sb.WriteString("\n")
	sb.WriteString(m.viewFooter())

	return sb.String()
}

func (m Model) viewHeader() string {
	title := titleStyle.Render("AgentPulse")

	inProgress := summary.TotalInProgress(m.snap)
	badge := badgeIdleStyle.Render("idle")
	if inProgress > 0 {
		badge = badgeStyle.Render(fmt.Sprintf("● %d in progress", inProgress))
	}

	age := ""
	if !m.snap.TakenAt.IsZero() {
		age = refreshedStyle.Render(fmt.Sprintf("refreshed %ds ago", int(time.Since(m.snap.TakenAt).Seconds())))
	}

	return title + "  " + badge + "  " + age
}

func (m Model) viewTeams() string {
	var sb strings.Builder
	sb.WriteString(panelTitleStyle.Render("Teams"))
	sb.WriteString("\n")

	if len(m.snap.Teams) == 0 {
		sb.WriteString(emptyStyle.Render("no teams"))
	}

	for i, team := range m.snap.Teams {
		counts := summary.TaskSummary(m.snap, team.Name)
		line := fmt.Sprintf("%s %s", team.Name,
			countStyle.Render(fmt.Sprintf("(%d/%d done)", counts.Completed, counts.Total)))

		cursor := "  "
		if i == m.teamCursor {
			cursor = "> "
			if m.focus == paneTeams {
				line = selectedStyle.Render(line)
			}
		}
		sb.WriteString(cursor + line + "\n")

		if i == m.teamCursor && team.Description != "" {
			sb.WriteString("    " + teamDescStyle.Render(team.Description) + "\n")
		}
	}

	style := panelStyle
	if m.focus == paneTeams {
		style = panelActiveStyle
	}
	return style.Render(sb.String())
}

func (m Model) viewTasks() string {
	var sb strings.Builder

	team, ok := m.selectedTeam()
	if !ok {
		sb.WriteString(panelTitleStyle.Render("Tasks"))
		sb.WriteString("\n")
		sb.WriteString(emptyStyle.Render("no team selected"))
		return panelStyle.Render(sb.String())
	}

	sb.WriteString(panelTitleStyle.Render("Tasks · " + team.Name))
	sb.WriteString("\n")

	tasks := m.snap.Tasks(team.Name)
	if len(tasks) == 0 {
		sb.WriteString(emptyStyle.Render("no tasks"))
	}

	for i, task := range tasks {
		if !m.opts.ShowCompleted && task.Status == models.TaskStatusCompleted && i != m.taskCursor {
			continue
		}
		line := display.RenderTask(task, m.opts)

		cursor := "  "
		if i == m.taskCursor && m.focus == paneTasks {
			cursor = "> "
		}
		sb.WriteString(cursor + line + "\n")
	}

	style := panelStyle
	if m.focus == paneTasks {
		style = panelActiveStyle
	}
	return style.Render(sb.String())
}

func (m Model) viewFooter() string {
	bindings := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Switch, m.keys.Refresh, m.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return helpStyle.Render(strings.Join(parts, "  ·  "))
}

// Run starts the poller and the dashboard and blocks until the user quits
func Run(cfg *config.Config, root string) error {
	loader := store.NewLoader(root)
	poller := poll.New(loader, cfg.Interval(), cfg.Poll.Watch)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.Run(ctx)

	opts := display.DefaultOpts()
	opts.ColorEnabled = cfg.UI.Color
	opts.ShowCompleted = cfg.UI.ShowCompleted

	p := tea.NewProgram(New(poller, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}
