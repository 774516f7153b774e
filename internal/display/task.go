// Package display holds the lipgloss rendering helpers shared by the CLI
// commands and the TUI dashboard.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/scasella/AgentPulse/internal/models"
)

// Opts configures rendering
type Opts struct {
	ColorEnabled  bool
	ShowCompleted bool
	MaxWidth      int
}

// Styles for task rendering
var (
	taskIDStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#00D4FF"))
	taskSubjectStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EEEEEE"))
	statusPendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	statusProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E22E"))
	statusDoneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Strikethrough(true)
	statusUnknownStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FD971F"))
	blockedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#F92672"))
	activeFormStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E22E")).Italic(true)
	ownerStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// DefaultOpts returns default rendering options
func DefaultOpts() Opts {
	return Opts{
		ColorEnabled:  true,
		ShowCompleted: true,
		MaxWidth:      50,
	}
}

// StatusGlyph returns the one-character marker for a task status
func StatusGlyph(status models.TaskStatus) string {
	switch status {
	case models.TaskStatusCompleted:
		return "✓"
	case models.TaskStatusInProgress:
		return "◐"
	case models.TaskStatusPending:
		return "○"
	default:
		return "?"
	}
}

// statusStyle picks the style for a status; unknown values get the
// "unknown" styling rather than an error
func statusStyle(status models.TaskStatus) lipgloss.Style {
	switch status {
	case models.TaskStatusCompleted:
		return statusDoneStyle
	case models.TaskStatusInProgress:
		return statusProgressStyle
	case models.TaskStatusPending:
		return statusPendingStyle
	default:
		return statusUnknownStyle
	}
}

// RenderTask renders one task as a single line
func RenderTask(task models.Task, opts Opts) string {
	var parts []string

	glyph := StatusGlyph(task.Status)
	if opts.ColorEnabled {
		glyph = statusStyle(task.Status).Render(glyph)
	}
	parts = append(parts, glyph)

	if opts.ColorEnabled {
		parts = append(parts, taskIDStyle.Render("#"+task.ID))
	} else {
		parts = append(parts, "#"+task.ID)
	}

	subject := task.Subject
	if opts.MaxWidth > 3 && len(subject) > opts.MaxWidth {
		subject = subject[:opts.MaxWidth-3] + "..."
	}
	if opts.ColorEnabled {
		subject = taskSubjectStyle.Render(subject)
	}
	parts = append(parts, subject)

	if task.Status == models.TaskStatusInProgress && task.ActiveForm != "" {
		form := "· " + task.ActiveForm
		if opts.ColorEnabled {
			form = activeFormStyle.Render(form)
		}
		parts = append(parts, form)
	}

	if task.IsBlocked() {
		marker := fmt.Sprintf("⊘ blocked by %s", strings.Join(task.BlockedBy, ", "))
		if opts.ColorEnabled {
			marker = blockedStyle.Render(marker)
		}
		parts = append(parts, marker)
	}

	if task.Owner != "" {
		owner := "@" + task.Owner
		if opts.ColorEnabled {
			owner = ownerStyle.Render(owner)
		}
		parts = append(parts, owner)
	}

	return strings.Join(parts, " ")
}

// RenderTaskDeps renders a task with its blockedBy and blocks chains,
// resolving ids against the team's task list where possible
func RenderTaskDeps(task models.Task, teamTasks []models.Task, opts Opts) string {
	byID := make(map[string]models.Task, len(teamTasks))
	for _, t := range teamTasks {
		byID[t.ID] = t
	}

	var sb strings.Builder
	sb.WriteString(RenderTask(task, opts))
	sb.WriteString("\n")

	writeSection := func(title string, ids []string) {
		if len(ids) == 0 {
			return
		}
		sb.WriteString("  ")
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
		sb.WriteString("\n")
		for i, id := range ids {
			branch := "├─"
			if i == len(ids)-1 {
				branch = "└─"
			}
			sb.WriteString("  " + branch + " ")
			if dep, ok := byID[id]; ok {
				sb.WriteString(RenderTask(dep, opts))
			} else {
				// Dangling reference: the dependency's file is gone
				sb.WriteString("#" + id)
			}
			sb.WriteString("\n")
		}
	}

	writeSection("Blocked by:", task.BlockedBy)
	writeSection("Blocks:", task.Blocks)

	if len(task.BlockedBy) == 0 && len(task.Blocks) == 0 {
		sb.WriteString("  ")
		sb.WriteString(statusPendingStyle.Render("No dependencies"))
		sb.WriteString("\n")
	}

	return sb.String()
}
