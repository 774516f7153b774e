package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/scasella/AgentPulse/internal/models"
)

var (
	memberNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EEEEEE"))
	leadBadgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FD971F")).Bold(true)
	modelOpusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9d7cd8"))
	modelSonnetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5c9cf5"))
	modelHaikuStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#56b6c2"))
	modelOtherStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	agentTypeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// modelClassStyle picks the style for a model classification
func modelClassStyle(class models.ModelClass) lipgloss.Style {
	switch class {
	case models.ModelClassOpus:
		return modelOpusStyle
	case models.ModelClassSonnet:
		return modelSonnetStyle
	case models.ModelClassHaiku:
		return modelHaikuStyle
	default:
		return modelOtherStyle
	}
}

// RenderMember renders one roster line for a team member
func RenderMember(member models.Member, opts Opts) string {
	var parts []string

	name := member.Name
	if name == "" {
		name = member.AgentID
	}
	if opts.ColorEnabled {
		name = memberNameStyle.Render(name)
	}
	parts = append(parts, name)

	if member.IsLead() {
		badge := "★ lead"
		if opts.ColorEnabled {
			badge = leadBadgeStyle.Render(badge)
		}
		parts = append(parts, badge)
	} else if member.AgentType != "" {
		role := member.AgentType
		if opts.ColorEnabled {
			role = agentTypeStyle.Render(role)
		}
		parts = append(parts, role)
	}

	class := string(member.ModelClass())
	if opts.ColorEnabled {
		class = modelClassStyle(member.ModelClass()).Render(class)
	}
	parts = append(parts, "["+class+"]")

	if joined := member.JoinedTime(); !joined.IsZero() {
		note := "joined " + joined.Format("2006-01-02 15:04")
		if opts.ColorEnabled {
			note = agentTypeStyle.Render(note)
		}
		parts = append(parts, note)
	}

	if member.Cwd != "" {
		cwd := member.Cwd
		if opts.ColorEnabled {
			cwd = agentTypeStyle.Render(cwd)
		}
		parts = append(parts, cwd)
	}

	return strings.Join(parts, " ")
}

// RenderRoster renders a team's full member list, lead first
func RenderRoster(team models.Team, opts Opts) string {
	var sb strings.Builder

	write := func(m models.Member) {
		sb.WriteString("  ")
		sb.WriteString(RenderMember(m, opts))
		sb.WriteString("\n")
	}

	for _, m := range team.Members {
		if m.IsLead() {
			write(m)
		}
	}
	for _, m := range team.Members {
		if !m.IsLead() {
			write(m)
		}
	}

	return sb.String()
}
