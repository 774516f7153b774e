package models

import (
	"strings"
	"time"
)

// LeadAgentType is the agentType value that marks a team's lead.
const LeadAgentType = "team-lead"

// ModelClass buckets a member's model string for display
type ModelClass string

const (
	ModelClassOpus   ModelClass = "opus"
	ModelClassSonnet ModelClass = "sonnet"
	ModelClassHaiku  ModelClass = "haiku"
	ModelClassOther  ModelClass = "other"
)

// Member represents one agent participating in a team.
// Field names match the on-disk config.json written by the agent-team system.
type Member struct {
	AgentID   string `json:"agentId"`
	Name      string `json:"name"`
	AgentType string `json:"agentType"`
	Model     string `json:"model"`
	JoinedAt  int64  `json:"joinedAt,omitempty"` // epoch milliseconds
	Cwd       string `json:"cwd,omitempty"`
}

// IsLead reports whether the member is the team lead
func (m Member) IsLead() bool {
	return m.AgentType == LeadAgentType
}

// ModelClass classifies the member's model string by substring match
func (m Member) ModelClass() ModelClass {
	model := strings.ToLower(m.Model)
	switch {
	case strings.Contains(model, "opus"):
		return ModelClassOpus
	case strings.Contains(model, "sonnet"):
		return ModelClassSonnet
	case strings.Contains(model, "haiku"):
		return ModelClassHaiku
	default:
		return ModelClassOther
	}
}

// JoinedTime converts the epoch-millisecond join timestamp.
// Returns the zero time when the field is absent.
func (m Member) JoinedTime() time.Time {
	if m.JoinedAt == 0 {
		return time.Time{}
	}
	return time.UnixMilli(m.JoinedAt)
}

// Team represents one agent team, loaded from teams/<name>/config.json.
// Name doubles as the unique identifier within a snapshot. Duplicate
// agentIds among members pass through as-is.
type Team struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CreatedAt   int64    `json:"createdAt"` // epoch milliseconds
	Members     []Member `json:"members"`
}

// CreatedTime converts the epoch-millisecond creation timestamp
func (t Team) CreatedTime() time.Time {
	return time.UnixMilli(t.CreatedAt)
}

// Lead returns the first member with the team-lead agent type
func (t Team) Lead() (Member, bool) {
	for _, m := range t.Members {
		if m.IsLead() {
			return m, true
		}
	}
	return Member{}, false
}
