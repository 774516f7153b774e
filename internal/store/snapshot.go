package store

import (
	"time"

	"github.com/scasella/AgentPulse/internal/models"
)

// Snapshot is the atomic result of one load cycle: the full team list plus
// each team's task list, keyed by team name. A snapshot is never mutated
// after it is returned; each refresh produces a fresh one.
type Snapshot struct {
	Teams       []models.Team
	TasksByTeam map[string][]models.Task
	TakenAt     time.Time
}

// Team looks up a team by name
func (s *Snapshot) Team(name string) (models.Team, bool) {
	for _, t := range s.Teams {
		if t.Name == name {
			return t, true
		}
	}
	return models.Team{}, false
}

// Tasks returns the task list for a team, empty when the team has none
func (s *Snapshot) Tasks(teamName string) []models.Task {
	return s.TasksByTeam[teamName]
}
