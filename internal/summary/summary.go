// Package summary computes read-only projections over a store snapshot.
// Every function is pure and recomputed per call; nothing here holds state.
package summary

import (
	"github.com/scasella/AgentPulse/internal/models"
	"github.com/scasella/AgentPulse/internal/store"
)

// TaskCounts holds a team's task tally by status. Tasks whose status is
// outside the three known values count toward Total but land in no bucket,
// so Completed+InProgress+Pending <= Total.
type TaskCounts struct {
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Pending    int `json:"pending"`
	Total      int `json:"total"`
}

// Unknown returns the number of tasks outside the three known statuses
func (c TaskCounts) Unknown() int {
	return c.Total - c.Completed - c.InProgress - c.Pending
}

// TaskSummary tallies a team's tasks by exact status match
func TaskSummary(snap *store.Snapshot, teamName string) TaskCounts {
	var counts TaskCounts
	for _, task := range snap.Tasks(teamName) {
		counts.Total++
		switch task.Status {
		case models.TaskStatusCompleted:
			counts.Completed++
		case models.TaskStatusInProgress:
			counts.InProgress++
		case models.TaskStatusPending:
			counts.Pending++
		}
	}
	return counts
}

// TotalInProgress counts in_progress tasks across every team, for the
// at-a-glance badge
func TotalInProgress(snap *store.Snapshot) int {
	total := 0
	for _, tasks := range snap.TasksByTeam {
		for _, task := range tasks {
			if task.Status == models.TaskStatusInProgress {
				total++
			}
		}
	}
	return total
}

// BlockedTasks returns the subset of a team's tasks with unresolved
// dependencies, in load order
func BlockedTasks(snap *store.Snapshot, teamName string) []models.Task {
	var blocked []models.Task
	for _, task := range snap.Tasks(teamName) {
		if task.IsBlocked() {
			blocked = append(blocked, task)
		}
	}
	return blocked
}
