package models

import "strconv"

// TaskStatus is an open string enumeration: files may carry values outside
// the three known constants, and those render with "unknown" styling but
// still count toward a team's total.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Known reports whether the status is one of the three recognized values
func (s TaskStatus) Known() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task represents one unit of work, loaded from tasks/<team>/<id>.json.
// A task belongs to a team by directory association only; the record
// itself carries no team reference.
type Task struct {
	ID          string     `json:"id"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Owner       string     `json:"owner,omitempty"`
	BlockedBy   []string   `json:"blockedBy,omitempty"`
	Blocks      []string   `json:"blocks,omitempty"`
	ActiveForm  string     `json:"activeForm,omitempty"` // meaningful only while in_progress
}

// IsBlocked reports whether the task has at least one unresolved dependency.
// Independent of Status: a pending task can be blocked, and bucket
// membership stays status-driven.
func (t Task) IsBlocked() bool {
	return len(t.BlockedBy) > 0
}

// SortOrder returns the numeric interpretation of the task id for list
// ordering. Non-numeric ids sort as 0.
func (t Task) SortOrder() int {
	n, err := strconv.Atoi(t.ID)
	if err != nil {
		return 0
	}
	return n
}
