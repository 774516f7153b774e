package cmd

import (
	"testing"
	"time"

	"github.com/scasella/AgentPulse/internal/models"
	"github.com/scasella/AgentPulse/internal/store"
)

func TestCollectStatus(t *testing.T) {
	snap := &store.Snapshot{
		Teams: []models.Team{
			{
				Name:        "demo",
				Description: "demo team",
				CreatedAt:   1700000000000,
				Members:     []models.Member{{AgentID: "a"}, {AgentID: "b"}},
			},
		},
		TasksByTeam: map[string][]models.Task{
			"demo": {
				{ID: "1", Status: models.TaskStatusCompleted},
				{ID: "2", Status: models.TaskStatusInProgress},
				{ID: "3", Status: "weird"},
			},
		},
		TakenAt: time.Now(),
	}

	output := collectStatus("/some/root", snap)

	if output.Root != "/some/root" {
		t.Errorf("Root = %q", output.Root)
	}
	if output.TotalInProgress != 1 {
		t.Errorf("TotalInProgress = %d, want 1", output.TotalInProgress)
	}
	if len(output.Teams) != 1 {
		t.Fatalf("expected 1 team, got %d", len(output.Teams))
	}

	team := output.Teams[0]
	if team.Members != 2 {
		t.Errorf("Members = %d, want 2", team.Members)
	}
	if team.Tasks.Total != 3 {
		t.Errorf("Total = %d, want 3", team.Tasks.Total)
	}
	if team.Tasks.Completed != 1 || team.Tasks.InProgress != 1 || team.Tasks.Pending != 0 {
		t.Errorf("buckets = %+v", team.Tasks)
	}
	if !team.CreatedAt.Equal(time.UnixMilli(1700000000000)) {
		t.Errorf("CreatedAt = %v", team.CreatedAt)
	}
}

func TestCollectStatusEmpty(t *testing.T) {
	snap := &store.Snapshot{TasksByTeam: map[string][]models.Task{}, TakenAt: time.Now()}

	output := collectStatus("/root", snap)
	if len(output.Teams) != 0 {
		t.Errorf("expected no teams, got %d", len(output.Teams))
	}
	if output.TotalInProgress != 0 {
		t.Errorf("TotalInProgress = %d, want 0", output.TotalInProgress)
	}
}
