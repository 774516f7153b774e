package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/scasella/AgentPulse/internal/models"
)

const (
	teamsDirName   = "teams"
	tasksDirName   = "tasks"
	teamConfigName = "config.json"
)

// Loader reads the agent-team store rooted at a directory holding teams/
// and tasks/ subtrees. It holds no state between calls; every Load walks
// the tree from scratch.
type Loader struct {
	root string
}

// NewLoader creates a loader for the store at root
func NewLoader(root string) *Loader {
	return &Loader{root: root}
}

// Root returns the store root directory
func (l *Loader) Root() string {
	return l.root
}

// Load produces a snapshot of the on-disk state. It is a total function:
// unreadable or malformed entries are skipped, missing directories yield
// empty collections, and the caller always gets a fully formed snapshot.
// The store is written concurrently by the agent-team system itself, so
// any transient read failure is just another skip.
func (l *Loader) Load() *Snapshot {
	snap := &Snapshot{
		TasksByTeam: make(map[string][]models.Task),
		TakenAt:     time.Now(),
	}

	snap.Teams = l.loadTeams()
	for _, team := range snap.Teams {
		snap.TasksByTeam[team.Name] = l.loadTasks(team.Name)
	}

	return snap
}

// loadTeams discovers and parses every team config under <root>/teams/.
// Exactly one team per name survives: a later parse replaces an earlier
// record in place, keeping the earlier discovery position so the stable
// sort below stays deterministic.
func (l *Loader) loadTeams() []models.Team {
	entries, err := os.ReadDir(filepath.Join(l.root, teamsDirName))
	if err != nil {
		return nil
	}

	var teams []models.Team
	seen := make(map[string]int) // team name -> index in teams

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		configPath := filepath.Join(l.root, teamsDirName, entry.Name(), teamConfigName)
		team, ok := parseTeam(configPath)
		if !ok {
			continue
		}

		if i, dup := seen[team.Name]; dup {
			teams[i] = team
			continue
		}
		seen[team.Name] = len(teams)
		teams = append(teams, team)
	}

	// Newest first; ties keep discovery order
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].CreatedAt > teams[j].CreatedAt
	})

	return teams
}

// loadTasks parses every *.json under <root>/tasks/<teamName>/. A missing
// or unreadable directory is an empty task list, not an error.
func (l *Loader) loadTasks(teamName string) []models.Task {
	dir := filepath.Join(l.root, tasksDirName, teamName)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var tasks []models.Task
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		task, ok := parseTask(filepath.Join(dir, entry.Name()))
		if !ok {
			continue
		}
		tasks = append(tasks, task)
	}

	// Ascending by numeric id; non-numeric ids sort as 0, ties keep file order
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].SortOrder() < tasks[j].SortOrder()
	})

	return tasks
}

// parseTeam is an explicit parse-or-skip outcome. Absent and malformed
// files are the same skip at the snapshot level; keeping them behind one
// boolean lets a diagnostics hook distinguish them later without touching
// the contract.
func parseTeam(path string) (models.Team, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Team{}, false
	}

	var team models.Team
	if err := json.Unmarshal(data, &team); err != nil {
		return models.Team{}, false
	}
	if team.Name == "" {
		return models.Team{}, false
	}

	return team, true
}

func parseTask(path string) (models.Task, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Task{}, false
	}

	var task models.Task
	if err := json.Unmarshal(data, &task); err != nil {
		return models.Task{}, false
	}

	return task, true
}
