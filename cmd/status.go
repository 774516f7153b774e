package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/scasella/AgentPulse/internal/store"
	"github.com/scasella/AgentPulse/internal/summary"
)

// Styles for terminal output
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D4FF"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EEEEEE"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E22E"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

var (
	flagJSON  bool
	flagWatch bool
)

type statusOutput struct {
	Root            string           `json:"root"`
	TakenAt         time.Time        `json:"taken_at"`
	TotalInProgress int              `json:"total_in_progress"`
	Teams           []teamStatusInfo `json:"teams"`
}

type teamStatusInfo struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	Members     int                `json:"members"`
	Tasks       summary.TaskCounts `json:"tasks"`
}

var statusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show all teams and their task progress",
	Long:    `Show every team in the store with member counts and task tallies, plus the global in-progress badge.`,
	Aliases: []string{"s"},
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		loader := store.NewLoader(storeRoot(cfg))

		if flagWatch {
			for {
				clearScreen()
				showStatus(loader)
				time.Sleep(cfg.Interval())
			}
		}
		showStatus(loader)
	},
}

func showStatus(loader *store.Loader) {
	snap := loader.Load()
	output := collectStatus(loader.Root(), snap)

	if flagJSON {
		data, _ := json.MarshalIndent(output, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Println(headerStyle.Render("AgentPulse"))

	badge := mutedStyle.Render("nothing in progress")
	if output.TotalInProgress > 0 {
		badge = successStyle.Render(fmt.Sprintf("%d task(s) in progress", output.TotalInProgress))
	}
	fmt.Println(badge)
	fmt.Println()

	if len(output.Teams) == 0 {
		fmt.Println(mutedStyle.Render("No teams found under " + loader.Root()))
		return
	}

	fmt.Println(sectionStyle.Render("Teams"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMEMBERS\tDONE\tACTIVE\tPENDING\tTOTAL\tCREATED")
	for _, team := range output.Teams {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
			team.Name, team.Members,
			team.Tasks.Completed, team.Tasks.InProgress, team.Tasks.Pending, team.Tasks.Total,
			team.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

func collectStatus(root string, snap *store.Snapshot) statusOutput {
	output := statusOutput{
		Root:            root,
		TakenAt:         snap.TakenAt,
		TotalInProgress: summary.TotalInProgress(snap),
	}

	for _, team := range snap.Teams {
		output.Teams = append(output.Teams, teamStatusInfo{
			Name:        team.Name,
			Description: team.Description,
			CreatedAt:   team.CreatedTime(),
			Members:     len(team.Members),
			Tasks:       summary.TaskSummary(snap, team.Name),
		})
	}

	return output
}

func clearScreen() {
	fmt.Print("\033[2J\033[H")
}

func init() {
	statusCmd.Flags().BoolVar(&flagJSON, "json", false, "output as JSON")
	statusCmd.Flags().BoolVar(&flagWatch, "watch", false, "re-render on the poll interval")
	rootCmd.AddCommand(statusCmd)
}
