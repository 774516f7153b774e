package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scasella/AgentPulse/internal/display"
	"github.com/scasella/AgentPulse/internal/store"
	"github.com/scasella/AgentPulse/internal/summary"
)

var (
	flagBlocked bool
	flagDeps    string
)

var tasksCmd = &cobra.Command{
	Use:   "tasks <team>",
	Short: "List a team's tasks",
	Long:  `List a team's tasks in id order with status, blocked markers, and owners. Use --deps to show one task's dependency chains.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		snap := store.NewLoader(storeRoot(cfg)).Load()
		teamName := args[0]

		if _, ok := snap.Team(teamName); !ok {
			fmt.Fprintf(os.Stderr, "Error: team not found: %s\n", teamName)
			os.Exit(1)
		}

		opts := display.DefaultOpts()
		opts.ColorEnabled = cfg.UI.Color
		opts.ShowCompleted = cfg.UI.ShowCompleted

		if flagDeps != "" {
			showTaskDeps(snap, teamName, flagDeps, opts)
			return
		}

		tasks := snap.Tasks(teamName)
		if flagBlocked {
			tasks = summary.BlockedTasks(snap, teamName)
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks.")
			return
		}
		for _, task := range tasks {
			fmt.Println(display.RenderTask(task, opts))
		}
	},
}

func showTaskDeps(snap *store.Snapshot, teamName, taskID string, opts display.Opts) {
	tasks := snap.Tasks(teamName)
	for _, task := range tasks {
		if task.ID == taskID {
			fmt.Print(display.RenderTaskDeps(task, tasks, opts))
			return
		}
	}
	fmt.Fprintf(os.Stderr, "Error: task not found: %s\n", taskID)
	os.Exit(1)
}

func init() {
	tasksCmd.Flags().BoolVar(&flagBlocked, "blocked", false, "only tasks with unresolved dependencies")
	tasksCmd.Flags().StringVar(&flagDeps, "deps", "", "show dependency chains for the given task id")
	rootCmd.AddCommand(tasksCmd)
}
