package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/scasella/AgentPulse/internal/display"
	"github.com/scasella/AgentPulse/internal/store"
	"github.com/scasella/AgentPulse/internal/summary"
)

var teamsCmd = &cobra.Command{
	Use:     "teams [name]",
	Short:   "List teams or show one team's roster",
	Long:    `Without arguments, list every team newest first. With a team name, show its description and full member roster.`,
	Aliases: []string{"t"},
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		snap := store.NewLoader(storeRoot(cfg)).Load()

		opts := display.DefaultOpts()
		opts.ColorEnabled = cfg.UI.Color

		if len(args) > 0 {
			showTeam(snap, args[0], opts)
			return
		}
		listTeams(snap)
	},
}

func listTeams(snap *store.Snapshot) {
	if len(snap.Teams) == 0 {
		fmt.Println("No teams.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMEMBERS\tLEAD\tCREATED")
	for _, team := range snap.Teams {
		leadName := "-"
		if lead, ok := team.Lead(); ok {
			leadName = lead.Name
		}
		age := time.Since(team.CreatedTime()).Round(time.Minute).String() + " ago"
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", team.Name, len(team.Members), leadName, age)
	}
	w.Flush()
}

func showTeam(snap *store.Snapshot, name string, opts display.Opts) {
	team, ok := snap.Team(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: team not found: %s\n", name)
		os.Exit(1)
	}

	fmt.Println(headerStyle.Render(team.Name))
	if team.Description != "" {
		fmt.Println(mutedStyle.Render(team.Description))
	}
	fmt.Println(mutedStyle.Render("created " + team.CreatedTime().Format("2006-01-02 15:04")))
	fmt.Println()

	counts := summary.TaskSummary(snap, team.Name)
	fmt.Printf("Tasks: %d done, %d active, %d pending (%d total)\n",
		counts.Completed, counts.InProgress, counts.Pending, counts.Total)
	fmt.Println()

	fmt.Println(sectionStyle.Render("Members"))
	if len(team.Members) == 0 {
		fmt.Println(mutedStyle.Render("  none"))
		return
	}
	fmt.Print(display.RenderRoster(team, opts))
}

func init() {
	rootCmd.AddCommand(teamsCmd)
}
