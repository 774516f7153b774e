package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scasella/AgentPulse/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the TUI dashboard",
	Long:  `Launch the interactive dashboard: teams on the left, the selected team's tasks on the right, refreshed on the poll interval.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
		if err := tui.Run(cfg, storeRoot(cfg)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
