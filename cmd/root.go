package cmd

import (
	"github.com/spf13/cobra"

	"github.com/scasella/AgentPulse/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "agentpulse",
	Short: "AgentPulse - agent team monitor",
	Long:  `A read-only terminal monitor for agent teams: polls the on-disk team and task store and renders rosters, task lists, and progress summaries.`,
}

var flagRoot string

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "store root directory (holds teams/ and tasks/)")
}

// loadConfig reads the user config, creating a default one on first run
func loadConfig() (*config.Config, error) {
	return config.LoadOrCreate(config.DefaultPath())
}

// storeRoot resolves the store root: --root flag first, then config
func storeRoot(cfg *config.Config) string {
	if flagRoot != "" {
		return config.ExpandHome(flagRoot)
	}
	return cfg.RootDir()
}
