package config

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Root: "~/.claude",
		},
		Poll: PollConfig{
			Interval: "5s",
			Watch:    true,
		},
		UI: UIConfig{
			Color:         true,
			ShowCompleted: true,
		},
	}
}
