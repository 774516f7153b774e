package main

import (
	"fmt"
	"os"

	"github.com/scasella/AgentPulse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
