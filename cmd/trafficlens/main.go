// main is the entry point for the trafficlens CLI.
package main

import (
	"github.com/trafficlens/trafficlens/cmd"
	"github.com/trafficlens/trafficlens/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
