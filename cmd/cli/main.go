package main

import (
	"fmt"
	"os"

	"github.com/de-tools/market-atlas/pkg/runtime/terminal"
	"github.com/de-tools/market-atlas/pkg/services/report"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Weighers: report.NewWeigherRegistry(map[string]report.WeigherFactory{
			report.WeightingIdentity: report.NewIdentityWeigher,
			report.WeightingScaled:   report.NewScaledWeigher,
		}),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
