// v0
// cmd/heatrisk/main.go
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "heatrisk",
		Short: "Rule-based heat-stress risk assessment for work scenarios",
		Long: "heatrisk scores work scenarios (temperature, humidity, duration, activity)\n" +
			"with a fixed, auditable rule table and classifies them into Low, Moderate\n" +
			"or High risk. It is an awareness tool, not a medical device.",
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newAssessCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newCompareCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
