// v0
// cmd/heatrisk/assess.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Takshi07/heat-stress-awareness/internal/risk"
)

func newAssessCmd() *cobra.Command {
	var (
		temp     float64
		humidity float64
		duration float64
		activity string
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Assess a single work scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := risk.ParseActivity(activity)
			if err != nil {
				return err
			}
			a, err := risk.Evaluate(risk.ScenarioInput{
				TemperatureC:  temp,
				HumidityPct:   humidity,
				DurationHours: duration,
				Activity:      level,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Risk score: %d/10 (%s)\n", a.Score, a.Tier)
			fmt.Fprintf(out, "Breakdown:  temperature +%d, humidity +%d, duration +%d, activity +%d\n",
				a.Breakdown.Temperature, a.Breakdown.Humidity, a.Breakdown.Duration, a.Breakdown.Activity)
			fmt.Fprintf(out, "\n%s\n\nRecommended actions:\n", a.Guidance)
			for _, action := range risk.Actions(a.Tier) {
				fmt.Fprintf(out, "  - %s\n", action)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&temp, "temp", 35, "temperature in °C")
	cmd.Flags().Float64Var(&humidity, "humidity", 60, "relative humidity in percent")
	cmd.Flags().Float64Var(&duration, "duration", 4, "work duration in hours")
	cmd.Flags().StringVar(&activity, "activity", "Moderate", "activity level: Light, Moderate or Heavy")

	return cmd
}
