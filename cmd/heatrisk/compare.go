// v0
// cmd/heatrisk/compare.go
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Takshi07/heat-stress-awareness/internal/compare"
	"github.com/Takshi07/heat-stress-awareness/internal/risk"
)

func newCompareCmd() *cobra.Command {
	var specs []string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare named scenarios side by side",
		Long: "Each --scenario takes label=temp,humidity,duration,activity.\n" +
			"Scenarios are ranked by descending risk score; ties keep the order in\n" +
			"which they were given.",
		Example: "  heatrisk compare \\\n" +
			"    --scenario morning=28,55,4,Light \\\n" +
			"    --scenario midday=41,75,7,Heavy",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(specs) < 2 {
				return fmt.Errorf("need at least two --scenario flags, got %d", len(specs))
			}
			scenarios := make([]compare.Scenario, 0, len(specs))
			for _, spec := range specs {
				sc, err := parseScenarioSpec(spec)
				if err != nil {
					return err
				}
				scenarios = append(scenarios, sc)
			}

			ranked, err := compare.Compare(scenarios)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, entry := range ranked {
				in := entry.Assessment.Input
				fmt.Fprintf(out, "%d. %-16s score %2d (%s)  %.1f°C  %.0f%%  %.1fh  %s\n",
					entry.Rank, entry.Label, entry.Assessment.Score, entry.Assessment.Tier,
					in.TemperatureC, in.HumidityPct, in.DurationHours, in.Activity)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&specs, "scenario", nil, "label=temp,humidity,duration,activity (repeatable)")

	return cmd
}

func parseScenarioSpec(spec string) (compare.Scenario, error) {
	label, rest, ok := strings.Cut(spec, "=")
	if !ok || label == "" {
		return compare.Scenario{}, fmt.Errorf("scenario %q: want label=temp,humidity,duration,activity", spec)
	}
	parts := strings.Split(rest, ",")
	if len(parts) != 4 {
		return compare.Scenario{}, fmt.Errorf("scenario %q: want four comma-separated values", spec)
	}

	temp, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return compare.Scenario{}, fmt.Errorf("scenario %q: bad temperature: %w", label, err)
	}
	humidity, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return compare.Scenario{}, fmt.Errorf("scenario %q: bad humidity: %w", label, err)
	}
	duration, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return compare.Scenario{}, fmt.Errorf("scenario %q: bad duration: %w", label, err)
	}
	activity, err := risk.ParseActivity(parts[3])
	if err != nil {
		return compare.Scenario{}, fmt.Errorf("scenario %q: %w", label, err)
	}

	return compare.Scenario{
		Label: label,
		Input: risk.ScenarioInput{
			TemperatureC:  temp,
			HumidityPct:   humidity,
			DurationHours: duration,
			Activity:      activity,
		},
	}, nil
}
