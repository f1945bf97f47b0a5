// v0
// cmd/heatrisk/batch.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Takshi07/heat-stress-awareness/internal/batch"
)

func newBatchCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "batch <scenarios.csv>",
		Short: "Evaluate a CSV of scenarios and emit an annotated CSV",
		Long: "Reads scenarios from a CSV with columns temperature, humidity,\n" +
			"duration_hours and activity, scores every row, and writes the rows back\n" +
			"with score and tier columns appended. Rows that fail validation are\n" +
			"reported on stderr and skipped; they never abort the batch.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer in.Close()

			results, rowErrs, err := batch.EvaluateReader(in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}
			if err := batch.WriteCSV(out, results); err != nil {
				return fmt.Errorf("write results: %w", err)
			}

			errOut := cmd.ErrOrStderr()
			for _, re := range rowErrs {
				fmt.Fprintf(errOut, "skipped %s\n", re.Error())
			}
			sum := batch.Summarize(results, rowErrs)
			fmt.Fprintf(errOut, "Processed %d rows: %d high, %d moderate, %d low, %d skipped\n",
				len(results)+len(rowErrs), sum.High, sum.Moderate, sum.Low, sum.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "output file path (default stdout)")

	return cmd
}
