// v0
// internal/batch/batch.go

// Package batch applies the risk calculator across collections of scenarios.
// A row that fails validation becomes a row-level diagnostic and never aborts
// the rest of the batch.
package batch

import (
	"fmt"
	"time"

	"github.com/Takshi07/heat-stress-awareness/internal/risk"
)

// RowError reports a skipped row with its zero-based index and reason.
type RowError struct {
	Index  int    `json:"row"`
	Reason string `json:"reason"`
	Err    error  `json:"-"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Index, e.Reason)
}

func (e RowError) Unwrap() error { return e.Err }

func rowError(index int, err error) RowError {
	return RowError{Index: index, Reason: err.Error(), Err: err}
}

// Summary counts batch outcomes per tier plus skipped rows.
type Summary struct {
	High     int `json:"high"`
	Moderate int `json:"moderate"`
	Low      int `json:"low"`
	Skipped  int `json:"skipped"`
}

// Evaluate assesses every row in order. Valid rows appear in the result in
// input order; invalid rows are reported in the returned error list instead.
// An empty input yields an empty result.
func Evaluate(rows []risk.ScenarioInput) ([]risk.Assessment, []RowError) {
	return EvaluateAt(rows, time.Now().UTC())
}

// EvaluateAt is Evaluate with an explicit timestamp applied to every
// assessment, for deterministic callers.
func EvaluateAt(rows []risk.ScenarioInput, at time.Time) ([]risk.Assessment, []RowError) {
	results := make([]risk.Assessment, 0, len(rows))
	var errs []RowError
	for i, in := range rows {
		a, err := risk.EvaluateAt(in, at)
		if err != nil {
			errs = append(errs, rowError(i, err))
			continue
		}
		results = append(results, a)
	}
	return results, errs
}

// Summarize tallies assessed tiers and skipped rows for reporting.
func Summarize(results []risk.Assessment, errs []RowError) Summary {
	sum := Summary{Skipped: len(errs)}
	for _, a := range results {
		switch a.Tier {
		case risk.TierHigh:
			sum.High++
		case risk.TierModerate:
			sum.Moderate++
		case risk.TierLow:
			sum.Low++
		}
	}
	return sum
}
