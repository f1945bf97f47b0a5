// v0
// internal/compare/compare.go

// Package compare evaluates a small named set of scenarios and ranks them for
// side-by-side inspection. Results are transient; nothing here persists.
package compare

import (
	"fmt"
	"sort"
	"time"

	"github.com/Takshi07/heat-stress-awareness/internal/risk"
)

// Scenario pairs a label with the scenario it names. Labels must be unique
// within one comparison.
type Scenario struct {
	Label string             `json:"label"`
	Input risk.ScenarioInput `json:"scenario"`
}

// Ranked is one comparison entry in final order.
type Ranked struct {
	Rank       int    `json:"rank"`
	Label      string `json:"label"`
	Assessment risk.Assessment `json:"assessment"`
}

// Compare evaluates every labeled scenario and returns them ordered by
// descending score. Ties keep the insertion order of the input (stable sort).
// Ranks are 1-based in final order. An empty input yields an empty result;
// a duplicate or empty label, or any invalid scenario, fails the whole
// comparison since a partial ranking would be misleading.
func Compare(scenarios []Scenario) ([]Ranked, error) {
	return CompareAt(scenarios, time.Now().UTC())
}

// CompareAt is Compare with an explicit timestamp, for deterministic callers.
func CompareAt(scenarios []Scenario, at time.Time) ([]Ranked, error) {
	seen := make(map[string]struct{}, len(scenarios))
	out := make([]Ranked, 0, len(scenarios))
	for _, sc := range scenarios {
		if sc.Label == "" {
			return nil, fmt.Errorf("scenario label must not be empty: %w", risk.ErrInvalidInput)
		}
		if _, dup := seen[sc.Label]; dup {
			return nil, fmt.Errorf("duplicate scenario label %q: %w", sc.Label, risk.ErrInvalidInput)
		}
		seen[sc.Label] = struct{}{}

		a, err := risk.EvaluateAt(sc.Input, at)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Label, err)
		}
		out = append(out, Ranked{Label: sc.Label, Assessment: a})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Assessment.Score > out[j].Assessment.Score
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}
