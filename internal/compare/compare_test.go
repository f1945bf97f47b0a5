// v0
// internal/compare/compare_test.go
package compare

import (
	"errors"
	"testing"
	"time"

	"github.com/Takshi07/heat-stress-awareness/internal/risk"
)

var testStamp = time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

func TestCompareOrdersByScoreWithStableTies(t *testing.T) {
	// A scores 9, B and C both score 6; insertion order is A, B, C.
	scenarios := []Scenario{
		{Label: "A", Input: risk.ScenarioInput{TemperatureC: 41, HumidityPct: 75, DurationHours: 7, Activity: risk.ActivityModerate}},
		{Label: "B", Input: risk.ScenarioInput{TemperatureC: 36, HumidityPct: 72, DurationHours: 2, Activity: risk.ActivityModerate}},
		{Label: "C", Input: risk.ScenarioInput{TemperatureC: 36, HumidityPct: 60, DurationHours: 7, Activity: risk.ActivityModerate}},
	}

	ranked, err := CompareAt(scenarios, testStamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(ranked))
	}
	if ranked[0].Assessment.Score != 9 || ranked[1].Assessment.Score != 6 || ranked[2].Assessment.Score != 6 {
		t.Fatalf("score order mismatch: %d %d %d", ranked[0].Assessment.Score, ranked[1].Assessment.Score, ranked[2].Assessment.Score)
	}
	if ranked[0].Label != "A" || ranked[1].Label != "B" || ranked[2].Label != "C" {
		t.Fatalf("expected order [A B C], got [%s %s %s]", ranked[0].Label, ranked[1].Label, ranked[2].Label)
	}
	for i, r := range ranked {
		if r.Rank != i+1 {
			t.Fatalf("entry %d has rank %d", i, r.Rank)
		}
	}
}

func TestCompareEmptyInput(t *testing.T) {
	ranked, err := CompareAt(nil, testStamp)
	if err != nil {
		t.Fatalf("empty input must not fail: %v", err)
	}
	if len(ranked) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(ranked))
	}
}

func TestCompareRejectsDuplicateLabels(t *testing.T) {
	scenarios := []Scenario{
		{Label: "shift", Input: risk.ScenarioInput{TemperatureC: 30, HumidityPct: 40, DurationHours: 3, Activity: risk.ActivityLight}},
		{Label: "shift", Input: risk.ScenarioInput{TemperatureC: 36, HumidityPct: 60, DurationHours: 4, Activity: risk.ActivityModerate}},
	}
	if _, err := CompareAt(scenarios, testStamp); !errors.Is(err, risk.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate label, got %v", err)
	}
}

func TestCompareRejectsInvalidScenario(t *testing.T) {
	scenarios := []Scenario{
		{Label: "ok", Input: risk.ScenarioInput{TemperatureC: 30, HumidityPct: 40, DurationHours: 3, Activity: risk.ActivityLight}},
		{Label: "bad", Input: risk.ScenarioInput{TemperatureC: 30, HumidityPct: 130, DurationHours: 3, Activity: risk.ActivityLight}},
	}
	_, err := CompareAt(scenarios, testStamp)
	if !errors.Is(err, risk.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
