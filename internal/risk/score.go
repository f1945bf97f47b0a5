// v1
// internal/risk/score.go
package risk

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput marks a scenario field outside its domain.
	ErrInvalidInput = errors.New("invalid scenario input")
	// ErrUnknownActivity marks an activity level outside {Light, Moderate, Heavy}.
	ErrUnknownActivity = errors.New("unknown activity level")
)

// ComputeScore derives the per-factor point contributions for a scenario.
//
// Each factor is scored against fixed, non-overlapping bands:
//
//	temperature ≥ 40 °C          → +3, else ≥ 35 °C → +2, else +0
//	humidity    ≥ 70 %           → +2, else +0
//	duration    ≥ 6 h            → +2, else +0
//	activity    Light / Moderate / Heavy → +1 / +2 / +3
//
// The total score is the sum of the four contributions, range 0–10.
// Input is validated first: humidity outside [0,100], negative duration,
// NaN values, or an unrecognized activity fail with ErrInvalidInput
// (ErrUnknownActivity for the activity case). Temperature is unbounded.
func ComputeScore(in ScenarioInput) (Breakdown, error) {
	if err := Validate(in); err != nil {
		return Breakdown{}, err
	}

	var bd Breakdown
	switch {
	case in.TemperatureC >= 40:
		bd.Temperature = 3
	case in.TemperatureC >= 35:
		bd.Temperature = 2
	}
	if in.HumidityPct >= 70 {
		bd.Humidity = 2
	}
	if in.DurationHours >= 6 {
		bd.Duration = 2
	}
	switch in.Activity {
	case ActivityLight:
		bd.Activity = 1
	case ActivityModerate:
		bd.Activity = 2
	case ActivityHeavy:
		bd.Activity = 3
	}
	return bd, nil
}

// Validate checks a scenario's field domains without scoring it.
func Validate(in ScenarioInput) error {
	if math.IsNaN(in.TemperatureC) {
		return fmt.Errorf("temperature is NaN: %w", ErrInvalidInput)
	}
	if math.IsNaN(in.HumidityPct) || in.HumidityPct < 0 || in.HumidityPct > 100 {
		return fmt.Errorf("humidity %v outside [0,100]: %w", in.HumidityPct, ErrInvalidInput)
	}
	if math.IsNaN(in.DurationHours) || in.DurationHours < 0 {
		return fmt.Errorf("duration %v is negative: %w", in.DurationHours, ErrInvalidInput)
	}
	switch in.Activity {
	case ActivityLight, ActivityModerate, ActivityHeavy:
	default:
		return fmt.Errorf("activity %q: %w", in.Activity, ErrUnknownActivity)
	}
	return nil
}
