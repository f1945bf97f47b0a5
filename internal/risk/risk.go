// v0
// internal/risk/risk.go
package risk

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ActivityLevel is the work intensity of a scenario.
type ActivityLevel string

const (
	ActivityLight    ActivityLevel = "Light"
	ActivityModerate ActivityLevel = "Moderate"
	ActivityHeavy    ActivityLevel = "Heavy"
)

// ParseActivity normalizes a textual activity level to its canonical form.
// Matching is case-insensitive; anything outside the three recognized levels
// yields ErrUnknownActivity.
func ParseActivity(s string) (ActivityLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ActivityLight, nil
	case "moderate":
		return ActivityModerate, nil
	case "heavy":
		return ActivityHeavy, nil
	}
	return "", fmt.Errorf("activity %q: %w", s, ErrUnknownActivity)
}

// Tier is the coarse risk classification derived from a score.
type Tier string

const (
	TierLow      Tier = "Low"
	TierModerate Tier = "Moderate"
	TierHigh     Tier = "High"
)

// ParseTier normalizes a textual tier, case-insensitively.
func ParseTier(s string) (Tier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return TierLow, true
	case "moderate":
		return TierModerate, true
	case "high":
		return TierHigh, true
	}
	return "", false
}

// ScenarioInput is one work situation to assess.
type ScenarioInput struct {
	TemperatureC  float64       `json:"temperatureC"`
	HumidityPct   float64       `json:"humidityPct"`
	DurationHours float64       `json:"durationHours"`
	Activity      ActivityLevel `json:"activity"`
}

// Breakdown records the integer points each factor contributed to a score.
type Breakdown struct {
	Temperature int `json:"temperature"`
	Humidity    int `json:"humidity"`
	Duration    int `json:"duration"`
	Activity    int `json:"activity"`
}

// Total is the risk score: the sum of all factor contributions.
func (b Breakdown) Total() int {
	return b.Temperature + b.Humidity + b.Duration + b.Activity
}

// Assessment is the immutable result of evaluating one scenario.
type Assessment struct {
	ID        string        `json:"id"`
	Input     ScenarioInput `json:"input"`
	Breakdown Breakdown     `json:"breakdown"`
	Score     int           `json:"score"`
	Tier      Tier          `json:"tier"`
	Guidance  string        `json:"guidance"`
	Timestamp time.Time     `json:"timestamp"`
}

// Evaluate scores and classifies a scenario, stamping the assessment with the
// current UTC time. Validation errors from ComputeScore pass through.
func Evaluate(in ScenarioInput) (Assessment, error) {
	return EvaluateAt(in, time.Now().UTC())
}

// EvaluateAt is Evaluate with an explicit timestamp, for deterministic callers.
func EvaluateAt(in ScenarioInput, at time.Time) (Assessment, error) {
	bd, err := ComputeScore(in)
	if err != nil {
		return Assessment{}, err
	}
	score := bd.Total()
	tier, guidance := Classify(score)
	return Assessment{
		ID:        uuid.New().String(),
		Input:     in,
		Breakdown: bd,
		Score:     score,
		Tier:      tier,
		Guidance:  guidance,
		Timestamp: at,
	}, nil
}
