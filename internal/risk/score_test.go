// v0
// internal/risk/score_test.go
package risk

import (
	"errors"
	"math"
	"testing"
)

func TestComputeScoreBands(t *testing.T) {
	tests := []struct {
		name string
		in   ScenarioInput
		want Breakdown
	}{
		{
			name: "all bands maxed",
			in:   ScenarioInput{TemperatureC: 41, HumidityPct: 75, DurationHours: 7, Activity: ActivityHeavy},
			want: Breakdown{Temperature: 3, Humidity: 2, Duration: 2, Activity: 3},
		},
		{
			name: "all bands at rest",
			in:   ScenarioInput{TemperatureC: 30, HumidityPct: 40, DurationHours: 3, Activity: ActivityLight},
			want: Breakdown{Activity: 1},
		},
		{
			name: "mid temperature band",
			in:   ScenarioInput{TemperatureC: 37, HumidityPct: 40, DurationHours: 3, Activity: ActivityModerate},
			want: Breakdown{Temperature: 2, Activity: 2},
		},
		{
			name: "temperature boundary 35 inclusive",
			in:   ScenarioInput{TemperatureC: 35, HumidityPct: 40, DurationHours: 3, Activity: ActivityLight},
			want: Breakdown{Temperature: 2, Activity: 1},
		},
		{
			name: "temperature boundary 40 inclusive",
			in:   ScenarioInput{TemperatureC: 40, HumidityPct: 40, DurationHours: 3, Activity: ActivityLight},
			want: Breakdown{Temperature: 3, Activity: 1},
		},
		{
			name: "humidity boundary 70 inclusive",
			in:   ScenarioInput{TemperatureC: 30, HumidityPct: 70, DurationHours: 3, Activity: ActivityLight},
			want: Breakdown{Humidity: 2, Activity: 1},
		},
		{
			name: "duration boundary 6 inclusive",
			in:   ScenarioInput{TemperatureC: 30, HumidityPct: 40, DurationHours: 6, Activity: ActivityLight},
			want: Breakdown{Duration: 2, Activity: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeScore(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("breakdown mismatch: got %+v want %+v", got, tt.want)
			}
			if got.Total() != got.Temperature+got.Humidity+got.Duration+got.Activity {
				t.Fatalf("total %d does not equal sum of contributions", got.Total())
			}
		})
	}
}

func TestScoreRange(t *testing.T) {
	activities := []ActivityLevel{ActivityLight, ActivityModerate, ActivityHeavy}
	for temp := -10.0; temp <= 50; temp += 5 {
		for hum := 0.0; hum <= 100; hum += 10 {
			for dur := 0.0; dur <= 12; dur += 2 {
				for _, act := range activities {
					bd, err := ComputeScore(ScenarioInput{TemperatureC: temp, HumidityPct: hum, DurationHours: dur, Activity: act})
					if err != nil {
						t.Fatalf("unexpected error for temp=%v hum=%v dur=%v act=%s: %v", temp, hum, dur, act, err)
					}
					if total := bd.Total(); total < 0 || total > 10 {
						t.Fatalf("score %d out of range for temp=%v hum=%v dur=%v act=%s", total, temp, hum, dur, act)
					}
				}
			}
		}
	}
}

func TestScoreMonotonicAcrossTemperatureBoundary(t *testing.T) {
	base := ScenarioInput{HumidityPct: 50, DurationHours: 4, Activity: ActivityModerate}
	prev := -1
	for temp := 34.0; temp <= 41; temp += 0.5 {
		in := base
		in.TemperatureC = temp
		bd, err := ComputeScore(in)
		if err != nil {
			t.Fatalf("unexpected error at %v°C: %v", temp, err)
		}
		if bd.Total() < prev {
			t.Fatalf("score decreased from %d to %d as temperature rose to %v°C", prev, bd.Total(), temp)
		}
		prev = bd.Total()
	}
}

func TestComputeScoreRejectsOutOfDomain(t *testing.T) {
	tests := []struct {
		name string
		in   ScenarioInput
		want error
	}{
		{"humidity over 100", ScenarioInput{TemperatureC: 30, HumidityPct: 150, DurationHours: 3, Activity: ActivityLight}, ErrInvalidInput},
		{"humidity negative", ScenarioInput{TemperatureC: 30, HumidityPct: -1, DurationHours: 3, Activity: ActivityLight}, ErrInvalidInput},
		{"duration negative", ScenarioInput{TemperatureC: 30, HumidityPct: 40, DurationHours: -0.5, Activity: ActivityLight}, ErrInvalidInput},
		{"temperature NaN", ScenarioInput{TemperatureC: math.NaN(), HumidityPct: 40, DurationHours: 3, Activity: ActivityLight}, ErrInvalidInput},
		{"humidity NaN", ScenarioInput{TemperatureC: 30, HumidityPct: math.NaN(), DurationHours: 3, Activity: ActivityLight}, ErrInvalidInput},
		{"unknown activity", ScenarioInput{TemperatureC: 30, HumidityPct: 40, DurationHours: 3, Activity: "Extreme"}, ErrUnknownActivity},
		{"empty activity", ScenarioInput{TemperatureC: 30, HumidityPct: 40, DurationHours: 3}, ErrUnknownActivity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeScore(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseActivity(t *testing.T) {
	for _, s := range []string{"Light", "light", "LIGHT", " light "} {
		got, err := ParseActivity(s)
		if err != nil {
			t.Fatalf("ParseActivity(%q) unexpected error: %v", s, err)
		}
		if got != ActivityLight {
			t.Fatalf("ParseActivity(%q) = %s, want Light", s, got)
		}
	}
	if _, err := ParseActivity("sprinting"); !errors.Is(err, ErrUnknownActivity) {
		t.Fatalf("expected ErrUnknownActivity, got %v", err)
	}
}
