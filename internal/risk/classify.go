// v0
// internal/risk/classify.go
package risk

// Classification thresholds. Scores at or above tierHighMin map to High,
// scores at or above tierModerateMin to Moderate, everything below to Low.
const (
	tierHighMin     = 8
	tierModerateMin = 5
)

// guidanceByTier is the fixed explanation table. Text is deliberately
// non-diagnostic: hydration, rest and shade recommendations only.
var guidanceByTier = map[Tier]string{
	TierHigh:     "High risk conditions. Implement all safety protocols, increase hydration frequency, enforce mandatory rest breaks in shade, and watch the crew for signs of heat stress.",
	TierModerate: "Moderate risk conditions. Caution advised: schedule regular hydration breaks, monitor comfort levels, and adjust the work pace as needed.",
	TierLow:      "Low risk conditions. Normal safety protocols apply: maintain regular hydration and standard work practices.",
}

// actionsByTier lists the recommended actions per tier, most urgent first.
var actionsByTier = map[Tier][]string{
	TierHigh: {
		"Stop work immediately if symptoms appear",
		"Drink 200ml water every 15 minutes",
		"Take 15-minute breaks in shade every hour",
		"Implement buddy system for monitoring",
		"Have emergency cooling measures ready",
	},
	TierModerate: {
		"Increase water intake frequency",
		"Take breaks every 2 hours",
		"Monitor for discomfort",
		"Adjust work pace as needed",
		"Wear appropriate clothing",
	},
	TierLow: {
		"Maintain regular hydration",
		"Follow normal break schedule",
		"Stay aware of conditions",
		"Keep communication open",
	},
}

// Classify maps a score to its risk tier and guidance text.
//
// Thresholds: score ≥ 8 → High, 5–7 → Moderate, ≤ 4 → Low. The guidance is a
// fixed lookup keyed by tier, so the same score always yields the same tier
// and the same text.
func Classify(score int) (Tier, string) {
	tier := TierLow
	switch {
	case score >= tierHighMin:
		tier = TierHigh
	case score >= tierModerateMin:
		tier = TierModerate
	}
	return tier, guidanceByTier[tier]
}

// Actions returns the fixed recommended-action list for a tier. The returned
// slice is a copy; callers may not mutate the table.
func Actions(tier Tier) []string {
	src := actionsByTier[tier]
	out := make([]string, len(src))
	copy(out, src)
	return out
}
