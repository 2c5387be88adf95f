package craving

// Risk scorer variants. Both count high-risk triggers the same way but
// weight the craving level differently; the active one is picked by config
// so deployments can compare them on real traffic.
const (
	ScorerV1 = "v1"
	ScorerV2 = "v2"
)

const (
	RiskLow      = "low"
	RiskModerate = "moderate"
	RiskHigh     = "high"
)

// ValidTriggers is the closed set of craving triggers the tracker accepts.
var ValidTriggers = []string{
	"Stress",
	"Boredom",
	"Hunger",
	"Lack of Sleep",
	"After Meals",
	"Social Event",
	"Habit",
}

func IsValidTrigger(trigger string) bool {
	for _, t := range ValidTriggers {
		if t == trigger {
			return true
		}
	}
	return false
}

// RiskScoreV1 uses a single level threshold: any craving above 7 adds a
// flat 2 points.
func RiskScoreV1(level int, trigger string) int {
	score := 0
	if level > 7 {
		score += 2
	}
	return score + triggerRisk(trigger)
}

// RiskScoreV2 grades the level in two tiers: above 7 adds 3 points, above
// 5 adds 2.
func RiskScoreV2(level int, trigger string) int {
	score := 0
	switch {
	case level > 7:
		score += 3
	case level > 5:
		score += 2
	}
	return score + triggerRisk(trigger)
}

func triggerRisk(trigger string) int {
	switch trigger {
	case "Stress", "Lack of Sleep":
		return 2
	case "Habit":
		return 1
	default:
		return 0
	}
}

// RiskScore dispatches on the configured scorer name. Anything other than
// the v1 key selects the tiered variant.
func RiskScore(scorer string, level int, trigger string) int {
	if scorer == ScorerV1 {
		return RiskScoreV1(level, trigger)
	}
	return RiskScoreV2(level, trigger)
}

func RiskBucket(score int) string {
	switch {
	case score <= 2:
		return RiskLow
	case score <= 4:
		return RiskModerate
	default:
		return RiskHigh
	}
}
