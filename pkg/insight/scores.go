package insight

import (
	"math"
)

type ConfidenceBreakdown struct {
	LoggingConsistency float64
	IntakeStability    float64
	Score              float64
}

// ConfidenceScore rates prediction reliability from how consistently the
// user logged and how stable daily intake was:
// 0.6*(days/7*100) + 0.4*max(0, 100 - stddev/10), clamped to [0,100].
func ConfidenceScore(daysLogged int, dailyCalories []float64) ConfidenceBreakdown {
	consistency := float64(daysLogged) / 7 * 100

	stability := math.Max(0, 100-stddev(dailyCalories)/10)

	score := 0.6*consistency + 0.4*stability
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return ConfidenceBreakdown{
		LoggingConsistency: consistency,
		IntakeStability:    stability,
		Score:              score,
	}
}

// DisciplineScore is a step function of how far average intake landed from
// target. Fixed bands, no interpolation.
func DisciplineScore(avgIntake, target float64) float64 {
	deviation := math.Abs(avgIntake - target)
	switch {
	case deviation < 100:
		return 90
	case deviation < 250:
		return 70
	case deviation < 400:
		return 50
	default:
		return 30
	}
}

// ExerciseConsistency scores weekly activity as active_days/7*100, with the
// qualitative labels the dashboard shows.
func ExerciseConsistency(activeDays int) (float64, string) {
	score := float64(activeDays) / 7 * 100
	switch {
	case score >= 70:
		return score, "excellent"
	case score >= 40:
		return score, "good"
	default:
		return score, "low"
	}
}

// stddev over fewer than 2 points is defined as 0, never NaN: a single
// logged day gives no spread information, and an empty week must not
// poison the confidence score.
func stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	variance := 0.0
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	variance /= float64(len(xs))
	return math.Sqrt(variance)
}
