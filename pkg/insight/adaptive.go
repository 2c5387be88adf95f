package insight

// Two adaptive-target rule sets are in active use by different clients.
// They live here as named strategies selected by configuration instead of
// one silently replacing the other.

const (
	StrategyV1 = "v1"
	StrategyV2 = "v2"
)

const (
	ReasonOnTrack          = "on track"
	ReasonBalanced         = "balanced"
	ReasonDeficitTooSmall  = "deficit too small"
	ReasonDeficitTooSharp  = "deficit too aggressive"
	ReasonSurplusTooSmall  = "surplus too small"
	ReasonSurplusTooLarge  = "surplus too aggressive"
	ReasonDriftAbove       = "intake drifting above target"
	ReasonDriftBelow       = "intake drifting below target"
	ReasonInsufficientData = "insufficient data"
)

type AdaptiveResult struct {
	Target float64
	Reason string
}

// AdaptiveTargetV1 is the simpler variant: a single ±150 correction, applied
// only when a loss user eats over target or a gain user eats under target.
// No aggressive-correction branch, no maintain handling.
func AdaptiveTargetV1(avgNet, target float64, goal string, daysLogged int) AdaptiveResult {
	if daysLogged < 1 {
		return AdaptiveResult{Target: target, Reason: ReasonInsufficientData}
	}

	switch goal {
	case "Weight Loss":
		if avgNet > target+150 {
			return AdaptiveResult{Target: target - 150, Reason: ReasonDeficitTooSmall}
		}
	case "Weight Gain":
		if avgNet < target-150 {
			return AdaptiveResult{Target: target + 150, Reason: ReasonSurplusTooSmall}
		}
	}
	return AdaptiveResult{Target: target, Reason: ReasonOnTrack}
}

// AdaptiveTargetV2 is the full rule set with independent branches per goal,
// including corrections in the opposite direction when the deviation
// overshoots.
func AdaptiveTargetV2(avgNet, target float64, goal string, daysLogged int) AdaptiveResult {
	if daysLogged < 1 {
		return AdaptiveResult{Target: target, Reason: ReasonInsufficientData}
	}

	switch goal {
	case "Weight Loss":
		if avgNet > target+150 {
			return AdaptiveResult{Target: target - 150, Reason: ReasonDeficitTooSmall}
		}
		if avgNet < target-400 {
			return AdaptiveResult{Target: target + 100, Reason: ReasonDeficitTooSharp}
		}
		return AdaptiveResult{Target: target, Reason: ReasonOnTrack}

	case "Weight Gain":
		if avgNet < target-150 {
			return AdaptiveResult{Target: target + 150, Reason: ReasonSurplusTooSmall}
		}
		if avgNet > target+400 {
			return AdaptiveResult{Target: target - 100, Reason: ReasonSurplusTooLarge}
		}
		return AdaptiveResult{Target: target, Reason: ReasonOnTrack}

	default: // Maintain
		// Drifted more than 250 kcal from target: nudge the target 100 kcal
		// toward the observed average instead of fighting it.
		diff := avgNet - target
		if diff > 250 {
			return AdaptiveResult{Target: target + 100, Reason: ReasonDriftAbove}
		}
		if diff < -250 {
			return AdaptiveResult{Target: target - 100, Reason: ReasonDriftBelow}
		}
		return AdaptiveResult{Target: target, Reason: ReasonBalanced}
	}
}

// AdaptiveTarget dispatches on the configured strategy name; anything other
// than "v1" runs the full V2 rule set.
func AdaptiveTarget(strategy string, avgNet, target float64, goal string, daysLogged int) AdaptiveResult {
	if strategy == StrategyV1 {
		return AdaptiveTargetV1(avgNet, target, goal, daysLogged)
	}
	return AdaptiveTargetV2(avgNet, target, goal, daysLogged)
}
