package craving

// Intervention builds the advice text for a craving: a base action picked
// by intensity, plus a trigger-specific follow-up.
func Intervention(level int, trigger string) string {
	var base string
	switch {
	case level <= 3:
		base = "Drink water and wait 10 minutes."
	case level <= 6:
		base = "Eat protein snack (nuts / yogurt / eggs)."
	default:
		base = "Take a 10-minute walk + deep breathing + protein snack."
	}
	return base + triggerAdvice(trigger)
}

func triggerAdvice(trigger string) string {
	switch trigger {
	case "Stress":
		return " Also try 5-minute breathing exercise."
	case "Boredom":
		return " Do a quick task or short activity."
	case "Hunger":
		return " You likely need a proper meal, not sugar."
	case "Lack of Sleep":
		return " Prioritize sleep tonight."
	case "After Meals":
		return " Brush your teeth to reset taste."
	case "Social Event":
		return " Choose fruit or small dark chocolate portion."
	case "Habit":
		return " Replace with herbal tea."
	default:
		return ""
	}
}
