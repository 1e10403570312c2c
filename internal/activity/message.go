package activity

// Motivation returns the encouragement line for the activity view,
// stepping with the streak.
func Motivation(streak int) string {
	switch {
	case streak > 7:
		return "Amazing streak! Keep the momentum going! 🔥"
	case streak > 3:
		return "You're building a great habit! 💪"
	case streak > 0:
		return "Great start! Keep it up! ⭐"
	default:
		return "Start your study streak today! 📚"
	}
}

// MessageIndex picks a rotating footer line by day of month, so the
// choice is stable within a day and cycles across the month.
func MessageIndex(dayOfMonth, listLen int) int {
	if listLen <= 0 {
		return 0
	}
	return dayOfMonth % listLen
}

// Greeting returns the salutation for the given local hour.
func Greeting(hour int) string {
	switch {
	case hour >= 12 && hour < 17:
		return "Good afternoon"
	case hour >= 17:
		return "Good evening"
	default:
		return "Good morning"
	}
}
