package engine

// Recommendations returns the fixed advisory list, in display order.
func Recommendations() []AdvisoryItem {
	return []AdvisoryItem{
		{Icon: "♻️", Text: "Choose refurbished electronics"},
		{Icon: "🌱", Text: "Opt for plant-based proteins"},
		{Icon: "👕", Text: "Extend clothing lifespan"},
		{Icon: "🧴", Text: "Use concentrated products"},
	}
}

// SelectRecommendations returns the advisory list when total exceeds the
// reference budget, and nil otherwise.
func SelectRecommendations(total float64, settings Settings) []AdvisoryItem {
	if total > settings.ReferenceBudget {
		return Recommendations()
	}
	return nil
}
