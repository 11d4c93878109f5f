// Package advisor turns a weather reading into scores, health advice, place
// recommendations and an activity suggestion. Everything here is pure: the
// lookup tables are package-level and never written after init.
package advisor

import "weather-advisor/internal/models"

// Advise runs every rule set against one reading.
func Advise(reading models.WeatherReading, conditions []string) models.Advice {
	return models.Advice{
		WeatherScore:       WeatherScore(reading),
		ActivityScore:      ActivityScore(reading),
		HealthAdvice:       HealthAdvice(reading, conditions),
		Places:             PlaceRecommendations(reading),
		ActivitySuggestion: ActivityRecommendation(reading.Description),
	}
}
