package advisor

import "weather-advisor/internal/models"

const (
	maxScore = 100
	minScore = 0
)

var weatherConditionPenalties = []rule[int]{
	{keywords: []string{"rain", "storm"}, outcome: 40},
	{keywords: []string{"cloud"}, outcome: 10},
	{keywords: []string{"snow"}, outcome: 30},
}

var activityConditionPenalties = []rule[int]{
	{keywords: []string{"rain", "storm"}, outcome: 30},
	{keywords: []string{"cloud"}, outcome: 10},
}

// WeatherScore rates how good the weather is for going out, from 0 to 100.
// It drives the place category.
func WeatherScore(reading models.WeatherReading) int {
	score := maxScore
	t := reading.Temperature

	switch {
	case t < 10 || t > 35:
		score -= 40
	case t < 15 || t > 30:
		score -= 20
	case t < 20 || t > 25:
		score -= 10
	}

	score -= firstMatch(weatherConditionPenalties, reading.Description, 0)

	return clamp(score)
}

// ActivityScore is the provider-side variant that also penalises wind. It uses
// narrower temperature bands and is reported on its own; it never feeds the
// place category.
func ActivityScore(reading models.WeatherReading) int {
	score := maxScore
	t := reading.Temperature

	switch {
	case t < 10 || t > 30:
		score -= 20
	case t < 15 || t > 25:
		score -= 10
	}

	switch {
	case reading.WindSpeed > 10:
		score -= 20
	case reading.WindSpeed > 5:
		score -= 10
	}

	score -= firstMatch(activityConditionPenalties, reading.Description, 0)

	return clamp(score)
}

func clamp(score int) int {
	return max(minScore, min(maxScore, score))
}
