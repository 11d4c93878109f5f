package advisor

import "weather-advisor/internal/models"

type PlaceCategory string

const (
	Excellent PlaceCategory = "excellent"
	Good      PlaceCategory = "good"
	Poor      PlaceCategory = "poor"
)

const (
	bestTimeHot      = "Best to visit places early morning (6-9 AM) or evening (after 5 PM) to avoid peak heat"
	bestTimeCold     = "Best to visit during midday (11 AM-3 PM) when temperatures are warmest"
	bestTimeRain     = "Check hourly forecast for rain-free periods"
	bestTimePleasant = "Weather is pleasant throughout the day"
)

var weatherStatuses = map[PlaceCategory]string{
	Excellent: "Perfect weather for outdoor activities! 🌟",
	Good:      "Good weather for mixed activities! 👍",
	Poor:      "Better to stick to indoor activities! 🏠",
}

// placeCatalog is shared by every request and must not be modified.
var placeCatalog = map[PlaceCategory][]models.PlaceGroup{
	Excellent: {
		{
			Type: "Outdoor Activities",
			Places: []string{
				"Local Parks and Gardens",
				"Hiking Trails",
				"Beach (if available)",
				"Open-air Markets",
				"Outdoor Sports Facilities",
			},
		},
		{
			Type: "Tourist Attractions",
			Places: []string{
				"Historical Monuments",
				"Botanical Gardens",
				"Zoo",
				"Adventure Parks",
				"Scenic Viewpoints",
			},
		},
	},
	Good: {
		{
			Type: "Mixed Activities",
			Places: []string{
				"Shopping Districts",
				"Outdoor Cafes",
				"City Tours",
				"Public Squares",
				"Cultural Districts",
			},
		},
	},
	Poor: {
		{
			Type: "Indoor Activities",
			Places: []string{
				"Museums",
				"Art Galleries",
				"Shopping Malls",
				"Indoor Sports Centers",
				"Cinema/Theater",
				"Indoor Markets",
				"Aquariums",
			},
		},
	},
}

// Category buckets a reading given its weather score. Rain or storm rules out
// excellent whatever the score; heavy rain also rules out good.
func Category(score int, description string) PlaceCategory {
	switch {
	case score >= 80 && !contains(description, "rain") && !contains(description, "storm"):
		return Excellent
	case score >= 60 && !contains(description, "heavy rain"):
		return Good
	default:
		return Poor
	}
}

// PlaceRecommendations picks the venue catalog for the reading. The returned
// Categories slice is the shared catalog; callers must treat it as read-only.
func PlaceRecommendations(reading models.WeatherReading) models.PlaceRecommendation {
	category := Category(WeatherScore(reading), reading.Description)

	return models.PlaceRecommendation{
		WeatherStatus: weatherStatuses[category],
		Category:      string(category),
		Categories:    placeCatalog[category],
		BestTime:      bestTime(reading),
	}
}

func bestTime(reading models.WeatherReading) string {
	switch {
	case reading.Temperature > 30:
		return bestTimeHot
	case reading.Temperature < 10:
		return bestTimeCold
	case contains(reading.Description, "rain"):
		return bestTimeRain
	default:
		return bestTimePleasant
	}
}
