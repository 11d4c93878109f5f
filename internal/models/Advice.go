package models

// PlaceGroup is one block of the place catalog, e.g. "Indoor Activities".
type PlaceGroup struct {
	Type   string   `json:"type" example:"Indoor Activities"`
	Places []string `json:"places"`
}

type PlaceRecommendation struct {
	WeatherStatus string       `json:"weather_status" example:"Good weather for mixed activities! 👍"`
	Category      string       `json:"category" example:"good"`
	Categories    []PlaceGroup `json:"categories"`
	BestTime      string       `json:"best_time" example:"Weather is pleasant throughout the day"`
}

// Advice bundles everything the recommendation engine derives from one reading.
type Advice struct {
	WeatherScore       int                 `json:"weather_score" example:"90"`
	ActivityScore      int                 `json:"activity_score" example:"90"`
	HealthAdvice       []string            `json:"health_advice"`
	Places             PlaceRecommendation `json:"place_recommendations"`
	ActivitySuggestion string              `json:"activity_recommendation"`
}
