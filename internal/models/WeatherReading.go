package models

// WeatherReading is a snapshot of current conditions for one city.
type WeatherReading struct {
	Temperature float64 `json:"temperature" example:"22.5"`
	Humidity    int     `json:"humidity" example:"40"`
	Pressure    float64 `json:"pressure" example:"1013"`
	WindSpeed   float64 `json:"wind_speed" example:"3.6"`
	Description string  `json:"description" example:"clear sky"`
	Icon        string  `json:"icon" example:"01d"`
}
