package models

// WeatherReport is the result of one fetch step against the provider.
type WeatherReport struct {
	City     string
	Current  WeatherReading
	Forecast []ForecastDay
}
