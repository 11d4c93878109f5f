package advisor

import "weather-advisor/internal/models"

type HealthCondition string

const (
	Asthma         HealthCondition = "asthma"
	Allergies      HealthCondition = "allergies"
	HeartCondition HealthCondition = "heart_condition"
)

const (
	adviceRain = "🌧️ Carry an umbrella and wear waterproof clothing"
	adviceSnow = "❄️ Wear warm, layered clothing and waterproof boots"
	adviceHeat = "🌡️ High temperature - stay hydrated and avoid prolonged sun exposure"
	adviceCold = "🌡️ Cold weather - wear warm clothing and protect extremities"
)

// Band is an inclusive range.
type Band struct {
	Min float64
	Max float64
}

func (b Band) Contains(v float64) bool {
	return b.Min <= v && v <= b.Max
}

// RiskProfile describes the comfortable range for a health condition.
// Humidity is recorded but not used by any advice rule yet.
type RiskProfile struct {
	Temperature Band
	Humidity    Band
	Alert       string
}

var riskProfiles = map[HealthCondition]RiskProfile{
	Asthma: {
		Temperature: Band{Min: 18, Max: 24},
		Humidity:    Band{Min: 30, Max: 50},
		Alert:       "😷 Asthma Alert: Consider using an inhaler before outdoor activities",
	},
	Allergies: {
		Temperature: Band{Min: 15, Max: 25},
		Humidity:    Band{Min: 40, Max: 60},
		Alert:       "🤧 Allergy Alert: Consider wearing a mask outdoors",
	},
	HeartCondition: {
		Temperature: Band{Min: 18, Max: 27},
		Humidity:    Band{Min: 40, Max: 60},
		Alert:       "❤️ Heart Condition Alert: Limit strenuous outdoor activities",
	},
}

// LookupRiskProfile reports the profile for a condition tag.
func LookupRiskProfile(condition string) (RiskProfile, bool) {
	p, ok := riskProfiles[HealthCondition(condition)]
	return p, ok
}

// HealthAdvice returns at most one general line followed by one alert per
// condition whose temperature band excludes the reading, in input order.
// Unknown conditions are skipped; repeated conditions repeat their alert.
func HealthAdvice(reading models.WeatherReading, conditions []string) []string {
	advice := []string{}
	t := reading.Temperature

	switch {
	case contains(reading.Description, "rain"):
		advice = append(advice, adviceRain)
	case contains(reading.Description, "snow"):
		advice = append(advice, adviceSnow)
	case t > 30:
		advice = append(advice, adviceHeat)
	case t < 10:
		advice = append(advice, adviceCold)
	}

	for _, condition := range conditions {
		profile, ok := LookupRiskProfile(condition)
		if !ok {
			continue
		}
		if !profile.Temperature.Contains(t) {
			advice = append(advice, profile.Alert)
		}
	}

	return advice
}
