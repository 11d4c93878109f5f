package advisor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-advisor/internal/models"
)

func TestAdvise(t *testing.T) {
	r := models.WeatherReading{
		Temperature: 32,
		Humidity:    40,
		Pressure:    1012,
		WindSpeed:   3,
		Description: "sunny",
		Icon:        "01d",
	}

	advice := Advise(r, []string{"asthma"})

	assert.Equal(t, 80, advice.WeatherScore)
	assert.Equal(t, 80, advice.ActivityScore)
	assert.Equal(t, []string{adviceHeat, riskProfiles[Asthma].Alert}, advice.HealthAdvice)
	assert.Equal(t, string(Excellent), advice.Places.Category)
	assert.Equal(t, bestTimeHot, advice.Places.BestTime)
	assert.Equal(t, activityDefault, advice.ActivitySuggestion)
}

func TestAdvise_Idempotent(t *testing.T) {
	readings := []models.WeatherReading{
		{Temperature: 22, Description: "clear sky"},
		{Temperature: 5, Description: "light rain", WindSpeed: 11},
		{Temperature: -2, Description: "snow"},
		{Temperature: 36, Description: "heavy rain"},
	}
	conditions := []string{"asthma", "unknown", "heart_condition", "asthma"}

	for _, r := range readings {
		first, err := json.Marshal(Advise(r, conditions))
		require.NoError(t, err)
		second, err := json.Marshal(Advise(r, conditions))
		require.NoError(t, err)

		assert.Equal(t, string(first), string(second))
	}
}

func TestAdvise_EmptyAdviceSerializesAsList(t *testing.T) {
	raw, err := json.Marshal(Advise(models.WeatherReading{Temperature: 21, Description: "clear sky"}, nil))
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"health_advice":[]`)
}
