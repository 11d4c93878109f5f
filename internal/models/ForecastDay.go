package models

import "time"

const DateLayout = "2006-01-02"

// ForecastDay summarises all provider samples that fall on one calendar date.
type ForecastDay struct {
	Date        time.Time
	Temperature float64
	Description string
	Icon        string
}

// FilterByDate returns the index of the day with the matching calendar date, or -1 if not found
func FilterByDate(days []ForecastDay, date time.Time) int {
	for i, d := range days {
		if d.Date.Equal(date) {
			return i
		}
	}
	return -1
}
