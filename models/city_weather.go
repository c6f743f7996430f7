package models

import "fmt"

// UNKNOWN_SUMMARY is reported when the forecast carries no next-hour symbol.
const UNKNOWN_SUMMARY = "unknown"

// CityWeather is the flat weather summary produced for a city.
type CityWeather struct {
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"wind_speed"`
	Summary     string  `json:"summary"`
}

func (w CityWeather) ToString() string {
	return fmt.Sprintf("CityWeather(temperature=%.1f, wind_speed=%.1f, summary=%s)",
		w.Temperature, w.WindSpeed, w.Summary)
}
