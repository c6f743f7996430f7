package models

import "errors"

// ForecastPayload is the subset of the MET Norway locationforecast "compact"
// response the resolver depends on.
type ForecastPayload struct {
	Properties *ForecastProperties `json:"properties"`
}

type ForecastProperties struct {
	TimeSeries []TimeSeriesEntry `json:"timeseries"`
}

type TimeSeriesEntry struct {
	Time string         `json:"time"`
	Data TimeSeriesData `json:"data"`
}

type TimeSeriesData struct {
	Instant      *InstantMeasurement `json:"instant"`
	NextOneHours *NextHourSummary    `json:"next_1_hours,omitempty"`
}

type InstantMeasurement struct {
	Details *InstantDetails `json:"details"`
}

// InstantDetails holds the readings valid at the entry timestamp. Both may be absent.
type InstantDetails struct {
	AirTemperature *float64 `json:"air_temperature,omitempty"`
	WindSpeed      *float64 `json:"wind_speed,omitempty"`
}

type NextHourSummary struct {
	Summary *SymbolSummary `json:"summary,omitempty"`
}

type SymbolSummary struct {
	SymbolCode string `json:"symbol_code"`
}

// Validate enforces the required parts of the payload shape: properties,
// timeseries and every entry's instant details.
func (p *ForecastPayload) Validate() error {
	if p.Properties == nil {
		return errors.New("forecast payload has no properties")
	}
	if p.Properties.TimeSeries == nil {
		return errors.New("forecast payload has no timeseries")
	}
	for _, entry := range p.Properties.TimeSeries {
		if entry.Data.Instant == nil || entry.Data.Instant.Details == nil {
			return errors.New("timeseries entry " + entry.Time + " has no instant details")
		}
	}
	return nil
}
