package util

import (
	"encoding/json"
	"fmt"
	"os"

	"weather-server/models"
)

// ReadLocationsFromJSON loads a geocoding search response from JSON on disk.
func ReadLocationsFromJSON(filePath string) (models.Locations, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.Locations
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Locations: %w", err)
	}
	if err := resp.Validate(); err != nil {
		return nil, fmt.Errorf("invalid Locations in %q: %w", filePath, err)
	}
	return resp, nil
}

// ReadForecastFromJSON loads a forecast payload from JSON on disk.
func ReadForecastFromJSON(filePath string) (*models.ForecastPayload, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.ForecastPayload
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ForecastPayload: %w", err)
	}
	if err := resp.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ForecastPayload in %q: %w", filePath, err)
	}
	return &resp, nil
}
