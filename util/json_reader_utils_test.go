package util

import (
	"os"
	"testing"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tempFile, err := os.CreateTemp(t.TempDir(), "test*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	_, err = tempFile.Write([]byte(content))
	if err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()
	return tempFile.Name()
}

func TestReadLocationsFromJSON(t *testing.T) {
	// Arrange
	content := `[
		{"lat": "59.9133301", "lon": "10.7389701", "name": "Oslo", "display_name": "Oslo, Norge"},
		{"lat": "43.9", "lon": "-78.8", "display_name": "Oslo, Ontario"}
	]`
	tempFile := createTempFile(t, content)

	// Act
	response, err := ReadLocationsFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(response) != 2 {
		t.Fatalf("Expected 2 locations, got %d", len(response))
	}
	if response[0].DisplayName != "Oslo, Norge" {
		t.Errorf("Expected 'Oslo, Norge', got '%s'", response[0].DisplayName)
	}
	if response[0].Lat != "59.9133301" {
		t.Errorf("Expected lat '59.9133301', got '%s'", response[0].Lat)
	}
}

func TestReadLocationsFromJSON_Invalid(t *testing.T) {
	tests := map[string]string{
		"malformed":          `[{"lat": `,
		"missing longitude":  `[{"lat": "1"}]`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadLocationsFromJSON(createTempFile(t, content)); err == nil {
				t.Error("Expected an error, got nil")
			}
		})
	}
}

func TestReadLocationsFromJSON_MissingFile(t *testing.T) {
	if _, err := ReadLocationsFromJSON("no-such-file.json"); err == nil {
		t.Error("Expected an error for a missing file, got nil")
	}
}

func TestReadForecastFromJSON(t *testing.T) {
	content := `{"properties": {"timeseries": [
		{"time": "2024-05-01T10:00:00Z", "data": {
			"instant": {"details": {"air_temperature": -2.5}},
			"next_1_hours": {"summary": {"symbol_code": "snow"}}
		}}
	]}}`
	tempFile := createTempFile(t, content)

	response, err := ReadForecastFromJSON(tempFile)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	entry := response.Properties.TimeSeries[0]
	if *entry.Data.Instant.Details.AirTemperature != -2.5 {
		t.Errorf("Expected -2.5, got %v", *entry.Data.Instant.Details.AirTemperature)
	}
	if entry.Data.Instant.Details.WindSpeed != nil {
		t.Errorf("Expected absent wind speed, got %v", *entry.Data.Instant.Details.WindSpeed)
	}
	if entry.Data.NextOneHours.Summary.SymbolCode != "snow" {
		t.Errorf("Expected 'snow', got '%s'", entry.Data.NextOneHours.Summary.SymbolCode)
	}
}

func TestReadForecastFromJSON_MissingProperties(t *testing.T) {
	if _, err := ReadForecastFromJSON(createTempFile(t, `{"type": "Feature"}`)); err == nil {
		t.Error("Expected an error, got nil")
	}
}
