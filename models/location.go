package models

import "fmt"

// Location is one geocoding candidate as returned by the Nominatim search API.
// Coordinates are kept as the provider's decimal strings.
type Location struct {
	PlaceID     int64    `json:"place_id"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	AddressType string   `json:"addresstype"`
	Importance  float64  `json:"importance"`
	BoundingBox []string `json:"boundingbox"`
}

// Validate rejects candidates that carry no usable coordinates.
func (l *Location) Validate() error {
	if l.Lat == "" || l.Lon == "" {
		return fmt.Errorf("location %q is missing lat/lon", l.DisplayName)
	}
	return nil
}

func (l *Location) ToString() string {
	return fmt.Sprintf("Location(name=%s, lat=%s, lon=%s)", l.DisplayName, l.Lat, l.Lon)
}

// Locations is a geocoding search response.
type Locations []Location

func (ls Locations) Validate() error {
	for i := range ls {
		if err := ls[i].Validate(); err != nil {
			return fmt.Errorf("candidate %d: %w", i, err)
		}
	}
	return nil
}
