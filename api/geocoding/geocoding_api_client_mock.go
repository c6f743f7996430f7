package geocoding

import (
	"context"
	"log"

	"weather-server/api"
	"weather-server/models"
	"weather-server/util"
)

// GeocodingApiClientMock answers every search from a JSON fixture on disk.
type GeocodingApiClientMock struct {
	responsePath string
}

// NewGeocodingApiClientMock creates a new instance of GeocodingApiClientMock
func NewGeocodingApiClientMock(responsePath string) *GeocodingApiClientMock {
	return &GeocodingApiClientMock{responsePath: responsePath}
}

// Search ignores city and returns the fixture candidates.
func (c *GeocodingApiClientMock) Search(ctx context.Context, city string) (api.Result[[]models.Location], error) {
	if err := ctx.Err(); err != nil {
		return api.Result[[]models.Location]{}, err
	}

	response, err := util.ReadLocationsFromJSON(c.responsePath)
	if err != nil {
		log.Println("[GeocodingApiClientMock] Could not read geocoding response from json:", err)
		return api.Failure[[]models.Location](api.DeserializationFailure), nil
	}

	return api.Success([]models.Location(response)), nil
}
