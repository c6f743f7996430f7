package geocoding

import (
	"context"
	"net/url"

	"weather-server/api"
	"weather-server/models"
)

const SEARCH_ENDPOINT = "/search"
const SEARCH_FORMAT = "jsonv2"

// GeocodingApiClient talks to the Nominatim search API.
type GeocodingApiClient struct {
	*api.HTTPClient
}

// NewGeocodingApiClient creates a new instance of GeocodingApiClient
func NewGeocodingApiClient(httpClient *api.HTTPClient) *GeocodingApiClient {
	return &GeocodingApiClient{
		HTTPClient: httpClient,
	}
}

// Search returns the provider's candidates for city, in provider order.
// An empty list is a successful lookup.
func (c *GeocodingApiClient) Search(ctx context.Context, city string) (api.Result[[]models.Location], error) {
	return api.SafeCall(ctx, "GeocodingApiClient", func(ctx context.Context) ([]models.Location, error) {
		query := url.Values{}
		query.Set("city", city)
		query.Set("format", SEARCH_FORMAT)

		var response models.Locations
		if _, err := c.Request(ctx, "GET", SEARCH_ENDPOINT, query, &response); err != nil {
			return nil, err
		}
		if response == nil {
			response = models.Locations{}
		}
		return response, nil
	})
}
