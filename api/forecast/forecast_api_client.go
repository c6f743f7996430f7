package forecast

import (
	"context"
	"net/http"
	"net/url"

	"weather-server/api"
	"weather-server/models"
)

const COMPACT_ENDPOINT = "/compact"

// ForecastApiClient talks to the MET Norway locationforecast API.
type ForecastApiClient struct {
	*api.HTTPClient
}

// NewForecastApiClient creates a new instance of ForecastApiClient
func NewForecastApiClient(httpClient *api.HTTPClient) *ForecastApiClient {
	return &ForecastApiClient{
		HTTPClient: httpClient,
	}
}

// Compact requests the compact forecast for lat/lon. The coordinates are sent
// exactly as given.
func (c *ForecastApiClient) Compact(ctx context.Context, lat, lon string) (api.Result[*models.ForecastPayload], error) {
	return api.SafeCall(ctx, "ForecastApiClient", func(ctx context.Context) (*models.ForecastPayload, error) {
		query := url.Values{}
		query.Set("lat", lat)
		query.Set("lon", lon)

		var response models.ForecastPayload
		status, err := c.Request(ctx, "GET", COMPACT_ENDPOINT, query, &response)
		if err != nil {
			return nil, err
		}
		if status == http.StatusNoContent {
			return nil, nil
		}
		return &response, nil
	})
}
