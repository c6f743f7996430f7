package forecast

import (
	"context"

	"weather-server/api"
	"weather-server/models"
)

// ForecastAPI fetches the forecast for a coordinate pair. A nil payload in a
// successful Result means the provider had no content for the location.
type ForecastAPI interface {
	Compact(ctx context.Context, lat, lon string) (api.Result[*models.ForecastPayload], error)
}
