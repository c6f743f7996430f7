package geocoding

import (
	"context"

	"weather-server/api"
	"weather-server/models"
)

// GeocodingAPI resolves a city name into candidate locations. The error
// return only carries cancellation of ctx; upstream failures are classified
// into the Result.
type GeocodingAPI interface {
	Search(ctx context.Context, city string) (api.Result[[]models.Location], error)
}
