package geocoding

import (
	"context"
	"log"

	"weather-server/api"
	"weather-server/models"
)

// CandidateCache stores geocoding responses keyed by city name.
type CandidateCache interface {
	GetCandidates(ctx context.Context, city string) ([]models.Location, bool, error)
	SetCandidates(ctx context.Context, city string, candidates []models.Location) error
}

// CachedGeocodingApiClient serves repeated searches from a CandidateCache and
// falls through to the wrapped client on a miss. Only successful lookups are
// cached. Cache failures are logged and treated as misses.
type CachedGeocodingApiClient struct {
	next  GeocodingAPI
	cache CandidateCache
}

func NewCachedGeocodingApiClient(next GeocodingAPI, cache CandidateCache) *CachedGeocodingApiClient {
	return &CachedGeocodingApiClient{next: next, cache: cache}
}

func (c *CachedGeocodingApiClient) Search(ctx context.Context, city string) (api.Result[[]models.Location], error) {
	candidates, found, err := c.cache.GetCandidates(ctx, city)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return api.Result[[]models.Location]{}, ctxErr
		}
		log.Printf("[CachedGeocodingApiClient] cache read failed for %q: %v", city, err)
	} else if found {
		return api.Success(candidates), nil
	}

	res, err := c.next.Search(ctx, city)
	if err != nil || !res.IsSuccess() {
		return res, err
	}

	if err := c.cache.SetCandidates(ctx, city, res.Data()); err != nil {
		log.Printf("[CachedGeocodingApiClient] cache write failed for %q: %v", city, err)
	}
	return res, nil
}
