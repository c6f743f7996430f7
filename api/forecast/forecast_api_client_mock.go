package forecast

import (
	"context"
	"log"

	"weather-server/api"
	"weather-server/models"
	"weather-server/util"
)

// ForecastApiClientMock answers every request from a JSON fixture on disk.
type ForecastApiClientMock struct {
	responsePath string
}

// NewForecastApiClientMock creates a new instance of ForecastApiClientMock
func NewForecastApiClientMock(responsePath string) *ForecastApiClientMock {
	return &ForecastApiClientMock{responsePath: responsePath}
}

func (c *ForecastApiClientMock) Compact(ctx context.Context, lat, lon string) (api.Result[*models.ForecastPayload], error) {
	if err := ctx.Err(); err != nil {
		return api.Result[*models.ForecastPayload]{}, err
	}

	response, err := util.ReadForecastFromJSON(c.responsePath)
	if err != nil {
		log.Println("[ForecastApiClientMock] Could not read forecast response from json:", err)
		return api.Failure[*models.ForecastPayload](api.DeserializationFailure), nil
	}

	return api.Success(response), nil
}
