package services

import (
	"context"
	"fmt"
	"log"

	"weather-server/api"
	"weather-server/api/forecast"
	"weather-server/api/geocoding"
	"weather-server/models"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// WeatherService resolves a city name to its current weather by chaining the
// geocoding and forecast APIs. It holds no mutable state and is safe for
// concurrent use.
type WeatherService struct {
	geocodingApi geocoding.GeocodingAPI
	forecastApi  forecast.ForecastAPI
	tracer       trace.Tracer
}

// NewWeatherService constructs a new WeatherService.
func NewWeatherService(
	geocodingApi geocoding.GeocodingAPI,
	forecastApi forecast.ForecastAPI,
	tracer trace.Tracer) *WeatherService {

	return &WeatherService{
		geocodingApi: geocodingApi,
		forecastApi:  forecastApi,
		tracer:       tracer,
	}
}

// ResolveWeatherForCity validates raw and resolves it to an Outcome.
// The error is a *ValidationError (errors.Is ErrInvalidCity) when the input
// is rejected, or the context error when ctx is cancelled mid-flight.
func (ws *WeatherService) ResolveWeatherForCity(ctx context.Context, raw string) (models.Outcome, error) {
	city := NormalizeCity(raw)
	if err := ValidateCity(city); err != nil {
		return models.Outcome{}, err
	}
	return ws.GetWeatherByCity(ctx, city)
}

// GetWeatherByCity runs geocode, forecast and reduction for an already
// validated city name.
func (ws *WeatherService) GetWeatherByCity(ctx context.Context, city string) (models.Outcome, error) {
	ctx, span := ws.tracer.Start(ctx, "resolve-weather", trace.WithAttributes(attribute.String("city", city)))
	defer span.End()

	outcome, err := ws.getWeatherByCity(ctx, city)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "cancelled")
		return models.Outcome{}, err
	}

	span.SetAttributes(attribute.String("outcome", outcome.Kind.String()))
	if !outcome.IsSuccess() {
		span.SetStatus(codes.Error, outcome.Kind.String())
	}
	log.Printf("[WeatherService] %s -> %s", city, outcome)
	return outcome, nil
}

func (ws *WeatherService) getWeatherByCity(ctx context.Context, city string) (models.Outcome, error) {
	// 1) Geocode
	coordinates, err := ws.GetCoordinatesByCity(ctx, city)
	if err != nil {
		return models.Outcome{}, err
	}
	if !coordinates.IsSuccess() {
		return models.Failure(MapNetworkError(coordinates.Error())), nil
	}
	candidates := coordinates.Data()
	if len(candidates) == 0 {
		return models.Failure(models.OutcomeCoordinatesEmpty), nil
	}
	first := candidates[0]

	// 2) Forecast
	weather, err := ws.GetWeatherByCoordinates(ctx, first.Lat, first.Lon)
	if err != nil {
		return models.Outcome{}, err
	}
	if !weather.IsSuccess() {
		return models.Failure(MapNetworkError(weather.Error())), nil
	}

	// 3) Reduce
	summary, ok := Reduce(weather.Data())
	if !ok {
		return models.Failure(models.OutcomeNoWeatherData), nil
	}
	return models.Success(summary), nil
}

// GetCoordinatesByCity is the geocoding leg.
func (ws *WeatherService) GetCoordinatesByCity(ctx context.Context, city string) (api.Result[[]models.Location], error) {
	ctx, span := ws.tracer.Start(ctx, "geocode")
	defer span.End()

	res, err := ws.geocodingApi.Search(ctx, city)
	recordLeg(span, res.Error(), err)
	if err == nil && res.IsSuccess() {
		span.SetAttributes(attribute.Int("candidates", len(res.Data())))
	}
	return res, err
}

// GetWeatherByCoordinates is the forecast leg.
func (ws *WeatherService) GetWeatherByCoordinates(ctx context.Context, lat, lon string) (api.Result[*models.ForecastPayload], error) {
	ctx, span := ws.tracer.Start(ctx, "forecast", trace.WithAttributes(
		attribute.String("lat", lat),
		attribute.String("lon", lon),
	))
	defer span.End()

	res, err := ws.forecastApi.Compact(ctx, lat, lon)
	recordLeg(span, res.Error(), err)
	return res, err
}

func recordLeg(span trace.Span, kind api.NetworkError, err error) {
	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, "cancelled")
	case kind != 0:
		span.SetStatus(codes.Error, kind.String())
	}
}

// Reduce flattens the first time-series entry of payload. ok is false when the
// payload is absent or has no entries. Missing readings default to 0.0 and a
// missing next-hour symbol to "unknown".
func Reduce(payload *models.ForecastPayload) (models.CityWeather, bool) {
	if payload == nil || payload.Properties == nil || len(payload.Properties.TimeSeries) == 0 {
		return models.CityWeather{}, false
	}
	data := payload.Properties.TimeSeries[0].Data

	weather := models.CityWeather{Summary: models.UNKNOWN_SUMMARY}
	if data.Instant != nil && data.Instant.Details != nil {
		if t := data.Instant.Details.AirTemperature; t != nil {
			weather.Temperature = *t
		}
		if w := data.Instant.Details.WindSpeed; w != nil {
			weather.WindSpeed = *w
		}
	}
	if next := data.NextOneHours; next != nil && next.Summary != nil && next.Summary.SymbolCode != "" {
		weather.Summary = next.Summary.SymbolCode
	}
	return weather, true
}

// MapNetworkError maps a failed call to its Outcome kind, regardless of which
// leg produced it.
func MapNetworkError(kind api.NetworkError) models.OutcomeKind {
	switch kind {
	case api.NoConnectivity:
		return models.OutcomeNoInternetConnection
	case api.ClientError:
		return models.OutcomeClientError
	case api.ServerError:
		return models.OutcomeServerError
	case api.DeserializationFailure:
		return models.OutcomeDeserializationError
	case api.UnknownFailure:
		return models.OutcomeUnknownError
	}
	panic(fmt.Sprintf("unhandled network error %s", kind))
}
