package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"weather-server/models"
	services "weather-server/service"
)

const CITY_QUERY_ARG = "city"

// WeatherResolver is the part of the weather service the handler needs.
type WeatherResolver interface {
	ResolveWeatherForCity(ctx context.Context, raw string) (models.Outcome, error)
}

// WeatherResponse is the JSON body of GET /v1/weather.
type WeatherResponse struct {
	City    string              `json:"city"`
	State   string              `json:"state"`
	Message string              `json:"message,omitempty"`
	Weather *models.CityWeather `json:"weather,omitempty"`
}

type WeatherHandler struct {
	resolver WeatherResolver
}

func NewWeatherHandler(resolver WeatherResolver) *WeatherHandler {
	return &WeatherHandler{resolver: resolver}
}

// GetWeather handles GET /v1/weather?city={name}
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get(CITY_QUERY_ARG)

	outcome, err := h.resolver.ResolveWeatherForCity(r.Context(), city)
	switch {
	case errors.Is(err, services.ErrInvalidCity):
		writeJSON(w, http.StatusUnprocessableEntity, WeatherResponse{
			City:    city,
			State:   "validation_error",
			Message: "Please enter a valid city name (letters and spaces only).",
		})
		return
	case err != nil:
		// the client went away; there is nobody to answer
		log.Printf("[WeatherHandler] request for %q abandoned: %v", city, err)
		return
	}

	writeJSON(w, StatusForOutcome(outcome.Kind), WeatherResponse{
		City:    city,
		State:   outcome.Kind.String(),
		Message: outcome.Kind.Message(),
		Weather: outcome.Weather,
	})
}

// Ping handles GET /ping
func (h *WeatherHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// StatusForOutcome maps an outcome to the HTTP status it is served with.
func StatusForOutcome(kind models.OutcomeKind) int {
	switch kind {
	case models.OutcomeSuccess:
		return http.StatusOK
	case models.OutcomeCoordinatesEmpty, models.OutcomeNoWeatherData:
		return http.StatusNotFound
	case models.OutcomeClientError, models.OutcomeServerError, models.OutcomeDeserializationError:
		return http.StatusBadGateway
	case models.OutcomeNoInternetConnection:
		return http.StatusServiceUnavailable
	case models.OutcomeUnknownError:
		return http.StatusInternalServerError
	}
	panic("unhandled outcome kind " + kind.String())
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
	}
}
