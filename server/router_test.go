package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// MockWeatherHandler is a mock implementation of RouteHandler.
type MockWeatherHandler struct{}

func (h *MockWeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"state": "success"}`))
}

func (h *MockWeatherHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "pong"}`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	router := mux.NewRouter()
	appRouter := NewRouter(&MockWeatherHandler{}, router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "Get Weather",
			method:     "GET",
			path:       "/v1/weather?city=Oslo",
			statusCode: http.StatusOK,
			response:   `{"state": "success"}`,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status": "pong"}`,
		},
		{
			name:       "Wrong Method",
			method:     "POST",
			path:       "/v1/weather",
			statusCode: http.StatusMethodNotAllowed,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}
