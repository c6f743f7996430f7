package di

import (
	"context"
	"fmt"
	"log"
	"time"

	"weather-server/api"
	"weather-server/api/forecast"
	"weather-server/api/geocoding"
	"weather-server/config"
	"weather-server/dao/redis"
	"weather-server/db"
	"weather-server/server"
	"weather-server/server/handlers"
	services "weather-server/service"
	"weather-server/telemetry"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	Config            *config.Config
	RedisClient       db.RedisClient
	RedisGeocodeDao   *redis.RedisGeocodeDAO
	GeocodingAPI      geocoding.GeocodingAPI
	ForecastAPI       forecast.ForecastAPI
	WeatherService    *services.WeatherService
	WeatherHandler    *handlers.WeatherHandler
	MuxRouter         *mux.Router
	Router            *server.Router
	WeatherHttpServer *server.WeatherHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Printf("initializing container - env: %s", cfg.Env)
	c := &Container{Config: cfg}

	// Initialize upstream API clients
	if cfg.Env == config.ENV_MOCK {
		log.Printf("Using mock geocoding and forecast apis")
		c.GeocodingAPI = geocoding.NewGeocodingApiClientMock(config.GetResourcePath(config.GEOCODING_RESPONSE_RESOURCE))
		c.ForecastAPI = forecast.NewForecastApiClientMock(config.GetResourcePath(config.FORECAST_RESPONSE_RESOURCE))
	} else {
		log.Printf("Using prod geocoding and forecast apis")
		c.GeocodingAPI = geocoding.NewGeocodingApiClient(api.NewHTTPClient(cfg.GeocodingBaseURL, cfg.UserAgent, cfg.HTTPTimeout))
		c.ForecastAPI = forecast.NewForecastApiClient(api.NewHTTPClient(cfg.ForecastBaseURL, cfg.UserAgent, cfg.HTTPTimeout))
	}

	// Optional geocode cache in front of the geocoding api
	if cfg.RedisAddress != "" {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisClient := db.NewGoRedisClient(redisInternalClient)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(pingCtx); err != nil {
			redisClient.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddress, err)
		}

		c.RedisClient = redisClient
		c.RedisGeocodeDao = redis.NewRedisGeocodeDAO(redisClient, cfg.GeocodeCacheTTL)
		c.GeocodingAPI = geocoding.NewCachedGeocodingApiClient(c.GeocodingAPI, c.RedisGeocodeDao)
		log.Printf("Geocode cache enabled (redis %s, ttl %s)", cfg.RedisAddress, cfg.GeocodeCacheTTL)
	}

	// Initialize service layer
	c.WeatherService = services.NewWeatherService(c.GeocodingAPI, c.ForecastAPI, telemetry.Tracer())

	// Initialize weather handler
	c.WeatherHandler = handlers.NewWeatherHandler(c.WeatherService)

	// Initialize mux router
	c.MuxRouter = mux.NewRouter()

	// Initialize router
	c.Router = server.NewRouter(c.WeatherHandler, c.MuxRouter)

	// initialize weather server
	c.WeatherHttpServer = server.NewWeatherHttpServer(c.Router, c.MuxRouter, cfg.Port,
		config.SERVER_SHUTDOWN_TIMEOUT_SECONDS*time.Second)

	return c, nil
}

// Close releases the connections the container opened.
func (c *Container) Close() {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			log.Printf("failed to close redis client: %v", err)
		}
	}
}
