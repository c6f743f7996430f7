package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environments
const ENV_PROD = "prod"
const ENV_MOCK = "mock"

// HTTP server config
const DEFAULT_PORT = "8080"
const SERVER_SHUTDOWN_TIMEOUT_SECONDS = 5

// Upstream APIs
const GEOCODING_ENDPOINT_BASE = "https://nominatim.openstreetmap.org"
const FORECAST_ENDPOINT_BASE = "https://api.met.no/weatherapi/locationforecast/2.0"
const DEFAULT_USER_AGENT = "weather-server/1.0 github.com/weather-server"
const DEFAULT_HTTP_TIMEOUT_SECONDS = 10

// Redis Config
// An empty address disables the geocode cache.
const REDIS_DB_ADDRESS = ""
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0
const GEOCODE_CACHE_TTL_MINUTES = 60 * 24

// Tracing
const DEFAULT_OTEL_SERVICE_NAME = "weather-server"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const GEOCODING_RESPONSE_RESOURCE = "geocoding_response.json"
const FORECAST_RESPONSE_RESOURCE = "forecast_response.json"

// Config is the runtime configuration, built from the constants above and
// overridden by environment variables (optionally loaded from a .env file).
type Config struct {
	Env              string
	Port             string
	GeocodingBaseURL string
	ForecastBaseURL  string
	UserAgent        string
	HTTPTimeout      time.Duration

	RedisAddress    string
	RedisPassword   string
	RedisDB         int
	GeocodeCacheTTL time.Duration

	OtelEndpoint    string
	OtelServiceName string
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] No .env file found, using environment only")
	}

	return &Config{
		Env:              getEnv("ENV", ENV_PROD),
		Port:             getEnv("PORT", DEFAULT_PORT),
		GeocodingBaseURL: getEnv("GEOCODING_BASE_URL", GEOCODING_ENDPOINT_BASE),
		ForecastBaseURL:  getEnv("FORECAST_BASE_URL", FORECAST_ENDPOINT_BASE),
		UserAgent:        getEnv("USER_AGENT", DEFAULT_USER_AGENT),
		HTTPTimeout:      time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", DEFAULT_HTTP_TIMEOUT_SECONDS)) * time.Second,

		RedisAddress:    getEnv("REDIS_ADDR", REDIS_DB_ADDRESS),
		RedisPassword:   getEnv("REDIS_PASSWORD", REDIS_DB_PASSWORD),
		RedisDB:         getEnvInt("REDIS_DB", REDIS_DB),
		GeocodeCacheTTL: time.Duration(getEnvInt("GEOCODE_CACHE_TTL_MINUTES", GEOCODE_CACHE_TTL_MINUTES)) * time.Minute,

		OtelEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OtelServiceName: getEnv("OTEL_SERVICE_NAME", DEFAULT_OTEL_SERVICE_NAME),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[Config] Invalid integer for %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
