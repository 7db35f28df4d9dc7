package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream feed URL)
// - default: Values common across all environments (timeouts, retry policy, cache sizing)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	Upstream UpstreamConfig
	Cache    CacheConfig
}

type ServerConfig struct {
	Port        string `envconfig:"PORT" required:"true"`
	APIBasePath string `envconfig:"API_BASE_PATH" default:"/api/v1"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Australia/Melbourne"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"36000"` // 10*60*60
}

type UpstreamConfig struct {
	URL           string        `envconfig:"UPSTREAM_URL" required:"true"`
	Timeout       time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
	RetryAttempts uint          `envconfig:"UPSTREAM_RETRY_ATTEMPTS" default:"3"`
	RetryDelay    time.Duration `envconfig:"UPSTREAM_RETRY_DELAY" default:"500ms"`
	// 0 loads once at startup and never again.
	RefreshInterval time.Duration `envconfig:"SNAPSHOT_REFRESH_INTERVAL" default:"0"`
}

type CacheConfig struct {
	MaxEntries int           `envconfig:"CACHE_MAX_ENTRIES" default:"16"`
	TTL        time.Duration `envconfig:"CACHE_TTL" default:"1h"`
}

// LoadConfig reads an optional .env file from the working directory and then
// processes the environment. Variables already set take precedence over the
// file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:        "8889", // Test port
			APIBasePath: "/api/v1",
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Australia/Melbourne",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 36000,
		},
		Upstream: UpstreamConfig{
			URL:           "http://localhost:18080/restaurants",
			Timeout:       2 * time.Second,
			RetryAttempts: 2,
			RetryDelay:    time.Millisecond,
		},
		Cache: CacheConfig{
			MaxEntries: 4,
			TTL:        time.Minute,
		},
	}
}
