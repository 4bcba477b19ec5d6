package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream origin, credentials)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Locale    LocaleConfig
	Naver     NaverConfig
	Origin    OriginConfig
	Redis     RedisConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Readiness ReadinessConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-Id"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-Id,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Seoul"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

// LocaleConfig decides which calendar day "today" is when rejecting past dates.
type LocaleConfig struct {
	TimeZone       string `envconfig:"LOCALE_TIMEZONE" default:"Asia/Seoul"`
	TimeZoneOffset int    `envconfig:"LOCALE_TIMEZONE_OFFSET" default:"32400"`
}

type NaverConfig struct {
	SearchClientID     string        `envconfig:"NAVER_SEARCH_CLIENT_ID"`
	SearchClientSecret string        `envconfig:"NAVER_SEARCH_CLIENT_SECRET"`
	SearchURL          string        `envconfig:"NAVER_SEARCH_URL" default:"https://openapi.naver.com/v1/search/local.json"`
	MapKeyID           string        `envconfig:"NAVER_MAP_KEY_ID"`
	MapKey             string        `envconfig:"NAVER_MAP_KEY"`
	ReverseGeocodeURL  string        `envconfig:"NAVER_REVERSE_GEOCODE_URL" default:"https://naveropenapi.apigw.ntruss.com/map-reversegeocode/v2/gc"`
	Timeout            time.Duration `envconfig:"NAVER_TIMEOUT" default:"5s"`
}

type OriginConfig struct {
	URL        string        `envconfig:"ORIGIN_URL" required:"true"`
	HealthPath string        `envconfig:"ORIGIN_HEALTH_PATH" default:"/health"`
	Timeout    time.Duration `envconfig:"ORIGIN_TIMEOUT" default:"10s"`
}

// RedisConfig with an empty Addr disables caching.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CacheConfig struct {
	LocalSearchTTL  time.Duration `envconfig:"CACHE_LOCAL_SEARCH_TTL" default:"10m"`
	AvailabilityTTL time.Duration `envconfig:"CACHE_AVAILABILITY_TTL" default:"30s"`
	KeyPrefix       string        `envconfig:"CACHE_KEY_PREFIX" default:"gongsil"`
}

type RateLimitConfig struct {
	PerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`
	Burst     int `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

type ReadinessConfig struct {
	Timeout  time.Duration `envconfig:"READINESS_TIMEOUT" default:"30s"`
	Interval time.Duration `envconfig:"READINESS_INTERVAL" default:"1s"`
}

func (c LocaleConfig) Location() *time.Location {
	return time.FixedZone(c.TimeZone, c.TimeZoneOffset)
}

func LoadConfig() (Config, error) {
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
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Seoul",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Locale: LocaleConfig{
			TimeZone:       "Asia/Seoul",
			TimeZoneOffset: 32400,
		},
		Naver: NaverConfig{
			SearchClientID:     "test-client-id",
			SearchClientSecret: "test-client-secret",
			MapKeyID:           "test-key-id",
			MapKey:             "test-key",
			Timeout:            time.Second,
		},
		Origin: OriginConfig{
			URL:        "http://127.0.0.1:18080",
			HealthPath: "/health",
			Timeout:    time.Second,
		},
		Cache: CacheConfig{
			LocalSearchTTL:  time.Minute,
			AvailabilityTTL: time.Second,
			KeyPrefix:       "gongsil-test",
		},
		RateLimit: RateLimitConfig{
			PerMinute: 600,
			Burst:     100,
		},
		Readiness: ReadinessConfig{
			Timeout:  time.Second,
			Interval: 10 * time.Millisecond,
		},
	}
}
