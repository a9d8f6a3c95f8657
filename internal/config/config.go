package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DriverSQLite stores everything in a single local database file.
	DriverSQLite = "sqlite"
	// DriverMySQL connects to a MySQL server.
	DriverMySQL = "mysql"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string

	DBDriver string
	DBDSN    string

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret string
	TokenTTL  time.Duration

	GoogleAPIKey       string
	GeminiModel        string
	EnhanceTimeout     time.Duration
	EnhanceConcurrency int

	CORSOrigins []string
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
// Secrets have no defaults; call Validate before using the result.
func Load() *Config {
	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8000"),
		DBDriver:           strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DBDSN:              getEnv("DB_DSN", "portfolio.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		TokenTTL:           getEnvDuration("TOKEN_TTL", 60*time.Minute),
		GoogleAPIKey:       os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		EnhanceTimeout:     getEnvDuration("ENHANCE_TIMEOUT", 60*time.Second),
		EnhanceConcurrency: getEnvInt("ENHANCE_CONCURRENCY", 1),
		CORSOrigins:        getEnvList("CORS_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000", "http://localhost:8080"}),
		SwaggerHost:        os.Getenv("SWAGGER_HOST"),
	}
}

// Validate reports every missing or malformed setting the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.GoogleAPIKey == "" {
		errs = append(errs, errors.New("GOOGLE_API_KEY is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.DBDriver != DriverSQLite && c.DBDriver != DriverMySQL {
		errs = append(errs, fmt.Errorf("DB_DRIVER %q is not one of %s, %s", c.DBDriver, DriverSQLite, DriverMySQL))
	}
	if c.EnhanceConcurrency < 1 {
		errs = append(errs, errors.New("ENHANCE_CONCURRENCY must be at least 1"))
	}
	return errors.Join(errs...)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
