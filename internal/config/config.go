package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName       string
	AppEnv        string
	AppPort       string
	DatabaseURL   string
	RedisURL      string
	NATSURL       string
	JWTSecret     string
	StatsCacheTTL time.Duration
	// YearFloor is the minimum accepted year on grade submissions. The legacy
	// forms disagreed (2000 vs 1960); a single configured floor replaces both.
	YearFloor int
	// PassingGrade is the threshold at or above which a course counts as passed.
	PassingGrade float64
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SIAKAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "SIAKAD API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("stats.cache_ttl", "5m")
	v.SetDefault("year.floor", 1960)
	v.SetDefault("passing.grade", 60.0)

	ttlString := v.GetString("stats.cache_ttl")
	if ttlString == "" {
		ttlString = "5m"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid stats cache ttl: %w", err)
	}

	cfg := Config{
		AppName:       v.GetString("app.name"),
		AppEnv:        v.GetString("app.env"),
		AppPort:       v.GetString("app.port"),
		DatabaseURL:   v.GetString("database.url"),
		RedisURL:      v.GetString("redis.url"),
		NATSURL:       v.GetString("nats.url"),
		JWTSecret:     v.GetString("jwt.secret"),
		StatsCacheTTL: ttl,
		YearFloor:     v.GetInt("year.floor"),
		PassingGrade:  v.GetFloat64("passing.grade"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.YearFloor < 1000 || cfg.YearFloor > 9999 {
		return Config{}, fmt.Errorf("year floor must be a 4-digit year, got %d", cfg.YearFloor)
	}

	if cfg.PassingGrade < 0 || cfg.PassingGrade > 100 {
		return Config{}, fmt.Errorf("passing grade must be within [0,100], got %v", cfg.PassingGrade)
	}

	return cfg, nil
}
