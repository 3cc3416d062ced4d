package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type AppConfig struct {
	Port               string
	Timezone           string
	DBPath             string
	LogLevel           string
	Seed               bool
	FertilizerCatalog  string
	NoticeTTL          time.Duration
	UpcomingWindowDays int
	MaintenanceHorizon int

	envNote string
}

// Load reads .env when present, then the process environment.
func Load() AppConfig {
	envErr := godotenv.Load()

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v, err := strconv.Atoi(os.Getenv(k)); err == nil && v > 0 {
			return v
		}
		return def
	}
	getDuration := func(k string, def time.Duration) time.Duration {
		if v, err := time.ParseDuration(os.Getenv(k)); err == nil && v > 0 {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:               get("PORT", "8080"),
		Timezone:           get("TZ", "America/Argentina/Buenos_Aires"),
		DBPath:             get("DB_PATH", ":memory:"),
		LogLevel:           get("LOG_LEVEL", "info"),
		Seed:               get("AGRO_SEED", "true") == "true",
		FertilizerCatalog:  get("FERTILIZER_CATALOG", ""),
		NoticeTTL:          getDuration("NOTICE_TTL", 3*time.Second),
		UpcomingWindowDays: getInt("UPCOMING_WINDOW_DAYS", 7),
		MaintenanceHorizon: getInt("MAINTENANCE_HORIZON_DAYS", 30),
	}
	if envErr != nil {
		cfg.envNote = envErr.Error()
	}
	return cfg
}

// Location resolves the configured timezone, falling back to UTC.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Log writes the effective configuration.
func (c AppConfig) Log(logger *zap.Logger) {
	if c.envNote != "" {
		logger.Debug("no .env file loaded", zap.String("reason", c.envNote))
	}
	logger.Info("config",
		zap.String("port", c.Port),
		zap.String("tz", c.Timezone),
		zap.String("db_path", c.DBPath),
		zap.String("log_level", c.LogLevel),
		zap.Bool("seed", c.Seed),
		zap.String("fertilizer_catalog", c.FertilizerCatalog),
		zap.Duration("notice_ttl", c.NoticeTTL),
		zap.Int("upcoming_window_days", c.UpcomingWindowDays),
		zap.Int("maintenance_horizon_days", c.MaintenanceHorizon),
	)
}
