package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

type Config struct {
	DataSource     string
	ServerPort     string
	LogLevel       string
	DBPath         string
	Locale         language.Tag
	AllowedOrigins []string
	Title          string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	locale := getEnv("COLLATION_LOCALE", "en")
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid COLLATION_LOCALE %q: %w", locale, err)
	}

	cfg := &Config{
		DataSource:     getEnv("DATA_SOURCE", "data.json"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DBPath:         getEnv("DB_PATH", ":memory:"),
		Locale:         tag,
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		Title:          getEnv("DASHBOARD_TITLE", "Progress Tracker"),
	}

	if cfg.DataSource == "" {
		return nil, fmt.Errorf("DATA_SOURCE is required")
	}

	logger.Info().
		Str("data_source", cfg.DataSource).
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("locale", cfg.Locale.String()).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
