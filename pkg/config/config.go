package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	Data   DataConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type DataConfig struct {
	// optional YAML file overriding the built-in base tables
	TablesPath string
	// 0 seeds the generators from the clock
	Seed int64
	// empty keeps the mode from the base tables
	AtRiskScaling string
}

var validScaling = map[string]bool{
	"":           true,
	"both":       true,
	"population": true,
	"magnitude":  true,
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	seed := int64(0)
	if raw := os.Getenv("RNG_SEED"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.New("invalid rng seed")
		}
		seed = v
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "RG Dashboard"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		},
		Data: DataConfig{
			TablesPath:    getEnv("DATA_TABLES_PATH", ""),
			Seed:          seed,
			AtRiskScaling: strings.ToLower(getEnv("AT_RISK_SCALING", "")),
		},
	}

	if !validScaling[cfg.Data.AtRiskScaling] {
		return nil, errors.New("invalid at-risk scaling mode")
	}

	if cfg.Server.Port == "" {
		return nil, errors.New("missing server port")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
