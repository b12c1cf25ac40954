// Package config carga la configuración del servicio desde env (y .env si existe).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	// DBDSN vacío => repositorios in-memory.
	DBDSN string

	LogLevel  string
	LogFormat string
	AppName   string

	RateLimitRPS   float64
	RateLimitBurst int64

	CORSAllowedOrigins []string

	// AuthVerifyURL vacío => modo dev (X-Debug-User-ID).
	AuthVerifyURL string
	AuthAPIKey    string
}

// Load lee .env (opcional) y luego las variables de entorno.
func Load() (*Config, error) {
	// .env es opcional: en prod las variables vienen del entorno.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv arma la config solo desde el entorno actual.
func FromEnv() (*Config, error) {
	rps, err := getFloatEnv("RATE_LIMIT_RPS", 10)
	if err != nil {
		return nil, err
	}
	burst, err := getIntEnv("RATE_LIMIT_BURST", 100)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "dev"),
		DBDSN:              strings.TrimSpace(os.Getenv("DB_DSN")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		AppName:            getEnv("APP_NAME", "pet-treatments"),
		RateLimitRPS:       rps,
		RateLimitBurst:     burst,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		AuthVerifyURL:      strings.TrimSpace(os.Getenv("AUTH_VERIFY_URL")),
		AuthAPIKey:         strings.TrimSpace(os.Getenv("AUTH_API_KEY")),
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

func validate(cfg *Config) error {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	switch cfg.Env {
	case "dev", "staging", "prod":
	default:
		return fmt.Errorf("invalid ENV %q (dev|staging|prod)", cfg.Env)
	}

	// rps 0 desactiva el rate limit
	if cfg.RateLimitRPS < 0 {
		return errors.New("RATE_LIMIT_RPS must be >= 0")
	}
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst < 1 {
		return errors.New("RATE_LIMIT_BURST must be >= 1")
	}
	// fuera de dev no se acepta el header de depuración
	if cfg.Env != "dev" && cfg.AuthVerifyURL == "" {
		return fmt.Errorf("AUTH_VERIFY_URL is required when ENV=%s", cfg.Env)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getFloatEnv(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getIntEnv(key string, def int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
