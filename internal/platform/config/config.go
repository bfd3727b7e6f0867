package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	LogLevel           slog.Level
	RateLimit          string   // ulule/limiter formatted rate, e.g. "120-M"
	CORSAllowedOrigins []string // "*" allows every origin

	// Initial pair shown by the terminal widget
	DefaultFromCurrency string
	DefaultToCurrency   string
}

const (
	defaultPort         = "8080"
	defaultLogLevel     = "info"
	defaultRateLimit    = "120-M"
	defaultCORSOrigins  = "http://localhost:3000"
	defaultFromCurrency = "USD"
	defaultToCurrency   = "EUR"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	v.SetDefault("DEFAULT_FROM_CURRENCY", defaultFromCurrency)
	v.SetDefault("DEFAULT_TO_CURRENCY", defaultToCurrency)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Port = strings.TrimSpace(v.GetString("PORT"))
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", levelStr, defaultLogLevel)
	}

	cfg.RateLimit = strings.TrimSpace(v.GetString("RATE_LIMIT"))
	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		log.Printf("Warning: Invalid value for RATE_LIMIT ('%s'). Defaulting to %s.\n", cfg.RateLimit, defaultRateLimit)
		cfg.RateLimit = defaultRateLimit
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		log.Printf("Warning: CORS_ALLOWED_ORIGINS is empty. Defaulting to %s.\n", defaultCORSOrigins)
		cfg.CORSAllowedOrigins = []string{defaultCORSOrigins}
	}

	cfg.DefaultFromCurrency = currencyOrDefault(v.GetString("DEFAULT_FROM_CURRENCY"), defaultFromCurrency, "DEFAULT_FROM_CURRENCY")
	cfg.DefaultToCurrency = currencyOrDefault(v.GetString("DEFAULT_TO_CURRENCY"), defaultToCurrency, "DEFAULT_TO_CURRENCY")

	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func currencyOrDefault(value, def, key string) string {
	code := strings.ToUpper(strings.TrimSpace(value))
	if len(code) != 3 {
		if value != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, value, def)
		}
		return def
	}
	return code
}
