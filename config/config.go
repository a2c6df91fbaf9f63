package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"musicpass-backend/models"
)

type Config struct {
	Port                 string        `validate:"required,numeric"`
	GinMode              string        `validate:"oneof=debug release test"`
	LogLevel             string        `validate:"oneof=trace debug info warn error fatal"`
	AllowedOrigins       []string      `validate:"min=1,dive,required"`
	JWTSecret            string        `validate:"omitempty,min=16"`
	SessionTTL           time.Duration `validate:"gt=0"`
	SessionSweepInterval time.Duration `validate:"gt=0"`
	DatabaseURL          string        `validate:"omitempty,url"`
	DefaultLocale        string        `validate:"required,bcp47_language_tag"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001,http://localhost:3002")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("SESSION_TTL", "12h")
	v.SetDefault("SESSION_SWEEP_INTERVAL", "5m")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DEFAULT_LOCALE", "pt-BR")
}

// Load reads an optional .env file, then the environment. Every key has a
// default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	defaults(v)

	return FromViper(v)
}

// FromViper builds and validates a Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:                 v.GetString("PORT"),
		GinMode:              v.GetString("GIN_MODE"),
		LogLevel:             strings.ToLower(v.GetString("LOG_LEVEL")),
		AllowedOrigins:       splitList(v.GetString("ALLOWED_ORIGINS")),
		JWTSecret:            v.GetString("JWT_SECRET"),
		SessionTTL:           v.GetDuration("SESSION_TTL"),
		SessionSweepInterval: v.GetDuration("SESSION_SWEEP_INTERVAL"),
		DatabaseURL:          v.GetString("DATABASE_URL"),
		DefaultLocale:        v.GetString("DEFAULT_LOCALE"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w: %w", models.ErrValidation, err)
	}
	return cfg, nil
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
