package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Xylo"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"xylo"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Risk struct {
		ApprovedThreshold float64 `envconfig:"APPROVED_THRESHOLD" default:"0.85"`
		ReviewThreshold   float64 `envconfig:"REVIEW_THRESHOLD" default:"0.50"`
	}

	OCR struct {
		Languages []string `envconfig:"OCR_LANGUAGES" default:"eng"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Risk.ReviewThreshold > cfg.Risk.ApprovedThreshold {
		return nil, fmt.Errorf("REVIEW_THRESHOLD (%.2f) must not exceed APPROVED_THRESHOLD (%.2f)",
			cfg.Risk.ReviewThreshold, cfg.Risk.ApprovedThreshold)
	}

	return &cfg, nil
}
