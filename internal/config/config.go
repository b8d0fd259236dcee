package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Render   RenderConfig
}

// ServerConfig holds preview server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds optional observation database settings
type DatabaseConfig struct {
	URL string
}

// RenderConfig holds figure rendering settings
type RenderConfig struct {
	OutDir string // default directory for rendered figures
	DPI    int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("SNPLOT_PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Render: RenderConfig{
			OutDir: getEnv("SNPLOT_OUT_DIR", "."),
			DPI:    96,
		},
	}

	if dpi := os.Getenv("SNPLOT_DPI"); dpi != "" {
		n, err := strconv.Atoi(dpi)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid SNPLOT_DPI %q", dpi)
		}
		cfg.Render.DPI = n
	}

	if cfg.Server.Port == "" {
		return nil, fmt.Errorf("server port cannot be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
