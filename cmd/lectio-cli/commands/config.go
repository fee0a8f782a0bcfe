package commands

import (
	"errors"
	"fmt"
	"lectioassist-backend/internal/components/telemetry"
	"lectioassist-backend/internal/scrapers/lectio"
	"lectioassist-backend/pkg/configutil"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultConfigName = "config.json5"

type Config struct {
	BaseUrl          string           `json:"base_url"`
	Institution      string           `json:"institution"`
	Username         string           `json:"username"`
	Password         string           `json:"password"`
	TimeoutSeconds   int              `json:"timeout_seconds"`
	CloudflareBypass bool             `json:"cloudflare_bypass"`
	AccessToken      string           `json:"access_token"`
	Telemetry        telemetry.Config `json:"telemetry"`
}

func (c Config) clientOptions() lectio.ClientOptions {
	return lectio.ClientOptions{
		BaseUrl:          c.BaseUrl,
		Timeout:          time.Duration(c.TimeoutSeconds) * time.Second,
		CloudflareBypass: c.CloudflareBypass,
	}
}

// applyEnv overrides credentials and the serve access token with LECTIO_*
// environment variables.
func applyEnv(cfg Config, lookup func(key string) (string, bool)) Config {
	if value, ok := lookup("LECTIO_INSTITUTION"); ok && value != "" {
		cfg.Institution = value
	}
	if value, ok := lookup("LECTIO_USERNAME"); ok && value != "" {
		cfg.Username = value
	}
	if value, ok := lookup("LECTIO_PASSWORD"); ok && value != "" {
		cfg.Password = value
	}
	if value, ok := lookup("LECTIO_ACCESS_TOKEN"); ok && value != "" {
		cfg.AccessToken = value
	}
	return cfg
}

// loadConfig reads the config file (a missing file is an empty config), then
// .env, then the environment.
func loadConfig(path string) (Config, error) {
	var cfg Config
	var err error
	if path == "" {
		cfg, err = configutil.ReadRecursively[Config](defaultConfigName)
	} else {
		cfg, err = configutil.ReadConfig[Config](path)
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	err = godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return applyEnv(cfg, os.LookupEnv), nil
}
