package config

import (
	"fmt"
	"os"

	"github.com/codingconcepts/env"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	envFileVar          = "TWITCH_ENV_FILE"
	defaultEnvFile      = ".env"
	defaultRedirectAddr = "localhost:3000"
)

type Config struct {
	ClientID     string `env:"TWITCH_CLIENT_ID" required:"true"`
	ClientSecret string `env:"TWITCH_CLIENT_SECRET" required:"true"`
	AccessToken  string `env:"TWITCH_ACCESS_TOKEN"`
	RefreshToken string `env:"TWITCH_REFRESH_TOKEN"`
	Username     string `env:"TWITCH_USERNAME"`
	RedirectAddr string `env:"TWITCH_REDIRECT_ADDR"`
}

// Load reads the secrets file into the process environment and maps the
// TWITCH_* values onto a Config. An empty path falls back to TWITCH_ENV_FILE,
// then to ./.env. A missing file is not an error: plain environment
// variables still apply.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(envFileVar)
	}
	if path == "" {
		path = defaultEnvFile
	}

	err := godotenv.Load(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "load secrets file %s", path)
	}

	cfg := Config{}
	if err := env.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}

	if cfg.RedirectAddr == "" {
		cfg.RedirectAddr = defaultRedirectAddr
	}

	return &cfg, nil
}

// RedirectURI is the callback address registered with the Twitch
// application; it must match the redirect_uri of every exchange request.
func (c *Config) RedirectURI() string {
	return fmt.Sprintf("http://%s/callback", c.RedirectAddr)
}
