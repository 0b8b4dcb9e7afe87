// Package config reads contribgrid's settings from the environment, an
// optional .env file and the OS keyring.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"

	"github.com/julianstephens/contribgrid/internal/constants"
	"github.com/julianstephens/contribgrid/internal/keyring"
	"github.com/julianstephens/contribgrid/internal/logger"
)

// TokenSource records where the API token came from
type TokenSource string

const (
	TokenFromEnv     TokenSource = "environment"
	TokenFromKeyring TokenSource = "keyring"
	TokenMissing     TokenSource = "none"
)

type Config struct {
	Token     string `env:"GITHUB_API_TOKEN"`
	Endpoint  string `env:"CONTRIBGRID_ENDPOINT" envDefault:"https://api.github.com/graphql"`
	ConfigDir string `env:"CONTRIBGRID_CONFIG_DIR" envDefault:"~/.config/contribgrid"`
	Debug     bool   `env:"CONTRIBGRID_DEBUG"`
}

// Load reads envFile when it exists, then parses the environment. Variables
// already set in the environment take precedence over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return Config{}, fmt.Errorf("error loading %s: %w", envFile, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("error accessing %s: %w", envFile, err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing environment variables: %w", err)
	}

	if cfg.Endpoint == "" {
		cfg.Endpoint = constants.GraphQLEndpoint
	}
	if cfg.ConfigDir == "" {
		cfg.ConfigDir = constants.DefaultConfigDir
	}
	dir, err := ExpandHome(cfg.ConfigDir)
	if err != nil {
		return Config{}, err
	}
	cfg.ConfigDir = dir

	return cfg, nil
}

// ResolveToken fills in the token from the OS keyring when the environment
// did not provide one. A missing token is not an error: the API rejects the
// request instead.
func (c *Config) ResolveToken() TokenSource {
	if c.Token != "" {
		return TokenFromEnv
	}

	token, err := keyring.GetToken()
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			logger.Warn("Could not read token from keyring", "error", err)
		}
		return TokenMissing
	}

	c.Token = token
	return TokenFromKeyring
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
