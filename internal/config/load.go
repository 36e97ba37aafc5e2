package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

const configFileName = "config.yaml"

// Load reads the first config.yaml found in the given directories and fills
// the remaining fields from defaults and environment overrides. With no
// directories given the usual locations are searched.
func Load(dirs ...string) (*Config, error) {
	if len(dirs) == 0 {
		dirs = []string{"/etc/session-gate", "$HOME/.session-gate", "."}
	}

	// A .env file is a convenience for local development only.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("applying config defaults: %w", err)
	}

	for _, dir := range dirs {
		file := filepath.Join(os.ExpandEnv(dir), configFileName)

		data, err := os.ReadFile(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}

		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.CustomUnmarshaler(decodeDuration)); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", file, err)
		}

		break
	}

	applyEnvOverrides(cfg)
	cfg.Gate.ApplyDefaults()

	if cfg.Credentials.File.Path == "" {
		path, err := defaultCredentialPath()
		if err != nil {
			return nil, err
		}
		cfg.Credentials.File.Path = path
	}

	return cfg, nil
}

// applyEnvOverrides lets deployment environments override the few settings
// that routinely differ between them without editing the config file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SESSION_GATE_API_URL"); v != "" {
		cfg.Identity.BaseURL = v
	}
	if v := os.Getenv("SESSION_GATE_HTTP_ADDR"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("SESSION_GATE_LOG_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	if v := os.Getenv("SESSION_GATE_VALKEY_HOST"); v != "" {
		cfg.Credentials.ValKey.Host = v
	}
}

func defaultCredentialPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	return filepath.Join(home, ".session-gate", "credentials.json"), nil
}

// decodeDuration accepts both "5m" strings and plain nanosecond integers for
// time.Duration fields.
func decodeDuration(d *time.Duration, b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"'`)
	if s == "" {
		*d = 0
		return nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = time.Duration(n)
		return nil
	}

	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", s, err)
	}

	*d = v

	return nil
}
