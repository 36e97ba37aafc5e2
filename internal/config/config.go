// Package config defines the necessary types to configure the application.
// An example config file config.yaml is provided in the repository.
package config

import (
	"time"
)

type Config struct {
	Application Application `yaml:"application"`
	Logger      Logger      `yaml:"logger"`

	HTTP HTTPServer `yaml:"http"`

	Identity    Identity    `yaml:"identity"`
	Credentials Credentials `yaml:"credentials"`
	Gate        Gate        `yaml:"gate"`
}

type Application struct {
	Name        string `yaml:"name" default:"session-gate"`
	Environment string `yaml:"environment" default:"development"`
}

type Logger struct {
	Level  string `yaml:"level" default:"info"`
	Format string `yaml:"format" default:"json"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" default:":8080"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" default:"5s"`
}

type Identity struct {
	BaseURL string        `yaml:"baseURL"`
	Timeout time.Duration `yaml:"timeout" default:"10s"`
}

type Credentials struct {
	Backend string    `yaml:"backend" default:"file"`
	File    FileStore `yaml:"file"`
	ValKey  ValKey    `yaml:"valkey"`
}

type FileStore struct {
	Path string `yaml:"path"`
}

type ValKey struct {
	Host   string `yaml:"host"`
	Prefix string `yaml:"prefix" default:"session-gate"`
}

type Gate struct {
	SessionTTL time.Duration `yaml:"sessionTTL" default:"5m"`
	HomePaths  []string      `yaml:"homePaths"`
}

// ApplyDefaults fills the zero fields so the gate can also be constructed
// without going through the config loader.
func (g *Gate) ApplyDefaults() {
	if g.SessionTTL <= 0 {
		g.SessionTTL = 5 * time.Minute
	}
	if len(g.HomePaths) == 0 {
		g.HomePaths = []string{"/", "/dashboard"}
	}
}
