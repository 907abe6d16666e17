// Package config loads mockplane settings from a YAML file, a .env file,
// and MOCKPLANE_* environment variables. Later sources win.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no explicit
// path is given.
const DefaultConfigFile = "mockplane.yaml"

// Config holds the service settings.
type Config struct {
	Port        int    `yaml:"port"`
	AuthEnabled bool   `yaml:"auth_enabled"`
	LogFile     string `yaml:"log_file"`
}

// Default returns the default configuration: port 8080, authorization on,
// no log file.
func Default() *Config {
	return &Config{
		Port:        8080,
		AuthEnabled: true,
	}
}

// Load builds the effective configuration. A missing default config file
// is fine; a missing or malformed file named explicitly is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = DefaultConfigFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// .env is optional; plain environment variables work the same way.
	_ = godotenv.Load()

	if v := os.Getenv("MOCKPLANE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MOCKPLANE_PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("MOCKPLANE_AUTH"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MOCKPLANE_AUTH %q: %w", v, err)
		}
		cfg.AuthEnabled = enabled
	}
	if v := os.Getenv("MOCKPLANE_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	return cfg, nil
}
