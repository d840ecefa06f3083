// Package config loads maze settings from YAML files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/mazeroute/internal/maze"
)

const (
	// Default maze dimensions, in cells
	DefaultWidth  = 20
	DefaultHeight = 12
)

// Point is a cell coordinate as written in the config file.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// RouteRequest names the two cells to connect.
type RouteRequest struct {
	From Point `yaml:"from"`
	To   Point `yaml:"to"`
}

// Config holds maze configuration options.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Seed for random number generation. Used for reproducible mazes.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	Gateways []Point       `yaml:"gateways"`
	Route    *RouteRequest `yaml:"route,omitempty"`

	// Verbosity is the logr V-level that is still printed.
	Verbosity int       `yaml:"verbosity"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Telemetry configures OTLP trace export.
type Telemetry struct {
	Enabled bool `yaml:"enabled"`

	// Endpoint is the collector URL, e.g. http://localhost:4318.
	// Empty falls back to the standard OTEL_EXPORTER_OTLP_* variables.
	Endpoint string            `yaml:"endpoint"`
	Headers  map[string]string `yaml:"headers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error; the defaults are used instead.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(content, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse YAML from %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate rejects dimensions a maze cannot be built with.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: %dx%d", maze.ErrConfiguration, c.Width, c.Height)
	}
	return nil
}

// applyEnv overrides fields from MAZEROUTE_* variables when they are set.
func (c *Config) applyEnv() error {
	for _, v := range []struct {
		key string
		dst *int
	}{
		{"MAZEROUTE_WIDTH", &c.Width},
		{"MAZEROUTE_HEIGHT", &c.Height},
		{"MAZEROUTE_VERBOSITY", &c.Verbosity},
	} {
		value, ok, err := getEnvAsInt(v.key)
		if err != nil {
			return err
		}
		if ok {
			*v.dst = value
		}
	}

	if raw, ok := os.LookupEnv("MAZEROUTE_SEED"); ok {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("environment variable MAZEROUTE_SEED must be an integer: %w", err)
		}
		c.Seed = seed
	}

	if raw, ok := os.LookupEnv("MAZEROUTE_TELEMETRY"); ok {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("environment variable MAZEROUTE_TELEMETRY must be a boolean: %w", err)
		}
		c.Telemetry.Enabled = enabled
	}

	if raw, ok := os.LookupEnv("MAZEROUTE_OTLP_ENDPOINT"); ok {
		c.Telemetry.Endpoint = raw
	}

	if raw, ok := os.LookupEnv("MAZEROUTE_OTLP_HEADERS"); ok {
		headers, err := ParseHeaders(raw)
		if err != nil {
			return fmt.Errorf("environment variable MAZEROUTE_OTLP_HEADERS: %w", err)
		}
		c.Telemetry.Headers = headers
	}

	return nil
}

// ParseHeaders parses a comma-separated list of key=value pairs, the format
// of OTEL_EXPORTER_OTLP_HEADERS.
func ParseHeaders(raw string) (map[string]string, error) {
	headers := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("malformed header %q, want key=value", pair)
		}
		headers[key] = strings.TrimSpace(value)
	}
	return headers, nil
}

// getEnvAsInt retrieves an environment variable as an integer, reporting whether it was set.
func getEnvAsInt(key string) (int, bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return 0, false, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, true, nil
}
