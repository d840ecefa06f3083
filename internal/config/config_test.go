package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazeroute/internal/maze"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mazeroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Missing file uses defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("YAML file", func(t *testing.T) {
		path := writeConfig(t, `
width: 12
height: 8
seed: 42
gateways:
  - {x: 0, y: 1}
  - {x: 11, y: 5}
route:
  from: {x: 0, y: 1}
  to: {x: 11, y: 5}
verbosity: 2
telemetry:
  enabled: true
  endpoint: http://collector:4318
  headers:
    x-api-key: secret
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.Width)
		assert.Equal(t, 8, cfg.Height)
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, []Point{{X: 0, Y: 1}, {X: 11, Y: 5}}, cfg.Gateways)
		require.NotNil(t, cfg.Route)
		assert.Equal(t, Point{X: 11, Y: 5}, cfg.Route.To)
		assert.Equal(t, 2, cfg.Verbosity)
		assert.True(t, cfg.Telemetry.Enabled)
		assert.Equal(t, "http://collector:4318", cfg.Telemetry.Endpoint)
		assert.Equal(t, map[string]string{"x-api-key": "secret"}, cfg.Telemetry.Headers)
	})

	t.Run("Environment overrides file", func(t *testing.T) {
		path := writeConfig(t, "width: 12\nheight: 8\n")
		t.Setenv("MAZEROUTE_WIDTH", "30")
		t.Setenv("MAZEROUTE_SEED", "-7")
		t.Setenv("MAZEROUTE_TELEMETRY", "true")
		t.Setenv("MAZEROUTE_OTLP_ENDPOINT", "https://otlp.example.com")
		t.Setenv("MAZEROUTE_OTLP_HEADERS", "x-team=maze, x-dataset=routes")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 30, cfg.Width)
		assert.Equal(t, 8, cfg.Height)
		assert.Equal(t, int64(-7), cfg.Seed)
		assert.True(t, cfg.Telemetry.Enabled)
		assert.Equal(t, "https://otlp.example.com", cfg.Telemetry.Endpoint)
		assert.Equal(t, map[string]string{"x-team": "maze", "x-dataset": "routes"}, cfg.Telemetry.Headers)
	})

	t.Run("Bad environment value", func(t *testing.T) {
		t.Setenv("MAZEROUTE_HEIGHT", "tall")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("Bad headers", func(t *testing.T) {
		t.Setenv("MAZEROUTE_OTLP_HEADERS", "x-team")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		path := writeConfig(t, "width: [1, 2\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("Non-positive dimensions", func(t *testing.T) {
		path := writeConfig(t, "width: 0\nheight: 4\n")
		_, err := Load(path)
		assert.ErrorIs(t, err, maze.ErrConfiguration)
	})
}

func TestParseHeaders(t *testing.T) {
	headers, err := ParseHeaders(" a=1 ,b=x=y,,c=")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "x=y", "c": ""}, headers)

	headers, err = ParseHeaders("")
	require.NoError(t, err)
	assert.Empty(t, headers)

	for _, bad := range []string{"novalue", "=1", "a=1,b"} {
		_, err := ParseHeaders(bad)
		assert.Error(t, err, bad)
	}
}
