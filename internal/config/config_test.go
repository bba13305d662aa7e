package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clifford.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store.Driver)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
log_level: debug
seed: "42"
format: json
store:
  driver: redis
  redis_addr: cache:6379
  redis_db: 2
  ttl: 1h
http:
  addr: ":9000"
`)
	cfg, err := load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "42", cfg.Seed)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, "cache:6379", cfg.Store.RedisAddr)
	assert.Equal(t, 2, cfg.Store.RedisDB)
	assert.Equal(t, time.Hour, cfg.Store.TTL)
	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, "stdio", cfg.MCP.Transport, "unset fields keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "store:\n  driver: file\n  path: /tmp/runs\n")
	env := []string{
		"CLIFFORD_STORE_DRIVER=redis",
		"CLIFFORD_STORE_REDIS_DB=3",
		"CLIFFORD_LOG_LEVEL=warn",
		"CLIFFORD_MCP_PORT=9999",
		"HOME=/root",
	}

	cfg, err := load(path, env)
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, "/tmp/runs", cfg.Store.Path)
	assert.Equal(t, 3, cfg.Store.RedisDB)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 9999, cfg.MCP.Port)
}

func TestLoad_IgnoresForeignEnv(t *testing.T) {
	env := []string{
		"CLIFFORD_HOME=/opt/clifford",
		"CLIFFORD_STORE_BUCKET=runs",
		"CLIFFORD_HTTP=yes",
		"CLIFFORD_SEED=42",
	}

	cfg, err := load("", env)
	require.NoError(t, err)

	want := Default()
	want.Seed = "42"
	assert.Equal(t, want, cfg)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  []string
	}{
		{name: "bad yaml", body: "store: [\n"},
		{name: "unknown key", body: "colour: red\n"},
		{name: "bad driver", body: "store:\n  driver: postgres\n"},
		{name: "bad format", env: []string{"CLIFFORD_FORMAT=xml"}},
		{name: "bad transport", env: []string{"CLIFFORD_MCP_TRANSPORT=ws"}},
		{name: "bad ttl", body: "store:\n  ttl: soon\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ""
			if tt.body != "" {
				path = writeFile(t, tt.body)
			}
			_, err := load(path, tt.env)
			assert.Error(t, err)
		})
	}
}
