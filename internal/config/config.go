// Package config loads clifford settings from a YAML file and CLIFFORD_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. CLIFFORD_STORE_DRIVER.
const EnvPrefix = "CLIFFORD_"

// Config is the full application configuration.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Seed     string `mapstructure:"seed"`
	Phrase   string `mapstructure:"phrase"`
	Format   string `mapstructure:"format"`

	Store StoreConfig `mapstructure:"store"`
	HTTP  HTTPConfig  `mapstructure:"http"`
	MCP   MCPConfig   `mapstructure:"mcp"`
}

// StoreConfig selects and configures the run store.
type StoreConfig struct {
	Driver        string        `mapstructure:"driver"` // memory, file or redis
	Path          string        `mapstructure:"path"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	TTL           time.Duration `mapstructure:"ttl"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type MCPConfig struct {
	Transport string `mapstructure:"transport"` // stdio or sse
	Port      int    `mapstructure:"port"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel: "info",
		Format:   "text",
		Store: StoreConfig{
			Driver:    "memory",
			RedisAddr: "localhost:6379",
		},
		HTTP: HTTPConfig{Addr: ":8080"},
		MCP:  MCPConfig{Transport: "stdio", Port: 8081},
	}
}

// Load reads path (if it exists), applies environment overrides and decodes
// the result over Default. An empty path skips the file.
func Load(path string) (Config, error) {
	return load(path, os.Environ())
}

func load(path string, environ []string) (Config, error) {
	raw := map[string]any{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	overlayEnv(raw, environ)

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// overlayEnv copies CLIFFORD_* variables that name a Config field into raw.
// One underscore after a section name nests the key:
// CLIFFORD_STORE_REDIS_ADDR sets store.redis_addr. Other CLIFFORD_* variables
// are left alone.
func overlayEnv(raw map[string]any, environ []string) {
	known := fieldKeys(reflect.TypeOf(Config{}))

	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if fields, ok := known[name]; ok && fields == nil {
			raw[name] = value
			continue
		}
		section, rest, nested := strings.Cut(name, "_")
		fields, isSection := known[section]
		if !nested || !isSection || fields == nil {
			continue
		}
		if _, ok := fields[rest]; !ok {
			continue
		}
		sub, _ := raw[section].(map[string]any)
		if sub == nil {
			sub = map[string]any{}
			raw[section] = sub
		}
		sub[rest] = value
	}
}

// fieldKeys maps the mapstructure key of every field of t to nil, or, for
// nested structs, to the keys of that struct.
func fieldKeys(t reflect.Type) map[string]map[string]struct{} {
	keys := make(map[string]map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}
		if f.Type.Kind() != reflect.Struct || f.Type == reflect.TypeOf(time.Duration(0)) {
			keys[tag] = nil
			continue
		}
		nested := make(map[string]struct{}, f.Type.NumField())
		for j := 0; j < f.Type.NumField(); j++ {
			if sub := f.Type.Field(j).Tag.Get("mapstructure"); sub != "" {
				nested[sub] = struct{}{}
			}
		}
		keys[tag] = nested
	}
	return keys
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case "memory", "file", "redis":
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	switch c.Format {
	case "text", "json", "qasm", "markdown", "mermaid":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	switch c.MCP.Transport {
	case "stdio", "sse":
	default:
		return fmt.Errorf("unknown mcp transport %q", c.MCP.Transport)
	}
	return nil
}
