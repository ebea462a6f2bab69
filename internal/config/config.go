// Package config loads bullsharks settings: built-in defaults, then an
// optional YAML file, then BULLSHARKS_* environment variables (a .env file
// in the working directory is read first when present).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config contains application configuration.
type Config struct {
	Source Source `yaml:"source"`
	Web    Server `yaml:"web"`
	API    Server `yaml:"api"`
	Store  Store  `yaml:"store"`
	Log    Log    `yaml:"log"`
}

// Source locates the backend read endpoint.
type Source struct {
	BaseURL string        `yaml:"base_url"`
	Path    string        `yaml:"path"`
	Timeout time.Duration `yaml:"timeout"` // 0 = no timeout
}

// Server is a listen address.
type Server struct {
	Addr string `yaml:"addr"`
}

// Store locates the local activity database.
type Store struct {
	Path string `yaml:"path"`
}

// Log selects level and handler format.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Source: Source{BaseURL: "http://localhost:8080", Path: "/api/read"},
		Web:    Server{Addr: "127.0.0.1:3000"},
		API:    Server{Addr: "127.0.0.1:8080"},
		Store:  Store{Path: ".bullsharks/activities.db"},
		Log:    Log{Level: "info", Format: "text"},
	}
}

// Load builds the configuration. An empty path skips the file; a missing
// file at an explicit path is an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type lookupFunc func(string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("BULLSHARKS_SOURCE_URL", &cfg.Source.BaseURL)
	str("BULLSHARKS_SOURCE_PATH", &cfg.Source.Path)
	str("BULLSHARKS_WEB_ADDR", &cfg.Web.Addr)
	str("BULLSHARKS_API_ADDR", &cfg.API.Addr)
	str("BULLSHARKS_DB_PATH", &cfg.Store.Path)
	str("BULLSHARKS_LOG_LEVEL", &cfg.Log.Level)
	str("BULLSHARKS_LOG_FORMAT", &cfg.Log.Format)

	if v, ok := lookup("BULLSHARKS_SOURCE_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("BULLSHARKS_SOURCE_TIMEOUT: %w", err)
		}
		cfg.Source.Timeout = d
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Source.BaseURL == "" {
		errs = append(errs, errors.New("source.base_url is required"))
	}
	if !strings.HasPrefix(c.Source.Path, "/") {
		errs = append(errs, fmt.Errorf("source.path %q must start with /", c.Source.Path))
	}
	if c.Source.Timeout < 0 {
		errs = append(errs, fmt.Errorf("source.timeout %s is negative", c.Source.Timeout))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q must be text or json", c.Log.Format))
	}
	return errors.Join(errs...)
}
