package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all Mostra server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	GenAI   GenAIConfig   `yaml:"genai"`
	Auth    AuthConfig    `yaml:"auth"`
	Session SessionConfig `yaml:"session"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr         string `yaml:"addr"`
	ReadTimeout  string `yaml:"read_timeout"`
	WriteTimeout string `yaml:"write_timeout"`
}

// StorageConfig selects the catalogue backend.
type StorageConfig struct {
	Driver     string `yaml:"driver"` // memory, sqlite
	SQLitePath string `yaml:"sqlite_path"`
}

// GenAIConfig configures the assistive text service. An empty key disables it.
type GenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"` // empty waits for the model as long as the request lives
}

type AuthConfig struct {
	TokenSecret string `yaml:"token_secret"`
	LoginDelay  string `yaml:"login_delay"`
}

type SessionConfig struct {
	TTL string `yaml:"ttl"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  "15s",
			WriteTimeout: "15s",
		},
		Storage: StorageConfig{
			Driver:     "memory",
			SQLitePath: "data/mostra.db",
		},
		GenAI: GenAIConfig{
			Model: "gemini-2.5-flash",
		},
		Auth: AuthConfig{
			TokenSecret: "mostra-dev-secret",
			LoginDelay:  "800ms",
		},
		Session: SessionConfig{
			TTL: "2h",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields the defaults.
// Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MOSTRA_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("MOSTRA_DB"); v != "" {
		c.Storage.Driver = "sqlite"
		c.Storage.SQLitePath = v
	}
	// GEMINI_API_KEY wins over the generic API_KEY
	if v := os.Getenv("API_KEY"); v != "" {
		c.GenAI.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GenAI.APIKey = v
	}
	if v := os.Getenv("MOSTRA_TOKEN_SECRET"); v != "" {
		c.Auth.TokenSecret = v
	}
	if v := os.Getenv("MOSTRA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	switch c.Storage.Driver {
	case "memory":
	case "sqlite":
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("storage.sqlite_path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	if c.Auth.TokenSecret == "" {
		return fmt.Errorf("auth.token_secret is required")
	}
	for name, v := range map[string]string{
		"server.read_timeout":  c.Server.ReadTimeout,
		"server.write_timeout": c.Server.WriteTimeout,
		"genai.timeout":        c.GenAI.Timeout,
		"auth.login_delay":     c.Auth.LoginDelay,
		"session.ttl":          c.Session.TTL,
	} {
		if v == "" {
			continue
		}
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}
	return nil
}

func (c *Config) GetReadTimeout() time.Duration  { return parseOr(c.Server.ReadTimeout, 15*time.Second) }
func (c *Config) GetWriteTimeout() time.Duration { return parseOr(c.Server.WriteTimeout, 15*time.Second) }
func (c *Config) GetGenAITimeout() time.Duration { return parseOr(c.GenAI.Timeout, 0) }
func (c *Config) GetLoginDelay() time.Duration   { return parseOr(c.Auth.LoginDelay, 800*time.Millisecond) }
func (c *Config) GetSessionTTL() time.Duration   { return parseOr(c.Session.TTL, 2*time.Hour) }

func parseOr(v string, fallback time.Duration) time.Duration {
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
