// Package config loads application configuration from a TOML file.
package config

import (
	"fmt"
	"net"
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logging  LoggingConfig  `toml:"logging"`
	Provider ProviderConfig `toml:"provider"`
}

// ServerConfig contains API server settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// ProviderConfig contains framing settings for the bundled energy trace
// provider.
type ProviderConfig struct {
	FrameSize int `toml:"frame_size"`
	HopSize   int `toml:"hop_size"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "",
			Port: "8080",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Provider: ProviderConfig{
			FrameSize: 1024,
			HopSize:   512,
		},
	}
}

// Load reads configuration from path, falling back to defaults when the
// file does not exist. Missing fields keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr returns the server listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port must not be empty")
	}
	if c.Provider.FrameSize <= 0 || c.Provider.HopSize <= 0 {
		return fmt.Errorf("provider frame_size and hop_size must be positive")
	}
	if c.Provider.HopSize > c.Provider.FrameSize {
		return fmt.Errorf("provider hop_size must not exceed frame_size")
	}
	return nil
}
