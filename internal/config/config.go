package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "moon.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default export output directory.
	DefaultOutput = "dist"
)

// Config represents the complete moon.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Port is the preview server port.
	Port int `json:"port,omitempty"`

	// Host is the preview server host.
	Host string `json:"host,omitempty"`

	// Silent suppresses informational log output.
	Silent bool `json:"silent,omitempty"`

	// Export contains static export configuration.
	Export ExportConfig `json:"export,omitempty"`
}

// ExportConfig configures static export of the rendered tree.
type ExportConfig struct {
	// Output is the local output directory.
	Output string `json:"output,omitempty"`

	// Bucket is an S3 bucket name. When set, export uploads instead of
	// writing locally.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the S3 key prefix for uploaded files.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region for the bucket.
	Region string `json:"region,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Port: DefaultPort,
		Host: DefaultHost,
		Export: ExportConfig{
			Output: DefaultOutput,
		},
	}
}

// Load reads moon.json from the given directory. A missing file yields the
// default configuration without error.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the configuration to moon.json in the given directory.
func (c *Config) Save(dir string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Addr returns the host:port address for the preview server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Export.Output == "" {
		c.Export.Output = DefaultOutput
	}
}
