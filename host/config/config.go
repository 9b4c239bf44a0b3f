// Package config loads the noisestat tool configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Link  LinkConfig  `yaml:"link"`
	Batch BatchConfig `yaml:"batch"`
}

// ---- LINK ----

type LinkConfig struct {
	Device    string `yaml:"device"`
	Baud      int    `yaml:"baud"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- BATCH GEOMETRY ----

type BatchConfig struct {
	Size        int `yaml:"size"`
	ReferenceMv int `yaml:"reference_mv"`
}

// Load reads, defaults and validates a configuration file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Link.Baud == 0 {
		c.Link.Baud = 115200
	}
	if c.Link.TimeoutMs == 0 {
		c.Link.TimeoutMs = 5000
	}
	if c.Batch.Size == 0 {
		c.Batch.Size = 256
	}
	if c.Batch.ReferenceMv == 0 {
		c.Batch.ReferenceMv = 3300
	}
}

// Validate rejects configurations the tool cannot work with.
func (c *Config) Validate() error {
	if c.Link.Device == "" {
		return fmt.Errorf("link.device is required")
	}
	if c.Link.Baud < 1200 {
		return fmt.Errorf("link.baud %d: too low", c.Link.Baud)
	}
	if c.Batch.Size < 8 {
		return fmt.Errorf("batch.size %d: must be at least 8", c.Batch.Size)
	}
	if c.Batch.ReferenceMv <= 0 {
		return fmt.Errorf("batch.reference_mv %d: must be positive", c.Batch.ReferenceMv)
	}
	return nil
}
