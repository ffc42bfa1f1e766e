package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path returns the file the config was loaded from, or the user config file
// when none was found.
func (c *Config) Path() string {
	if c.path != "" {
		return c.path
	}
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Update applies mutate to both c and the file at Path, then writes the file.
// Only what mutate changes is persisted; flag overrides held in c stay out of the file.
func (c *Config) Update(mutate func(*Config)) error {
	path := c.Path()

	stored := Default()
	if err := loadFromFile(stored, path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	mutate(stored)

	if err := stored.SaveTo(path); err != nil {
		return err
	}
	mutate(c)
	c.path = path
	return nil
}

// SaveTo writes the config to a specific path, creating parent directories.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
