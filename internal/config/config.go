// Package config handles loading and saving the user's reword settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/f3rmion/reword/internal/backup"
	"github.com/f3rmion/reword/internal/reword"
)

// SettingsFile is the name of the settings document inside the config dir.
const SettingsFile = "settings.yaml"

// Load reads the settings stored in dir. Sections missing from the file, or
// a missing file, fall back to the defaults.
func Load(dir string) (reword.AllSettings, backup.Result, error) {
	settings := reword.DefaultSettings()

	data, err := os.ReadFile(filepath.Join(dir, SettingsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return settings, backup.Result{}, nil
	}
	if err != nil {
		return settings, backup.Result{}, fmt.Errorf("reading settings file: %w", err)
	}

	res, err := backup.Import(data, &settings)
	if err != nil {
		return reword.DefaultSettings(), res, fmt.Errorf("loading settings: %w", err)
	}

	return settings, res, nil
}

// Save writes settings to dir, replacing any previous file.
func Save(dir string, settings reword.AllSettings) error {
	out, err := backup.Serialize(settings, time.Now())
	if err != nil {
		return fmt.Errorf("serializing settings: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte(out), 0600); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "reword"), nil
}

// EnsureConfigDir creates dir if it doesn't exist. An empty dir means the
// default directory.
func EnsureConfigDir(dir string) (string, error) {
	if dir == "" {
		var err error
		if dir, err = GetConfigDir(); err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating config dir: %w", err)
	}
	return dir, nil
}
