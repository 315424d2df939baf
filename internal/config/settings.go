package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings represents the structure of ~/.ironlog/settings.json
type Settings struct {
	DBPath             string `json:"db_path,omitempty"`
	Debug              *bool  `json:"debug,omitempty"`
	DefaultRestSeconds *int   `json:"default_rest_seconds,omitempty"`
	MaxLogFiles        *int   `json:"max_log_files,omitempty"`
	WeightUnit         string `json:"weight_unit,omitempty"` // "kg" (default) or "lb", display only
}

// HomeDir returns the ironlog data directory, honoring IRONLOG_HOME
func HomeDir() (string, error) {
	if home := os.Getenv("IRONLOG_HOME"); home != "" {
		return expandPath(home), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ironlog"), nil
}

// GetDBPath returns the SQLite database path, honoring settings overrides
func GetDBPath(settings *Settings) (string, error) {
	if settings != nil && settings.DBPath != "" {
		return settings.DBPath, nil
	}

	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "ironlog.db"), nil
}

// LoadSettings loads settings from ~/.ironlog/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	home, err := HomeDir()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(home, "settings.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = expandPath(settings.DBPath)
	}

	return &settings, nil
}

// expandPath expands ~ to home directory in paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path // Return as-is if we can't get home dir
		}
		if len(path) == 1 {
			return homeDir
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
