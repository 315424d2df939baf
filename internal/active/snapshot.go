package active

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ironlog/internal/config"
)

// snapshotPathFunc returns the path to the active workout snapshot file.
// Can be overridden in tests.
var snapshotPathFunc = defaultSnapshotPath

func defaultSnapshotPath() (string, error) {
	home, err := config.HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "active_workout.json"), nil
}

// LoadSnapshot reads the persisted machine state from disk. A missing file
// yields a zero State and no error.
func LoadSnapshot() (State, error) {
	path, err := snapshotPathFunc()
	if err != nil {
		return State{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("failed to read active workout file: %w", err)
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("failed to unmarshal active workout state: %w", err)
	}
	return s, nil
}

// SaveSnapshot writes the machine state to disk with file locking. An Idle
// state removes the file instead.
func SaveSnapshot(s State) error {
	path, err := snapshotPathFunc()
	if err != nil {
		return err
	}

	if s.ActiveWorkoutID == "" {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove active workout file: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open active workout file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal active workout state: %w", err)
	}

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write active workout state: %w", err)
	}

	return nil
}
