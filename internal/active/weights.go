package active

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ironlog/internal/config"
)

// weightsPathFunc returns the path to the last-weights file. Can be
// overridden in tests.
var weightsPathFunc = defaultWeightsPath

func defaultWeightsPath() (string, error) {
	home, err := config.HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "last_weights.json"), nil
}

// LastWeights remembers the most recent weight entered per catalog exercise
// so the next session can prefill it.
type LastWeights struct {
	Weights map[string]float64 `json:"weights"`
}

// LoadWeights reads the last-weights map from disk. A missing file yields
// an empty map.
func LoadWeights() (*LastWeights, error) {
	path, err := weightsPathFunc()
	if err != nil {
		return &LastWeights{Weights: make(map[string]float64)}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &LastWeights{Weights: make(map[string]float64)}, nil
		}
		return &LastWeights{Weights: make(map[string]float64)}, fmt.Errorf("failed to read weights file: %w", err)
	}

	var w LastWeights
	if err := json.Unmarshal(data, &w); err != nil {
		return &LastWeights{Weights: make(map[string]float64)}, fmt.Errorf("failed to unmarshal weights: %w", err)
	}
	if w.Weights == nil {
		w.Weights = make(map[string]float64)
	}
	return &w, nil
}

// Record stores the weight for an exercise and persists the map.
func (w *LastWeights) Record(exerciseID string, weight float64) error {
	if w.Weights == nil {
		w.Weights = make(map[string]float64)
	}
	w.Weights[exerciseID] = weight
	return w.save()
}

// For returns the last recorded weight for an exercise.
func (w *LastWeights) For(exerciseID string) (float64, bool) {
	weight, ok := w.Weights[exerciseID]
	return weight, ok
}

func (w *LastWeights) save() error {
	path, err := weightsPathFunc()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open weights file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal weights: %w", err)
	}

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write weights: %w", err)
	}

	return nil
}
