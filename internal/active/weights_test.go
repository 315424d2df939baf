package active

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupWeightsPath redirects the last-weights file into a temp directory
func setupWeightsPath(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "last_weights.json")
	origPathFunc := weightsPathFunc
	weightsPathFunc = func() (string, error) { return path, nil }
	t.Cleanup(func() { weightsPathFunc = origPathFunc })

	return path
}

func TestWeightsRoundTrip(t *testing.T) {
	setupWeightsPath(t)

	weights, err := LoadWeights()
	require.NoError(t, err)

	_, ok := weights.For("bench")
	assert.False(t, ok)

	require.NoError(t, weights.Record("bench", 100))
	require.NoError(t, weights.Record("squat", 140))
	require.NoError(t, weights.Record("bench", 102.5))

	reloaded, err := LoadWeights()
	require.NoError(t, err)

	bench, ok := reloaded.For("bench")
	require.True(t, ok)
	assert.Equal(t, 102.5, bench, "newest entry wins")

	squat, ok := reloaded.For("squat")
	require.True(t, ok)
	assert.Equal(t, 140.0, squat)
}

func TestLoadWeights_MissingFile(t *testing.T) {
	setupWeightsPath(t)

	weights, err := LoadWeights()
	require.NoError(t, err)
	assert.NotNil(t, weights.Weights)
	assert.Empty(t, weights.Weights)
}

func TestLoadWeights_NullMap(t *testing.T) {
	path := setupWeightsPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"weights":null}`), 0644))

	weights, err := LoadWeights()
	require.NoError(t, err)
	require.NotNil(t, weights.Weights)

	// Recording into the repaired map must work
	assert.NoError(t, weights.Record("deadlift", 180))
}
