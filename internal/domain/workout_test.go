package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkoutSetVolume(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		reps     int
		expected float64
	}{
		{"typical set", 100, 5, 500},
		{"fractional weight", 22.5, 8, 180},
		{"zero reps", 100, 0, 0},
		{"bodyweight", 0, 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := WorkoutSet{Weight: tt.weight, Reps: tt.reps}
			assert.Equal(t, tt.expected, set.Volume())
		})
	}
}

func TestWorkoutStatusValid(t *testing.T) {
	assert.True(t, WorkoutActive.Valid())
	assert.True(t, WorkoutCompleted.Valid())
	assert.True(t, WorkoutAbandoned.Valid())
	assert.False(t, WorkoutStatus("paused").Valid())
	assert.False(t, WorkoutStatus("").Valid())
}

func TestInvariantError(t *testing.T) {
	err := Invariant("set number %d out of range", 42)

	assert.True(t, IsInvariant(err))
	assert.Contains(t, err.Error(), "set number 42 out of range")
	assert.False(t, IsInvariant(ErrWorkoutNotFound))
}
