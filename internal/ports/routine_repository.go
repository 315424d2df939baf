package ports

import (
	"context"

	"ironlog/internal/domain"
)

// NewRoutineSet describes one target set when building a routine
type NewRoutineSet struct {
	TargetReps   int
	TargetWeight *float64
	Type         domain.SetType
}

// NewRoutineExercise describes one exercise placement when building a routine.
// Position is taken from slice order.
type NewRoutineExercise struct {
	ExerciseID      string
	Notes           string
	RestSeconds     int
	Sets            []NewRoutineSet
	SupersetGroupID *string
}

// RoutineReader reads routine aggregates
type RoutineReader interface {
	// GetWithExercises reconstructs the full aggregate: exercises ordered by
	// position, sets by set number, each joined with its catalog exercise.
	// Returns (nil, nil) when the id does not resolve.
	GetWithExercises(ctx context.Context, id string) (*domain.Routine, error)

	// List returns all routines ordered by most recently updated first
	List(ctx context.Context) ([]domain.Routine, error)
}

// RoutineWriter creates and mutates routines
type RoutineWriter interface {
	// Create builds the routine plus all nested exercises and target sets in
	// one transaction. Returns the new routine id.
	Create(ctx context.Context, name string, exercises []NewRoutineExercise) (string, error)

	// Rename updates the routine name and touches updated_at
	Rename(ctx context.Context, id, name string) error

	// Update replaces the routine's child aggregate in one transaction and
	// touches updated_at. Already-started workouts are unaffected.
	Update(ctx context.Context, id string, exercises []NewRoutineExercise) error

	// Delete cascades to exercises and sets. Historical workouts survive.
	Delete(ctx context.Context, id string) error
}

// RoutineRepository is the composite interface
type RoutineRepository interface {
	RoutineReader
	RoutineWriter
}
