package ports

import (
	"context"

	"ironlog/internal/domain"
)

// LogSetParams carries one logged set. Weight and reps are recorded as given;
// positivity is the caller's concern.
type LogSetParams struct {
	Reps              int
	RPE               *int
	SetNumber         int
	Type              domain.SetType
	Weight            float64
	WorkoutExerciseID string
}

// WorkoutReader reads workout sessions
type WorkoutReader interface {
	Get(ctx context.Context, id string) (*domain.Workout, error)

	// GetActive returns the session currently in the active status, or
	// (nil, nil) when there is none. At most one session is ever active.
	GetActive(ctx context.Context) (*domain.Workout, error)

	// GetWithExercises returns the session aggregate including logged sets,
	// exercises ordered by position and sets by log time
	GetWithExercises(ctx context.Context, id string) (*domain.Workout, error)
}

// WorkoutWriter drives the session lifecycle
type WorkoutWriter interface {
	// Start snapshots the routine into a new active session: one workout row
	// plus one workout exercise per routine exercise, in one transaction.
	// Target sets are not copied. Returns ErrRoutineNotFound if the routine
	// does not resolve.
	Start(ctx context.Context, routineID string) (*domain.Workout, error)

	// LogSet appends one set stamped with the current time. Duplicate set
	// numbers are allowed (repeat attempts).
	LogSet(ctx context.Context, params LogSetParams) (*domain.WorkoutSet, error)

	// Complete marks the session completed, stamping completed_at
	Complete(ctx context.Context, id, notes string) error

	// CompleteWithPhotos completes the session and attaches photos with
	// sort order equal to the slice index, in one transaction
	CompleteWithPhotos(ctx context.Context, id, notes string, photoPaths []string) error

	// Reactivate flips a completed session back to active, clearing
	// completed_at. Used when a session is resumed inside its window.
	Reactivate(ctx context.Context, id string) error

	// Abandon marks the session abandoned, keeping the row
	Abandon(ctx context.Context, id string) error

	// Delete hard-deletes the session and everything it owns
	Delete(ctx context.Context, id string) error

	// UpdateExerciseNotes edits the per-session exercise notes, independent
	// of the routine's notes
	UpdateExerciseNotes(ctx context.Context, workoutExerciseID, notes string) error
}

// WorkoutRepository is the composite interface
type WorkoutRepository interface {
	WorkoutReader
	WorkoutWriter
}
