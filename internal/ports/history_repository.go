package ports

import (
	"context"
	"time"

	"ironlog/internal/domain"
)

// HistoryQueries is the read-only aggregation layer behind calendar and
// review screens
type HistoryQueries interface {
	// WorkoutDates returns the distinct local calendar dates with completed
	// workouts, ascending
	WorkoutDates(ctx context.Context) ([]string, error)

	// ScheduledDates returns the distinct dates with scheduled workouts
	ScheduledDates(ctx context.Context) ([]string, error)

	// WorkoutsForDate returns completed workouts started on the given local day
	WorkoutsForDate(ctx context.Context, date time.Time) ([]domain.Workout, error)

	// Summary aggregates one session. Zero-set sessions report zeros.
	Summary(ctx context.Context, workoutID string) (*domain.WorkoutSummary, error)

	// LastSetsForExercise returns the most recent logged sets for an exercise
	// from completed sessions only, newest session first then set number,
	// capped at limit. excludeWorkoutID keeps an in-progress session from
	// comparing to itself.
	LastSetsForExercise(ctx context.Context, exerciseID, excludeWorkoutID string, limit int) ([]domain.WorkoutSet, error)

	// Photos returns a session's photos ordered by sort order
	Photos(ctx context.Context, workoutID string) ([]domain.WorkoutPhoto, error)
}

// Scheduler manages future workout intents
type Scheduler interface {
	Schedule(ctx context.Context, routineID string, date string) (*domain.ScheduledWorkout, error)
	GetScheduled(ctx context.Context, id string) (*domain.ScheduledWorkout, error)
	ListScheduled(ctx context.Context) ([]domain.ScheduledWorkout, error)
	ScheduledForDate(ctx context.Context, date string) ([]domain.ScheduledWorkout, error)
	DeleteScheduled(ctx context.Context, id string) error
}

// HistoryRepository is the composite interface
type HistoryRepository interface {
	HistoryQueries
	Scheduler
}
