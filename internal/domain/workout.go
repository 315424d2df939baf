package domain

import "time"

// WorkoutStatus represents the lifecycle state of a logged workout session
type WorkoutStatus string

const (
	WorkoutActive    WorkoutStatus = "active"
	WorkoutCompleted WorkoutStatus = "completed"
	WorkoutAbandoned WorkoutStatus = "abandoned"
)

// Valid reports whether the status is one of the closed set
func (s WorkoutStatus) Valid() bool {
	switch s {
	case WorkoutActive, WorkoutCompleted, WorkoutAbandoned:
		return true
	}
	return false
}

// WorkoutSet is an actual logged set. Unlike targets, weight and reps are
// always concrete. Immutable once logged.
type WorkoutSet struct {
	CompletedAt       time.Time // stamped at log time, drives recency ordering
	ID                string
	Reps              int
	RPE               *int // 1-10 perceived exertion, optional
	SetNumber         int  // 1-based; repeats are allowed
	Type              SetType
	Weight            float64
	WorkoutExerciseID string
}

// Volume returns weight x reps for this set
func (s WorkoutSet) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// WorkoutExercise is one exercise instance within a session, snapshotted from
// the routine at start time
type WorkoutExercise struct {
	Exercise          *Exercise // joined catalog entry
	ExerciseID        string
	ID                string
	Notes             string
	Position          int
	RoutineExerciseID *string // back-reference to the originating plan entry, if any
	Sets              []WorkoutSet
	WorkoutID         string
}

// Workout is one concrete execution of a routine. The name and exercise list
// are snapshotted at start; later edits to the routine do not alter it.
type Workout struct {
	CompletedAt *time.Time
	Exercises   []WorkoutExercise
	ID          string
	Name        string
	Notes       string
	RoutineID   string // reference for display only, not a strong dependency
	StartedAt   time.Time
	Status      WorkoutStatus
}

// WorkoutSummary aggregates a single session for review screens
type WorkoutSummary struct {
	DurationSeconds int64 // 0 while the workout is not completed
	ExerciseCount   int   // distinct exercises with at least one logged set
	TotalSets       int
	TotalVolume     float64
	WorkoutID       string
}
