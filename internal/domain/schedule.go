package domain

import "time"

// DateLayout is the calendar-date format used for scheduling and history
// bucketing (no time component)
const DateLayout = "2006-01-02"

// ScheduledWorkout is a future intent to run a routine on a given date.
// Starting it consumes the entry; there is no status transition.
type ScheduledWorkout struct {
	CreatedAt   time.Time
	Date        string // DateLayout formatted calendar date
	ID          string
	RoutineID   string
	RoutineName string // joined for display
}

// WorkoutPhoto references a progress photo attached to a completed session.
// The underlying file is owned externally; only the path is stored.
type WorkoutPhoto struct {
	CreatedAt time.Time
	ID        string
	Path      string
	SortOrder int
	WorkoutID string
}
