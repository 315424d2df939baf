package domain

import (
	"errors"
	"fmt"
)

var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrRoutineNotFound   = errors.New("routine not found")
	ErrScheduleNotFound  = errors.New("scheduled workout not found")
	ErrWorkoutInProgress = errors.New("another workout is already in progress")
	ErrWorkoutNotFound   = errors.New("workout not found")
)

// InvariantError is a guarded-mutation rejection. The reason is written for
// direct display to the user.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return e.Reason
}

// Invariant builds an InvariantError with a formatted reason
func Invariant(format string, args ...any) error {
	return &InvariantError{Reason: fmt.Sprintf(format, args...)}
}

// IsInvariant reports whether err is an InvariantError
func IsInvariant(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}
