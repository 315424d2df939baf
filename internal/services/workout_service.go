package services

import (
	"context"
	"fmt"

	"ironlog/internal/active"
	"ironlog/internal/domain"
	"ironlog/internal/logging"
	"ironlog/internal/ports"
)

// WorkoutService binds the in-process workout machine to the repositories.
// The machine decides whether a session may start; the repositories own the
// durable record. Only one workout can be live at a time.
type WorkoutService struct {
	machine  *active.Machine
	schedule ports.Scheduler
	weights  *active.LastWeights
	workouts ports.WorkoutRepository
}

// NewWorkoutService wires the service. weights may be nil; last-weight
// tracking is then skipped.
func NewWorkoutService(machine *active.Machine, workouts ports.WorkoutRepository, schedule ports.Scheduler, weights *active.LastWeights) *WorkoutService {
	return &WorkoutService{
		machine:  machine,
		schedule: schedule,
		weights:  weights,
		workouts: workouts,
	}
}

// Machine exposes the state machine for read access.
func (s *WorkoutService) Machine() *active.Machine {
	return s.machine
}

// Start begins a session from a routine. The exclusivity check runs before
// any storage write so a conflicting start leaves no orphan rows.
func (s *WorkoutService) Start(ctx context.Context, routineID string) (*domain.Workout, error) {
	if s.machine.ActiveWorkoutID() != "" {
		return nil, domain.ErrWorkoutInProgress
	}

	workout, err := s.workouts.Start(ctx, routineID)
	if err != nil {
		return nil, err
	}

	if err := s.machine.Start(workout.ID, workout.Name, routineID, workout.StartedAt); err != nil {
		// Lost the race to another starter in this process. The row we
		// created must not linger as a phantom active session.
		if delErr := s.workouts.Delete(ctx, workout.ID); delErr != nil {
			logging.Logger.Error("failed to clean up conflicting workout", "workout_id", workout.ID, "error", delErr)
		}
		return nil, err
	}

	s.persistMachine()
	return workout, nil
}

// StartScheduled begins a session from a scheduled entry and then consumes
// the entry. The two writes are sequenced, not atomic: a failed delete
// leaves the schedule entry behind and is reported to the caller while the
// session stays started.
func (s *WorkoutService) StartScheduled(ctx context.Context, scheduledID string) (*domain.Workout, error) {
	scheduled, err := s.schedule.GetScheduled(ctx, scheduledID)
	if err != nil {
		return nil, err
	}

	workout, err := s.Start(ctx, scheduled.RoutineID)
	if err != nil {
		return nil, err
	}

	if err := s.schedule.DeleteScheduled(ctx, scheduledID); err != nil {
		logging.Logger.Error("workout started but schedule entry not consumed",
			"workout_id", workout.ID,
			"scheduled_id", scheduledID,
			"error", err,
		)
		return workout, fmt.Errorf("workout started but schedule entry not consumed: %w", err)
	}

	return workout, nil
}

// LogSet appends a set to the active session, caches it on the machine and
// remembers the weight for the exercise.
func (s *WorkoutService) LogSet(ctx context.Context, exerciseID string, params ports.LogSetParams) (*domain.WorkoutSet, error) {
	if s.machine.ActiveWorkoutID() == "" {
		return nil, domain.ErrWorkoutNotFound
	}

	set, err := s.workouts.LogSet(ctx, params)
	if err != nil {
		return nil, err
	}

	s.machine.AddLoggedSet(params.WorkoutExerciseID, *set)
	s.machine.SetCursor(s.machine.Snapshot().CurrentExerciseIndex, params.SetNumber+1)
	s.persistMachine()

	if s.weights != nil && exerciseID != "" && set.Weight > 0 {
		if err := s.weights.Record(exerciseID, set.Weight); err != nil {
			logging.Logger.Warn("failed to record last weight", "exercise_id", exerciseID, "error", err)
		}
	}

	return set, nil
}

// UpdateExerciseNotes edits the per-session notes of one exercise.
func (s *WorkoutService) UpdateExerciseNotes(ctx context.Context, workoutExerciseID, notes string) error {
	return s.workouts.UpdateExerciseNotes(ctx, workoutExerciseID, notes)
}

// Complete finishes the active session. The machine enters the resume
// window; the storage row is completed immediately. The machine and the row
// stamp completion independently, so the two timestamps may differ by the
// call gap.
func (s *WorkoutService) Complete(ctx context.Context, notes string, photoPaths []string) error {
	id := s.machine.ActiveWorkoutID()
	if id == "" {
		return domain.ErrWorkoutNotFound
	}

	if err := s.workouts.CompleteWithPhotos(ctx, id, notes, photoPaths); err != nil {
		return err
	}

	s.machine.MarkCompleted()
	s.persistMachine()

	logging.Logger.Info("workout completed", "workout_id", id)
	return nil
}

// Resume reopens the just-completed session if the resume window has not
// expired. The storage row is flipped back to active so the record matches
// the machine.
func (s *WorkoutService) Resume(ctx context.Context) (bool, error) {
	id := s.machine.ActiveWorkoutID()
	if !s.machine.Resume() {
		return false, nil
	}

	if err := s.workouts.Reactivate(ctx, id); err != nil {
		return false, err
	}

	s.persistMachine()
	logging.Logger.Info("workout resumed", "workout_id", id)
	return true, nil
}

// CheckResumeWindow polls the resume window. When it has expired the
// machine resets to idle and the reset is persisted.
func (s *WorkoutService) CheckResumeWindow(ctx context.Context) bool {
	inWindow := s.machine.CheckResumeWindow()
	if !inWindow {
		s.persistMachine()
	}
	return inWindow
}

// Abandon ends the active session without completing it. With deleteRow the
// storage record is removed entirely; otherwise it is kept and marked
// abandoned.
func (s *WorkoutService) Abandon(ctx context.Context, deleteRow bool) error {
	id := s.machine.ActiveWorkoutID()
	if id == "" {
		return domain.ErrWorkoutNotFound
	}

	var err error
	if deleteRow {
		err = s.workouts.Delete(ctx, id)
	} else {
		err = s.workouts.Abandon(ctx, id)
	}
	if err != nil {
		return err
	}

	s.machine.Abandon()
	s.persistMachine()

	logging.Logger.Info("workout abandoned", "workout_id", id, "deleted", deleteRow)
	return nil
}

// Recover reconciles a persisted machine snapshot against storage on
// startup. Storage wins: a snapshot pointing at a missing workout, or at a
// finished workout past its resume window, is discarded.
func (s *WorkoutService) Recover(ctx context.Context) error {
	snapshot, err := active.LoadSnapshot()
	if err != nil {
		return err
	}
	if snapshot.ActiveWorkoutID == "" {
		return nil
	}

	workout, err := s.workouts.Get(ctx, snapshot.ActiveWorkoutID)
	if err != nil {
		if err == domain.ErrWorkoutNotFound {
			logging.Logger.Warn("discarding stale workout snapshot", "workout_id", snapshot.ActiveWorkoutID)
			return active.SaveSnapshot(active.State{})
		}
		return err
	}

	s.machine.Restore(snapshot)

	switch workout.Status {
	case domain.WorkoutActive:
		// Machine and storage agree; carry on.
	case domain.WorkoutCompleted:
		// A crash between the storage completion and the machine
		// transition leaves a snapshot claiming an in-progress session
		// over a completed row. Reopen the resume window from the row's
		// own completion time.
		if !snapshot.IsInResumeWindow && workout.CompletedAt != nil {
			snapshot.CompletedAt = workout.CompletedAt
			snapshot.IsInResumeWindow = true
			s.machine.Restore(snapshot)
		}
		if !s.machine.CheckResumeWindow() {
			s.machine.End()
		}
		s.persistMachine()
	default:
		// Abandoned in storage; the snapshot is stale.
		s.machine.Abandon()
		s.persistMachine()
	}

	return nil
}

func (s *WorkoutService) persistMachine() {
	if err := active.SaveSnapshot(s.machine.Snapshot()); err != nil {
		logging.Logger.Error("failed to persist workout state", "error", err)
	}
}
