package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"ironlog/internal/domain"
	"ironlog/internal/ports"
)

// HistoryService answers calendar and review queries.
type HistoryService struct {
	history ports.HistoryRepository
}

func NewHistoryService(history ports.HistoryRepository) *HistoryService {
	return &HistoryService{history: history}
}

// CalendarOverview is the one-screen calendar payload: every date with a
// completed workout, every date with a scheduled workout, and the detail
// rows for today.
type CalendarOverview struct {
	WorkoutDates   []string                  `json:"workout_dates"`
	ScheduledDates []string                  `json:"scheduled_dates"`
	TodayWorkouts  []domain.Workout          `json:"today_workouts"`
	TodayScheduled []domain.ScheduledWorkout `json:"today_scheduled"`
}

// Overview fans the four independent reads out concurrently.
func (s *HistoryService) Overview(ctx context.Context, today time.Time) (*CalendarOverview, error) {
	var overview CalendarOverview
	todayStr := today.Local().Format(domain.DateLayout)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dates, err := s.history.WorkoutDates(ctx)
		overview.WorkoutDates = dates
		return err
	})
	g.Go(func() error {
		dates, err := s.history.ScheduledDates(ctx)
		overview.ScheduledDates = dates
		return err
	})
	g.Go(func() error {
		workouts, err := s.history.WorkoutsForDate(ctx, today)
		overview.TodayWorkouts = workouts
		return err
	})
	g.Go(func() error {
		scheduled, err := s.history.ScheduledForDate(ctx, todayStr)
		overview.TodayScheduled = scheduled
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}

// Summary returns the derived statistics for one session.
func (s *HistoryService) Summary(ctx context.Context, workoutID string) (*domain.WorkoutSummary, error) {
	return s.history.Summary(ctx, workoutID)
}

// LastSets returns the recent completed-session sets for an exercise,
// excluding the given session. Used to show previous performance while
// logging.
func (s *HistoryService) LastSets(ctx context.Context, exerciseID, excludeWorkoutID string) ([]domain.WorkoutSet, error) {
	return s.history.LastSetsForExercise(ctx, exerciseID, excludeWorkoutID, 10)
}
