package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ironlog/internal/domain"
)

// localDayRange returns the [start, end) UTC instants covering the local
// calendar day containing t
func localDayRange(t time.Time) (time.Time, time.Time) {
	local := t.Local()
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
	return start.UTC(), start.Add(24 * time.Hour).UTC()
}

// WorkoutDates implements ports.HistoryQueries.WorkoutDates. Dates are
// bucketed in the session-local timezone, so the grouping happens in Go
// rather than in SQL against UTC timestamps.
func (r *HistoryStore) WorkoutDates(ctx context.Context) ([]string, error) {
	var models []WorkoutModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("status = ?", string(domain.WorkoutCompleted)).
			Order("started_at ASC").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed workouts: %w", err)
	}

	seen := make(map[string]bool)
	dates := make([]string, 0, len(models))
	for _, m := range models {
		date := m.StartedAt.Local().Format(domain.DateLayout)
		if !seen[date] {
			seen[date] = true
			dates = append(dates, date)
		}
	}
	return dates, nil
}

// ScheduledDates implements ports.HistoryQueries.ScheduledDates
func (r *HistoryStore) ScheduledDates(ctx context.Context) ([]string, error) {
	var dates []string
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Model(&ScheduledWorkoutModel{}).
			Distinct("scheduled_date").
			Order("scheduled_date ASC").
			Pluck("scheduled_date", &dates).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load scheduled dates: %w", err)
	}
	return dates, nil
}

// WorkoutsForDate implements ports.HistoryQueries.WorkoutsForDate
func (r *HistoryStore) WorkoutsForDate(ctx context.Context, date time.Time) ([]domain.Workout, error) {
	start, end := localDayRange(date)

	var models []WorkoutModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("status = ? AND started_at >= ? AND started_at < ?", string(domain.WorkoutCompleted), start, end).
			Order("started_at ASC").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load workouts for date: %w", err)
	}

	result := make([]domain.Workout, len(models))
	for i, m := range models {
		result[i] = workoutModelToDomain(m)
	}
	return result, nil
}

// Summary implements ports.HistoryQueries.Summary. Zero-set sessions report
// zeros across the board.
func (r *HistoryStore) Summary(ctx context.Context, workoutID string) (*domain.WorkoutSummary, error) {
	var workoutModel WorkoutModel
	var exerciseModels []WorkoutExerciseModel
	var setModels []WorkoutSetModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id = ?", workoutID).First(&workoutModel).Error; err != nil {
				return err
			}

			if err := tx.Where("workout_id = ?", workoutID).Find(&exerciseModels).Error; err != nil {
				return fmt.Errorf("failed to load workout exercises: %w", err)
			}

			exerciseIDs := make([]string, len(exerciseModels))
			for i, ex := range exerciseModels {
				exerciseIDs[i] = ex.ID
			}

			if len(exerciseIDs) > 0 {
				if err := tx.Where("workout_exercise_id IN ?", exerciseIDs).Find(&setModels).Error; err != nil {
					return fmt.Errorf("failed to load logged sets: %w", err)
				}
			}

			return nil
		})
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, err
	}

	summary := domain.WorkoutSummary{WorkoutID: workoutID}

	if workoutModel.CompletedAt != nil {
		summary.DurationSeconds = int64(workoutModel.CompletedAt.Sub(workoutModel.StartedAt).Seconds())
	}

	catalogByInstance := make(map[string]string, len(exerciseModels))
	for _, ex := range exerciseModels {
		catalogByInstance[ex.ID] = ex.ExerciseID
	}

	loggedExercises := make(map[string]bool)
	for _, set := range setModels {
		summary.TotalSets++
		summary.TotalVolume += set.Weight * float64(set.Reps)
		loggedExercises[catalogByInstance[set.WorkoutExerciseID]] = true
	}
	summary.ExerciseCount = len(loggedExercises)

	return &summary, nil
}

// LastSetsForExercise implements ports.HistoryQueries.LastSetsForExercise.
// Only completed sessions count; the exclusion keeps an in-progress session
// from comparing to itself.
func (r *HistoryStore) LastSetsForExercise(ctx context.Context, exerciseID, excludeWorkoutID string, limit int) ([]domain.WorkoutSet, error) {
	if limit <= 0 {
		limit = 10
	}

	type setRow struct {
		WorkoutSetModel
		WorkoutStartedAt time.Time
	}

	var rows []setRow
	err := withRetry(func() error {
		query := r.db.WithContext(ctx).
			Table("workout_sets").
			Select("workout_sets.*, workouts.started_at AS workout_started_at").
			Joins("JOIN workout_exercises ON workout_exercises.id = workout_sets.workout_exercise_id").
			Joins("JOIN workouts ON workouts.id = workout_exercises.workout_id").
			Where("workout_exercises.exercise_id = ?", exerciseID).
			Where("workouts.status = ?", string(domain.WorkoutCompleted))
		if excludeWorkoutID != "" {
			query = query.Where("workouts.id != ?", excludeWorkoutID)
		}
		return query.
			Order("workouts.started_at DESC, workout_sets.set_number ASC").
			Limit(limit).
			Scan(&rows).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load last sets: %w", err)
	}

	result := make([]domain.WorkoutSet, len(rows))
	for i, row := range rows {
		result[i] = workoutSetModelToDomain(row.WorkoutSetModel)
	}
	return result, nil
}

// Photos implements ports.HistoryQueries.Photos
func (r *HistoryStore) Photos(ctx context.Context, workoutID string) ([]domain.WorkoutPhoto, error) {
	var models []WorkoutPhotoModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("workout_id = ?", workoutID).
			Order("sort_order ASC").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load photos: %w", err)
	}

	result := make([]domain.WorkoutPhoto, len(models))
	for i, m := range models {
		result[i] = workoutPhotoModelToDomain(m)
	}
	return result, nil
}

// Schedule implements ports.Scheduler.Schedule
func (r *HistoryStore) Schedule(ctx context.Context, routineID string, date string) (*domain.ScheduledWorkout, error) {
	if _, err := time.ParseInLocation(domain.DateLayout, date, time.Local); err != nil {
		return nil, domain.Invariant("invalid date %q, expected YYYY-MM-DD", date)
	}

	var routine RoutineModel
	model := ScheduledWorkoutModel{
		ID:            uuid.New().String(),
		RoutineID:     routineID,
		ScheduledDate: date,
	}

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id = ?", routineID).First(&routine).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrRoutineNotFound
				}
				return err
			}
			return tx.Create(&model).Error
		})
	}, 3)
	if err != nil {
		return nil, err
	}

	scheduled := scheduledWorkoutModelToDomain(model, routine.Name)
	return &scheduled, nil
}

// GetScheduled implements ports.Scheduler.GetScheduled
func (r *HistoryStore) GetScheduled(ctx context.Context, id string) (*domain.ScheduledWorkout, error) {
	var model ScheduledWorkoutModel
	var routine RoutineModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
				return err
			}
			// Routine may be gone; name stays empty then
			tx.Where("id = ?", model.RoutineID).First(&routine)
			return nil
		})
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, err
	}

	scheduled := scheduledWorkoutModelToDomain(model, routine.Name)
	return &scheduled, nil
}

// ListScheduled implements ports.Scheduler.ListScheduled
func (r *HistoryStore) ListScheduled(ctx context.Context) ([]domain.ScheduledWorkout, error) {
	return r.listScheduled(ctx, "")
}

// ScheduledForDate implements ports.Scheduler.ScheduledForDate
func (r *HistoryStore) ScheduledForDate(ctx context.Context, date string) ([]domain.ScheduledWorkout, error) {
	return r.listScheduled(ctx, date)
}

func (r *HistoryStore) listScheduled(ctx context.Context, date string) ([]domain.ScheduledWorkout, error) {
	var models []ScheduledWorkoutModel
	var routines []RoutineModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			query := tx.Order("scheduled_date ASC, created_at ASC")
			if date != "" {
				query = query.Where("scheduled_date = ?", date)
			}
			if err := query.Find(&models).Error; err != nil {
				return err
			}
			return tx.Find(&routines).Error
		})
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load scheduled workouts: %w", err)
	}

	nameMap := make(map[string]string, len(routines))
	for _, routine := range routines {
		nameMap[routine.ID] = routine.Name
	}

	result := make([]domain.ScheduledWorkout, len(models))
	for i, m := range models {
		result[i] = scheduledWorkoutModelToDomain(m, nameMap[m.RoutineID])
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result, nil
}

// DeleteScheduled implements ports.Scheduler.DeleteScheduled
func (r *HistoryStore) DeleteScheduled(ctx context.Context, id string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Where("id = ?", id).Delete(&ScheduledWorkoutModel{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domain.ErrScheduleNotFound
			}
			return nil
		})
	}, 3)
}
