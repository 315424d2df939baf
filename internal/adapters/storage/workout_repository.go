package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ironlog/internal/domain"
	"ironlog/internal/logging"
	"ironlog/internal/ports"
)

// Start implements ports.WorkoutWriter.Start. The routine is snapshotted into
// the session inside one transaction: a reader never observes a workout with
// only part of its exercise instances.
func (r *WorkoutStore) Start(ctx context.Context, routineID string) (*domain.Workout, error) {
	var workout domain.Workout

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var routine RoutineModel
			if err := tx.Where("id = ?", routineID).First(&routine).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrRoutineNotFound
				}
				return err
			}

			var routineExercises []RoutineExerciseModel
			if err := tx.Where("routine_id = ?", routineID).Order("position ASC").Find(&routineExercises).Error; err != nil {
				return fmt.Errorf("failed to load routine exercises: %w", err)
			}

			now := time.Now().UTC()
			workoutModel := WorkoutModel{
				ID:        uuid.New().String(),
				Name:      routine.Name, // snapshot, survives later renames
				RoutineID: routineID,
				StartedAt: now,
				Status:    string(domain.WorkoutActive),
			}
			if err := tx.Create(&workoutModel).Error; err != nil {
				return fmt.Errorf("failed to create workout: %w", err)
			}

			workout = workoutModelToDomain(workoutModel)
			workout.Exercises = make([]domain.WorkoutExercise, len(routineExercises))

			for i, re := range routineExercises {
				backRef := re.ID
				exModel := WorkoutExerciseModel{
					ExerciseID:        re.ExerciseID,
					ID:                uuid.New().String(),
					Notes:             re.Notes,
					Position:          re.Position,
					RoutineExerciseID: &backRef,
					WorkoutID:         workoutModel.ID,
				}
				if err := tx.Create(&exModel).Error; err != nil {
					return fmt.Errorf("failed to create workout exercise: %w", err)
				}
				workout.Exercises[i] = workoutExerciseModelToDomain(exModel, nil, nil)
			}

			return nil
		})
	}, 3)
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("workout started",
		"workout_id", workout.ID,
		"routine_id", routineID,
		"exercises", len(workout.Exercises),
	)
	return &workout, nil
}

// LogSet implements ports.WorkoutWriter.LogSet. Pure append: duplicate set
// numbers are allowed as repeat attempts; recency comes from completed_at.
func (r *WorkoutStore) LogSet(ctx context.Context, params ports.LogSetParams) (*domain.WorkoutSet, error) {
	setType := params.Type
	if setType == "" {
		setType = domain.SetTypeNormal
	}
	if !setType.Valid() {
		return nil, domain.Invariant("invalid set type %q", setType)
	}

	model := WorkoutSetModel{
		CompletedAt:       time.Now().UTC(),
		ID:                uuid.New().String(),
		Reps:              params.Reps,
		RPE:               params.RPE,
		SetNumber:         params.SetNumber,
		SetType:           string(setType),
		Weight:            params.Weight,
		WorkoutExerciseID: params.WorkoutExerciseID,
	}

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var exists int64
			if err := tx.Model(&WorkoutExerciseModel{}).Where("id = ?", params.WorkoutExerciseID).Count(&exists).Error; err != nil {
				return err
			}
			if exists == 0 {
				return domain.ErrWorkoutNotFound
			}

			return tx.Create(&model).Error
		})
	}, 3)
	if err != nil {
		return nil, err
	}

	set := workoutSetModelToDomain(model)
	return &set, nil
}

// Complete implements ports.WorkoutWriter.Complete
func (r *WorkoutStore) Complete(ctx context.Context, id, notes string) error {
	return r.CompleteWithPhotos(ctx, id, notes, nil)
}

// CompleteWithPhotos implements ports.WorkoutWriter.CompleteWithPhotos. Photo
// sort order is the slice index.
func (r *WorkoutStore) CompleteWithPhotos(ctx context.Context, id, notes string, photoPaths []string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			now := time.Now().UTC()
			result := tx.Model(&WorkoutModel{}).Where("id = ?", id).Updates(map[string]any{
				"completed_at": &now,
				"notes":        notes,
				"status":       string(domain.WorkoutCompleted),
			})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domain.ErrWorkoutNotFound
			}

			for i, path := range photoPaths {
				photo := WorkoutPhotoModel{
					ID:        uuid.New().String(),
					Path:      path,
					SortOrder: i,
					WorkoutID: id,
				}
				if err := tx.Create(&photo).Error; err != nil {
					return fmt.Errorf("failed to attach photo: %w", err)
				}
			}

			return nil
		})
	}, 3)
}

// Reactivate implements ports.WorkoutWriter.Reactivate
func (r *WorkoutStore) Reactivate(ctx context.Context, id string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&WorkoutModel{}).Where("id = ?", id).Updates(map[string]any{
				"completed_at": nil,
				"status":       string(domain.WorkoutActive),
			})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domain.ErrWorkoutNotFound
			}
			return nil
		})
	}, 3)
}

// Abandon implements ports.WorkoutWriter.Abandon
func (r *WorkoutStore) Abandon(ctx context.Context, id string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&WorkoutModel{}).Where("id = ?", id).
				Update("status", string(domain.WorkoutAbandoned))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domain.ErrWorkoutNotFound
			}
			return nil
		})
	}, 3)
}

// Delete implements ports.WorkoutWriter.Delete
func (r *WorkoutStore) Delete(ctx context.Context, id string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Where("id = ?", id).Delete(&WorkoutModel{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domain.ErrWorkoutNotFound
			}
			return nil
		})
	}, 3)
}

// UpdateExerciseNotes implements ports.WorkoutWriter.UpdateExerciseNotes
func (r *WorkoutStore) UpdateExerciseNotes(ctx context.Context, workoutExerciseID, notes string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&WorkoutExerciseModel{}).Where("id = ?", workoutExerciseID).
				Update("notes", notes)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domain.ErrWorkoutNotFound
			}
			return nil
		})
	}, 3)
}

// Get implements ports.WorkoutReader.Get
func (r *WorkoutStore) Get(ctx context.Context, id string) (*domain.Workout, error) {
	var model WorkoutModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, err
	}

	workout := workoutModelToDomain(model)
	return &workout, nil
}

// GetActive implements ports.WorkoutReader.GetActive
func (r *WorkoutStore) GetActive(ctx context.Context) (*domain.Workout, error) {
	var model WorkoutModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("status = ?", string(domain.WorkoutActive)).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	workout := workoutModelToDomain(model)
	return &workout, nil
}

// GetWithExercises implements ports.WorkoutReader.GetWithExercises
func (r *WorkoutStore) GetWithExercises(ctx context.Context, id string) (*domain.Workout, error) {
	var workoutModel WorkoutModel
	var exerciseModels []WorkoutExerciseModel
	var setModels []WorkoutSetModel
	var catalogModels []ExerciseModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id = ?", id).First(&workoutModel).Error; err != nil {
				return err
			}

			if err := tx.Where("workout_id = ?", id).Order("position ASC").Find(&exerciseModels).Error; err != nil {
				return fmt.Errorf("failed to load workout exercises: %w", err)
			}

			exerciseIDs := make([]string, 0, len(exerciseModels))
			catalogIDs := make([]string, 0, len(exerciseModels))
			for _, ex := range exerciseModels {
				exerciseIDs = append(exerciseIDs, ex.ID)
				catalogIDs = append(catalogIDs, ex.ExerciseID)
			}

			if len(exerciseIDs) > 0 {
				if err := tx.Where("workout_exercise_id IN ?", exerciseIDs).Order("completed_at ASC, set_number ASC").Find(&setModels).Error; err != nil {
					return fmt.Errorf("failed to load logged sets: %w", err)
				}
				if err := tx.Where("id IN ?", catalogIDs).Find(&catalogModels).Error; err != nil {
					return fmt.Errorf("failed to load catalog exercises: %w", err)
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

	catalogMap := make(map[string]domain.Exercise, len(catalogModels))
	for _, m := range catalogModels {
		catalogMap[m.ID] = exerciseModelToDomain(m)
	}

	setsByExercise := make(map[string][]domain.WorkoutSet)
	for _, m := range setModels {
		setsByExercise[m.WorkoutExerciseID] = append(setsByExercise[m.WorkoutExerciseID], workoutSetModelToDomain(m))
	}

	workout := workoutModelToDomain(workoutModel)
	workout.Exercises = make([]domain.WorkoutExercise, len(exerciseModels))
	for i, m := range exerciseModels {
		var catalog *domain.Exercise
		if c, ok := catalogMap[m.ExerciseID]; ok {
			catalogCopy := c
			catalog = &catalogCopy
		}
		workout.Exercises[i] = workoutExerciseModelToDomain(m, catalog, setsByExercise[m.ID])
	}

	return &workout, nil
}
