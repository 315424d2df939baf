package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ironlog/internal/domain"
	"ironlog/internal/ports"
)

// createRoutineChildren inserts the exercise placements and target sets for a
// routine inside tx. Position comes from slice order; set numbers are 1-based.
func createRoutineChildren(tx *gorm.DB, routineID string, exercises []ports.NewRoutineExercise) error {
	for position, ex := range exercises {
		var exists int64
		if err := tx.Model(&ExerciseModel{}).Where("id = ?", ex.ExerciseID).Count(&exists).Error; err != nil {
			return fmt.Errorf("failed to resolve exercise %s: %w", ex.ExerciseID, err)
		}
		if exists == 0 {
			return domain.ErrExerciseNotFound
		}

		exModel := RoutineExerciseModel{
			ExerciseID:      ex.ExerciseID,
			ID:              uuid.New().String(),
			Notes:           ex.Notes,
			Position:        position,
			RestSeconds:     ex.RestSeconds,
			RoutineID:       routineID,
			SupersetGroupID: ex.SupersetGroupID,
		}
		if err := tx.Create(&exModel).Error; err != nil {
			return fmt.Errorf("failed to create routine exercise: %w", err)
		}

		for i, set := range ex.Sets {
			setType := set.Type
			if setType == "" {
				setType = domain.SetTypeNormal
			}
			if !setType.Valid() {
				return domain.Invariant("invalid set type %q", setType)
			}

			setModel := RoutineSetModel{
				ID:                uuid.New().String(),
				RoutineExerciseID: exModel.ID,
				SetNumber:         i + 1,
				SetType:           string(setType),
				TargetReps:        set.TargetReps,
				TargetWeight:      set.TargetWeight,
			}
			if err := tx.Create(&setModel).Error; err != nil {
				return fmt.Errorf("failed to create target set: %w", err)
			}
		}
	}

	return nil
}

// Create implements ports.RoutineWriter.Create
func (r *RoutineStore) Create(ctx context.Context, name string, exercises []ports.NewRoutineExercise) (string, error) {
	if name == "" {
		return "", domain.Invariant("routine name must not be empty")
	}

	routineID := uuid.New().String()

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			routine := RoutineModel{
				ID:   routineID,
				Name: name,
			}
			if err := tx.Create(&routine).Error; err != nil {
				return fmt.Errorf("failed to create routine: %w", err)
			}

			return createRoutineChildren(tx, routineID, exercises)
		})
	}, 3)
	if err != nil {
		return "", err
	}

	return routineID, nil
}

// GetWithExercises implements ports.RoutineReader.GetWithExercises
func (r *RoutineStore) GetWithExercises(ctx context.Context, id string) (*domain.Routine, error) {
	var routineModel RoutineModel
	var exerciseModels []RoutineExerciseModel
	var setModels []RoutineSetModel
	var catalogModels []ExerciseModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id = ?", id).First(&routineModel).Error; err != nil {
				return err
			}

			if err := tx.Where("routine_id = ?", id).Order("position ASC").Find(&exerciseModels).Error; err != nil {
				return fmt.Errorf("failed to load routine exercises: %w", err)
			}

			exerciseIDs := make([]string, 0, len(exerciseModels))
			catalogIDs := make([]string, 0, len(exerciseModels))
			for _, ex := range exerciseModels {
				exerciseIDs = append(exerciseIDs, ex.ID)
				catalogIDs = append(catalogIDs, ex.ExerciseID)
			}

			if len(exerciseIDs) > 0 {
				if err := tx.Where("routine_exercise_id IN ?", exerciseIDs).Order("set_number ASC").Find(&setModels).Error; err != nil {
					return fmt.Errorf("failed to load target sets: %w", err)
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
			// Absent routine is an empty result, not an error
			return nil, nil
		}
		return nil, err
	}

	catalogMap := make(map[string]domain.Exercise, len(catalogModels))
	for _, m := range catalogModels {
		catalogMap[m.ID] = exerciseModelToDomain(m)
	}

	setsByExercise := make(map[string][]domain.RoutineSet)
	for _, m := range setModels {
		setsByExercise[m.RoutineExerciseID] = append(setsByExercise[m.RoutineExerciseID], routineSetModelToDomain(m))
	}

	routine := routineModelToDomain(routineModel)
	routine.Exercises = make([]domain.RoutineExercise, len(exerciseModels))
	for i, m := range exerciseModels {
		var catalog *domain.Exercise
		if c, ok := catalogMap[m.ExerciseID]; ok {
			catalogCopy := c
			catalog = &catalogCopy
		}
		routine.Exercises[i] = routineExerciseModelToDomain(m, catalog, setsByExercise[m.ID])
	}

	return &routine, nil
}

// List implements ports.RoutineReader.List
func (r *RoutineStore) List(ctx context.Context) ([]domain.Routine, error) {
	var models []RoutineModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("updated_at DESC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list routines: %w", err)
	}

	result := make([]domain.Routine, len(models))
	for i, m := range models {
		result[i] = routineModelToDomain(m)
	}
	return result, nil
}

// Rename implements ports.RoutineWriter.Rename
func (r *RoutineStore) Rename(ctx context.Context, id, name string) error {
	if name == "" {
		return domain.Invariant("routine name must not be empty")
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&RoutineModel{}).Where("id = ?", id).Updates(map[string]any{
				"name":       name,
				"updated_at": time.Now().UTC(),
			})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domain.ErrRoutineNotFound
			}
			return nil
		})
	}, 3)
}

// Update implements ports.RoutineWriter.Update. The child aggregate is
// replaced wholesale; already-started workouts keep their snapshot.
func (r *RoutineStore) Update(ctx context.Context, id string, exercises []ports.NewRoutineExercise) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var routine RoutineModel
			if err := tx.Where("id = ?", id).First(&routine).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrRoutineNotFound
				}
				return err
			}

			// Cascade clears the old target sets
			if err := tx.Where("routine_id = ?", id).Delete(&RoutineExerciseModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear routine exercises: %w", err)
			}

			if err := createRoutineChildren(tx, id, exercises); err != nil {
				return err
			}

			return tx.Model(&RoutineModel{}).Where("id = ?", id).
				Update("updated_at", time.Now().UTC()).Error
		})
	}, 3)
}

// Delete implements ports.RoutineWriter.Delete
func (r *RoutineStore) Delete(ctx context.Context, id string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Where("id = ?", id).Delete(&RoutineModel{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domain.ErrRoutineNotFound
			}
			return nil
		})
	}, 3)
}
