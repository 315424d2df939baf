package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ironlog/internal/domain"
	"ironlog/internal/logging"
)

// Seed implements ports.ExerciseRepository.Seed. The row-count guard makes it
// idempotent; it is not a per-row upsert.
func (r *ExerciseStore) Seed(ctx context.Context) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&ExerciseModel{}).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to count exercises: %w", err)
			}
			if count > 0 {
				return nil
			}

			models := make([]ExerciseModel, 0, len(builtinExercises))
			for _, e := range builtinExercises {
				models = append(models, ExerciseModel{
					Category:  string(e.category),
					Equipment: string(e.equipment),
					ID:        uuid.New().String(),
					IsCustom:  false,
					Name:      e.name,
				})
			}

			if err := tx.CreateInBatches(models, 50).Error; err != nil {
				return fmt.Errorf("failed to seed exercises: %w", err)
			}

			logging.Logger.Info("seeded exercise catalog", "count", len(models))
			return nil
		})
	}, 3)
}

// Get implements ports.ExerciseRepository.Get
func (r *ExerciseStore) Get(ctx context.Context, id string) (*domain.Exercise, error) {
	var model ExerciseModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrExerciseNotFound
		}
		return nil, err
	}

	exercise := exerciseModelToDomain(model)
	return &exercise, nil
}

// All implements ports.ExerciseRepository.All
func (r *ExerciseStore) All(ctx context.Context) ([]domain.Exercise, error) {
	var models []ExerciseModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("category ASC, name ASC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	result := make([]domain.Exercise, len(models))
	for i, m := range models {
		result[i] = exerciseModelToDomain(m)
	}
	return result, nil
}

// ByCategory implements ports.ExerciseRepository.ByCategory
func (r *ExerciseStore) ByCategory(ctx context.Context, category domain.Category) ([]domain.Exercise, error) {
	if !category.Valid() {
		return nil, domain.Invariant("invalid category %q", category)
	}

	var models []ExerciseModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("category = ?", string(category)).
			Order("name ASC").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises by category: %w", err)
	}

	result := make([]domain.Exercise, len(models))
	for i, m := range models {
		result[i] = exerciseModelToDomain(m)
	}
	return result, nil
}

// CreateCustom implements ports.ExerciseRepository.CreateCustom
func (r *ExerciseStore) CreateCustom(ctx context.Context, name string, category domain.Category, equipment domain.Equipment) (*domain.Exercise, error) {
	if name == "" {
		return nil, domain.Invariant("exercise name must not be empty")
	}
	if !category.Valid() {
		return nil, domain.Invariant("invalid category %q", category)
	}
	if !equipment.Valid() {
		return nil, domain.Invariant("invalid equipment %q", equipment)
	}

	model := ExerciseModel{
		Category:  string(category),
		Equipment: string(equipment),
		ID:        uuid.New().String(),
		IsCustom:  true,
		Name:      name,
	}

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	exercise := exerciseModelToDomain(model)
	return &exercise, nil
}

// DeleteCustom implements ports.ExerciseRepository.DeleteCustom. The in-use
// check runs in the same transaction as the delete so a routine edit cannot
// slip between check and removal.
func (r *ExerciseStore) DeleteCustom(ctx context.Context, id string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var model ExerciseModel
			if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrExerciseNotFound
				}
				return err
			}

			if !model.IsCustom {
				return domain.Invariant("cannot delete built-in exercise %q", model.Name)
			}

			var refs int64
			if err := tx.Model(&RoutineExerciseModel{}).Where("exercise_id = ?", id).Count(&refs).Error; err != nil {
				return fmt.Errorf("failed to check exercise references: %w", err)
			}
			if refs > 0 {
				return domain.Invariant("exercise %q is used by %d routine(s) and cannot be deleted", model.Name, refs)
			}

			return tx.Where("id = ?", id).Delete(&ExerciseModel{}).Error
		})
	}, 3)
}
