package ports

import (
	"context"

	"ironlog/internal/domain"
)

// ExerciseRepository manages the flat exercise catalog
type ExerciseRepository interface {
	// Seed inserts the built-in catalog once. Idempotent: a non-empty table
	// is left untouched.
	Seed(ctx context.Context) error

	Get(ctx context.Context, id string) (*domain.Exercise, error)

	// All returns the catalog sorted by category then name
	All(ctx context.Context) ([]domain.Exercise, error)

	ByCategory(ctx context.Context, category domain.Category) ([]domain.Exercise, error)

	CreateCustom(ctx context.Context, name string, category domain.Category, equipment domain.Equipment) (*domain.Exercise, error)

	// DeleteCustom removes a user-defined exercise. Built-in exercises and
	// exercises referenced by any routine are rejected with an InvariantError.
	DeleteCustom(ctx context.Context, id string) error
}
