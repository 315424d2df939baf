package cmd

import (
	"context"
	"fmt"

	"ironlog/internal/active"
	"ironlog/internal/adapters/storage"
	"ironlog/internal/config"
	"ironlog/internal/logging"
	"ironlog/internal/ports"
	"ironlog/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Repositories
	Exercises ports.ExerciseRepository
	History   ports.HistoryRepository
	Routines  ports.RoutineRepository
	Workouts  ports.WorkoutRepository

	// Services
	HistoryService *services.HistoryService
	WorkoutService *services.WorkoutService

	Settings *config.Settings

	// Internal - for cleanup only
	repo *storage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired. The
// exercise catalog is seeded and any persisted active-workout snapshot is
// reconciled against storage before commands run.
func NewContainer(settings *config.Settings) (*Container, error) {
	dbPath, err := config.GetDBPath(settings)
	if err != nil {
		return nil, err
	}

	repo, err := storage.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := repo.Exercises.Seed(ctx); err != nil {
		repo.Close()
		return nil, fmt.Errorf("failed to seed exercise catalog: %w", err)
	}

	weights, err := active.LoadWeights()
	if err != nil {
		logging.Logger.Warn("failed to load last weights", "error", err)
	}

	machine := active.NewMachine()
	workoutService := services.NewWorkoutService(machine, repo.Workouts, repo.History, weights)
	if err := workoutService.Recover(ctx); err != nil {
		logging.Logger.Warn("failed to recover workout state", "error", err)
	}

	return &Container{
		Exercises:      repo.Exercises,
		History:        repo.History,
		HistoryService: services.NewHistoryService(repo.History),
		Routines:       repo.Routines,
		Settings:       settings,
		Workouts:       repo.Workouts,
		WorkoutService: workoutService,
		repo:           repo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
