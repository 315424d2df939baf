package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ironlog/internal/domain"
	"ironlog/internal/ports"
)

// newTestRepo creates a seeded repository backed by a throwaway database
func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	require.NoError(t, repo.Exercises.Seed(context.Background()))
	return repo
}

// firstExercise returns one seeded catalog exercise
func firstExercise(t *testing.T, repo *SQLiteRepository) domain.Exercise {
	t.Helper()

	exercises, err := repo.Exercises.All(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, exercises)
	return exercises[0]
}

// createTestRoutine builds a routine with two exercises, each with target sets
func createTestRoutine(t *testing.T, repo *SQLiteRepository, name string) string {
	t.Helper()
	ctx := context.Background()

	exercises, err := repo.Exercises.All(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(exercises), 2)

	weight := 60.0
	id, err := repo.Routines.Create(ctx, name, []ports.NewRoutineExercise{
		{
			ExerciseID:  exercises[0].ID,
			RestSeconds: 90,
			Sets: []ports.NewRoutineSet{
				{TargetReps: 5, TargetWeight: &weight},
				{TargetReps: 5, TargetWeight: &weight},
			},
		},
		{
			ExerciseID:  exercises[1].ID,
			RestSeconds: 60,
			Sets: []ports.NewRoutineSet{
				{TargetReps: 10, Type: domain.SetTypeWarmup},
			},
		},
	})
	require.NoError(t, err)
	return id
}

func TestForeignKeysOnEveryPooledConnection(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	sqlDB, err := repo.db.DB()
	require.NoError(t, err)

	// Holding the first connection forces the second checkout onto a
	// different pooled connection
	conn1, err := sqlDB.Conn(ctx)
	require.NoError(t, err)
	defer conn1.Close()
	conn2, err := sqlDB.Conn(ctx)
	require.NoError(t, err)
	defer conn2.Close()

	for i, conn := range []*sql.Conn{conn1, conn2} {
		var fk int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
		assert.Equal(t, 1, fk, "connection %d", i+1)
	}
}

func TestRoutineCascadeOnSecondConnection(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	routineID := createTestRoutine(t, repo, "Pull Day")

	sqlDB, err := repo.db.DB()
	require.NoError(t, err)

	held, err := sqlDB.Conn(ctx)
	require.NoError(t, err)
	defer held.Close()
	conn, err := sqlDB.Conn(ctx)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.ExecContext(ctx, "DELETE FROM routines WHERE id = ?", routineID)
	require.NoError(t, err)

	var orphans int
	require.NoError(t, conn.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM routine_exercises WHERE routine_id = ?", routineID).Scan(&orphans))
	assert.Zero(t, orphans, "cascade must fire on every connection")
}

func TestSeedIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.Exercises.All(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// Second seed must not duplicate anything
	require.NoError(t, repo.Exercises.Seed(ctx))

	second, err := repo.Exercises.All(ctx)
	require.NoError(t, err)
	assert.Len(t, second, len(first))
}

func TestSeedOrdering(t *testing.T) {
	repo := newTestRepo(t)

	exercises, err := repo.Exercises.All(context.Background())
	require.NoError(t, err)

	for i := 1; i < len(exercises); i++ {
		prev, cur := exercises[i-1], exercises[i]
		if prev.Category == cur.Category {
			assert.LessOrEqual(t, prev.Name, cur.Name)
		} else {
			assert.Less(t, string(prev.Category), string(cur.Category))
		}
	}
}

func TestCreateCustomExercise(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	exercise, err := repo.Exercises.CreateCustom(ctx, "Landmine Press", domain.CategoryShoulders, domain.EquipmentBarbell)
	require.NoError(t, err)
	assert.True(t, exercise.IsCustom)
	assert.NotEmpty(t, exercise.ID)

	loaded, err := repo.Exercises.Get(ctx, exercise.ID)
	require.NoError(t, err)
	assert.Equal(t, "Landmine Press", loaded.Name)
	assert.Equal(t, domain.CategoryShoulders, loaded.Category)
}

func TestCreateCustomExercise_Validation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		exName    string
		category  domain.Category
		equipment domain.Equipment
	}{
		{"empty name", "", domain.CategoryChest, domain.EquipmentBarbell},
		{"bad category", "X", domain.Category("arms"), domain.EquipmentBarbell},
		{"bad equipment", "X", domain.CategoryChest, domain.Equipment("bands")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Exercises.CreateCustom(ctx, tt.exName, tt.category, tt.equipment)
			assert.True(t, domain.IsInvariant(err))
		})
	}
}

func TestDeleteCustom_RejectsBuiltin(t *testing.T) {
	repo := newTestRepo(t)

	builtin := firstExercise(t, repo)
	err := repo.Exercises.DeleteCustom(context.Background(), builtin.ID)
	assert.True(t, domain.IsInvariant(err))
}

func TestDeleteCustom_RejectsInUse(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	exercise, err := repo.Exercises.CreateCustom(ctx, "Zercher Squat", domain.CategoryLegs, domain.EquipmentBarbell)
	require.NoError(t, err)

	_, err = repo.Routines.Create(ctx, "Leg Day", []ports.NewRoutineExercise{
		{ExerciseID: exercise.ID, Sets: []ports.NewRoutineSet{{TargetReps: 5}}},
	})
	require.NoError(t, err)

	err = repo.Exercises.DeleteCustom(ctx, exercise.ID)
	assert.True(t, domain.IsInvariant(err))

	// Still present
	_, err = repo.Exercises.Get(ctx, exercise.ID)
	assert.NoError(t, err)
}

func TestDeleteCustom_Succeeds(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	exercise, err := repo.Exercises.CreateCustom(ctx, "Band Pull-Apart", domain.CategoryShoulders, domain.EquipmentOther)
	require.NoError(t, err)

	require.NoError(t, repo.Exercises.DeleteCustom(ctx, exercise.ID))

	_, err = repo.Exercises.Get(ctx, exercise.ID)
	assert.ErrorIs(t, err, domain.ErrExerciseNotFound)
}

func TestByCategory_InvalidCategory(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Exercises.ByCategory(context.Background(), domain.Category("cardio2"))
	assert.True(t, domain.IsInvariant(err))
}
