package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ironlog/internal/domain"
	"ironlog/internal/ports"
)

// startTestWorkout creates a routine and starts a session from it
func startTestWorkout(t *testing.T, repo *SQLiteRepository) *domain.Workout {
	t.Helper()

	routineID := createTestRoutine(t, repo, "Session Base")
	workout, err := repo.Workouts.Start(context.Background(), routineID)
	require.NoError(t, err)
	return workout
}

func TestWorkoutStart_SnapshotsRoutine(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	workout := startTestWorkout(t, repo)

	assert.Equal(t, domain.WorkoutActive, workout.Status)
	assert.Equal(t, "Session Base", workout.Name)
	require.Len(t, workout.Exercises, 2)
	assert.NotNil(t, workout.Exercises[0].RoutineExerciseID)

	// Target sets are not copied into the session
	loaded, err := repo.Workouts.GetWithExercises(ctx, workout.ID)
	require.NoError(t, err)
	for _, ex := range loaded.Exercises {
		assert.Empty(t, ex.Sets)
	}
}

func TestWorkoutStart_UnknownRoutine(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Workouts.Start(context.Background(), "no-such-routine")
	assert.ErrorIs(t, err, domain.ErrRoutineNotFound)
}

func TestWorkoutSnapshotIsolation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	workout := startTestWorkout(t, repo)

	// Mutate the originating routine after the session started
	require.NoError(t, repo.Routines.Rename(ctx, workout.RoutineID, "Renamed Later"))
	exercise := firstExercise(t, repo)
	require.NoError(t, repo.Routines.Update(ctx, workout.RoutineID, []ports.NewRoutineExercise{
		{ExerciseID: exercise.ID, Sets: []ports.NewRoutineSet{{TargetReps: 1}}},
	}))

	loaded, err := repo.Workouts.GetWithExercises(ctx, workout.ID)
	require.NoError(t, err)
	assert.Equal(t, "Session Base", loaded.Name, "session name is a snapshot")
	assert.Len(t, loaded.Exercises, 2, "session exercise list is a snapshot")
}

func TestWorkoutSurvivesRoutineDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	workout := startTestWorkout(t, repo)
	require.NoError(t, repo.Routines.Delete(ctx, workout.RoutineID))

	loaded, err := repo.Workouts.GetWithExercises(ctx, workout.ID)
	require.NoError(t, err)
	assert.Equal(t, "Session Base", loaded.Name)
	assert.Len(t, loaded.Exercises, 2)
}

func TestLogSet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	workout := startTestWorkout(t, repo)
	exerciseID := workout.Exercises[0].ID

	rpe := 8
	set, err := repo.Workouts.LogSet(ctx, ports.LogSetParams{
		Reps:              5,
		RPE:               &rpe,
		SetNumber:         1,
		Weight:            100,
		WorkoutExerciseID: exerciseID,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SetTypeNormal, set.Type, "empty type defaults to normal")
	assert.False(t, set.CompletedAt.IsZero())
	assert.Equal(t, 500.0, set.Volume())

	// Duplicate set numbers are repeat attempts, not conflicts
	_, err = repo.Workouts.LogSet(ctx, ports.LogSetParams{
		Reps:              3,
		SetNumber:         1,
		Weight:            100,
		WorkoutExerciseID: exerciseID,
	})
	assert.NoError(t, err)

	loaded, err := repo.Workouts.GetWithExercises(ctx, workout.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Exercises[0].Sets, 2)
}

func TestLogSet_Validation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	workout := startTestWorkout(t, repo)

	_, err := repo.Workouts.LogSet(ctx, ports.LogSetParams{
		Reps:              5,
		SetNumber:         1,
		Type:              domain.SetType("giant"),
		Weight:            50,
		WorkoutExerciseID: workout.Exercises[0].ID,
	})
	assert.True(t, domain.IsInvariant(err))

	_, err = repo.Workouts.LogSet(ctx, ports.LogSetParams{
		Reps:              5,
		SetNumber:         1,
		Weight:            50,
		WorkoutExerciseID: "no-such-instance",
	})
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)
}

func TestCompleteWithPhotos(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	workout := startTestWorkout(t, repo)

	err := repo.Workouts.CompleteWithPhotos(ctx, workout.ID, "felt strong", []string{"/p/one.jpg", "/p/two.jpg"})
	require.NoError(t, err)

	loaded, err := repo.Workouts.Get(ctx, workout.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.WorkoutCompleted, loaded.Status)
	assert.NotNil(t, loaded.CompletedAt)
	assert.Equal(t, "felt strong", loaded.Notes)

	photos, err := repo.History.Photos(ctx, workout.ID)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, "/p/one.jpg", photos[0].Path)
	assert.Equal(t, 0, photos[0].SortOrder)
	assert.Equal(t, 1, photos[1].SortOrder)
}

func TestReactivate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	workout := startTestWorkout(t, repo)
	require.NoError(t, repo.Workouts.Complete(ctx, workout.ID, ""))
	require.NoError(t, repo.Workouts.Reactivate(ctx, workout.ID))

	loaded, err := repo.Workouts.Get(ctx, workout.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.WorkoutActive, loaded.Status)
	assert.Nil(t, loaded.CompletedAt)
}

func TestAbandonKeepsRow(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	workout := startTestWorkout(t, repo)
	require.NoError(t, repo.Workouts.Abandon(ctx, workout.ID))

	loaded, err := repo.Workouts.Get(ctx, workout.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.WorkoutAbandoned, loaded.Status)
}

func TestWorkoutDelete_Cascades(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	workout := startTestWorkout(t, repo)
	_, err := repo.Workouts.LogSet(ctx, ports.LogSetParams{
		Reps: 5, SetNumber: 1, Weight: 80,
		WorkoutExerciseID: workout.Exercises[0].ID,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Workouts.CompleteWithPhotos(ctx, workout.ID, "", []string{"/p/a.jpg"}))

	require.NoError(t, repo.Workouts.Delete(ctx, workout.ID))

	var exercises, sets, photos int64
	require.NoError(t, repo.db.Model(&WorkoutExerciseModel{}).Count(&exercises).Error)
	require.NoError(t, repo.db.Model(&WorkoutSetModel{}).Count(&sets).Error)
	require.NoError(t, repo.db.Model(&WorkoutPhotoModel{}).Count(&photos).Error)
	assert.Zero(t, exercises)
	assert.Zero(t, sets)
	assert.Zero(t, photos)
}

func TestUpdateExerciseNotes(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	workout := startTestWorkout(t, repo)
	require.NoError(t, repo.Workouts.UpdateExerciseNotes(ctx, workout.Exercises[0].ID, "elbow tweaked"))

	loaded, err := repo.Workouts.GetWithExercises(ctx, workout.ID)
	require.NoError(t, err)
	assert.Equal(t, "elbow tweaked", loaded.Exercises[0].Notes)

	assert.ErrorIs(t, repo.Workouts.UpdateExerciseNotes(ctx, "nope", "x"), domain.ErrWorkoutNotFound)
}
