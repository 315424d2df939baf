package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ironlog/internal/domain"
	"ironlog/internal/ports"
)

// logSets appends sets to the given workout exercise instance
func logSets(t *testing.T, repo *SQLiteRepository, workoutExerciseID string, sets ...[2]float64) {
	t.Helper()

	for i, s := range sets {
		_, err := repo.Workouts.LogSet(context.Background(), ports.LogSetParams{
			Reps:              int(s[1]),
			SetNumber:         i + 1,
			Weight:            s[0],
			WorkoutExerciseID: workoutExerciseID,
		})
		require.NoError(t, err)
	}
}

func TestSummary(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	workout := startTestWorkout(t, repo)

	// 20x4 + 10x3 = 110
	logSets(t, repo, workout.Exercises[0].ID, [2]float64{20, 4}, [2]float64{10, 3})

	summary, err := repo.History.Summary(ctx, workout.ID)
	require.NoError(t, err)
	assert.Equal(t, 110.0, summary.TotalVolume)
	assert.Equal(t, 2, summary.TotalSets)
	assert.Equal(t, 1, summary.ExerciseCount, "both sets belong to one exercise")
	assert.Zero(t, summary.DurationSeconds, "duration is zero while incomplete")

	require.NoError(t, repo.Workouts.Complete(ctx, workout.ID, ""))

	summary, err = repo.History.Summary(ctx, workout.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, summary.DurationSeconds, int64(0))
}

func TestSummary_ZeroSets(t *testing.T) {
	repo := newTestRepo(t)

	workout := startTestWorkout(t, repo)

	summary, err := repo.History.Summary(context.Background(), workout.ID)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalSets)
	assert.Zero(t, summary.TotalVolume)
	assert.Zero(t, summary.ExerciseCount)
}

func TestSummary_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.History.Summary(context.Background(), "no-such-workout")
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)
}

func TestWorkoutDates_CompletedOnlyDistinct(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	routineID := createTestRoutine(t, repo, "Daily")

	// Two completed sessions today plus one abandoned one
	for i := 0; i < 2; i++ {
		workout, err := repo.Workouts.Start(ctx, routineID)
		require.NoError(t, err)
		require.NoError(t, repo.Workouts.Complete(ctx, workout.ID, ""))
	}
	abandoned, err := repo.Workouts.Start(ctx, routineID)
	require.NoError(t, err)
	require.NoError(t, repo.Workouts.Abandon(ctx, abandoned.ID))

	dates, err := repo.History.WorkoutDates(ctx)
	require.NoError(t, err)
	require.Len(t, dates, 1, "same-day sessions collapse to one date")
	assert.Equal(t, time.Now().Local().Format(domain.DateLayout), dates[0])
}

func TestWorkoutsForDate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	workout := startTestWorkout(t, repo)
	require.NoError(t, repo.Workouts.Complete(ctx, workout.ID, ""))

	today, err := repo.History.WorkoutsForDate(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, workout.ID, today[0].ID)

	yesterday, err := repo.History.WorkoutsForDate(ctx, time.Now().AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Empty(t, yesterday)
}

func TestLastSetsForExercise(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	routineID := createTestRoutine(t, repo, "Progress")

	// First completed session
	first, err := repo.Workouts.Start(ctx, routineID)
	require.NoError(t, err)
	logSets(t, repo, first.Exercises[0].ID, [2]float64{100, 5}, [2]float64{102.5, 5})
	require.NoError(t, repo.Workouts.Complete(ctx, first.ID, ""))

	catalogID := first.Exercises[0].ExerciseID

	// Second, still-active session logs too; it must be excluded
	current, err := repo.Workouts.Start(ctx, routineID)
	require.NoError(t, err)
	logSets(t, repo, current.Exercises[0].ID, [2]float64{105, 5})

	sets, err := repo.History.LastSetsForExercise(ctx, catalogID, current.ID, 10)
	require.NoError(t, err)
	require.Len(t, sets, 2, "only completed sessions count")
	assert.Equal(t, 100.0, sets[0].Weight)
	assert.Equal(t, 102.5, sets[1].Weight)
}

func TestLastSetsForExercise_ActiveSessionNeverCounts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	workout := startTestWorkout(t, repo)
	logSets(t, repo, workout.Exercises[0].ID, [2]float64{60, 8})

	sets, err := repo.History.LastSetsForExercise(ctx, workout.Exercises[0].ExerciseID, "", 10)
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestLastSetsForExercise_Limit(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	routineID := createTestRoutine(t, repo, "Volume Block")
	workout, err := repo.Workouts.Start(ctx, routineID)
	require.NoError(t, err)
	for i := 1; i <= 12; i++ {
		_, err := repo.Workouts.LogSet(ctx, ports.LogSetParams{
			Reps: 5, SetNumber: i, Weight: 50,
			WorkoutExerciseID: workout.Exercises[0].ID,
		})
		require.NoError(t, err)
	}
	require.NoError(t, repo.Workouts.Complete(ctx, workout.ID, ""))

	sets, err := repo.History.LastSetsForExercise(ctx, workout.Exercises[0].ExerciseID, "", 10)
	require.NoError(t, err)
	assert.Len(t, sets, 10)
}

func TestScheduleRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	routineID := createTestRoutine(t, repo, "Planned")

	scheduled, err := repo.History.Schedule(ctx, routineID, "2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, "Planned", scheduled.RoutineName)
	assert.Equal(t, "2026-09-15", scheduled.Date)

	loaded, err := repo.History.GetScheduled(ctx, scheduled.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduled.ID, loaded.ID)

	forDate, err := repo.History.ScheduledForDate(ctx, "2026-09-15")
	require.NoError(t, err)
	require.Len(t, forDate, 1)

	dates, err := repo.History.ScheduledDates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-15"}, dates)

	require.NoError(t, repo.History.DeleteScheduled(ctx, scheduled.ID))
	assert.ErrorIs(t, repo.History.DeleteScheduled(ctx, scheduled.ID), domain.ErrScheduleNotFound)
}

func TestSchedule_Validation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	routineID := createTestRoutine(t, repo, "Planned")

	_, err := repo.History.Schedule(ctx, routineID, "15/09/2026")
	assert.True(t, domain.IsInvariant(err))

	_, err = repo.History.Schedule(ctx, "no-such-routine", "2026-09-15")
	assert.ErrorIs(t, err, domain.ErrRoutineNotFound)
}

func TestSchedule_CascadesOnRoutineDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	routineID := createTestRoutine(t, repo, "Doomed")
	scheduled, err := repo.History.Schedule(ctx, routineID, "2026-10-01")
	require.NoError(t, err)

	require.NoError(t, repo.Routines.Delete(ctx, routineID))

	_, err = repo.History.GetScheduled(ctx, scheduled.ID)
	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
}
