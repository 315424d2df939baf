package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ironlog/internal/adapters/storage"
	"ironlog/internal/domain"
	"ironlog/internal/ports"
)

type historyFixture struct {
	repo      *storage.SQLiteRepository
	routineID string
	svc       *HistoryService
}

func newHistoryFixture(t *testing.T) *historyFixture {
	t.Helper()

	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	ctx := context.Background()
	require.NoError(t, repo.Exercises.Seed(ctx))

	exercises, err := repo.Exercises.All(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, exercises)

	routineID, err := repo.Routines.Create(ctx, "Full Body", []ports.NewRoutineExercise{
		{ExerciseID: exercises[0].ID, Sets: []ports.NewRoutineSet{{TargetReps: 5}}},
	})
	require.NoError(t, err)

	return &historyFixture{
		repo:      repo,
		routineID: routineID,
		svc:       NewHistoryService(repo.History),
	}
}

func TestHistoryServiceOverview(t *testing.T) {
	f := newHistoryFixture(t)
	ctx := context.Background()

	// One session completed today
	workout, err := f.repo.Workouts.Start(ctx, f.routineID)
	require.NoError(t, err)
	require.NoError(t, f.repo.Workouts.Complete(ctx, workout.ID, ""))

	// One entry scheduled for today and one for next week
	today := time.Now().Format(domain.DateLayout)
	nextWeek := time.Now().AddDate(0, 0, 7).Format(domain.DateLayout)
	_, err = f.repo.History.Schedule(ctx, f.routineID, today)
	require.NoError(t, err)
	_, err = f.repo.History.Schedule(ctx, f.routineID, nextWeek)
	require.NoError(t, err)

	overview, err := f.svc.Overview(ctx, time.Now())
	require.NoError(t, err)

	assert.Equal(t, []string{today}, overview.WorkoutDates)
	assert.ElementsMatch(t, []string{today, nextWeek}, overview.ScheduledDates)

	require.Len(t, overview.TodayWorkouts, 1)
	assert.Equal(t, workout.ID, overview.TodayWorkouts[0].ID)

	require.Len(t, overview.TodayScheduled, 1)
	assert.Equal(t, today, overview.TodayScheduled[0].Date)
}

func TestHistoryServiceOverview_EmptyDatabase(t *testing.T) {
	f := newHistoryFixture(t)

	overview, err := f.svc.Overview(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, overview.WorkoutDates)
	assert.Empty(t, overview.ScheduledDates)
	assert.Empty(t, overview.TodayWorkouts)
	assert.Empty(t, overview.TodayScheduled)
}

func TestHistoryServiceSummary(t *testing.T) {
	f := newHistoryFixture(t)
	ctx := context.Background()

	workout, err := f.repo.Workouts.Start(ctx, f.routineID)
	require.NoError(t, err)
	_, err = f.repo.Workouts.LogSet(ctx, ports.LogSetParams{
		Reps: 5, SetNumber: 1, Weight: 80,
		WorkoutExerciseID: workout.Exercises[0].ID,
	})
	require.NoError(t, err)
	require.NoError(t, f.repo.Workouts.Complete(ctx, workout.ID, ""))

	summary, err := f.svc.Summary(ctx, workout.ID)
	require.NoError(t, err)
	assert.Equal(t, 400.0, summary.TotalVolume)
	assert.Equal(t, 1, summary.TotalSets)
}

func TestHistoryServiceLastSets(t *testing.T) {
	f := newHistoryFixture(t)
	ctx := context.Background()

	previous, err := f.repo.Workouts.Start(ctx, f.routineID)
	require.NoError(t, err)
	_, err = f.repo.Workouts.LogSet(ctx, ports.LogSetParams{
		Reps: 5, SetNumber: 1, Weight: 100,
		WorkoutExerciseID: previous.Exercises[0].ID,
	})
	require.NoError(t, err)
	require.NoError(t, f.repo.Workouts.Complete(ctx, previous.ID, ""))

	current, err := f.repo.Workouts.Start(ctx, f.routineID)
	require.NoError(t, err)

	sets, err := f.svc.LastSets(ctx, previous.Exercises[0].ExerciseID, current.ID)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, 100.0, sets[0].Weight)
}
