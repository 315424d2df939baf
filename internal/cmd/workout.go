package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"ironlog/internal/domain"
	"ironlog/internal/ports"
)

// WorkoutCmd runs a workout session
type WorkoutCmd struct {
	Start    WorkoutStartCmd    `cmd:"start" help:"Start a workout from a routine"`
	Log      WorkoutLogCmd      `cmd:"log" help:"Log a set in the active workout"`
	Status   WorkoutStatusCmd   `cmd:"status" help:"Show the active workout" default:"1"`
	Notes    WorkoutNotesCmd    `cmd:"notes" help:"Edit per-exercise notes in the active workout"`
	Complete WorkoutCompleteCmd `cmd:"complete" help:"Finish the active workout"`
	Resume   WorkoutResumeCmd   `cmd:"resume" help:"Reopen a just-completed workout"`
	Abandon  WorkoutAbandonCmd  `cmd:"abandon" help:"Abandon the active workout"`
	View     WorkoutViewCmd     `cmd:"view" help:"View a logged workout"`
	Last     WorkoutLastCmd     `cmd:"last" help:"Show recent sets for an exercise"`
}

// weightUnit resolves the display unit for weights. Display only; stored
// values are unit-agnostic.
func weightUnit(cli *CLI) string {
	if cli.Container.Settings != nil && cli.Container.Settings.WeightUnit != "" {
		return cli.Container.Settings.WeightUnit
	}
	return "kg"
}

// WorkoutStartCmd starts a session
type WorkoutStartCmd struct {
	RoutineID string `arg:"" optional:"" help:"Routine id to start from"`
	Scheduled string `help:"Scheduled workout id to start (consumes the entry)" xor:"source"`
}

// Run executes the start command
func (w *WorkoutStartCmd) Run(cli *CLI) error {
	ctx := context.Background()

	var workout *domain.Workout
	var err error
	switch {
	case w.Scheduled != "":
		workout, err = cli.Container.WorkoutService.StartScheduled(ctx, w.Scheduled)
	case w.RoutineID != "":
		workout, err = cli.Container.WorkoutService.Start(ctx, w.RoutineID)
	default:
		return fmt.Errorf("a routine id or --scheduled is required")
	}
	if err != nil {
		if errors.Is(err, domain.ErrWorkoutInProgress) {
			return fmt.Errorf("a workout is already in progress; complete or abandon it first")
		}
		return fmt.Errorf("failed to start workout: %w", err)
	}

	fmt.Printf("Started workout '%s' (%s) with %d exercises\n",
		workout.Name, workout.ID, len(workout.Exercises))
	return nil
}

// WorkoutLogCmd logs one set
type WorkoutLogCmd struct {
	Exercise  int     `arg:"" help:"Exercise position in the workout (1-based)"`
	Weight    float64 `arg:"" help:"Weight used"`
	Reps      int     `arg:"" help:"Reps performed"`
	RPE       int     `help:"Perceived exertion 1-10" default:"0"`
	SetNumber int     `help:"Set number (defaults to next)" default:"0"`
	Type      string  `help:"Set type" default:"normal" enum:"normal,warmup,dropset,failure"`
}

// Run executes the log command
func (w *WorkoutLogCmd) Run(cli *CLI) error {
	ctx := context.Background()
	svc := cli.Container.WorkoutService

	workoutID := svc.Machine().ActiveWorkoutID()
	if workoutID == "" {
		return fmt.Errorf("no workout in progress")
	}

	workout, err := cli.Container.Workouts.GetWithExercises(ctx, workoutID)
	if err != nil {
		return fmt.Errorf("failed to load active workout: %w", err)
	}
	if w.Exercise < 1 || w.Exercise > len(workout.Exercises) {
		return fmt.Errorf("exercise position %d out of range (workout has %d)", w.Exercise, len(workout.Exercises))
	}
	exercise := workout.Exercises[w.Exercise-1]

	setNumber := w.SetNumber
	if setNumber == 0 {
		setNumber = len(exercise.Sets) + 1
	}

	var rpe *int
	if w.RPE > 0 {
		rpe = &w.RPE
	}

	set, err := svc.LogSet(ctx, exercise.ExerciseID, ports.LogSetParams{
		Reps:              w.Reps,
		RPE:               rpe,
		SetNumber:         setNumber,
		Type:              domain.SetType(w.Type),
		Weight:            w.Weight,
		WorkoutExerciseID: exercise.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to log set: %w", err)
	}

	fmt.Printf("Logged set %d: %.1f%s x %d (volume %.1f)\n",
		set.SetNumber, set.Weight, weightUnit(cli), set.Reps, set.Volume())
	return nil
}

// WorkoutStatusCmd shows the active session
type WorkoutStatusCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the status command
func (w *WorkoutStatusCmd) Run(cli *CLI) error {
	svc := cli.Container.WorkoutService
	machine := svc.Machine()

	if machine.ActiveWorkoutID() == "" {
		fmt.Println("No workout in progress.")
		return nil
	}

	// A stale resume window retires the session on this poll
	if machine.Snapshot().IsInResumeWindow && !svc.CheckResumeWindow(context.Background()) {
		fmt.Println("No workout in progress.")
		return nil
	}

	state := machine.Snapshot()
	if w.Format == "json" {
		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Workout: %s (%s)\n", state.WorkoutName, state.ActiveWorkoutID)
	fmt.Printf("Started: %s\n", state.StartedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Elapsed: %ds\n", machine.ElapsedSeconds())
	if state.IsInResumeWindow {
		fmt.Println("State: completed, resumable")
	} else {
		fmt.Printf("State: in progress (exercise %d, set %d)\n",
			state.CurrentExerciseIndex+1, state.CurrentSetNumber)
	}
	return nil
}

// WorkoutNotesCmd edits per-exercise session notes
type WorkoutNotesCmd struct {
	Exercise int    `arg:"" help:"Exercise position in the workout (1-based)"`
	Notes    string `arg:"" help:"New notes text"`
}

// Run executes the notes command
func (w *WorkoutNotesCmd) Run(cli *CLI) error {
	ctx := context.Background()
	svc := cli.Container.WorkoutService

	workoutID := svc.Machine().ActiveWorkoutID()
	if workoutID == "" {
		return fmt.Errorf("no workout in progress")
	}

	workout, err := cli.Container.Workouts.GetWithExercises(ctx, workoutID)
	if err != nil {
		return fmt.Errorf("failed to load active workout: %w", err)
	}
	if w.Exercise < 1 || w.Exercise > len(workout.Exercises) {
		return fmt.Errorf("exercise position %d out of range (workout has %d)", w.Exercise, len(workout.Exercises))
	}

	exercise := workout.Exercises[w.Exercise-1]
	if err := svc.UpdateExerciseNotes(ctx, exercise.ID, w.Notes); err != nil {
		return fmt.Errorf("failed to update notes: %w", err)
	}

	fmt.Printf("Updated notes for exercise %d\n", w.Exercise)
	return nil
}

// WorkoutCompleteCmd finishes the session
type WorkoutCompleteCmd struct {
	Notes  string   `help:"Session notes"`
	Photos []string `help:"Progress photo paths, attached in order" name:"photo"`
}

// Run executes the complete command
func (w *WorkoutCompleteCmd) Run(cli *CLI) error {
	if err := cli.Container.WorkoutService.Complete(context.Background(), w.Notes, w.Photos); err != nil {
		return fmt.Errorf("failed to complete workout: %w", err)
	}

	fmt.Println("Workout completed. It can be resumed for the next 10 minutes.")
	return nil
}

// WorkoutResumeCmd reopens a just-completed session
type WorkoutResumeCmd struct{}

// Run executes the resume command
func (w *WorkoutResumeCmd) Run(cli *CLI) error {
	resumed, err := cli.Container.WorkoutService.Resume(context.Background())
	if err != nil {
		return fmt.Errorf("failed to resume workout: %w", err)
	}
	if !resumed {
		fmt.Println("Nothing to resume: no workout completed within the last 10 minutes.")
		return nil
	}

	fmt.Println("Workout resumed.")
	return nil
}

// WorkoutAbandonCmd abandons the session
type WorkoutAbandonCmd struct {
	Delete bool `help:"Delete the session record entirely instead of keeping it marked abandoned"`
}

// Run executes the abandon command
func (w *WorkoutAbandonCmd) Run(cli *CLI) error {
	if err := cli.Container.WorkoutService.Abandon(context.Background(), w.Delete); err != nil {
		return fmt.Errorf("failed to abandon workout: %w", err)
	}

	fmt.Println("Workout abandoned.")
	return nil
}

// WorkoutViewCmd shows a logged session
type WorkoutViewCmd struct {
	ID     string `arg:"" help:"Workout id"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the view command
func (w *WorkoutViewCmd) Run(cli *CLI) error {
	ctx := context.Background()

	workout, err := cli.Container.Workouts.GetWithExercises(ctx, w.ID)
	if err != nil {
		return fmt.Errorf("failed to load workout: %w", err)
	}

	if w.Format == "json" {
		data, err := json.MarshalIndent(workout, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	summary, err := cli.Container.HistoryService.Summary(ctx, w.ID)
	if err != nil {
		return fmt.Errorf("failed to load summary: %w", err)
	}

	unit := weightUnit(cli)
	fmt.Printf("Workout: %s (%s)\n", workout.Name, workout.Status)
	fmt.Printf("Started: %s\n", workout.StartedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Duration: %ds  Sets: %d  Volume: %.1f  Exercises: %d\n\n",
		summary.DurationSeconds, summary.TotalSets, summary.TotalVolume, summary.ExerciseCount)

	for _, ex := range workout.Exercises {
		name := ex.ExerciseID
		if ex.Exercise != nil {
			name = ex.Exercise.Name
		}
		fmt.Printf("  %d. %s\n", ex.Position+1, name)
		for _, set := range ex.Sets {
			fmt.Printf("     set %d: %.1f%s x %d [%s]\n", set.SetNumber, set.Weight, unit, set.Reps, set.Type)
		}
	}

	if workout.Notes != "" {
		fmt.Printf("\nNotes: %s\n", workout.Notes)
	}
	return nil
}

// WorkoutLastCmd shows recent completed-session sets for one exercise
type WorkoutLastCmd struct {
	ExerciseID string `arg:"" help:"Catalog exercise id"`
}

// Run executes the last command
func (w *WorkoutLastCmd) Run(cli *CLI) error {
	excludeID := cli.Container.WorkoutService.Machine().ActiveWorkoutID()

	sets, err := cli.Container.HistoryService.LastSets(context.Background(), w.ExerciseID, excludeID)
	if err != nil {
		return fmt.Errorf("failed to load recent sets: %w", err)
	}

	if len(sets) == 0 {
		fmt.Println("No logged sets yet for this exercise.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tSET\tWEIGHT\tREPS\tVOLUME\tTYPE")
	for _, set := range sets {
		fmt.Fprintf(tw, "%s\t%d\t%.1f\t%d\t%.1f\t%s\n",
			set.CompletedAt.Local().Format("2006-01-02 15:04"),
			set.SetNumber,
			set.Weight,
			set.Reps,
			set.Volume(),
			set.Type)
	}
	tw.Flush()
	return nil
}
