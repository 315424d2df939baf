package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"ironlog/internal/domain"
)

// HistoryCmd reviews past workouts and the calendar
type HistoryCmd struct {
	Calendar HistoryCalendarCmd `cmd:"calendar" help:"Show the calendar overview" default:"1"`
	Day      HistoryDayCmd      `cmd:"day" help:"Show workouts for one date"`
	Summary  HistorySummaryCmd  `cmd:"summary" help:"Show the derived statistics of one workout"`
	Photos   HistoryPhotosCmd   `cmd:"photos" help:"List a workout's progress photos"`
}

// HistoryCalendarCmd shows the calendar overview
type HistoryCalendarCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the calendar command
func (h *HistoryCalendarCmd) Run(cli *CLI) error {
	overview, err := cli.Container.HistoryService.Overview(context.Background(), time.Now())
	if err != nil {
		return fmt.Errorf("failed to load calendar overview: %w", err)
	}

	if h.Format == "json" {
		data, err := json.MarshalIndent(overview, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Workout days: %d\n", len(overview.WorkoutDates))
	for _, date := range overview.WorkoutDates {
		fmt.Printf("  %s\n", date)
	}

	fmt.Printf("\nScheduled days: %d\n", len(overview.ScheduledDates))
	for _, date := range overview.ScheduledDates {
		fmt.Printf("  %s\n", date)
	}

	if len(overview.TodayWorkouts) > 0 {
		fmt.Println("\nToday:")
		for _, workout := range overview.TodayWorkouts {
			fmt.Printf("  %s (%s)\n", workout.Name, workout.ID)
		}
	}
	if len(overview.TodayScheduled) > 0 {
		fmt.Println("\nScheduled today:")
		for _, scheduled := range overview.TodayScheduled {
			fmt.Printf("  %s (%s)\n", scheduled.RoutineName, scheduled.ID)
		}
	}
	return nil
}

// HistoryDayCmd shows workouts for one date
type HistoryDayCmd struct {
	Date   string `arg:"" help:"Calendar date (YYYY-MM-DD)"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the day command
func (h *HistoryDayCmd) Run(cli *CLI) error {
	day, err := time.ParseInLocation(domain.DateLayout, h.Date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", h.Date)
	}

	workouts, err := cli.Container.History.WorkoutsForDate(context.Background(), day)
	if err != nil {
		return fmt.Errorf("failed to load workouts: %w", err)
	}

	if h.Format == "json" {
		data, err := json.MarshalIndent(workouts, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTARTED\tCOMPLETED")
	for _, workout := range workouts {
		completed := ""
		if workout.CompletedAt != nil {
			completed = workout.CompletedAt.Local().Format("15:04:05")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			workout.ID,
			workout.Name,
			workout.StartedAt.Local().Format("15:04:05"),
			completed)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d workouts\n", len(workouts))
	return nil
}

// HistorySummaryCmd shows one session's derived statistics
type HistorySummaryCmd struct {
	ID     string `arg:"" help:"Workout id"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the summary command
func (h *HistorySummaryCmd) Run(cli *CLI) error {
	summary, err := cli.Container.HistoryService.Summary(context.Background(), h.ID)
	if err != nil {
		return fmt.Errorf("failed to load summary: %w", err)
	}

	if h.Format == "json" {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Workout %s\n", summary.WorkoutID)
	fmt.Printf("Duration: %ds\n", summary.DurationSeconds)
	fmt.Printf("Exercises: %d\n", summary.ExerciseCount)
	fmt.Printf("Sets: %d\n", summary.TotalSets)
	fmt.Printf("Volume: %.1f\n", summary.TotalVolume)
	return nil
}

// HistoryPhotosCmd lists a session's photos
type HistoryPhotosCmd struct {
	ID string `arg:"" help:"Workout id"`
}

// Run executes the photos command
func (h *HistoryPhotosCmd) Run(cli *CLI) error {
	photos, err := cli.Container.History.Photos(context.Background(), h.ID)
	if err != nil {
		return fmt.Errorf("failed to load photos: %w", err)
	}

	if len(photos) == 0 {
		fmt.Println("No photos attached.")
		return nil
	}

	for _, photo := range photos {
		fmt.Printf("%d. %s\n", photo.SortOrder+1, photo.Path)
	}
	return nil
}
