package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"ironlog/internal/domain"
)

// ScheduleCmd plans future workouts
type ScheduleCmd struct {
	List ScheduleListCmd `cmd:"list" help:"List scheduled workouts" default:"1"`
	Add  ScheduleAddCmd  `cmd:"add" help:"Schedule a routine for a date"`
	Del  ScheduleDelCmd  `cmd:"del" help:"Remove a scheduled workout"`
}

// ScheduleListCmd lists scheduled workouts
type ScheduleListCmd struct {
	Date   string `help:"Only entries for this date (YYYY-MM-DD)"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *ScheduleListCmd) Run(cli *CLI) error {
	ctx := context.Background()

	var scheduled []domain.ScheduledWorkout
	var err error
	if s.Date != "" {
		scheduled, err = cli.Container.History.ScheduledForDate(ctx, s.Date)
	} else {
		scheduled, err = cli.Container.History.ListScheduled(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list scheduled workouts: %w", err)
	}

	if s.Format == "json" {
		data, err := json.MarshalIndent(scheduled, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tROUTINE")
	for _, entry := range scheduled {
		fmt.Fprintf(w, "%s\t%s\t%s\n", entry.ID, entry.Date, entry.RoutineName)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d scheduled\n", len(scheduled))
	return nil
}

// ScheduleAddCmd schedules a routine
type ScheduleAddCmd struct {
	RoutineID string `arg:"" help:"Routine id"`
	Date      string `arg:"" help:"Calendar date (YYYY-MM-DD)"`
}

// Run executes the add command
func (s *ScheduleAddCmd) Run(cli *CLI) error {
	scheduled, err := cli.Container.History.Schedule(context.Background(), s.RoutineID, s.Date)
	if err != nil {
		return fmt.Errorf("failed to schedule workout: %w", err)
	}

	fmt.Printf("Scheduled '%s' for %s (%s)\n", scheduled.RoutineName, scheduled.Date, scheduled.ID)
	return nil
}

// ScheduleDelCmd removes a scheduled workout
type ScheduleDelCmd struct {
	ID string `arg:"" help:"Scheduled workout id"`
}

// Run executes the del command
func (s *ScheduleDelCmd) Run(cli *CLI) error {
	if err := cli.Container.History.DeleteScheduled(context.Background(), s.ID); err != nil {
		return fmt.Errorf("failed to delete scheduled workout: %w", err)
	}

	fmt.Printf("Deleted scheduled workout %s\n", s.ID)
	return nil
}
