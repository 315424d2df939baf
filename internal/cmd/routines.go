package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"ironlog/internal/domain"
	"ironlog/internal/logging"
	"ironlog/internal/ports"
)

// RoutinesCmd manages workout routines
type RoutinesCmd struct {
	List   RoutinesListCmd   `cmd:"list" help:"List routines" default:"1"`
	View   RoutinesViewCmd   `cmd:"view" help:"View a routine with its exercises and target sets"`
	Create RoutinesCreateCmd `cmd:"create" help:"Create a routine from a JSON plan file"`
	Edit   RoutinesEditCmd   `cmd:"edit" help:"Replace a routine's exercises from a JSON plan file"`
	Rename RoutinesRenameCmd `cmd:"rename" help:"Rename a routine"`
	Del    RoutinesDelCmd    `cmd:"del" help:"Delete a routine"`
}

// routinePlanExercise is the JSON plan file shape for one exercise entry
type routinePlanExercise struct {
	ExerciseID      string           `json:"exercise_id"`
	Notes           string           `json:"notes,omitempty"`
	RestSeconds     int              `json:"rest_seconds,omitempty"`
	Sets            []routinePlanSet `json:"sets"`
	SupersetGroupID *string          `json:"superset_group_id,omitempty"`
}

// routinePlanSet is the JSON plan file shape for one target set
type routinePlanSet struct {
	TargetReps   int      `json:"target_reps"`
	TargetWeight *float64 `json:"target_weight,omitempty"`
	Type         string   `json:"type,omitempty"`
}

// loadRoutinePlan reads a plan file into repository input. Entries without an
// explicit rest time fall back to defaultRest.
func loadRoutinePlan(path string, defaultRest int) ([]ports.NewRoutineExercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var plan []routinePlanExercise
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("invalid plan file: %w", err)
	}

	exercises := make([]ports.NewRoutineExercise, len(plan))
	for i, p := range plan {
		sets := make([]ports.NewRoutineSet, len(p.Sets))
		for j, s := range p.Sets {
			sets[j] = ports.NewRoutineSet{
				TargetReps:   s.TargetReps,
				TargetWeight: s.TargetWeight,
				Type:         domain.SetType(s.Type),
			}
		}
		rest := p.RestSeconds
		if rest == 0 {
			rest = defaultRest
		}
		exercises[i] = ports.NewRoutineExercise{
			ExerciseID:      p.ExerciseID,
			Notes:           p.Notes,
			RestSeconds:     rest,
			Sets:            sets,
			SupersetGroupID: p.SupersetGroupID,
		}
	}
	return exercises, nil
}

// defaultRestSeconds resolves the configured fallback rest time
func defaultRestSeconds(cli *CLI) int {
	if cli.Container.Settings != nil && cli.Container.Settings.DefaultRestSeconds != nil {
		return *cli.Container.Settings.DefaultRestSeconds
	}
	return 0
}

// RoutinesListCmd lists routines
type RoutinesListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (r *RoutinesListCmd) Run(cli *CLI) error {
	routines, err := cli.Container.Routines.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list routines: %w", err)
	}

	if r.Format == "json" {
		data, err := json.MarshalIndent(routines, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tUPDATED")
	for _, routine := range routines {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			routine.ID,
			routine.Name,
			routine.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d routines\n", len(routines))
	return nil
}

// RoutinesViewCmd shows one routine aggregate
type RoutinesViewCmd struct {
	ID     string `arg:"" help:"Routine id"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the view command
func (r *RoutinesViewCmd) Run(cli *CLI) error {
	routine, err := cli.Container.Routines.GetWithExercises(context.Background(), r.ID)
	if err != nil {
		return fmt.Errorf("failed to load routine: %w", err)
	}
	if routine == nil {
		return fmt.Errorf("routine not found: %s", r.ID)
	}

	if r.Format == "json" {
		data, err := json.MarshalIndent(routine, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Routine: %s\n", routine.Name)
	fmt.Printf("ID: %s\n\n", routine.ID)

	for _, group := range domain.GroupSupersets(routine.Exercises) {
		if len(group) > 1 {
			fmt.Println("Superset:")
		}
		for _, ex := range group {
			name := ex.ExerciseID
			if ex.Exercise != nil {
				name = ex.Exercise.Name
			}
			fmt.Printf("  %d. %s (rest %ds)\n", ex.Position+1, name, ex.RestSeconds)
			for _, set := range ex.Sets {
				target := fmt.Sprintf("%d reps", set.TargetReps)
				if set.TargetWeight != nil {
					target = fmt.Sprintf("%.1f x %d", *set.TargetWeight, set.TargetReps)
				}
				fmt.Printf("     set %d: %s [%s]\n", set.SetNumber, target, set.Type)
			}
		}
	}

	return nil
}

// RoutinesCreateCmd creates a routine
type RoutinesCreateCmd struct {
	Name string `arg:"" help:"Routine name"`
	File string `help:"JSON plan file with exercises and target sets" short:"f" required:""`
}

// Run executes the create command
func (r *RoutinesCreateCmd) Run(cli *CLI) error {
	exercises, err := loadRoutinePlan(r.File, defaultRestSeconds(cli))
	if err != nil {
		return err
	}

	id, err := cli.Container.Routines.Create(context.Background(), r.Name, exercises)
	if err != nil {
		return fmt.Errorf("failed to create routine: %w", err)
	}

	logging.Logger.Info("routine created", "routine_id", id, "name", r.Name)
	fmt.Printf("Created routine '%s' (%s)\n", r.Name, id)
	return nil
}

// RoutinesEditCmd replaces a routine's child aggregate
type RoutinesEditCmd struct {
	ID   string `arg:"" help:"Routine id"`
	File string `help:"JSON plan file with exercises and target sets" short:"f" required:""`
}

// Run executes the edit command
func (r *RoutinesEditCmd) Run(cli *CLI) error {
	exercises, err := loadRoutinePlan(r.File, defaultRestSeconds(cli))
	if err != nil {
		return err
	}

	if err := cli.Container.Routines.Update(context.Background(), r.ID, exercises); err != nil {
		return fmt.Errorf("failed to update routine: %w", err)
	}

	fmt.Printf("Updated routine %s\n", r.ID)
	return nil
}

// RoutinesRenameCmd renames a routine
type RoutinesRenameCmd struct {
	ID   string `arg:"" help:"Routine id"`
	Name string `arg:"" help:"New name"`
}

// Run executes the rename command
func (r *RoutinesRenameCmd) Run(cli *CLI) error {
	if err := cli.Container.Routines.Rename(context.Background(), r.ID, r.Name); err != nil {
		return fmt.Errorf("failed to rename routine: %w", err)
	}

	fmt.Printf("Renamed routine %s to '%s'\n", r.ID, r.Name)
	return nil
}

// RoutinesDelCmd deletes a routine
type RoutinesDelCmd struct {
	ID string `arg:"" help:"Routine id"`
}

// Run executes the del command
func (r *RoutinesDelCmd) Run(cli *CLI) error {
	if err := cli.Container.Routines.Delete(context.Background(), r.ID); err != nil {
		return fmt.Errorf("failed to delete routine: %w", err)
	}

	fmt.Printf("Deleted routine %s\n", r.ID)
	return nil
}
