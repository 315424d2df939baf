package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"ironlog/internal/domain"
	"ironlog/internal/logging"
)

// ExercisesCmd manages the exercise catalog
type ExercisesCmd struct {
	List ExercisesListCmd `cmd:"list" help:"List exercises" default:"1"`
	Add  ExercisesAddCmd  `cmd:"add" help:"Add a custom exercise"`
	Del  ExercisesDelCmd  `cmd:"del" help:"Delete a custom exercise"`
}

// ExercisesListCmd lists the catalog
type ExercisesListCmd struct {
	Category string `help:"Filter by category" enum:",chest,back,shoulders,biceps,triceps,legs,core,cardio,other" default:""`
	Format   string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (e *ExercisesListCmd) Run(cli *CLI) error {
	ctx := context.Background()

	var exercises []domain.Exercise
	var err error
	if e.Category != "" {
		exercises, err = cli.Container.Exercises.ByCategory(ctx, domain.Category(e.Category))
	} else {
		exercises, err = cli.Container.Exercises.All(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list exercises: %w", err)
	}

	if e.Format == "json" {
		data, err := json.MarshalIndent(exercises, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tEQUIPMENT\tCUSTOM")
	for _, ex := range exercises {
		custom := ""
		if ex.IsCustom {
			custom = "✓"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			ex.ID,
			ex.Name,
			ex.Category,
			ex.Equipment,
			custom)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d exercises\n", len(exercises))
	return nil
}

// ExercisesAddCmd adds a custom exercise
type ExercisesAddCmd struct {
	Name      string `arg:"" help:"Exercise name"`
	Category  string `help:"Category" required:"" enum:"chest,back,shoulders,biceps,triceps,legs,core,cardio,other"`
	Equipment string `help:"Equipment" default:"other" enum:"barbell,dumbbell,cable,machine,bodyweight,kettlebell,other"`
}

// Run executes the add command
func (e *ExercisesAddCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Adding custom exercise", "name", e.Name, "category", e.Category)

	exercise, err := cli.Container.Exercises.CreateCustom(
		context.Background(),
		e.Name,
		domain.Category(e.Category),
		domain.Equipment(e.Equipment),
	)
	if err != nil {
		return fmt.Errorf("failed to add exercise: %w", err)
	}

	fmt.Printf("Added exercise '%s' (%s)\n", exercise.Name, exercise.ID)
	return nil
}

// ExercisesDelCmd deletes a custom exercise
type ExercisesDelCmd struct {
	ID string `arg:"" help:"Exercise id"`
}

// Run executes the del command
func (e *ExercisesDelCmd) Run(cli *CLI) error {
	if err := cli.Container.Exercises.DeleteCustom(context.Background(), e.ID); err != nil {
		return fmt.Errorf("failed to delete exercise: %w", err)
	}

	fmt.Printf("Deleted exercise %s\n", e.ID)
	return nil
}
