package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"ironlog/internal/config"
	"ironlog/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Exercises ExercisesCmd `cmd:"exercises" help:"Browse and manage the exercise catalog"`
	Routines  RoutinesCmd  `cmd:"routines" help:"Manage workout routines"`
	Workout   WorkoutCmd   `cmd:"workout" help:"Run a workout session"`
	History   HistoryCmd   `cmd:"history" help:"Review past workouts and the calendar"`
	Schedule  ScheduleCmd  `cmd:"schedule" help:"Plan future workouts"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("IRONLOG_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("IRONLOG_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	if err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	if c.Debug || c.DebugFile != "" {
		os.Setenv("IRONLOG_DEBUG", "1")
	}

	// Create container AFTER logging is initialized so the GORM logger
	// bridge never sees a nil logger
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
