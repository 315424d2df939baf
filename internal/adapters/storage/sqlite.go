package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ironlog/internal/logging"
	"ironlog/internal/ports"
)

// SQLiteRepository owns the GORM/SQLite handle and exposes one store per
// aggregate. The stores share the handle; each port's method set lives on
// its own receiver.
type SQLiteRepository struct {
	db *gorm.DB

	Exercises *ExerciseStore
	History   *HistoryStore
	Routines  *RoutineStore
	Workouts  *WorkoutStore
}

// ExerciseStore implements ports.ExerciseRepository
type ExerciseStore struct {
	db *gorm.DB
}

// RoutineStore implements ports.RoutineRepository
type RoutineStore struct {
	db *gorm.DB
}

// WorkoutStore implements ports.WorkoutRepository
type WorkoutStore struct {
	db *gorm.DB
}

// HistoryStore implements ports.HistoryRepository
type HistoryStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var (
	_ ports.ExerciseRepository = (*ExerciseStore)(nil)
	_ ports.RoutineRepository  = (*RoutineStore)(nil)
	_ ports.WorkoutRepository  = (*WorkoutStore)(nil)
	_ ports.HistoryRepository  = (*HistoryStore)(nil)
)

// gormLogger wraps the ironlog logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("IRONLOG_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (or creates) the database at dbPath and migrates
// the schema
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// foreign_keys and busy_timeout are connection-scoped in SQLite, so the
	// pragmas go in the DSN where the driver applies them to every pooled
	// connection. A one-off PRAGMA exec would only cover the connection that
	// happened to serve it.
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_foreign_keys=1"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Auto-migrate root tables
	for _, model := range []any{&ExerciseModel{}, &RoutineModel{}, &WorkoutModel{}} {
		if err := db.AutoMigrate(model); err != nil {
			if !strings.Contains(err.Error(), "already exists") {
				return nil, fmt.Errorf("failed to migrate schema: %w", err)
			}
		}
	}

	// Manually create child tables (AutoMigrate has issues with foreign keys
	// in SQLite, and the cascade rules must be exact)
	migrator := db.Migrator()

	if !migrator.HasTable(&RoutineExerciseModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS routine_exercises (
				id TEXT PRIMARY KEY,
				routine_id TEXT NOT NULL,
				exercise_id TEXT NOT NULL,
				position INTEGER NOT NULL DEFAULT 0,
				rest_seconds INTEGER NOT NULL DEFAULT 0,
				notes TEXT NOT NULL DEFAULT '',
				superset_group_id TEXT,
				created_at DATETIME,
				updated_at DATETIME,
				FOREIGN KEY (routine_id) REFERENCES routines(id) ON UPDATE CASCADE ON DELETE CASCADE,
				FOREIGN KEY (exercise_id) REFERENCES exercises(id)
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create routine_exercises table: %w", err)
		}
		if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_routine_exercises_routine ON routine_exercises(routine_id, position)`).Error; err != nil {
			return nil, fmt.Errorf("failed to index routine_exercises: %w", err)
		}
	}

	if !migrator.HasTable(&RoutineSetModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS routine_sets (
				id TEXT PRIMARY KEY,
				routine_exercise_id TEXT NOT NULL,
				set_number INTEGER NOT NULL,
				target_reps INTEGER NOT NULL,
				target_weight REAL,
				set_type TEXT NOT NULL DEFAULT 'normal',
				created_at DATETIME,
				updated_at DATETIME,
				UNIQUE (routine_exercise_id, set_number),
				FOREIGN KEY (routine_exercise_id) REFERENCES routine_exercises(id) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create routine_sets table: %w", err)
		}
	}

	if !migrator.HasTable(&WorkoutExerciseModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS workout_exercises (
				id TEXT PRIMARY KEY,
				workout_id TEXT NOT NULL,
				exercise_id TEXT NOT NULL,
				routine_exercise_id TEXT,
				position INTEGER NOT NULL DEFAULT 0,
				notes TEXT NOT NULL DEFAULT '',
				created_at DATETIME,
				updated_at DATETIME,
				FOREIGN KEY (workout_id) REFERENCES workouts(id) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create workout_exercises table: %w", err)
		}
		if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_workout_exercises_workout ON workout_exercises(workout_id, position)`).Error; err != nil {
			return nil, fmt.Errorf("failed to index workout_exercises: %w", err)
		}
	}

	if !migrator.HasTable(&WorkoutSetModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS workout_sets (
				id TEXT PRIMARY KEY,
				workout_exercise_id TEXT NOT NULL,
				set_number INTEGER NOT NULL,
				weight REAL NOT NULL,
				reps INTEGER NOT NULL,
				rpe INTEGER,
				set_type TEXT NOT NULL DEFAULT 'normal',
				completed_at DATETIME NOT NULL,
				created_at DATETIME,
				updated_at DATETIME,
				FOREIGN KEY (workout_exercise_id) REFERENCES workout_exercises(id) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create workout_sets table: %w", err)
		}
		if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_workout_sets_exercise ON workout_sets(workout_exercise_id)`).Error; err != nil {
			return nil, fmt.Errorf("failed to index workout_sets: %w", err)
		}
	}

	if !migrator.HasTable(&WorkoutPhotoModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS workout_photos (
				id TEXT PRIMARY KEY,
				workout_id TEXT NOT NULL,
				path TEXT NOT NULL,
				sort_order INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME,
				FOREIGN KEY (workout_id) REFERENCES workouts(id) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create workout_photos table: %w", err)
		}
	}

	if !migrator.HasTable(&ScheduledWorkoutModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS scheduled_workouts (
				id TEXT PRIMARY KEY,
				routine_id TEXT NOT NULL,
				scheduled_date TEXT NOT NULL,
				created_at DATETIME,
				updated_at DATETIME,
				FOREIGN KEY (routine_id) REFERENCES routines(id) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create scheduled_workouts table: %w", err)
		}
		if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_scheduled_workouts_date ON scheduled_workouts(scheduled_date)`).Error; err != nil {
			return nil, fmt.Errorf("failed to index scheduled_workouts: %w", err)
		}
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{
		db:        db,
		Exercises: &ExerciseStore{db: db},
		History:   &HistoryStore{db: db},
		Routines:  &RoutineStore{db: db},
		Workouts:  &WorkoutStore{db: db},
	}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
