package storage

import "time"

// ExerciseModel is the GORM model for the exercise catalog
type ExerciseModel struct {
	Category  string `gorm:"not null;index:idx_exercises_category;check:category IN ('chest','back','shoulders','biceps','triceps','legs','core','cardio','other')"`
	CreatedAt time.Time
	Equipment string `gorm:"not null;check:equipment IN ('barbell','dumbbell','cable','machine','bodyweight','kettlebell','other')"`
	ID        string `gorm:"primaryKey"`
	IsCustom  bool   `gorm:"not null;default:false"`
	Name      string `gorm:"not null;index:idx_exercises_name"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ExerciseModel) TableName() string { return "exercises" }

// RoutineModel is the GORM model for routine templates
type RoutineModel struct {
	CreatedAt time.Time
	ID        string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"index:idx_routines_updated"`
}

// TableName specifies the table name for GORM
func (RoutineModel) TableName() string { return "routines" }

// RoutineExerciseModel is the GORM model for exercise placements in a routine.
// Table created manually so the cascade foreign keys are exact.
type RoutineExerciseModel struct {
	CreatedAt       time.Time
	ExerciseID      string `gorm:"column:exercise_id"`
	ID              string `gorm:"primaryKey"`
	Notes           string
	Position        int
	RestSeconds     int
	RoutineID       string `gorm:"column:routine_id"`
	SupersetGroupID *string
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (RoutineExerciseModel) TableName() string { return "routine_exercises" }

// RoutineSetModel is the GORM model for target sets
type RoutineSetModel struct {
	CreatedAt         time.Time
	ID                string `gorm:"primaryKey"`
	RoutineExerciseID string `gorm:"column:routine_exercise_id"`
	SetNumber         int
	SetType           string
	TargetReps        int
	TargetWeight      *float64
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (RoutineSetModel) TableName() string { return "routine_sets" }

// WorkoutModel is the GORM model for logged workout sessions.
// RoutineID is a plain reference, deliberately not a foreign key: historical
// sessions must survive deletion of the routine that spawned them.
type WorkoutModel struct {
	CompletedAt *time.Time
	CreatedAt   time.Time
	ID          string    `gorm:"primaryKey"`
	Name        string    `gorm:"not null"`
	Notes       string    `gorm:"not null;default:''"`
	RoutineID   string    `gorm:"not null;index:idx_workouts_routine"`
	StartedAt   time.Time `gorm:"not null;index:idx_workouts_started"`
	Status      string    `gorm:"not null;default:'active';index:idx_workouts_status;check:status IN ('active','completed','abandoned')"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (WorkoutModel) TableName() string { return "workouts" }

// WorkoutExerciseModel is the GORM model for exercise instances in a session
type WorkoutExerciseModel struct {
	CreatedAt         time.Time
	ExerciseID        string `gorm:"column:exercise_id"`
	ID                string `gorm:"primaryKey"`
	Notes             string
	Position          int
	RoutineExerciseID *string `gorm:"column:routine_exercise_id"`
	UpdatedAt         time.Time
	WorkoutID         string `gorm:"column:workout_id"`
}

// TableName specifies the table name for GORM
func (WorkoutExerciseModel) TableName() string { return "workout_exercises" }

// WorkoutSetModel is the GORM model for actual logged sets
type WorkoutSetModel struct {
	CompletedAt       time.Time
	CreatedAt         time.Time
	ID                string `gorm:"primaryKey"`
	Reps              int
	RPE               *int `gorm:"column:rpe"`
	SetNumber         int
	SetType           string
	UpdatedAt         time.Time
	Weight            float64
	WorkoutExerciseID string `gorm:"column:workout_exercise_id"`
}

// TableName specifies the table name for GORM
func (WorkoutSetModel) TableName() string { return "workout_sets" }

// WorkoutPhotoModel is the GORM model for progress-photo references
type WorkoutPhotoModel struct {
	CreatedAt time.Time
	ID        string `gorm:"primaryKey"`
	Path      string
	SortOrder int
	WorkoutID string `gorm:"column:workout_id"`
}

// TableName specifies the table name for GORM
func (WorkoutPhotoModel) TableName() string { return "workout_photos" }

// ScheduledWorkoutModel is the GORM model for future workout intents
type ScheduledWorkoutModel struct {
	CreatedAt     time.Time
	ID            string `gorm:"primaryKey"`
	RoutineID     string `gorm:"column:routine_id"`
	ScheduledDate string `gorm:"column:scheduled_date"`
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (ScheduledWorkoutModel) TableName() string { return "scheduled_workouts" }
