package domain

import "time"

// SetType classifies a set, both targets and logged actuals
type SetType string

const (
	SetTypeNormal  SetType = "normal"
	SetTypeWarmup  SetType = "warmup"
	SetTypeDropset SetType = "dropset"
	SetTypeFailure SetType = "failure"
)

// Valid reports whether the set type is one of the closed set
func (s SetType) Valid() bool {
	switch s {
	case SetTypeNormal, SetTypeWarmup, SetTypeDropset, SetTypeFailure:
		return true
	}
	return false
}

// RoutineSet is a target set within a routine exercise (what the plan asks for,
// not what was performed)
type RoutineSet struct {
	ID                string
	RoutineExerciseID string
	SetNumber         int // 1-based, unique within the parent exercise
	TargetReps        int
	TargetWeight      *float64 // nil = bodyweight / unspecified
	Type              SetType
}

// RoutineExercise is one exercise's placement within a routine
type RoutineExercise struct {
	Exercise        *Exercise // joined catalog entry
	ExerciseID      string
	ID              string
	Notes           string
	Position        int // zero-based, contiguous within the routine
	RestSeconds     int
	RoutineID       string
	Sets            []RoutineSet
	SupersetGroupID *string
}

// Routine is a named, reusable workout plan
type Routine struct {
	CreatedAt time.Time
	Exercises []RoutineExercise
	ID        string
	Name      string
	UpdatedAt time.Time
}

// GroupSupersets partitions an ordered exercise list into superset groups.
// Exercises sharing a non-nil SupersetGroupID form one group; exercises without
// a group id are singleton groups. The first occurrence of a group id in the
// ordered list defines that group's position in the result, regardless of where
// its remaining members appear.
func GroupSupersets(ordered []RoutineExercise) [][]RoutineExercise {
	groups := make([][]RoutineExercise, 0, len(ordered))
	groupIndex := make(map[string]int)

	for _, ex := range ordered {
		if ex.SupersetGroupID == nil {
			groups = append(groups, []RoutineExercise{ex})
			continue
		}

		id := *ex.SupersetGroupID
		if idx, seen := groupIndex[id]; seen {
			groups[idx] = append(groups[idx], ex)
			continue
		}

		groupIndex[id] = len(groups)
		groups = append(groups, []RoutineExercise{ex})
	}

	return groups
}
