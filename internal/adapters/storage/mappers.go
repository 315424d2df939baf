package storage

import (
	"ironlog/internal/domain"
)

func exerciseModelToDomain(m ExerciseModel) domain.Exercise {
	return domain.Exercise{
		Category:  domain.Category(m.Category),
		CreatedAt: m.CreatedAt,
		Equipment: domain.Equipment(m.Equipment),
		ID:        m.ID,
		IsCustom:  m.IsCustom,
		Name:      m.Name,
	}
}

func routineModelToDomain(m RoutineModel) domain.Routine {
	return domain.Routine{
		CreatedAt: m.CreatedAt,
		ID:        m.ID,
		Name:      m.Name,
		UpdatedAt: m.UpdatedAt,
	}
}

func routineExerciseModelToDomain(m RoutineExerciseModel, exercise *domain.Exercise, sets []domain.RoutineSet) domain.RoutineExercise {
	return domain.RoutineExercise{
		Exercise:        exercise,
		ExerciseID:      m.ExerciseID,
		ID:              m.ID,
		Notes:           m.Notes,
		Position:        m.Position,
		RestSeconds:     m.RestSeconds,
		RoutineID:       m.RoutineID,
		Sets:            sets,
		SupersetGroupID: m.SupersetGroupID,
	}
}

func routineSetModelToDomain(m RoutineSetModel) domain.RoutineSet {
	return domain.RoutineSet{
		ID:                m.ID,
		RoutineExerciseID: m.RoutineExerciseID,
		SetNumber:         m.SetNumber,
		TargetReps:        m.TargetReps,
		TargetWeight:      m.TargetWeight,
		Type:              domain.SetType(m.SetType),
	}
}

func workoutModelToDomain(m WorkoutModel) domain.Workout {
	return domain.Workout{
		CompletedAt: m.CompletedAt,
		ID:          m.ID,
		Name:        m.Name,
		Notes:       m.Notes,
		RoutineID:   m.RoutineID,
		StartedAt:   m.StartedAt,
		Status:      domain.WorkoutStatus(m.Status),
	}
}

func workoutExerciseModelToDomain(m WorkoutExerciseModel, exercise *domain.Exercise, sets []domain.WorkoutSet) domain.WorkoutExercise {
	return domain.WorkoutExercise{
		Exercise:          exercise,
		ExerciseID:        m.ExerciseID,
		ID:                m.ID,
		Notes:             m.Notes,
		Position:          m.Position,
		RoutineExerciseID: m.RoutineExerciseID,
		Sets:              sets,
		WorkoutID:         m.WorkoutID,
	}
}

func workoutSetModelToDomain(m WorkoutSetModel) domain.WorkoutSet {
	return domain.WorkoutSet{
		CompletedAt:       m.CompletedAt,
		ID:                m.ID,
		Reps:              m.Reps,
		RPE:               m.RPE,
		SetNumber:         m.SetNumber,
		Type:              domain.SetType(m.SetType),
		Weight:            m.Weight,
		WorkoutExerciseID: m.WorkoutExerciseID,
	}
}

func workoutPhotoModelToDomain(m WorkoutPhotoModel) domain.WorkoutPhoto {
	return domain.WorkoutPhoto{
		CreatedAt: m.CreatedAt,
		ID:        m.ID,
		Path:      m.Path,
		SortOrder: m.SortOrder,
		WorkoutID: m.WorkoutID,
	}
}

func scheduledWorkoutModelToDomain(m ScheduledWorkoutModel, routineName string) domain.ScheduledWorkout {
	return domain.ScheduledWorkout{
		CreatedAt:   m.CreatedAt,
		Date:        m.ScheduledDate,
		ID:          m.ID,
		RoutineID:   m.RoutineID,
		RoutineName: routineName,
	}
}
