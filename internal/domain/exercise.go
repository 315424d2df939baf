package domain

import "time"

// Category classifies an exercise by the muscle group or modality it trains
type Category string

const (
	CategoryChest     Category = "chest"
	CategoryBack      Category = "back"
	CategoryShoulders Category = "shoulders"
	CategoryBiceps    Category = "biceps"
	CategoryTriceps   Category = "triceps"
	CategoryLegs      Category = "legs"
	CategoryCore      Category = "core"
	CategoryCardio    Category = "cardio"
	CategoryOther     Category = "other"
)

// Categories returns all valid categories in display order
func Categories() []Category {
	return []Category{
		CategoryChest,
		CategoryBack,
		CategoryShoulders,
		CategoryBiceps,
		CategoryTriceps,
		CategoryLegs,
		CategoryCore,
		CategoryCardio,
		CategoryOther,
	}
}

// Valid reports whether the category is one of the closed set
func (c Category) Valid() bool {
	switch c {
	case CategoryChest, CategoryBack, CategoryShoulders, CategoryBiceps,
		CategoryTriceps, CategoryLegs, CategoryCore, CategoryCardio, CategoryOther:
		return true
	}
	return false
}

// Equipment identifies the implement an exercise is performed with
type Equipment string

const (
	EquipmentBarbell    Equipment = "barbell"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentCable      Equipment = "cable"
	EquipmentMachine    Equipment = "machine"
	EquipmentBodyweight Equipment = "bodyweight"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentOther      Equipment = "other"
)

// Valid reports whether the equipment is one of the closed set
func (e Equipment) Valid() bool {
	switch e {
	case EquipmentBarbell, EquipmentDumbbell, EquipmentCable, EquipmentMachine,
		EquipmentBodyweight, EquipmentKettlebell, EquipmentOther:
		return true
	}
	return false
}

// Exercise is a catalog entry, either built-in or user-defined
type Exercise struct {
	Category  Category
	CreatedAt time.Time
	Equipment Equipment
	ID        string
	IsCustom  bool
	Name      string
}
