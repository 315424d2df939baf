package storage

import "ironlog/internal/domain"

type builtinExercise struct {
	name      string
	category  domain.Category
	equipment domain.Equipment
}

// builtinExercises is the seed catalog inserted on first initialization
var builtinExercises = []builtinExercise{
	// Chest
	{"Barbell Bench Press", domain.CategoryChest, domain.EquipmentBarbell},
	{"Incline Barbell Bench Press", domain.CategoryChest, domain.EquipmentBarbell},
	{"Decline Barbell Bench Press", domain.CategoryChest, domain.EquipmentBarbell},
	{"Dumbbell Bench Press", domain.CategoryChest, domain.EquipmentDumbbell},
	{"Incline Dumbbell Press", domain.CategoryChest, domain.EquipmentDumbbell},
	{"Dumbbell Fly", domain.CategoryChest, domain.EquipmentDumbbell},
	{"Cable Crossover", domain.CategoryChest, domain.EquipmentCable},
	{"Chest Press Machine", domain.CategoryChest, domain.EquipmentMachine},
	{"Pec Deck", domain.CategoryChest, domain.EquipmentMachine},
	{"Push-Up", domain.CategoryChest, domain.EquipmentBodyweight},
	{"Dips", domain.CategoryChest, domain.EquipmentBodyweight},

	// Back
	{"Deadlift", domain.CategoryBack, domain.EquipmentBarbell},
	{"Barbell Row", domain.CategoryBack, domain.EquipmentBarbell},
	{"T-Bar Row", domain.CategoryBack, domain.EquipmentBarbell},
	{"Dumbbell Row", domain.CategoryBack, domain.EquipmentDumbbell},
	{"Lat Pulldown", domain.CategoryBack, domain.EquipmentCable},
	{"Seated Cable Row", domain.CategoryBack, domain.EquipmentCable},
	{"Straight-Arm Pulldown", domain.CategoryBack, domain.EquipmentCable},
	{"Pull-Up", domain.CategoryBack, domain.EquipmentBodyweight},
	{"Chin-Up", domain.CategoryBack, domain.EquipmentBodyweight},
	{"Back Extension", domain.CategoryBack, domain.EquipmentBodyweight},
	{"Machine Row", domain.CategoryBack, domain.EquipmentMachine},

	// Shoulders
	{"Overhead Press", domain.CategoryShoulders, domain.EquipmentBarbell},
	{"Push Press", domain.CategoryShoulders, domain.EquipmentBarbell},
	{"Dumbbell Shoulder Press", domain.CategoryShoulders, domain.EquipmentDumbbell},
	{"Lateral Raise", domain.CategoryShoulders, domain.EquipmentDumbbell},
	{"Front Raise", domain.CategoryShoulders, domain.EquipmentDumbbell},
	{"Rear Delt Fly", domain.CategoryShoulders, domain.EquipmentDumbbell},
	{"Arnold Press", domain.CategoryShoulders, domain.EquipmentDumbbell},
	{"Cable Lateral Raise", domain.CategoryShoulders, domain.EquipmentCable},
	{"Face Pull", domain.CategoryShoulders, domain.EquipmentCable},
	{"Upright Row", domain.CategoryShoulders, domain.EquipmentBarbell},
	{"Shoulder Press Machine", domain.CategoryShoulders, domain.EquipmentMachine},
	{"Barbell Shrug", domain.CategoryShoulders, domain.EquipmentBarbell},

	// Biceps
	{"Barbell Curl", domain.CategoryBiceps, domain.EquipmentBarbell},
	{"EZ-Bar Curl", domain.CategoryBiceps, domain.EquipmentBarbell},
	{"Dumbbell Curl", domain.CategoryBiceps, domain.EquipmentDumbbell},
	{"Hammer Curl", domain.CategoryBiceps, domain.EquipmentDumbbell},
	{"Incline Dumbbell Curl", domain.CategoryBiceps, domain.EquipmentDumbbell},
	{"Concentration Curl", domain.CategoryBiceps, domain.EquipmentDumbbell},
	{"Cable Curl", domain.CategoryBiceps, domain.EquipmentCable},
	{"Preacher Curl", domain.CategoryBiceps, domain.EquipmentMachine},

	// Triceps
	{"Close-Grip Bench Press", domain.CategoryTriceps, domain.EquipmentBarbell},
	{"Skull Crusher", domain.CategoryTriceps, domain.EquipmentBarbell},
	{"Overhead Triceps Extension", domain.CategoryTriceps, domain.EquipmentDumbbell},
	{"Dumbbell Kickback", domain.CategoryTriceps, domain.EquipmentDumbbell},
	{"Triceps Pushdown", domain.CategoryTriceps, domain.EquipmentCable},
	{"Rope Pushdown", domain.CategoryTriceps, domain.EquipmentCable},
	{"Cable Overhead Extension", domain.CategoryTriceps, domain.EquipmentCable},
	{"Bench Dip", domain.CategoryTriceps, domain.EquipmentBodyweight},
	{"Diamond Push-Up", domain.CategoryTriceps, domain.EquipmentBodyweight},

	// Legs
	{"Back Squat", domain.CategoryLegs, domain.EquipmentBarbell},
	{"Front Squat", domain.CategoryLegs, domain.EquipmentBarbell},
	{"Romanian Deadlift", domain.CategoryLegs, domain.EquipmentBarbell},
	{"Hip Thrust", domain.CategoryLegs, domain.EquipmentBarbell},
	{"Barbell Lunge", domain.CategoryLegs, domain.EquipmentBarbell},
	{"Goblet Squat", domain.CategoryLegs, domain.EquipmentDumbbell},
	{"Dumbbell Lunge", domain.CategoryLegs, domain.EquipmentDumbbell},
	{"Bulgarian Split Squat", domain.CategoryLegs, domain.EquipmentDumbbell},
	{"Dumbbell Step-Up", domain.CategoryLegs, domain.EquipmentDumbbell},
	{"Leg Press", domain.CategoryLegs, domain.EquipmentMachine},
	{"Leg Extension", domain.CategoryLegs, domain.EquipmentMachine},
	{"Leg Curl", domain.CategoryLegs, domain.EquipmentMachine},
	{"Hack Squat", domain.CategoryLegs, domain.EquipmentMachine},
	{"Standing Calf Raise", domain.CategoryLegs, domain.EquipmentMachine},
	{"Seated Calf Raise", domain.CategoryLegs, domain.EquipmentMachine},
	{"Kettlebell Swing", domain.CategoryLegs, domain.EquipmentKettlebell},
	{"Walking Lunge", domain.CategoryLegs, domain.EquipmentBodyweight},

	// Core
	{"Plank", domain.CategoryCore, domain.EquipmentBodyweight},
	{"Side Plank", domain.CategoryCore, domain.EquipmentBodyweight},
	{"Crunch", domain.CategoryCore, domain.EquipmentBodyweight},
	{"Sit-Up", domain.CategoryCore, domain.EquipmentBodyweight},
	{"Hanging Leg Raise", domain.CategoryCore, domain.EquipmentBodyweight},
	{"Russian Twist", domain.CategoryCore, domain.EquipmentBodyweight},
	{"Mountain Climber", domain.CategoryCore, domain.EquipmentBodyweight},
	{"Cable Crunch", domain.CategoryCore, domain.EquipmentCable},
	{"Cable Woodchopper", domain.CategoryCore, domain.EquipmentCable},
	{"Ab Wheel Rollout", domain.CategoryCore, domain.EquipmentOther},
	{"Dead Bug", domain.CategoryCore, domain.EquipmentBodyweight},

	// Cardio
	{"Treadmill Run", domain.CategoryCardio, domain.EquipmentMachine},
	{"Stationary Bike", domain.CategoryCardio, domain.EquipmentMachine},
	{"Rowing Machine", domain.CategoryCardio, domain.EquipmentMachine},
	{"Stair Climber", domain.CategoryCardio, domain.EquipmentMachine},
	{"Elliptical", domain.CategoryCardio, domain.EquipmentMachine},
	{"Jump Rope", domain.CategoryCardio, domain.EquipmentOther},
	{"Burpee", domain.CategoryCardio, domain.EquipmentBodyweight},
	{"Outdoor Run", domain.CategoryCardio, domain.EquipmentBodyweight},

	// Other
	{"Farmer's Carry", domain.CategoryOther, domain.EquipmentDumbbell},
	{"Kettlebell Turkish Get-Up", domain.CategoryOther, domain.EquipmentKettlebell},
	{"Kettlebell Clean and Press", domain.CategoryOther, domain.EquipmentKettlebell},
	{"Sled Push", domain.CategoryOther, domain.EquipmentOther},
	{"Battle Ropes", domain.CategoryOther, domain.EquipmentOther},
	{"Box Jump", domain.CategoryOther, domain.EquipmentBodyweight},
}
