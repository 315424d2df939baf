package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryValid(t *testing.T) {
	for _, category := range Categories() {
		assert.True(t, category.Valid(), "category %s", category)
	}
	assert.False(t, Category("arms").Valid())
	assert.False(t, Category("").Valid())
}

func TestEquipmentValid(t *testing.T) {
	valid := []Equipment{
		EquipmentBarbell, EquipmentDumbbell, EquipmentCable, EquipmentMachine,
		EquipmentBodyweight, EquipmentKettlebell, EquipmentOther,
	}
	for _, equipment := range valid {
		assert.True(t, equipment.Valid(), "equipment %s", equipment)
	}
	assert.False(t, Equipment("bands").Valid())
}
