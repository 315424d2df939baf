package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestGroupSupersets_NoGroups(t *testing.T) {
	exercises := []RoutineExercise{
		{ID: "a", Position: 0},
		{ID: "b", Position: 1},
		{ID: "c", Position: 2},
	}

	groups := GroupSupersets(exercises)

	assert.Len(t, groups, 3)
	for i, group := range groups {
		assert.Len(t, group, 1)
		assert.Equal(t, exercises[i].ID, group[0].ID)
	}
}

func TestGroupSupersets_AdjacentPair(t *testing.T) {
	exercises := []RoutineExercise{
		{ID: "a", Position: 0, SupersetGroupID: strPtr("g1")},
		{ID: "b", Position: 1, SupersetGroupID: strPtr("g1")},
		{ID: "c", Position: 2},
	}

	groups := GroupSupersets(exercises)

	assert.Len(t, groups, 2)
	assert.Len(t, groups[0], 2)
	assert.Equal(t, "a", groups[0][0].ID)
	assert.Equal(t, "b", groups[0][1].ID)
	assert.Len(t, groups[1], 1)
	assert.Equal(t, "c", groups[1][0].ID)
}

func TestGroupSupersets_FirstOccurrenceDefinesPosition(t *testing.T) {
	// Group members separated by an ungrouped exercise still collapse into
	// the slot where the group first appeared.
	exercises := []RoutineExercise{
		{ID: "a", Position: 0, SupersetGroupID: strPtr("g1")},
		{ID: "b", Position: 1},
		{ID: "c", Position: 2, SupersetGroupID: strPtr("g1")},
	}

	groups := GroupSupersets(exercises)

	assert.Len(t, groups, 2)
	assert.Equal(t, []string{"a", "c"}, []string{groups[0][0].ID, groups[0][1].ID})
	assert.Equal(t, "b", groups[1][0].ID)
}

func TestGroupSupersets_MultipleGroups(t *testing.T) {
	exercises := []RoutineExercise{
		{ID: "a", SupersetGroupID: strPtr("g1")},
		{ID: "b", SupersetGroupID: strPtr("g2")},
		{ID: "c", SupersetGroupID: strPtr("g1")},
		{ID: "d", SupersetGroupID: strPtr("g2")},
	}

	groups := GroupSupersets(exercises)

	assert.Len(t, groups, 2)
	assert.Equal(t, "a", groups[0][0].ID)
	assert.Equal(t, "c", groups[0][1].ID)
	assert.Equal(t, "b", groups[1][0].ID)
	assert.Equal(t, "d", groups[1][1].ID)
}

func TestGroupSupersets_Empty(t *testing.T) {
	assert.Empty(t, GroupSupersets(nil))
}

func TestSetTypeValid(t *testing.T) {
	tests := []struct {
		value SetType
		valid bool
	}{
		{SetTypeNormal, true},
		{SetTypeWarmup, true},
		{SetTypeDropset, true},
		{SetTypeFailure, true},
		{SetType(""), false},
		{SetType("superset"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.value.Valid())
		})
	}
}
