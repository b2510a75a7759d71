package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCandidate(t *testing.T) {
	mixed := subject("MAT101", 1,
		group("G1", ShiftMorning, slot(Monday, 8, 0, 10, 0)),
		group("G2", ShiftAfternoon, slot(Monday, 16, 0, 18, 0)),
	)

	t.Run("mixed filter keeps every group", func(t *testing.T) {
		candidate, failure := NewCandidate(mixed, ShiftMixed)
		assert.Nil(t, failure)
		assert.Len(t, candidate.Groups, 2)
	})

	t.Run("shift filter narrows the group list", func(t *testing.T) {
		candidate, failure := NewCandidate(mixed, ShiftAfternoon)
		assert.Nil(t, failure)
		assert.Len(t, candidate.Groups, 1)
		assert.Equal(t, "G2", candidate.Groups[0].Id)
	})

	t.Run("no groups in the requested shift is reported, not skipped", func(t *testing.T) {
		morningOnly := subject("FIS101", 1, group("G1", ShiftMorning, slot(Tuesday, 8, 0, 10, 0)))

		_, failure := NewCandidate(morningOnly, ShiftAfternoon)
		assert.NotNil(t, failure)
		assert.Equal(t, NoGroupsInShift, failure.Kind)
		assert.Equal(t, "FIS101", failure.Subject)
		assert.Equal(t, ShiftAfternoon, failure.Shift)
	})
}

func TestFlexibility(t *testing.T) {
	candidate := Candidate{Groups: make([]Group, 3)}
	assert.Equal(t, 3, candidate.Flexibility())
}

func TestFailureMessages(t *testing.T) {
	scenarios := []struct {
		failure  Failure
		expected string
	}{
		{
			failure:  Failure{Kind: NoGroupsInShift, Subject: "MAT101", Shift: ShiftMorning},
			expected: `NO_GROUPS_IN_SHIFT: subject "MAT101" has no groups in shift Morning`,
		},
		{
			failure:  Failure{Kind: InsufficientElectives, Requested: 3, Available: 1},
			expected: "INSUFFICIENT_ELECTIVES: requested 3 electives but only 1 are available",
		},
		{
			failure:  Failure{Kind: NoFeasiblePlan},
			expected: "NO_FEASIBLE_PLAN",
		},
	}

	for _, scenario := range scenarios {
		assert.Equal(t, scenario.expected, scenario.failure.Error())
	}
}
