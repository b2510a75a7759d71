package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOdometerVisitsEveryChoiceVector(t *testing.T) {
	// Arrange
	odometer := NewOdometer([]int{2, 3})

	// Act
	visited := make([][]int, 0, 6)
	for !odometer.Done() {
		current := make([]int, len(odometer.Current()))
		copy(current, odometer.Current())
		visited = append(visited, current)
		if !odometer.Advance() {
			break
		}
	}

	// Assert: position 0 is the fastest-moving cursor
	assert.Equal(t, [][]int{
		{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2},
	}, visited)
}

func TestOdometerIndexTracksEnumeration(t *testing.T) {
	odometer := NewOdometer([]int{3, 2, 2})

	expected := uint64(0)
	for !odometer.Done() {
		assert.Equal(t, expected, odometer.Index())
		expected++
		if !odometer.Advance() {
			break
		}
	}
	assert.Equal(t, uint64(12), expected)
}

func TestOdometerEmptySpace(t *testing.T) {
	// A zero-radix position means there is nothing to enumerate
	odometer := NewOdometer([]int{3, 0})
	assert.True(t, odometer.Done())

	// No positions at all still yields the single empty choice vector
	empty := NewOdometer([]int{})
	assert.False(t, empty.Done())
	assert.Empty(t, empty.Current())
	assert.False(t, empty.Advance())
	assert.True(t, empty.Done())
}
