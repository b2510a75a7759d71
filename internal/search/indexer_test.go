package search

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexAndChoicesRoundTrip(t *testing.T) {
	for iter := 0; iter < 10; iter++ {
		// Arrange
		radixes := make([]int, rand.Intn(5)+1)
		for i := range radixes {
			radixes[i] = rand.Intn(6) + 1
		}
		indexer := NewIndexer(radixes)

		// Act & Assert
		for index := uint64(0); index < indexer.Size(); index++ {
			choices := indexer.Choices(index, nil)
			assert.Equal(t, index, indexer.Index(choices))
			for position, choice := range choices {
				assert.Less(t, choice, radixes[position])
			}
		}
	}
}

func TestIndexerSize(t *testing.T) {
	scenarios := []struct {
		radixes []int
		size    uint64
	}{
		{radixes: []int{1}, size: 1},
		{radixes: []int{3, 4}, size: 12},
		{radixes: []int{2, 2, 2, 2}, size: 16},
		{radixes: []int{}, size: 1},
	}

	for _, scenario := range scenarios {
		assert.Equal(t, scenario.size, NewIndexer(scenario.radixes).Size())
	}
}

func TestIndexerMatchesOdometerOrder(t *testing.T) {
	// Arrange
	radixes := []int{3, 2, 4}
	indexer := NewIndexer(radixes)
	odometer := NewOdometer(radixes)

	// Act & Assert
	for !odometer.Done() {
		assert.Equal(t, odometer.Current(), indexer.Choices(odometer.Index(), nil))
		if !odometer.Advance() {
			break
		}
	}
	assert.Equal(t, indexer.Size()-1, odometer.Index())
}
