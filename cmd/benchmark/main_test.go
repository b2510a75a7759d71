package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyntheticCatalogDeterministic(t *testing.T) {
	first := syntheticCatalog(5, 3, 6, seed)
	second := syntheticCatalog(5, 3, 6, seed)
	assert.Equal(t, first, second)
}

func TestSyntheticCatalogShape(t *testing.T) {
	catalog := syntheticCatalog(4, 3, 5, seed)
	assert.Len(t, catalog, 9)

	for _, subject := range catalog {
		assert.NotEmpty(t, subject.Groups)
		for _, group := range subject.Groups {
			for _, slot := range group.Slots {
				assert.Less(t, slot.Start, slot.End)
				assert.GreaterOrEqual(t, slot.Start, 0)
				assert.Less(t, slot.End, 24*60)
			}
		}
	}
}
