package search

// Indexer gives a unique index to a combination of per-position choices and vice versa.
// Position i ranges over [0, radixes[i]); indices enumerate combinations in
// mixed-radix order with position 0 as the least significant digit.
type Indexer interface {
	// Returns the total number of combinations
	Size() uint64
	// Returns a unique index for a choice vector
	Index(choices []int) uint64
	// Returns the choice vector of a unique index
	Choices(index uint64, out []int) []int
}

func NewIndexer(radixes []int) Indexer {
	return &mixedRadixIndexer{radixes: radixes}
}

type mixedRadixIndexer struct {
	radixes []int
}

func (i *mixedRadixIndexer) Size() uint64 {
	size := uint64(1)
	for _, radix := range i.radixes {
		size *= uint64(radix)
	}
	return size
}

func (i *mixedRadixIndexer) Index(choices []int) uint64 {
	index := uint64(0)
	weight := uint64(1)
	for position, choice := range choices {
		index += weight * uint64(choice)
		weight *= uint64(i.radixes[position])
	}
	return index
}

func (i *mixedRadixIndexer) Choices(index uint64, out []int) []int {
	if out == nil {
		out = make([]int, len(i.radixes))
	}
	for position, radix := range i.radixes {
		out[position] = int(index % uint64(radix))
		index = index / uint64(radix)
	}
	return out
}
