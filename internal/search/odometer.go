package search

// Odometer walks every choice vector of a mixed-radix space in index order
// without allocating per step. Position 0 is the fastest-moving cursor, so the
// visit order matches the Indexer's index order.
type Odometer struct {
	radixes []int
	cursors []int
	index   uint64
	done    bool
}

func NewOdometer(radixes []int) *Odometer {
	for _, radix := range radixes {
		if radix <= 0 {
			return &Odometer{done: true}
		}
	}
	return &Odometer{
		radixes: radixes,
		cursors: make([]int, len(radixes)),
	}
}

// Current returns the choice vector the odometer points at. The slice is owned
// by the odometer and must not be retained across Advance calls.
func (o *Odometer) Current() []int {
	return o.cursors
}

// Index returns the enumeration index of the current choice vector.
func (o *Odometer) Index() uint64 {
	return o.index
}

func (o *Odometer) Done() bool {
	return o.done
}

// Advance increments the cursors with carry and reports whether a next choice
// vector exists.
func (o *Odometer) Advance() bool {
	if o.done {
		return false
	}
	for position := range o.cursors {
		o.cursors[position]++
		if o.cursors[position] < o.radixes[position] {
			o.index++
			return true
		}
		o.cursors[position] = 0
	}
	o.done = true
	return false
}
