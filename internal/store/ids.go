package store

import "sync"

// idAllocator hands out identifiers for the embedded backend: 1 for an empty
// collection, max+1 otherwise. A per-collection high-water mark keeps an id
// from being handed out again after its record is deleted, even when the
// deleted record held the current maximum.
type idAllocator struct {
	mu   sync.Mutex
	high map[string]uint
}

func newIDAllocator() *idAllocator {
	return &idAllocator{high: make(map[string]uint)}
}

// next returns the next id for the named collection. existing may be gapped
// or unordered.
func (a *idAllocator) next(collection string, existing []uint) uint {
	a.mu.Lock()
	defer a.mu.Unlock()

	max := a.high[collection]
	for _, id := range existing {
		if id > max {
			max = id
		}
	}
	next := max + 1
	a.high[collection] = next
	return next
}
