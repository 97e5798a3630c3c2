package fgraph

// entry is one slot of the store. keys is the scope recorded at insertion,
// used for index maintenance regardless of what the payload reports later.
type entry[F any] struct {
	factor F
	keys   []string
	live   bool
}

// store is the slot-indexed factor sequence with tombstoned removal.
// live is maintained on every mutation so nrLive is O(1).
type store[F any] struct {
	slots []entry[F]
	live  int
}

func newStore[F any](capacity int) store[F] {
	return store[F]{slots: make([]entry[F], 0, capacity)}
}

// push appends a live slot and returns its number.
func (s *store[F]) push(f F, keys []string) int {
	s.slots = append(s.slots, entry[F]{factor: f, keys: keys, live: true})
	s.live++

	return len(s.slots) - 1
}

// pushRemoved appends a tombstone and returns its number.
func (s *store[F]) pushRemoved() int {
	s.slots = append(s.slots, entry[F]{})

	return len(s.slots) - 1
}

// tombstone marks slot i removed and returns what it held.
// The caller must check liveness first.
func (s *store[F]) tombstone(i int) (F, []string) {
	e := s.slots[i]
	var zero F
	s.slots[i] = entry[F]{factor: zero}
	s.live--

	return e.factor, e.keys
}

func (s *store[F]) inRange(i int) bool {
	return i >= 0 && i < len(s.slots)
}

func (s *store[F]) size() int { return len(s.slots) }

func (s *store[F]) nrLive() int { return s.live }

func (s *store[F]) clear() {
	s.slots = s.slots[:0:0]
	s.live = 0
}
