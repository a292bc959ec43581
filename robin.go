// robin.go - fixed-capacity Robin Hood hash map
//
// Robin Hood hashing resolves collisions by displacing whichever
// resident sits closest to its own home slot; deletes shift displaced
// entries back instead of leaving tombstones. Background:
// https://cs.uwaterloo.ca/research/tr/1986/CS-86-14.pdf
//
// (c) Sudhi Herle 2018
//
// License GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package oamap

import (
	"fmt"
	"io"
)

// rbucket is one slot of the table. psl counts the slots examined from
// the key's home index to here, inclusive; every occupied slot has
// psl >= 1, so psl == 0 doubles as the empty marker and the table
// needs no separate occupancy state.
type rbucket[K comparable, V any] struct {
	key K
	val V
	psl uint32
}

// RobinMap is a fixed-capacity open-addressed hash map using Robin
// Hood hashing. The capacity never changes after construction and the
// table never rehashes. It is not safe for concurrent use.
type RobinMap[K comparable, V any] struct {
	slots  []rbucket[K, V]
	hash   Hasher[K]
	live   int
	maxPSL uint32
}

// NewRobin makes a Robin Hood map with room for exactly 'capacity'
// entries, hashing keys with 'h'.
func NewRobin[K comparable, V any](capacity int, h Hasher[K]) (*RobinMap[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("robin: %d: %w", capacity, ErrBadCapacity)
	}
	if h == nil {
		return nil, fmt.Errorf("robin: %w", ErrNoHasher)
	}

	m := &RobinMap[K, V]{
		slots: make([]rbucket[K, V], capacity),
		hash:  h,
	}
	return m, nil
}

// home returns the slot index key 'k' maps to before any probing.
func (m *RobinMap[K, V]) home(k K) uint64 {
	return m.hash(k) % uint64(len(m.slots))
}

// Insert adds or updates the entry for key 'k'. If the key was already
// present, the previous value is returned with updated set to true.
// Inserting a new key into a full table fails with ErrTableFull.
func (m *RobinMap[K, V]) Insert(k K, v V) (old V, updated bool, err error) {
	if m.live == len(m.slots) {
		if _, ok := m.find(k); !ok {
			err = fmt.Errorf("robin: insert: %w", ErrTableFull)
			return old, false, err
		}
	}

	i := m.home(k)
	inc := rbucket[K, V]{key: k, val: v, psl: 1}
	for {
		s := &m.slots[i]
		switch {
		case s.psl == 0:
			// empty slot: the incoming bucket lands here. This
			// is reached at most once per call, for the last
			// displaced bucket still in hand.
			if inc.psl > m.maxPSL {
				m.maxPSL = inc.psl
			}
			*s = inc
			m.live++
			return old, false, nil

		case s.key == inc.key:
			// existing key: swap in the new value. A displaced
			// resident can never take this path - its key is
			// unique in the table.
			old, s.val = s.val, inc.val
			return old, true, nil

		case s.psl < inc.psl:
			// the resident is closer to home than we are:
			// evict it and let it continue probing as the
			// incoming bucket. This is a placement too, so it
			// must raise the high-water mark just like the
			// empty-slot case; otherwise the swapped-in key
			// can sit past the bound find trusts.
			if inc.psl > m.maxPSL {
				m.maxPSL = inc.psl
			}
			*s, inc = inc, *s
		}

		i++
		if i == uint64(len(m.slots)) {
			i = 0
		}
		inc.psl++
	}
}

// find returns the slot index holding key 'k'. The walk is bounded by
// maxPSL and stops early at an empty slot or at any resident with a
// smaller psl than the current probe distance: Robin Hood ordering
// guarantees the true owner can never sit past such a slot.
func (m *RobinMap[K, V]) find(k K) (uint64, bool) {
	i := m.home(k)
	for psl := uint32(1); psl <= m.maxPSL; psl++ {
		s := &m.slots[i]
		switch {
		case s.psl == 0:
			return 0, false
		case s.key == k:
			return i, true
		case s.psl < psl:
			return 0, false
		}

		i++
		if i == uint64(len(m.slots)) {
			i = 0
		}
	}
	return 0, false
}

// Get returns the value stored for key 'k' and true if the key is
// present, false otherwise.
func (m *RobinMap[K, V]) Get(k K) (V, bool) {
	var zero V
	i, ok := m.find(k)
	if !ok {
		return zero, false
	}
	return m.slots[i].val, true
}

// Contains returns true if key 'k' is present
func (m *RobinMap[K, V]) Contains(k K) bool {
	_, ok := m.find(k)
	return ok
}

// Delete removes the entry for key 'k' and returns its value and true;
// a missing key returns false. The freed slot is closed by shifting
// every displaced successor back one position (decrementing its psl),
// stopping at the first empty slot or resident already at home.
// maxPSL is deliberately left alone; it remains a valid (if now
// conservative) bound for future lookups.
func (m *RobinMap[K, V]) Delete(k K) (V, bool) {
	var zero V
	i, ok := m.find(k)
	if !ok {
		return zero, false
	}

	val := m.slots[i].val
	m.slots[i] = rbucket[K, V]{}

	for {
		next := i + 1
		if next == uint64(len(m.slots)) {
			next = 0
		}
		s := &m.slots[next]
		if s.psl <= 1 {
			// empty, or already at its home slot
			break
		}
		m.slots[i] = *s
		m.slots[i].psl--
		*s = rbucket[K, V]{}
		i = next
	}

	m.live--
	return val, true
}

// Len returns the number of live entries
func (m *RobinMap[K, V]) Len() int {
	return m.live
}

// Cap returns the fixed capacity given at construction time
func (m *RobinMap[K, V]) Cap() int {
	return len(m.slots)
}

// DumpMeta writes occupancy metadata for the map to io.Writer 'w'
func (m *RobinMap[K, V]) DumpMeta(w io.Writer) {
	n := len(m.slots)
	fmt.Fprintf(w, "  Robin Hood map: %d/%d slots (%4.2f load), max psl %d\n",
		m.live, n, float64(m.live)/float64(n), m.maxPSL)
}
