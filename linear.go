// linear.go - fixed-capacity linear-probing hash map
//
// The simple open-addressing baseline: straight linear probing with
// tombstone deletion. Kept alongside RobinMap for comparison; the
// Robin Hood variant trades a little insert work for short, low
// variance probe sequences and no tombstone buildup.
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

type lstate uint8

const (
	lsEmpty lstate = iota
	// a deleted slot; probes must continue past it
	lsTomb
	lsLive
)

type lslot[K comparable, V any] struct {
	key   K
	val   V
	state lstate
}

// LinearMap is a fixed-capacity open-addressed hash map using linear
// probing and tombstone deletion. The capacity never changes after
// construction. It is not safe for concurrent use.
type LinearMap[K comparable, V any] struct {
	slots []lslot[K, V]
	hash  Hasher[K]
	live  int
	tombs int
}

// NewLinear makes a linear-probing map with room for exactly
// 'capacity' entries, hashing keys with 'h'.
func NewLinear[K comparable, V any](capacity int, h Hasher[K]) (*LinearMap[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("linear: %d: %w", capacity, ErrBadCapacity)
	}
	if h == nil {
		return nil, fmt.Errorf("linear: %w", ErrNoHasher)
	}

	m := &LinearMap[K, V]{
		slots: make([]lslot[K, V], capacity),
		hash:  h,
	}
	return m, nil
}

func (m *LinearMap[K, V]) home(k K) uint64 {
	return m.hash(k) % uint64(len(m.slots))
}

// Insert adds or updates the entry for key 'k'. The first tombstone
// seen on the probe path is remembered and reused for a new key; a
// full probe cycle with no usable slot fails with ErrTableFull.
func (m *LinearMap[K, V]) Insert(k K, v V) (old V, updated bool, err error) {
	i := m.home(k)
	start := i
	reuse := start
	haveReuse := false
	for {
		s := &m.slots[i]
		switch s.state {
		case lsEmpty:
			if haveReuse {
				i = reuse
			}
			m.place(i, k, v)
			return old, false, nil

		case lsTomb:
			if !haveReuse {
				reuse, haveReuse = i, true
			}

		case lsLive:
			if s.key == k {
				old, s.val = s.val, v
				return old, true, nil
			}
		}

		i++
		if i == uint64(len(m.slots)) {
			i = 0
		}
		if i == start {
			if haveReuse {
				m.place(reuse, k, v)
				return old, false, nil
			}
			err = fmt.Errorf("linear: insert: %w", ErrTableFull)
			return old, false, err
		}
	}
}

func (m *LinearMap[K, V]) place(i uint64, k K, v V) {
	if m.slots[i].state == lsTomb {
		m.tombs--
	}
	m.slots[i] = lslot[K, V]{key: k, val: v, state: lsLive}
	m.live++
}

// find returns the slot index holding key 'k'. Tombstones are probed
// past; an empty slot or a full cycle ends the search.
func (m *LinearMap[K, V]) find(k K) (uint64, bool) {
	i := m.home(k)
	start := i
	for {
		s := &m.slots[i]
		switch s.state {
		case lsEmpty:
			return 0, false
		case lsLive:
			if s.key == k {
				return i, true
			}
		}

		i++
		if i == uint64(len(m.slots)) {
			i = 0
		}
		if i == start {
			return 0, false
		}
	}
}

// Get returns the value stored for key 'k' and true if the key is
// present, false otherwise.
func (m *LinearMap[K, V]) Get(k K) (V, bool) {
	var zero V
	i, ok := m.find(k)
	if !ok {
		return zero, false
	}
	return m.slots[i].val, true
}

// Contains returns true if key 'k' is present
func (m *LinearMap[K, V]) Contains(k K) bool {
	_, ok := m.find(k)
	return ok
}

// Delete removes the entry for key 'k' and returns its value and true;
// a missing key returns false. The slot is marked as a tombstone so
// later probes continue past it.
func (m *LinearMap[K, V]) Delete(k K) (V, bool) {
	var zero V
	i, ok := m.find(k)
	if !ok {
		return zero, false
	}

	val := m.slots[i].val
	m.slots[i] = lslot[K, V]{state: lsTomb}
	m.live--
	m.tombs++
	return val, true
}

// Len returns the number of live entries
func (m *LinearMap[K, V]) Len() int {
	return m.live
}

// Cap returns the fixed capacity given at construction time
func (m *LinearMap[K, V]) Cap() int {
	return len(m.slots)
}

// DumpMeta writes occupancy metadata for the map to io.Writer 'w'
func (m *LinearMap[K, V]) DumpMeta(w io.Writer) {
	n := len(m.slots)
	fmt.Fprintf(w, "  Linear probing map: %d/%d slots (%4.2f load), %d tombstones\n",
		m.live, n, float64(m.live)/float64(n), m.tombs)
}
