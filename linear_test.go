// linear_test.go -- test suite for the linear-probing map
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
	"errors"
	"testing"

	"github.com/opencoff/go-fasthash"
)

func TestLinearSimple(t *testing.T) {
	assert := newAsserter(t)

	hseed := rand64()
	m, err := NewLinear[string, int](64, func(s string) uint64 {
		return fasthash.Hash64(hseed, []byte(s))
	})
	assert(err == nil, "construction failed: %s", err)

	for i, w := range keyw {
		_, upd, err := m.Insert(w, i)
		assert(err == nil, "insert %q: %s", w, err)
		assert(!upd, "insert %q: unexpected update", w)
	}
	assert(m.Len() == len(keyw), "len %d, want %d", m.Len(), len(keyw))

	for i, w := range keyw {
		v, ok := m.Get(w)
		assert(ok, "can't find %q", w)
		assert(v == i, "%q: got %d, want %d", w, v, i)
	}

	assert(!m.Contains("no-such-key"), "contains a key that was never inserted")
}

func TestLinearUpdate(t *testing.T) {
	assert := newAsserter(t)

	m, err := NewLinear[string, int](16, StringHasher())
	assert(err == nil, "construction failed: %s", err)

	m.Insert("key", 1)
	old, upd, err := m.Insert("key", 2)
	assert(err == nil && upd, "update: %s", err)
	assert(old == 1, "old value %d, want 1", old)

	v, ok := m.Get("key")
	assert(ok && v == 2, "got %d %v, want 2 true", v, ok)
	assert(m.Len() == 1, "len %d after update, want 1", m.Len())
}

// probes must continue past a tombstone left in the middle of a
// collision chain; identity hasher makes the chain explicit.
func TestLinearTombstone(t *testing.T) {
	assert := newAsserter(t)

	m, err := NewLinear[uint64, int](8, ident)
	assert(err == nil, "construction failed: %s", err)

	// 0, 8, 16 all have home slot 0: they occupy slots 0, 1, 2
	m.Insert(0, 1)
	m.Insert(8, 2)
	m.Insert(16, 3)

	v, ok := m.Delete(8)
	assert(ok && v == 2, "delete 8: %d %v", v, ok)
	assert(m.slots[1].state == lsTomb, "slot 1 is not a tombstone")

	// 16 sits past the tombstone and must still be reachable
	v, ok = m.Get(16)
	assert(ok && v == 3, "get 16 past tombstone: %d %v", v, ok)
	assert(!m.Contains(8), "8 still present after delete")

	// a colliding insert reuses the tombstone slot
	_, upd, err := m.Insert(24, 4)
	assert(err == nil && !upd, "insert 24: %s", err)
	assert(m.slots[1].state == lsLive && m.slots[1].key == 24,
		"24 did not reuse the tombstone slot")
	assert(m.tombs == 0, "tombstone count %d, want 0", m.tombs)
}

func TestLinearFull(t *testing.T) {
	assert := newAsserter(t)

	m, err := NewLinear[uint64, uint64](8, ident)
	assert(err == nil, "construction failed: %s", err)

	for i := uint64(0); i < 8; i++ {
		_, _, err := m.Insert(i, i)
		assert(err == nil, "insert %d: %s", i, err)
	}

	_, _, err = m.Insert(100, 100)
	assert(errors.Is(err, ErrTableFull), "insert into full table: %s", err)

	// updates still work on a full table
	old, upd, err := m.Insert(3, 33)
	assert(err == nil && upd, "update on full table: %s", err)
	assert(old == 3, "old value %d, want 3", old)

	// a delete leaves a tombstone; the next insert reuses it even
	// though the probe wraps a full cycle first
	_, ok := m.Delete(0)
	assert(ok, "delete 0 failed")
	_, _, err = m.Insert(100, 100)
	assert(err == nil, "insert after delete: %s", err)

	v, ok := m.Get(100)
	assert(ok && v == 100, "get 100: %d %v", v, ok)
	assert(m.Len() == 8, "len %d, want 8", m.Len())
}

func TestLinearConstruction(t *testing.T) {
	assert := newAsserter(t)

	_, err := NewLinear[uint64, int](0, Uint64Hasher())
	assert(errors.Is(err, ErrBadCapacity), "zero capacity: %s", err)

	_, err = NewLinear[uint64, int](8, nil)
	assert(errors.Is(err, ErrNoHasher), "nil hasher: %s", err)
}
