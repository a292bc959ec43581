// oamap.go - common interface for the open-addressed maps
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
	"io"
)

// Hasher maps a key to a 64-bit hash value. Implementations must be
// deterministic (equal keys hash equal) and should distribute well
// over all 64 bits; the maps reduce the result modulo their capacity.
// StringHasher, BytesHasher and Uint64Hasher build ready-made ones.
type Hasher[K any] func(k K) uint64

// Map is the common interface for both fixed-capacity maps.
type Map[K comparable, V any] interface {
	// Insert adds or updates the entry for key 'k'. If the key was
	// already present, the previous value is returned with updated
	// set to true. Insert fails with ErrTableFull when the table has
	// no room for a new key.
	Insert(k K, v V) (old V, updated bool, err error)

	// Get returns the value stored for key 'k' and true if the key
	// is present, false otherwise.
	Get(k K) (V, bool)

	// Contains returns true if key 'k' is present
	Contains(k K) bool

	// Delete removes the entry for key 'k' and returns its value and
	// true; a missing key returns false and is not an error.
	Delete(k K) (V, bool)

	// Len returns the number of live entries
	Len() int

	// Cap returns the fixed capacity given at construction time
	Cap() int

	// Dump metadata about the map's occupancy to io.Writer 'w'
	DumpMeta(w io.Writer)
}

// both map variants must satisfy the interface above
var _ Map[uint64, string] = &RobinMap[uint64, string]{}
var _ Map[uint64, string] = &LinearMap[uint64, string]{}
