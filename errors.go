// errors.go - public errors exposed by oamap
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
)

var (
	// ErrTableFull is returned by Insert when every slot is occupied
	// and the key is not already present. The capacity is fixed at
	// construction time; the caller must build a larger map and
	// re-insert if it needs more room.
	ErrTableFull = errors.New("table is full")

	// ErrBadCapacity is returned when constructing a map with a
	// non-positive capacity.
	ErrBadCapacity = errors.New("capacity must be greater than zero")

	// ErrNoHasher is returned when constructing a map with a nil
	// hash function.
	ErrNoHasher = errors.New("hash function is nil")
)
