// doc.go - top level documentation
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

// Package oamap implements two fixed-capacity, open-addressed hash maps:
//    1. RobinMap: Robin Hood hashing with backward-shift deletion
//    2. LinearMap: plain linear probing with tombstone deletion
//
// Both maps store every entry directly in a flat slot array of the
// capacity given at construction time; neither map ever grows or
// rehashes. RobinMap is the interesting one: on every collision it
// displaces whichever resident is closest to its home slot, keeping the
// variance of probe lengths across the table small, and its delete
// shifts displaced entries back one slot instead of leaving tombstones
// behind. LinearMap is retained as the simpler baseline for comparison.
//
// The hash function is a capability supplied by the caller: any
// deterministic function from a key to a well-distributed 64-bit value
// will do. StringHasher, BytesHasher and Uint64Hasher construct
// suitable ones (siphash-2-4 for variable length keys, a fasthash style
// mixer for integers), each keyed with a random seed so hash values
// differ across processes.
//
// Neither map is safe for concurrent use; a caller sharing one across
// goroutines must serialize every access with a single mutex.
//
// A caller that outgrows the fixed capacity must build a new, larger
// map and re-insert every live entry; there is no incremental rehash.
package oamap
