// hash.go - ready-made key hashers
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
	"github.com/dchest/siphash"
)

// StringHasher returns a Hasher over strings backed by siphash-2-4,
// keyed with a random 128-bit seed. Two hashers from separate calls
// will hash the same key differently.
func StringHasher() Hasher[string] {
	k0, k1 := rand64(), rand64()
	return func(s string) uint64 {
		return siphash.Hash(k0, k1, []byte(s))
	}
}

// BytesHasher returns a Hasher over byte slices backed by siphash-2-4,
// keyed with a random 128-bit seed.
func BytesHasher() Hasher[[]byte] {
	k0, k1 := rand64(), rand64()
	return func(b []byte) uint64 {
		return siphash.Hash(k0, k1, b)
	}
}

// Uint64Hasher returns a Hasher over uint64 keys using Zi Long Tan's
// superfast hash compression, salted with a random 64-bit value.
func Uint64Hasher() Hasher[uint64] {
	salt := rand64()
	return func(k uint64) uint64 {
		const m uint64 = 0x880355f21e6d1965
		h := k

		h *= m
		h ^= mix(salt)
		h *= m
		return mix(h)
	}
}
