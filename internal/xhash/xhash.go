// Package xhash supplies a ready-made hash function for comparable key
// types, wired to dolthub/maphash — a generic, allocation-free runtime
// hasher over comparable[K]. The hash table constructors have no built-in
// fallback: every table takes an explicit Hasher, and this module's tests
// and CLI drivers pass Default[int]() or Default[uint32]() as that hasher.
// The C original likewise leaves hashing to the caller (every
// DEFINE_HASHTABLE instantiation supplies its own hash callback by hand).
package xhash

import (
	"github.com/dolthub/maphash"
)

// Default returns a hash function for comparable type K backed by its own
// maphash.Hasher; the returned function gives the same result for equal
// keys for as long as it is used. It is not sanitized against the hash
// table's reserved EMPTY/TOMBSTONE codes — callers go through
// hashtable's sanitizeHash for that.
func Default[K comparable]() func(K) uint32 {
	h := maphash.NewHasher[K]()
	return func(k K) uint32 {
		full := h.Hash(k)
		return uint32(full) ^ uint32(full>>32)
	}
}
