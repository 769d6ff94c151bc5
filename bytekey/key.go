// Package bytekey provides a byte-string Key type used in this module's
// examples (example_test.go) as a concrete, orderable, hashable key: something
// to exercise array.BsearchIndex/InsertSorted, the hash table's K type
// parameter, and the trees' ordering comparator against, without forcing
// every example to be typed directly over int.
//
// Adapted from the teacher's key.go: same big-endian integer encoding with
// the 1<<63 sign-offset trick for order-preserving comparisons across
// signed/unsigned widths, same NFC string normalization policy.
package bytekey

import (
	"encoding/binary"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Key is a byte slice used as an orderable, hashable key.
//
// Integer encoding policy
// -----------------------
// Integer constructors produce an 8-byte big-endian representation
// (most-significant byte first). To ensure consistent, order-preserving
// comparisons across signed and unsigned types and across different
// integer widths, every integer constructor adds an offset of `1<<63`
// before encoding the numeric value. The addition wraps in 64 bits, so
// unsigned values of 1<<63 and above encode below FromUint64(0) and do not
// keep their order.
type Key []byte

// FromBytes returns a copy of b as a Key. A nil b yields an empty (not nil) Key.
func FromBytes(b []byte) Key {
	if b == nil {
		return []byte{}
	}
	kb := make([]byte, len(b))
	copy(kb, b)
	return Key(kb)
}

// FromString returns a Key from s after normalizing it to Unicode NFC.
func FromString(s string) Key {
	s = norm.NFC.String(s)
	return FromBytes([]byte(s))
}

const int64Offset = uint64(1) << 63

func encodeInt64(i int64) Key {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(i)+int64Offset)
	return FromBytes(b[:])
}

func encodeUint64(u uint64) Key {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], u+int64Offset)
	return FromBytes(b[:])
}

// FromInt converts an int to an 8-byte order-preserving Key.
func FromInt(i int) Key { return encodeInt64(int64(i)) }

// FromInt64 converts an int64 to an 8-byte order-preserving Key.
func FromInt64(i int64) Key { return encodeInt64(i) }

// FromInt32 converts an int32 to an 8-byte order-preserving Key.
func FromInt32(i int32) Key { return encodeInt64(int64(i)) }

// FromUint converts a uint to an 8-byte Key; order is preserved only for
// values below 1<<63.
func FromUint(u uint) Key { return encodeUint64(uint64(u)) }

// FromUint64 converts a uint64 to an 8-byte Key; order is preserved only for
// values below 1<<63.
func FromUint64(u uint64) Key { return encodeUint64(u) }

// FromUint32 converts a uint32 to an 8-byte order-preserving Key.
func FromUint32(u uint32) Key { return encodeUint64(uint64(u)) }

// Bytes returns a copy of the Key's contents.
func (k Key) Bytes() []byte {
	if k == nil {
		return nil
	}
	b := make([]byte, len(k))
	copy(b, k)
	return b
}

// Clone returns an independent copy of k.
func (k Key) Clone() Key {
	if k == nil {
		return nil
	}
	return FromBytes(k)
}

// String renders the Key as uppercase hex byte tuples, e.g. "[01,AB,00]".
func (k Key) String() string {
	if len(k) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	const hex = "0123456789ABCDEF"
	for i, b := range k {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(hex[b>>4])
		sb.WriteByte(hex[b&0x0F])
	}
	sb.WriteByte(']')
	return sb.String()
}

// Equal reports whether k and other have identical contents.
func (k Key) Equal(other Key) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}

// LessThan reports whether k sorts strictly before other lexicographically.
func (k Key) LessThan(other Key) bool {
	for i := 0; i < len(k) && i < len(other); i++ {
		if k[i] != other[i] {
			return k[i] < other[i]
		}
	}
	return len(k) < len(other)
}

// Cmp returns -1, 0 or 1 as k is less than, equal to, or greater than other.
// Matches the comparator signature array.Sort/BsearchIndex/InsertSorted expect.
func (k Key) Cmp(other Key) int {
	switch {
	case k.Equal(other):
		return 0
	case k.LessThan(other):
		return -1
	default:
		return 1
	}
}

// IsEmpty reports whether the Key has zero length.
func (k Key) IsEmpty() bool { return len(k) == 0 }

// Hash returns an FNV-1a hash of the Key's bytes. It is independent of the
// hash table's internal sanitization (EMPTY/TOMBSTONE remapping): a table's
// Hasher can return this value as the raw hash, e.g.
// func(k bytekey.Key) uint32 { return k.Hash() }.
func (k Key) Hash() uint32 {
	const offset32 = 2166136261
	const prime32 = 16777619
	h := uint32(offset32)
	for _, b := range k {
		h ^= uint32(b)
		h *= prime32
	}
	return h
}
