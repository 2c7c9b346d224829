// Package hash implements a small family of fixed-width cryptographic
// hash values sharing one contract: an algorithm tag, a byte length, and
// a big-endian-reversed hex wire format. Hash is a value type — freely
// copyable, totally ordered, and safe to pass around or compare with ==
// style Compare calls.
package hash

import (
	"encoding/hex"
	"strings"
)

// Algorithm IDs tag which hash function produced a Hash's bytes.
const (
	AlgorithmNull uint16 = iota
	AlgorithmXor
	AlgorithmRC4
)

// Supported hash widths, in bytes.
const (
	Size64  = 8
	Size128 = 16
	Size256 = 32
	Size512 = 64
)

// Hash is a fixed-width, algorithm-tagged hash value.
type Hash struct {
	algorithm uint16
	size      uint16
	bytes     []byte
}

// New returns a zeroed Hash of the given algorithm and size.
func New(algorithm uint16, size uint16) Hash {
	return Hash{algorithm: algorithm, size: size, bytes: make([]byte, size)}
}

// FromBytes returns a Hash whose body is a copy of the first size bytes
// of data. No hashing is performed; this rehydrates a hash value that
// was computed elsewhere (e.g. read off the wire).
func FromBytes(algorithm uint16, data []byte, size uint16) Hash {
	h := New(algorithm, size)
	copy(h.bytes, data)
	return h
}

// FromString is FromBytes over the bytes of s.
func FromString(algorithm uint16, s string, size uint16) Hash {
	return FromBytes(algorithm, []byte(s), size)
}

// Algorithm reports the algorithm ID this hash is tagged with.
func (h Hash) Algorithm() uint16 {
	return h.algorithm
}

// Size reports the number of bytes in this hash.
func (h Hash) Size() uint16 {
	return h.size
}

// Get returns the byte at index i, or 0 if i is out of bounds.
func (h Hash) Get(i int) byte {
	if i < 0 || i >= len(h.bytes) {
		return 0
	}
	return h.bytes[i]
}

// Set writes v to index i. It reports IndexOutOfRangeError if i is out
// of bounds, leaving the hash unmodified. Copies of h made before the
// call keep their old bytes.
func (h *Hash) Set(i int, v byte) error {
	if i < 0 || i >= len(h.bytes) {
		return IndexOutOfRangeError{Index: i, Size: len(h.bytes)}
	}
	b := make([]byte, len(h.bytes))
	copy(b, h.bytes)
	b[i] = v
	h.bytes = b
	return nil
}

// Compare orders hashes lexicographically by (algorithm, size, bytes
// compared from the highest index down to the lowest). It returns -1, 0
// or 1.
func (h Hash) Compare(other Hash) int {
	if h.algorithm != other.algorithm {
		if h.algorithm > other.algorithm {
			return 1
		}
		return -1
	}
	if h.size != other.size {
		if h.size > other.size {
			return 1
		}
		return -1
	}
	for i := len(h.bytes); i > 0; i-- {
		a, b := h.bytes[i-1], other.bytes[i-1]
		if a > b {
			return 1
		}
		if a < b {
			return -1
		}
	}
	return 0
}

// Equal reports whether h and other have the same algorithm, size and bytes.
func (h Hash) Equal(other Hash) bool {
	return h.Compare(other) == 0
}

// ToHex renders the hash as uppercase hex, byte order reversed: byte 0
// appears last in the string and byte size-1 appears first. This
// reversal is a wire contract, not an implementation detail, and must
// not be "corrected".
func (h Hash) ToHex() string {
	var b strings.Builder
	b.Grow(len(h.bytes) * 2)
	for i := len(h.bytes) - 1; i >= 0; i-- {
		b.WriteString(strings.ToUpper(hex.EncodeToString(h.bytes[i : i+1])))
	}
	return b.String()
}

// FromHex parses s, a reversed-byte-order hex string produced by ToHex,
// resizing the hash to match s's width. s must be exactly 2*size
// characters for size in {8, 16, 32, 64}; any other length, or a
// character that is not a hex digit, empties the hash (size 0) and
// returns ParseError.
func (h *Hash) FromHex(s string) error {
	var size uint16
	switch len(s) {
	case Size64 * 2:
		size = Size64
	case Size128 * 2:
		size = Size128
	case Size256 * 2:
		size = Size256
	case Size512 * 2:
		size = Size512
	default:
		h.size = 0
		h.bytes = nil
		return ParseError(len(s))
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		h.size = 0
		h.bytes = nil
		return ParseError(len(s))
	}

	h.size = size
	h.bytes = make([]byte, size)
	for i := range h.bytes {
		h.bytes[i] = raw[len(raw)-1-i]
	}
	return nil
}
