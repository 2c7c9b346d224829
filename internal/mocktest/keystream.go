// Package mocktest provides keystream.Cipher test doubles: minimal
// stand-ins implementing a real interface, configurable to exercise
// error paths that would otherwise require contriving real cipher
// state.
package mocktest

import "github.com/cryptogateway/streamcipher/keystream"

// NullCipher reports the null algorithm and never advances. It exists
// to exercise packet.New's algorithm-binding check without requiring a
// literal nil keystream.Cipher.
type NullCipher struct{}

// Next always returns 0.
func (NullCipher) Next() byte { return 0 }

// Algorithm reports keystream.AlgorithmNull.
func (NullCipher) Algorithm() uint16 { return keystream.AlgorithmNull }

// FixedCipher cycles through a fixed byte sequence, letting tests pin
// down exactly which bytes a packet or stream component will draw
// instead of depending on RC4 output.
type FixedCipher struct {
	Bytes []byte
	pos   int
}

// NewFixedCipher returns a FixedCipher cycling through bytes.
func NewFixedCipher(bytes []byte) *FixedCipher {
	return &FixedCipher{Bytes: bytes}
}

// Next returns the next byte in the cycle.
func (f *FixedCipher) Next() byte {
	if len(f.Bytes) == 0 {
		return 0
	}
	b := f.Bytes[f.pos%len(f.Bytes)]
	f.pos++
	return b
}

// Algorithm reports keystream.AlgorithmRC4, since FixedCipher stands in
// for a bound, working keystream.
func (f *FixedCipher) Algorithm() uint16 { return keystream.AlgorithmRC4 }
