// Package packet implements the keystream packet: a fixed-length block
// of keystream bytes addressable by a 16-bit identifier, used by the
// stream package as a one-time XOR mask.
package packet

import "github.com/cryptogateway/streamcipher/keystream"

// Packet is a fixed-length block of keystream bytes together with the
// 16-bit identifier derived from the first two bytes drawn for it.
type Packet struct {
	bytes      []byte
	identifier uint16
}

// New draws a packet of size bytes from cipher. size must be greater
// than 20; cipher must be non-nil and report an algorithm other than
// keystream.AlgorithmNull.
//
// The identifier is derived from the first two bytes drawn from cipher,
// but those two draws are then overwritten: the packet body is filled
// by drawing size further bytes starting at index 0, so bytes[0] and
// bytes[1] hold the third and fourth draws, not the first two. This is
// a deliberately preserved quirk, not a bug to fix — an implementation
// that "corrects" it is not wire compatible.
func New(cipher keystream.Cipher, size int) (*Packet, error) {
	if cipher == nil {
		return nil, AlgorithmBindError{Name: "<nil>"}
	}
	if cipher.Algorithm() == keystream.AlgorithmNull {
		return nil, AlgorithmBindError{Name: "NULL Algorithm"}
	}
	if size <= 20 {
		return nil, PacketSizeTooSmallError(size)
	}

	b0 := cipher.Next()
	b1 := cipher.Next()
	identifier := uint16(b0)<<8 ^ uint16(b1)

	bytes := make([]byte, size)
	for k := 0; k < size; k++ {
		bytes[k] = cipher.Next()
	}

	return &Packet{bytes: bytes, identifier: identifier}, nil
}

// Identifier returns the packet's 16-bit identifier. Zero is reserved,
// but New does not exclude it: whenever the first two draws are both
// zero the identifier is zero. Callers that require uniqueness (stream
// package) reject it explicitly.
func (p *Packet) Identifier() uint16 {
	return p.identifier
}

// Size returns the number of keystream bytes in the packet body.
func (p *Packet) Size() int {
	return len(p.bytes)
}

// Apply XORs buf in place against the packet's bytes, with the mask
// repeating (stride = Size()) if buf is longer than the packet. Apply
// is its own inverse: applying it twice with the same packet recovers
// the original buffer.
//
// If len(buf) exceeds the packet size and suppress is false, Apply
// refuses and returns UnsafeLengthError without modifying buf.
func (p *Packet) Apply(buf []byte, suppress bool) error {
	if !suppress && len(buf) > len(p.bytes) {
		return UnsafeLengthError{Len: len(buf), PacketSize: len(p.bytes)}
	}
	for k := range buf {
		buf[k] ^= p.bytes[k%len(p.bytes)]
	}
	return nil
}
