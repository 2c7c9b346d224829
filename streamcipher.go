// @Package streamcipher
// @Description a packetized stream encryption toolkit: fixed-width hashes, an RC-4 keystream, and a reorder-tolerant packet framing protocol
// @Page github.com/cryptogateway/streamcipher

// Package streamcipher ties together the hash, keystream, packet and
// stream subpackages behind the module's public entry points.
package streamcipher

import (
	"github.com/cryptogateway/streamcipher/hash"
	"github.com/cryptogateway/streamcipher/keystream"
	"github.com/cryptogateway/streamcipher/packet"
	"github.com/cryptogateway/streamcipher/stream"
)

const Version = "0.1.0"

// NewRC4Keystream returns a keystream cipher seeded with key, ready to
// back a Packet, an Encrypter or a Decrypter.
func NewRC4Keystream(key []byte) (keystream.Cipher, error) {
	return keystream.NewRC4(key)
}

// NewPacket draws a packet.Packet of size bytes from cipher.
func NewPacket(cipher keystream.Cipher, size int) (*packet.Packet, error) {
	return packet.New(cipher, size)
}

// NewEncrypter returns a stream encrypter backed by cipher.
func NewEncrypter(cipher keystream.Cipher) (*stream.Encrypter, error) {
	return stream.NewEncrypter(cipher)
}

// NewDecrypter returns a stream decrypter backed by cipher.
func NewDecrypter(cipher keystream.Cipher) (*stream.Decrypter, error) {
	return stream.NewDecrypter(cipher)
}

// XorHash computes the XOR checksum of data as a Hash of the given size.
func XorHash(data []byte, size uint16) hash.Hash {
	return hash.XorHashOf(data, size)
}

// Rc4Hash computes the RC-4 derived hash of data as a Hash of the given size.
func Rc4Hash(data []byte, size uint16) (hash.Hash, error) {
	return hash.Rc4HashOf(data, size)
}
