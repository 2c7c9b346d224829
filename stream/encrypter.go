// Package stream implements the packetized stream encryption protocol:
// an Encrypter draws uniquely-identified keystream packets and masks
// caller payloads with them, and a Decrypter keeps a ring of
// precomputed packets in sync so it can locate and decrypt them even
// when they arrive out of order.
package stream

import (
	"github.com/cryptogateway/streamcipher/keystream"
	"github.com/cryptogateway/streamcipher/packet"
)

// Protocol constants, exact per the wire format this package implements.
const (
	// PacketSize is the number of keystream bytes per packet, and the
	// maximum payload of a single SendData/ReceiveData call.
	PacketSize = 508
	// BackCheck is the width of the identifier uniqueness window the
	// Encrypter enforces, and the lookback window the Decrypter uses
	// when validating freshly generated packets.
	BackCheck = 10
	// DecrySize is the number of packets the Decrypter keeps
	// precomputed in its ring.
	DecrySize = 100
	// LagCatch is the lag threshold past which the Decrypter
	// replenishes its ring.
	LagCatch = 25
)

// Encrypter produces a sequence of uniquely-identified packets from an
// underlying keystream and XOR-masks caller payloads with them.
//
// Encrypter is not safe for concurrent use: SendData must be serialized
// by the caller, since each call advances the keystream and the
// identifier history ring.
type Encrypter struct {
	cipher  keystream.Cipher
	lastLoc int
	idCheck [BackCheck]uint16
}

// NewEncrypter returns an Encrypter backed by cipher.
func NewEncrypter(cipher keystream.Cipher) (*Encrypter, error) {
	if cipher == nil {
		return nil, packet.AlgorithmBindError{Name: "<nil>"}
	}
	return &Encrypter{cipher: cipher}, nil
}

// SendData XOR-masks buf in place with a freshly drawn, uniquely
// identified packet and returns that packet's identifier. The caller is
// expected to transmit (identifier, buf) together; the receiver uses
// the identifier to locate the matching packet via Decrypter.ReceiveData.
//
// len(buf) must not exceed PacketSize.
func (e *Encrypter) SendData(buf []byte) (uint16, error) {
	if len(buf) > PacketSize {
		return 0, BufferTooLargeError{Len: len(buf)}
	}

	var p *packet.Packet
	for {
		candidate, err := packet.New(e.cipher, PacketSize)
		if err != nil {
			return 0, err
		}
		e.idCheck[e.lastLoc] = candidate.Identifier()

		valid := e.idCheck[e.lastLoc] != 0
		if valid {
			for c := 0; c < BackCheck; c++ {
				if c != e.lastLoc && e.idCheck[c] == e.idCheck[e.lastLoc] {
					valid = false
					break
				}
			}
		}
		if valid {
			p = candidate
			break
		}
	}

	if err := p.Apply(buf, true); err != nil {
		return 0, err
	}
	identifier := p.Identifier()
	e.lastLoc = (e.lastLoc + 1) % BackCheck
	return identifier, nil
}
