package stream

import (
	"github.com/cryptogateway/streamcipher/keystream"
	"github.com/cryptogateway/streamcipher/packet"
)

// Decrypter keeps a ring of precomputed packets in sync with a sender's
// Encrypter, locates an incoming packet by identifier, decrypts it, and
// lazily replenishes the ring as the sender's position advances.
//
// Decrypter is not safe for concurrent use: ReceiveData must be
// serialized by the caller.
type Decrypter struct {
	cipher      keystream.Cipher
	packetArray [DecrySize]*packet.Packet
	lastValue   int
	midValue    int
}

// NewDecrypter returns a Decrypter backed by cipher, pre-populating its
// entire packet ring up front.
func NewDecrypter(cipher keystream.Cipher) (*Decrypter, error) {
	if cipher == nil {
		return nil, packet.AlgorithmBindError{Name: "<nil>"}
	}

	d := &Decrypter{
		cipher:    cipher,
		lastValue: 0,
		midValue:  LagCatch - 1,
	}

	for cnt := 0; cnt < DecrySize; cnt++ {
		p, err := d.drawGoodPacket(cnt)
		if err != nil {
			return nil, err
		}
		d.packetArray[cnt] = p
	}

	return d, nil
}

// drawGoodPacket draws packets from the cipher until one is "good": its
// identifier is nonzero and distinct from the identifiers of the
// BackCheck-1 ring slots immediately preceding idx.
func (d *Decrypter) drawGoodPacket(idx int) (*packet.Packet, error) {
	for {
		p, err := packet.New(d.cipher, PacketSize)
		if err != nil {
			return nil, err
		}
		if d.isGood(p, idx) {
			return p, nil
		}
	}
}

func (d *Decrypter) isGood(p *packet.Packet, idx int) bool {
	if p.Identifier() == 0 {
		return false
	}
	for back := 1; back < BackCheck; back++ {
		prev := (DecrySize + idx - back) % DecrySize
		if d.packetArray[prev] != nil && d.packetArray[prev].Identifier() == p.Identifier() {
			return false
		}
	}
	return true
}

// ReceiveData locates the ring slot whose packet identifier equals flag,
// starting its scan BackCheck-2 slots behind the last matched position and
// looking forward across the ring. If found, it XOR-masks buf in place
// with that packet, advances last_value, and replenishes the ring if the
// sender's position has advanced past the lag threshold.
//
// If no slot matches flag, ReceiveData returns (false, nil): this is a
// routine, non-error outcome (the incoming packet may be outside the
// current window, or a stray from a different stream), and buf is left
// untouched.
//
// len(buf) must not exceed PacketSize.
func (d *Decrypter) ReceiveData(buf []byte, flag uint16) (bool, error) {
	if len(buf) > PacketSize {
		return false, BufferTooLargeError{Len: len(buf)}
	}

	hit := -1
	for cnt := 2; cnt < DecrySize; cnt++ {
		idx := (cnt + d.lastValue + DecrySize - BackCheck) % DecrySize
		if d.packetArray[idx].Identifier() == flag {
			hit = idx
			break
		}
	}
	if hit == -1 {
		return false, nil
	}

	if err := d.packetArray[hit].Apply(buf, true); err != nil {
		return false, err
	}
	d.lastValue = hit

	lagLo := (d.midValue - LagCatch + DecrySize) % DecrySize
	if d.withinLagWindow(lagLo) {
		return true, nil
	}

	if err := d.replenish(); err != nil {
		return true, err
	}
	return true, nil
}

// withinLagWindow reports whether last_value falls in the half-open,
// wraparound-aware window (lagLo, mid_value].
func (d *Decrypter) withinLagWindow(lagLo int) bool {
	if lagLo < d.midValue {
		return d.lastValue > lagLo && d.lastValue <= d.midValue
	}
	return d.lastValue > lagLo || d.lastValue <= d.midValue
}

// replenish regenerates the ring slots between mid_value and last_value,
// then advances mid_value to last_value.
func (d *Decrypter) replenish() error {
	difference := (d.lastValue - d.midValue + DecrySize) % DecrySize
	for k := 0; k < difference; k++ {
		idx := (d.midValue - LagCatch + k + 1 + DecrySize) % DecrySize
		p, err := d.drawGoodPacket(idx)
		if err != nil {
			return err
		}
		d.packetArray[idx] = p
	}
	d.midValue = d.lastValue
	return nil
}
