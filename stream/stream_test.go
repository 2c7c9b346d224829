package stream

import (
	"testing"

	"github.com/cryptogateway/streamcipher/keystream"
	"github.com/stretchr/testify/assert"
)

func newPair(t *testing.T, key string) (*Encrypter, *Decrypter) {
	t.Helper()
	encCipher, err := keystream.NewRC4([]byte(key))
	assert.NoError(t, err)
	decCipher, err := keystream.NewRC4([]byte(key))
	assert.NoError(t, err)

	enc, err := NewEncrypter(encCipher)
	assert.NoError(t, err)
	dec, err := NewDecrypter(decCipher)
	assert.NoError(t, err)
	return enc, dec
}

type frame struct {
	id        uint16
	plaintext []byte
	buf       []byte
}

func send(t *testing.T, enc *Encrypter, plaintext string) frame {
	t.Helper()
	buf := []byte(plaintext)
	id, err := enc.SendData(buf)
	assert.NoError(t, err)
	return frame{id: id, plaintext: []byte(plaintext), buf: buf}
}

func TestRoundTripInOrder(t *testing.T) {
	enc, dec := newPair(t, "shared secret key")

	a := send(t, enc, "first payload, one hundred bytes or so of filler text to pad it out nicely.....")
	b := send(t, enc, "second payload")
	c := send(t, enc, "third payload")

	for _, f := range []frame{a, b, c} {
		cipher := append([]byte(nil), f.buf...)
		found, err := dec.ReceiveData(cipher, f.id)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, f.plaintext, cipher)
	}
}

func TestRoundTripOutOfOrder(t *testing.T) {
	enc, dec := newPair(t, "another shared key")

	a := send(t, enc, "A payload")
	b := send(t, enc, "B payload")
	c := send(t, enc, "C payload")

	order := []frame{b, a, c}

	for _, f := range order {
		cipher := append([]byte(nil), f.buf...)
		found, err := dec.ReceiveData(cipher, f.id)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, f.plaintext, cipher)
	}
}

func TestEncrypterBufferTooLarge(t *testing.T) {
	enc, _ := newPair(t, "key")
	_, err := enc.SendData(make([]byte, PacketSize+1))
	assert.Error(t, err)
	var target BufferTooLargeError
	assert.ErrorAs(t, err, &target)
}

func TestDecrypterBufferTooLarge(t *testing.T) {
	_, dec := newPair(t, "key")
	_, err := dec.ReceiveData(make([]byte, PacketSize+1), 1)
	assert.Error(t, err)
	var target BufferTooLargeError
	assert.ErrorAs(t, err, &target)
}

func TestDecrypterUnknownFlagIsNotAnError(t *testing.T) {
	_, dec := newPair(t, "key")
	buf := []byte("payload")
	before := append([]byte(nil), buf...)
	found, err := dec.ReceiveData(buf, 0xFFFF)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, before, buf)
}

func TestEncrypterIdentifiersStayUnique(t *testing.T) {
	enc, _ := newPair(t, "uniqueness key")
	seen := make(map[uint16]int)
	const rounds = 500
	var window []uint16

	for i := 0; i < rounds; i++ {
		buf := make([]byte, 16)
		id, err := enc.SendData(buf)
		assert.NoError(t, err)
		assert.NotZero(t, id)

		window = append(window, id)
		if len(window) > BackCheck {
			window = window[1:]
		}
		seen[id]++

		dup := make(map[uint16]int)
		for _, w := range window {
			dup[w]++
		}
		for _, n := range dup {
			assert.LessOrEqual(t, n, 1)
		}
	}
}

func TestDecrypterReorderWindow(t *testing.T) {
	enc, dec := newPair(t, "reorder window key")

	const n = DecrySize - BackCheck - 5
	frames := make([]frame, 0, n)
	for i := 0; i < n; i++ {
		frames = append(frames, send(t, enc, "payload"))
	}

	// Reverse delivery order, within the tolerated reorder window.
	for i := len(frames) - 1; i >= 0; i-- {
		f := frames[i]
		buf := append([]byte(nil), f.buf...)
		found, err := dec.ReceiveData(buf, f.id)
		assert.NoError(t, err)
		assert.True(t, found, "frame %d should still be found", i)
		assert.Equal(t, f.plaintext, buf)
	}
}
