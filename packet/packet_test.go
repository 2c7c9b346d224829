package packet

import (
	"testing"

	"github.com/cryptogateway/streamcipher/internal/mocktest"
	"github.com/cryptogateway/streamcipher/keystream"
	"github.com/stretchr/testify/assert"
)

func TestNewRejectsSmallSize(t *testing.T) {
	cipher, err := keystream.NewRC4([]byte("key"))
	assert.NoError(t, err)

	_, err = New(cipher, 20)
	assert.Error(t, err)
	var target PacketSizeTooSmallError
	assert.ErrorAs(t, err, &target)
}

func TestNewRejectsNilCipher(t *testing.T) {
	_, err := New(nil, 508)
	assert.Error(t, err)
	var target AlgorithmBindError
	assert.ErrorAs(t, err, &target)
}

func TestNewRejectsNullAlgorithm(t *testing.T) {
	_, err := New(mocktest.NullCipher{}, 508)
	assert.Error(t, err)
	var target AlgorithmBindError
	assert.ErrorAs(t, err, &target)
}

func TestNewIdentifierOverwriteQuirk(t *testing.T) {
	// Bytes 0,1 form the identifier; bytes 2,3 (the third and fourth
	// draws) end up at body positions 0 and 1, overwriting the first
	// two draws there.
	cipher := mocktest.NewFixedCipher([]byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE})
	p, err := New(cipher, 21)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xAA)<<8^0xBB, p.Identifier())

	peek := make([]byte, 2)
	assert.NoError(t, p.Apply(peek, true))
	assert.Equal(t, byte(0xCC), peek[0])
	assert.Equal(t, byte(0xDD), peek[1])
}

func TestApplyIsInvolution(t *testing.T) {
	cipher, err := keystream.NewRC4([]byte("another key"))
	assert.NoError(t, err)
	p, err := New(cipher, 508)
	assert.NoError(t, err)

	original := []byte("the quick brown fox jumps over the lazy dog")
	buf := append([]byte(nil), original...)

	assert.NoError(t, p.Apply(buf, true))
	assert.NotEqual(t, original, buf)
	assert.NoError(t, p.Apply(buf, true))
	assert.Equal(t, original, buf)
}

func TestApplyUnsafeLength(t *testing.T) {
	cipher, err := keystream.NewRC4([]byte("k"))
	assert.NoError(t, err)
	p, err := New(cipher, 21)
	assert.NoError(t, err)

	buf := make([]byte, 100)
	err = p.Apply(buf, false)
	assert.Error(t, err)
	var target UnsafeLengthError
	assert.ErrorAs(t, err, &target)
}

func TestApplySuppressedLongBuffer(t *testing.T) {
	cipher, err := keystream.NewRC4([]byte("k"))
	assert.NoError(t, err)
	p, err := New(cipher, 21)
	assert.NoError(t, err)

	buf := make([]byte, 100)
	assert.NoError(t, p.Apply(buf, true))
}
