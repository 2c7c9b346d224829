package hash

import "github.com/cryptogateway/streamcipher/keystream"

// Rc4HashOf hashes data into a Hash of size bytes by repeatedly keying a
// fresh RC4 keystream with successive size-byte chunks of data and
// XORing the first size keystream bytes of each into the running hash
// state. When data is empty the loop never runs and the all-zero hash
// of the requested size is returned.
func Rc4HashOf(data []byte, size uint16) (Hash, error) {
	h := New(AlgorithmRC4, size)
	if size == 0 {
		return h, nil
	}

	off := 0
	for off < len(data) {
		end := off + int(size)
		if end > len(data) {
			end = len(data)
		}
		chunk := data[off:end]
		off = end

		rc4, err := keystream.NewRC4(chunk)
		if err != nil {
			return Hash{}, err
		}
		for k := 0; k < int(size); k++ {
			h.bytes[k] ^= rc4.Next()
		}
	}
	return h, nil
}
