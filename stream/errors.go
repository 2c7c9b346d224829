package stream

import "fmt"

// BufferTooLargeError represents an error when a caller's buffer exceeds
// PACKETSIZE, the maximum payload per SendData/ReceiveData call.
type BufferTooLargeError struct {
	Len int
}

// Error returns a formatted error message describing the oversized buffer.
func (e BufferTooLargeError) Error() string {
	return fmt.Sprintf("stream: buffer of length %d exceeds the maximum packet payload of %d bytes", e.Len, PacketSize)
}
