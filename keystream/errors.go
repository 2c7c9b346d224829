package keystream

import "fmt"

// KeyTooShortError represents an error when an RC4 key has zero length.
type KeyTooShortError struct{}

// Error returns a formatted error message describing the empty key.
func (e KeyTooShortError) Error() string {
	return "keystream/rc4: key must be at least 1 byte long"
}

// KeyTooLongError represents an error when an RC4 key exceeds MAX bytes.
type KeyTooLongError int

// Error returns a formatted error message describing the oversized key.
func (e KeyTooLongError) Error() string {
	return fmt.Sprintf("keystream/rc4: key length %d exceeds the maximum of %d bytes", int(e), MAX)
}
