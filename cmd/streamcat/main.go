// Command streamcat demonstrates the packetized stream protocol end to
// end: it reads stdin in PacketSize-sized chunks and either encrypts
// them into identifier/ciphertext frames, or decrypts such a frame
// stream back into plaintext.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cryptogateway/streamcipher/keystream"
	"github.com/cryptogateway/streamcipher/stream"
)

var (
	key     = flag.String("key", "", "shared RC4 key (required)")
	mode    = flag.String("mode", "encrypt", "encrypt or decrypt")
	verbose = flag.Bool("verbose", false, "log to stderr each encrypted frame's identifier, or each dropped frame's when decrypting")
)

func main() {
	flag.Parse()

	if *key == "" {
		fmt.Fprintln(os.Stderr, "streamcat: -key is required")
		os.Exit(1)
	}

	cipher, err := keystream.NewRC4([]byte(*key))
	if err != nil {
		log.Fatalf("streamcat: %v", err)
	}

	switch *mode {
	case "encrypt":
		if err := runEncrypt(cipher, os.Stdin, os.Stdout); err != nil {
			log.Fatalf("streamcat: %v", err)
		}
	case "decrypt":
		if err := runDecrypt(cipher, os.Stdin, os.Stdout); err != nil {
			log.Fatalf("streamcat: %v", err)
		}
	default:
		fmt.Fprintf(os.Stderr, "streamcat: unknown -mode %q (want encrypt or decrypt)\n", *mode)
		os.Exit(1)
	}
}

func runEncrypt(cipher keystream.Cipher, r io.Reader, w io.Writer) error {
	enc, err := stream.NewEncrypter(cipher)
	if err != nil {
		return err
	}

	buf := make([]byte, stream.PacketSize)
	for {
		n, readErr := io.ReadFull(r, buf)
		if n > 0 {
			chunk := buf[:n]
			id, err := enc.SendData(chunk)
			if err != nil {
				return err
			}
			if *verbose {
				fmt.Fprintf(os.Stderr, "streamcat: sent frame %04X (%d bytes)\n", id, n)
			}
			fmt.Fprintf(w, "%04X %s\n", id, hex.EncodeToString(chunk))
		}
		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			return nil
		}
		if readErr != nil {
			return readErr
		}
	}
}

func runDecrypt(cipher keystream.Cipher, r io.Reader, w io.Writer) error {
	dec, err := stream.NewDecrypter(cipher)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*stream.PacketSize)
	for scanner.Scan() {
		line := scanner.Text()
		idHex, payloadHex, ok := strings.Cut(line, " ")
		if !ok {
			return fmt.Errorf("malformed frame line: %q", line)
		}

		idBytes, err := hex.DecodeString(idHex)
		if err != nil || len(idBytes) != 2 {
			return fmt.Errorf("malformed frame identifier: %q", idHex)
		}
		id := uint16(idBytes[0])<<8 | uint16(idBytes[1])

		payload, err := hex.DecodeString(payloadHex)
		if err != nil {
			return fmt.Errorf("malformed frame payload: %w", err)
		}

		found, err := dec.ReceiveData(payload, id)
		if err != nil {
			return err
		}
		if !found {
			if *verbose {
				fmt.Fprintf(os.Stderr, "streamcat: dropped frame %04X, outside window\n", id)
			}
			continue
		}
		w.Write(payload)
	}
	return scanner.Err()
}
