package test

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gur/fountain"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// MakeMessage generates a deterministic pseudorandom message from a seed
// string. The same seed strings produce the well-known multi-part test
// vectors.
func MakeMessage(seed string, length int) []byte {
	rng := fountain.NewXoshiro256([]byte(seed))
	message := make([]byte, length)
	for i := range message {
		message[i] = rng.NextByte()
	}
	return message
}
