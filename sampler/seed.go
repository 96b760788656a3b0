package sampler

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// cryptoReader is replaced in tests.
var cryptoReader = rand.Read

// GetSeed returns a seed for pseudo-random generator.
//
// It tries to use crypto/rand to read an int64,
// and fallback to use current time if that fails for whatever reason.
// Partial reads are mixed with the current time instead of being discarded.
func GetSeed() int64 {
	var buf [8]byte
	n, err := cryptoReader(buf[:])
	seed := int64(binary.BigEndian.Uint64(buf[:]))
	if err != nil || n < len(buf) {
		seed ^= time.Now().UnixNano()
	}
	return seed
}
