package sampler

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// Mode controls how Secure maps random bytes onto pool indexes.
type Mode int

// Enums for Mode.
const (
	// ModeModulo reads one byte per output rune and uses byte % len(pool) as
	// the index.
	//
	// This is compatible with other SPG implementations bit for bit,
	// but it's biased when len(pool) doesn't divide 256,
	// and runes beyond index 255 of the pool can never be picked.
	ModeModulo Mode = iota

	// ModeRejection reads 32-bit words and rejects the ones that would cause
	// modulo bias, so every rune in the pool has the same chance.
	ModeRejection
)

func (m Mode) String() string {
	switch m {
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	case ModeModulo:
		return "modulo"
	case ModeRejection:
		return "rejection"
	}
}

// Valid reports whether m is one of the modes defined in this package.
func (m Mode) Valid() bool {
	return m == ModeModulo || m == ModeRejection
}

// ParseMode parses the string version of a Mode, as returned by Mode.String.
//
// Empty string is parsed as ModeModulo.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "modulo":
		return ModeModulo, nil
	case "rejection":
		return ModeRejection, nil
	default:
		return ModeModulo, fmt.Errorf("sampler: unknown mode %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Mode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return m.UnmarshalText([]byte(s))
}

// Fast generates a string of length runes, each one picked from pool with
// src.
//
// It returns empty string when pool is empty or length <= 0.
// It's not suitable for security purposes, use Secure for that instead.
func Fast(src IntNSource, pool []rune, length int) string {
	if len(pool) == 0 || length <= 0 {
		return ""
	}
	if src == nil {
		src = Global
	}
	ret := make([]rune, length)
	for i := range ret {
		ret[i] = pool[src.IntN(len(pool))]
	}
	return string(ret)
}

// Secure generates a string of length runes, each one picked from pool with
// random bytes read from r.
//
// r should be a cryptographically secure source, usually crypto/rand.Reader.
// It returns empty string when pool is empty or length <= 0.
// When reading from r fails, the error is returned and no partial result is
// returned.
func Secure(r io.Reader, pool []rune, length int, mode Mode) (string, error) {
	if len(pool) == 0 || length <= 0 {
		return "", nil
	}
	switch mode {
	default:
		return "", fmt.Errorf("sampler: unknown mode %v", mode)
	case ModeModulo:
		return secureModulo(r, pool, length)
	case ModeRejection:
		return secureRejection(r, pool, length)
	}
}

func secureModulo(r io.Reader, pool []rune, length int) (string, error) {
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("sampler: reading %d random bytes: %w", length, err)
	}
	ret := make([]rune, length)
	for i, b := range buf {
		ret[i] = pool[int(b)%len(pool)]
	}
	return string(ret), nil
}

const (
	wordSize = 4

	// maxBatchWords caps the size of a single read from the secure source.
	maxBatchWords = 512
)

func secureRejection(r io.Reader, pool []rune, length int) (string, error) {
	n := uint64(len(pool))
	// The largest multiple of n that fits in 32 bits,
	// words at or above it are rejected.
	limit := (1 << 32) - (1<<32)%n

	ret := make([]rune, 0, length)
	buf := make([]byte, min(length, maxBatchWords)*wordSize)
	for len(ret) < length {
		words := min(length-len(ret), maxBatchWords)
		chunk := buf[:words*wordSize]
		if _, err := io.ReadFull(r, chunk); err != nil {
			return "", fmt.Errorf("sampler: reading %d random bytes: %w", len(chunk), err)
		}
		for i := 0; i < len(chunk); i += wordSize {
			v := uint64(binary.BigEndian.Uint32(chunk[i:]))
			if v >= limit {
				continue
			}
			ret = append(ret, pool[v%n])
		}
	}
	return string(ret), nil
}
