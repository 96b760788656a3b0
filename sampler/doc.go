// Package sampler draws random strings out of a character pool.
//
// It provides two strategies:
//
// 1. Fast, which uses a non-cryptographic PRNG (math/rand/v2 by default).
//
// 2. Secure, which reads random bytes from a cryptographically secure source
// (crypto/rand by default).
//
// Both sample with replacement, so duplicated runes in the pool increase their
// chance of being picked.
package sampler
