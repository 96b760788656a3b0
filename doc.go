// Package spg is the simplest strong password generator.
//
// It generates random strings out of a character pool, which can be given
// either literally with a GenerationConfig, or with a compact mini-language
// Pattern:
//
//	s, err := spg.Gens(spg.Pattern("aA0"), 16) // letters and digits, secure
//	s, err := spg.Gen(spg.GenerationConfig{Characters: "01"}, 8)
//
// Pattern tokens:
//
//	a      append a-z
//	A      append A-Z
//	0      append digits
//	.      append the punctuation set !@#$%^&*,.;:/?+=
//	- _    append a literal hyphen or underscore
//	[ ]    append the bracket and quote set ()[]{}<>|'"`~`
//	u s    use the fast (u) or secure (s) random source
//	c      append everything after it verbatim and stop parsing
//
// Two random sources are available: a fast non-cryptographic PRNG and a
// cryptographically secure one. A Generator has a default, which is used
// unless the GenerationConfig or the Pattern picks one explicitly.
// Gen uses a Generator defaulting to the fast source,
// Gens uses one defaulting to the secure source, and Create builds new ones.
//
// Non-fatal notices (empty pools, unrecognized Pattern tokens) are written at
// warn level to the global logger of package log, which discards everything
// until log.InitLogger (or WithLogger) is used.
//
// Generators are immutable and safe for concurrent use.
package spg
