package spg

import (
	"fmt"
	"strings"

	"github.com/lingrottin/spg.go/log"
)

// Character sets appended by Pattern tokens.
const (
	LowerLetters = "abcdefghijklmnopqrstuvwxyz"
	UpperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits       = "1234567890"
	Punctuation  = "!@#$%^&*,.;:/?+="
	// Brackets has the backtick twice, so it's picked twice as often as the
	// others.
	Brackets = "()[]{}<>|'\"`~`"
)

// Pattern is the mini-language form of a Spec.
//
// See package doc for the tokens.
type Pattern string

func (p Pattern) toConfig(defaultSafe bool, logger log.Wrapper) GenerationConfig {
	return ParsePattern(p, defaultSafe, logger)
}

func (Pattern) form() string {
	return formPattern
}

// ParsePattern converts p into the equivalent GenerationConfig.
//
// Tokens are processed by rune, from left to right.
// The last u or s token wins, defaultSafe is used when there are none.
// Unrecognized tokens are reported to logger and skipped,
// nil logger means log.WarnWrapper.
//
// The returned Safe is never nil.
func ParsePattern(p Pattern, defaultSafe bool, logger log.Wrapper) GenerationConfig {
	s := string(p)
	safe := defaultSafe
	var pool strings.Builder
	for i, r := range s {
		switch r {
		case 'a':
			pool.WriteString(LowerLetters)
		case 'A':
			pool.WriteString(UpperLetters)
		case '0':
			pool.WriteString(Digits)
		case '.':
			pool.WriteString(Punctuation)
		case '-':
			pool.WriteByte('-')
		case '_':
			pool.WriteByte('_')
		case '[', ']':
			pool.WriteString(Brackets)
		case 'u':
			safe = false
		case 's':
			safe = true
		case 'c':
			// Parsing stops at the first c, so i is also where the first c is.
			pool.WriteString(s[i+len("c"):])
			return GenerationConfig{Safe: &safe, Characters: pool.String()}
		default:
			notice(logger, reasonUnrecognizedToken, fmt.Sprintf("spg: unrecognized character %c", r))
		}
	}
	return GenerationConfig{Safe: &safe, Characters: pool.String()}
}

func notice(logger log.Wrapper, reason, msg string) {
	warningsCounter.WithLabelValues(reason).Inc()
	logger.Log(msg)
}
