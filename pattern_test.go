package spg_test

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"

	"github.com/lingrottin/spg.go"
	"github.com/lingrottin/spg.go/log"
)

func TestParsePattern(t *testing.T) {
	for _, c := range []struct {
		desc        string
		pattern     spg.Pattern
		defaultSafe bool
		want        spg.GenerationConfig
		warnings    []string
	}{
		{
			desc:    "empty",
			pattern: "",
			want:    spg.GenerationConfig{Safe: spg.Bool(false)},
		},
		{
			desc:        "empty-safe-default",
			pattern:     "",
			defaultSafe: true,
			want:        spg.GenerationConfig{Safe: spg.Bool(true)},
		},
		{
			desc:    "letters",
			pattern: "aA",
			want: spg.GenerationConfig{
				Safe:       spg.Bool(false),
				Characters: spg.LowerLetters + spg.UpperLetters,
			},
		},
		{
			desc:    "order-and-duplicates",
			pattern: "0a0",
			want: spg.GenerationConfig{
				Safe:       spg.Bool(false),
				Characters: "1234567890" + spg.LowerLetters + "1234567890",
			},
		},
		{
			desc:    "symbols",
			pattern: ".-_[]",
			want: spg.GenerationConfig{
				Safe:       spg.Bool(false),
				Characters: "!@#$%^&*,.;:/?+=" + "-" + "_" + "()[]{}<>|'\"`~`" + "()[]{}<>|'\"`~`",
			},
		},
		{
			desc:    "last-safety-wins",
			pattern: "usus",
			want:    spg.GenerationConfig{Safe: spg.Bool(true)},
		},
		{
			desc:        "unsafe-overrides-default",
			pattern:     "ssu",
			defaultSafe: true,
			want:        spg.GenerationConfig{Safe: spg.Bool(false)},
		},
		{
			desc:    "escape",
			pattern: "c1",
			want:    spg.GenerationConfig{Safe: spg.Bool(false), Characters: "1"},
		},
		{
			desc:    "escape-keeps-everything-after",
			pattern: "0scuAc中文🙂",
			want: spg.GenerationConfig{
				Safe:       spg.Bool(true),
				Characters: "1234567890" + "uAc中文🙂",
			},
		},
		{
			desc:    "escape-at-end",
			pattern: "ac",
			want:    spg.GenerationConfig{Safe: spg.Bool(false), Characters: spg.LowerLetters},
		},
		{
			desc:    "unrecognized",
			pattern: "a!中",
			want:    spg.GenerationConfig{Safe: spg.Bool(false), Characters: spg.LowerLetters},
			warnings: []string{
				"spg: unrecognized character !",
				"spg: unrecognized character 中",
			},
		},
		{
			desc:    "no-warnings-after-escape",
			pattern: "c!?",
			want:    spg.GenerationConfig{Safe: spg.Bool(false), Characters: "!?"},
		},
	} {
		t.Run(c.desc, func(t *testing.T) {
			var recorder log.Recorder
			got := spg.ParsePattern(c.pattern, c.defaultSafe, recorder.Wrapper())
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("ParsePattern(%q) mismatch (-got +want):\n%s", c.pattern, diff)
			}
			if diff := cmp.Diff(recorder.Messages(), c.warnings); diff != "" {
				t.Errorf("ParsePattern(%q) warnings mismatch (-got +want):\n%s", c.pattern, diff)
			}
		})
	}
}

func TestBracketsLength(t *testing.T) {
	if got := len([]rune(spg.Brackets)); got != 14 {
		t.Errorf("Expected 14 runes in Brackets, got %d", got)
	}
}

// randomPattern generates patterns made mostly of valid tokens.
type randomPattern string

func (randomPattern) Generate(r *rand.Rand, _ int) reflect.Value {
	const tokens = "aA0.-_[]usc1x"
	b := make([]byte, r.Intn(20))
	for i := range b {
		b[i] = tokens[r.Intn(len(tokens))]
	}
	return reflect.ValueOf(randomPattern(b))
}

var _ quick.Generator = randomPattern("")

func TestResolveIdempotent(t *testing.T) {
	f := func(p randomPattern, defaultSafe bool) bool {
		first, err := spg.Resolve(spg.Pattern(p), defaultSafe, log.NopWrapper)
		if err != nil {
			t.Errorf("Resolve(%q) returned error: %v", p, err)
			return false
		}
		second, err := spg.Resolve(spg.Pattern(p), defaultSafe, log.NopWrapper)
		if err != nil {
			t.Errorf("Resolve(%q) returned error: %v", p, err)
			return false
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Resolve(%q) is not idempotent (-first +second):\n%s", p, diff)
			return false
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestResolve(t *testing.T) {
	t.Run("inherit", func(t *testing.T) {
		got, err := spg.Resolve(spg.GenerationConfig{Characters: "ab"}, true, log.TestWrapper(t))
		if err != nil {
			t.Fatal(err)
		}
		want := spg.ResolvedConfig{Safe: true, Characters: []rune("ab")}
		if diff := cmp.Diff(got, want); diff != "" {
			t.Errorf("Resolve mismatch (-got +want):\n%s", diff)
		}
	})

	t.Run("override", func(t *testing.T) {
		got, err := spg.Resolve(&spg.GenerationConfig{Safe: spg.Bool(false), Characters: "中文"}, true, log.TestWrapper(t))
		if err != nil {
			t.Fatal(err)
		}
		want := spg.ResolvedConfig{Safe: false, Characters: []rune{'中', '文'}}
		if diff := cmp.Diff(got, want); diff != "" {
			t.Errorf("Resolve mismatch (-got +want):\n%s", diff)
		}
	})

	t.Run("nil", func(t *testing.T) {
		var cfg *spg.GenerationConfig
		for _, spec := range []spg.Spec{nil, cfg} {
			if _, err := spg.Resolve(spec, false, log.TestWrapper(t)); err == nil {
				t.Errorf("Expected error for %#v", spec)
			}
		}
	})
}
