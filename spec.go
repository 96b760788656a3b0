package spg

import (
	"github.com/lingrottin/spg.go/log"
)

// Spec is either a GenerationConfig or a Pattern.
//
// It's sealed, there's no way to implement it outside of this package.
type Spec interface {
	toConfig(defaultSafe bool, logger log.Wrapper) GenerationConfig
	form() string
}

var (
	_ Spec = GenerationConfig{}
	_ Spec = (*GenerationConfig)(nil)
	_ Spec = Pattern("")
)

// GenerationConfig is the structured form of a Spec.
type GenerationConfig struct {
	// Safe selects the secure random source when true,
	// and the fast one when false.
	//
	// nil means using the Generator's default.
	Safe *bool `yaml:"safe" json:"safe,omitempty"`

	// Characters is the pool to pick from, as-is.
	//
	// Duplicated characters are picked more often.
	// Empty Characters makes generation return empty string with a notice.
	Characters string `yaml:"characters" json:"characters"`
}

// Bool returns a pointer to b, to be used with GenerationConfig.Safe.
func Bool(b bool) *bool {
	return &b
}

func (c GenerationConfig) toConfig(bool, log.Wrapper) GenerationConfig {
	return c
}

func (GenerationConfig) form() string {
	return formConfig
}

// ResolvedConfig is a Spec with every decision made.
type ResolvedConfig struct {
	Safe bool

	// Characters are the runes of the pool, in order.
	Characters []rune
}

func isNilSpec(spec Spec) bool {
	switch s := spec.(type) {
	case nil:
		return true
	case *GenerationConfig:
		return s == nil
	case Preset:
		return isNilSpec(s.Spec)
	case *Preset:
		return s == nil || isNilSpec(s.Spec)
	}
	return false
}

// Resolve turns spec into a ResolvedConfig.
//
// defaultSafe is used when spec doesn't choose a random source.
// Notices about unrecognized Pattern tokens are written to logger,
// nil logger means log.WarnWrapper.
//
// The only error it returns is an *InvalidArgumentError for nil spec.
func Resolve(spec Spec, defaultSafe bool, logger log.Wrapper) (ResolvedConfig, error) {
	if isNilSpec(spec) {
		return ResolvedConfig{}, missingParam("config")
	}
	cfg := spec.toConfig(defaultSafe, logger)
	safe := defaultSafe
	if cfg.Safe != nil {
		safe = *cfg.Safe
	}
	return ResolvedConfig{
		Safe:       safe,
		Characters: []rune(cfg.Characters),
	}, nil
}
