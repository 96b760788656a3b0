package spg

import (
	"crypto/rand"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/lingrottin/spg.go/log"
	"github.com/lingrottin/spg.go/sampler"
)

// Generator generates random strings from Specs.
//
// It's immutable after creation and safe for concurrent use.
// The zero value is not usable, use Create or New instead.
type Generator struct {
	defaultSafe bool
	mode        sampler.Mode
	logger      log.Wrapper
	fast        sampler.IntNSource
	secure      io.Reader
	presets     map[string]Spec
}

// Option customizes a Generator created by Create.
type Option func(*Generator)

// WithLogger sets the Wrapper notices are written to.
//
// Default is log.WarnWrapper. nil silences notices.
func WithLogger(logger log.Wrapper) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithMode sets how the secure source is sampled.
//
// Default is sampler.ModeModulo.
// Create panics when mode is not valid.
func WithMode(mode sampler.Mode) Option {
	return func(g *Generator) {
		g.mode = mode
	}
}

// WithFastSource replaces the fast random source.
//
// Default is sampler.Global.
// It must be safe for concurrent use if the Generator is shared.
func WithFastSource(src sampler.IntNSource) Option {
	return func(g *Generator) {
		g.fast = src
	}
}

// WithSecureSource replaces the secure random source.
//
// Default is crypto/rand.Reader.
// It must be safe for concurrent use if the Generator is shared.
func WithSecureSource(r io.Reader) Option {
	return func(g *Generator) {
		g.secure = r
	}
}

// WithPresets registers named Specs to be used with GeneratePreset.
//
// The map is copied.
func WithPresets(presets map[string]Spec) Option {
	return func(g *Generator) {
		g.presets = make(map[string]Spec, len(presets))
		for name, spec := range presets {
			g.presets[name] = spec
		}
	}
}

// Create creates a new Generator.
//
// defaultSafe is used when a Spec doesn't choose the random source itself.
// It panics on an invalid sampler.Mode, see Config.Validate for the
// non-panicking way to check one.
func Create(defaultSafe bool, opts ...Option) *Generator {
	g := &Generator{
		defaultSafe: defaultSafe,
		logger:      log.WarnWrapper,
		fast:        sampler.Global,
		secure:      rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.NopWrapper
	}
	if g.fast == nil {
		g.fast = sampler.Global
	}
	if g.secure == nil {
		g.secure = rand.Reader
	}
	if !g.mode.Valid() {
		panic(fmt.Sprintf("spg: invalid sampling mode %v", g.mode))
	}
	return g
}

// New creates a new Generator defaulting to the fast random source.
func New(opts ...Option) *Generator {
	return Create(false, opts...)
}

// DefaultSafe returns whether g uses the secure random source by default.
func (g *Generator) DefaultSafe() bool {
	return g.defaultSafe
}

// Resolve calls Resolve with g's default and logger.
func (g *Generator) Resolve(spec Spec) (ResolvedConfig, error) {
	return Resolve(spec, g.defaultSafe, g.logger)
}

// Generate generates a random string of length characters from spec.
//
// spec must not be nil and length must not be negative,
// otherwise an *InvalidArgumentError is returned.
// When spec resolves to an empty pool, a notice is logged and empty string is
// returned without error.
//
// In secure mode the only other possible error is from reading the secure
// source.
func (g *Generator) Generate(spec Spec, length int) (string, error) {
	if isNilSpec(spec) {
		return "", missingParam("config")
	}
	if length < 0 {
		return "", &InvalidArgumentError{
			Param:  "length",
			Reason: fmt.Sprintf("expected length to be a non-negative number, but got %d", length),
		}
	}

	cfg, err := g.Resolve(spec)
	if err != nil {
		return "", err
	}
	if len(cfg.Characters) == 0 {
		notice(g.logger, reasonEmptyPool, "spg: got empty config string, ignoring generation...")
		return "", nil
	}

	var s string
	if cfg.Safe {
		s, err = sampler.Secure(g.secure, cfg.Characters, length, g.mode)
		if err != nil {
			return "", fmt.Errorf("spg: secure generation failed: %w", err)
		}
	} else {
		s = sampler.Fast(g.fast, cfg.Characters, length)
	}

	safe := strconv.FormatBool(cfg.Safe)
	generateCounter.WithLabelValues(safe, spec.form()).Inc()
	charactersCounter.WithLabelValues(safe).Add(float64(length))
	return s, nil
}

// Gen is an alias of Generate.
func (g *Generator) Gen(spec Spec, length int) (string, error) {
	return g.Generate(spec, length)
}

// GeneratePreset generates a random string from the preset registered under
// name, see WithPresets.
//
// Unknown name is an *InvalidArgumentError.
func (g *Generator) GeneratePreset(name string, length int) (string, error) {
	spec, ok := g.presets[name]
	if !ok {
		return "", &InvalidArgumentError{
			Param:  "preset",
			Reason: fmt.Sprintf("unknown preset %q", name),
		}
	}
	return g.Generate(spec, length)
}

// Presets returns the sorted names of the presets registered in g.
func (g *Generator) Presets() []string {
	names := make([]string, 0, len(g.presets))
	for name := range g.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	// Default is the Generator defaulting to the fast random source,
	// used by Gen.
	Default = Create(false)

	// Safe is the Generator defaulting to the secure random source,
	// used by Gens.
	Safe = Create(true)
)

// Gen generates a random string with Default, which uses the fast,
// non-cryptographic random source unless spec says otherwise.
func Gen(spec Spec, length int) (string, error) {
	return Default.Generate(spec, length)
}

// Gens generates a random string with Safe, which uses the
// cryptographically secure random source unless spec says otherwise.
func Gens(spec Spec, length int) (string, error) {
	return Safe.Generate(spec, length)
}
