package spg

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"github.com/lingrottin/spg.go/configbp"
	"github.com/lingrottin/spg.go/log"
	"github.com/lingrottin/spg.go/sampler"
)

// Config is the configuration for a Generator.
//
// Can be deserialized from YAML, for example:
//
//	defaultSafe: true
//	sampling: rejection
//	log:
//	  level: warn
//	presets:
//	  pin: "0"
//	  token:
//	    characters: "0123456789abcdef"
type Config struct {
	// DefaultSafe is the default random source of the Generator.
	DefaultSafe bool `yaml:"defaultSafe"`

	// Sampling is either "modulo" (default) or "rejection".
	Sampling sampler.Mode `yaml:"sampling"`

	// Log is not applied by NewFromConfig,
	// pass it to log.InitFromConfig to set up the global logger.
	Log log.Config `yaml:"log"`

	Presets map[string]Preset `yaml:"presets"`
}

// Validate returns all the problems found in c combined, or nil.
func (c Config) Validate() error {
	var err error
	if !c.Sampling.Valid() {
		err = multierr.Append(err, fmt.Errorf("spg: unknown sampling mode %v", c.Sampling))
	}

	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			err = multierr.Append(err, fmt.Errorf("spg: preset name %q is blank", name))
		}
		if isNilSpec(c.Presets[name].Spec) {
			err = multierr.Append(err, fmt.Errorf("spg: preset %q has no pattern or config", name))
		}
	}
	return err
}

// NewFromConfig validates cfg and creates a Generator from it.
//
// opts are applied after the ones derived from cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	presets := make(map[string]Spec, len(cfg.Presets))
	for name, p := range cfg.Presets {
		presets[name] = p.Spec
	}
	all := append([]Option{
		WithMode(cfg.Sampling),
		WithPresets(presets),
	}, opts...)
	return Create(cfg.DefaultSafe, all...), nil
}

// LoadConfig parses and validates the YAML config file at path.
//
// Environment variables in the file are substituted, see
// configbp.ParseStrictFile.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if err := configbp.ParseStrictFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
