package spg

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// GenerationConfigFromMap builds a GenerationConfig out of loosely typed
// data, usually decoded from YAML or JSON.
//
// "characters" must be a string.
// "safe" is optional. A bool is used as-is. Other truthy values (non-zero
// numbers, non-empty strings, collections) are rejected, while other falsy
// values (0, "", nil) are accepted and treated as false.
// Other keys are ignored.
func GenerationConfigFromMap(m map[string]interface{}) (GenerationConfig, error) {
	var cfg GenerationConfig
	if v, ok := m["safe"]; ok {
		if b, isBool := v.(bool); isBool {
			cfg.Safe = &b
		} else if truthy(v) {
			return GenerationConfig{}, wrongType("config.safe", "a boolean", v)
		} else {
			cfg.Safe = Bool(false)
		}
	}
	chars, ok := m["characters"].(string)
	if !ok {
		return GenerationConfig{}, wrongType("config.characters", "a string", m["characters"])
	}
	cfg.Characters = chars
	return cfg, nil
}

func truthy(v interface{}) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return !rv.IsNil()
	default:
		return true
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
//
// It applies the same rules as GenerationConfigFromMap.
func (c *GenerationConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var m map[string]interface{}
	if err := unmarshal(&m); err != nil {
		return err
	}
	cfg, err := GenerationConfigFromMap(m)
	if err != nil {
		return err
	}
	*c = cfg
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
//
// It applies the same rules as GenerationConfigFromMap.
func (c *GenerationConfig) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	cfg, err := GenerationConfigFromMap(m)
	if err != nil {
		return err
	}
	*c = cfg
	return nil
}

// Preset is a named Spec in Config.
//
// In YAML it's either a string, decoded as a Pattern,
// or a mapping, decoded as a GenerationConfig.
type Preset struct {
	Spec
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Preset) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		p.Spec = Pattern(s)
		return nil
	}
	var cfg GenerationConfig
	if err := unmarshal(&cfg); err != nil {
		return fmt.Errorf("preset must be a pattern string or a mapping: %w", err)
	}
	p.Spec = cfg
	return nil
}
