package registry

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultMinConfidence applies to file definitions that leave min_confidence
// out.
const DefaultMinConfidence = 0.5

// LoadFile reads extra definitions from a YAML, JSON or TOML file with top
// level "formations" and "strategies" lists.
func LoadFile(path string) (formations, strategies []RawDefinition, err error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, nil, fmt.Errorf("read patterns file: %w", err)
	}

	if formations, err = decodeFamily(v, "formations"); err != nil {
		return nil, nil, err
	}
	if strategies, err = decodeFamily(v, "strategies"); err != nil {
		return nil, nil, err
	}
	return formations, strategies, nil
}

func decodeFamily(v *viper.Viper, key string) ([]RawDefinition, error) {
	var defs []RawDefinition
	if err := v.UnmarshalKey(key, &defs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}

	entries, _ := v.Get(key).([]any)
	for i := range defs {
		if i < len(entries) && !hasKey(entries[i], "min_confidence") {
			defs[i].MinConfidence = DefaultMinConfidence
		}
	}
	return defs, nil
}

func hasKey(entry any, key string) bool {
	switch m := entry.(type) {
	case map[string]any:
		for k := range m {
			if strings.EqualFold(k, key) {
				return true
			}
		}
	case map[any]any:
		for k := range m {
			if s, ok := k.(string); ok && strings.EqualFold(s, key) {
				return true
			}
		}
	}
	return false
}

// FromFile builds a registry from the builtin tables merged with the
// definitions in path. An empty path yields the builtin registry.
func FromFile(path string) (*Registry, error) {
	if path == "" {
		return New(builtinFormations, builtinStrategies)
	}
	formations, strategies, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return New(Merge(builtinFormations, formations), Merge(builtinStrategies, strategies))
}
