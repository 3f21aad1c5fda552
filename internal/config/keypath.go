package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// GetValue retrieves a single field from a Config by its YAML key.
func GetValue(cfg *Config, key string) (any, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	m, err := configToMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	val, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("key %q is not set", key)
	}
	return val, nil
}

// ValidateKey checks that key names a Config field. It uses yaml struct
// tags to build the valid key set.
func ValidateKey(key string) error {
	keys := yamlKeys(reflect.TypeOf(Config{}))
	if !keys[key] {
		return fmt.Errorf("unknown key %q; valid keys: %s", key, sortedKeys(keys))
	}
	return nil
}

// configToMap marshals a Config to a map via YAML round-trip.
func configToMap(cfg *Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

// yamlKeys extracts yaml tag names from a struct type.
func yamlKeys(t reflect.Type) map[string]bool {
	keys := make(map[string]bool)
	for i := range t.NumField() {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name != "" {
			keys[name] = true
		}
	}
	return keys
}

// sortedKeys returns a comma-separated sorted list of map keys.
func sortedKeys(m map[string]bool) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
