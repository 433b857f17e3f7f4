package strsub

import (
	"encoding/json"
	"io"
	"os"

	"github.com/acorn-io/strsub/pkg/rules"
	"sigs.k8s.io/yaml"
)

// ReadFile reads name, or all of in when name is "" or "-".
func ReadFile(name string, in io.Reader) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(in)
	}
	return os.ReadFile(name)
}

// LoadRules reads a rule set from a YAML or JSON file.
func LoadRules(name string) (*rules.Set, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return rules.Load(data)
}

// LoadValues reads a flat map of template values from a YAML or JSON file.
// Non-string values are rendered as their JSON form.
func LoadValues(name string) (map[string]string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return parseValues(data)
}

func parseValues(data []byte) (map[string]string, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	result := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			result[k] = s
			continue
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		result[k] = string(data)
	}
	return result, nil
}
