package schemanorm

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML decodes a YAML schema document into a JSON-like tree. YAML mappings
// with non-string keys (map[any]any) are converted recursively; entries whose
// key is not a string are dropped.
func FromYAML(data []byte) (map[string]any, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("schemanorm: invalid YAML: %w", err)
	}
	doc := yamlAnyToStringMap(node)
	if doc == nil {
		return nil, errors.New("schemanorm: YAML root is not a mapping")
	}
	return doc, nil
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively. Non-map roots
// return nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
