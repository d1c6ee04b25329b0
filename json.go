package schemanorm

import (
	"fmt"

	j "github.com/goccy/go-json"
)

// FromJSON decodes a raw JSON schema document into a mutable tree.
func FromJSON(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := j.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schemanorm: invalid JSON: %w", err)
	}
	return doc, nil
}

// ToJSON renders a schema document as compact JSON.
func ToJSON(doc map[string]any) ([]byte, error) {
	return j.Marshal(doc)
}

// ToJSONIndent renders a schema document as indented JSON for display.
func ToJSONIndent(doc map[string]any) ([]byte, error) {
	return j.MarshalIndent(doc, "", "  ")
}
