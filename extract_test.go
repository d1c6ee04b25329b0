package schemanorm_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	schemanorm "github.com/reoring/schemanorm"
)

// petModel mimics a modern-dialect generator: definitions live under $defs,
// referenced fields are wrapped in allOf, and omittable fields carry a null
// default.
type petModel struct{}

func (petModel) JSONSchema(refTemplate string) (map[string]any, error) {
	ref := strings.ReplaceAll(refTemplate, "{model}", "Pet")
	return map[string]any{
		"title": "Owner",
		"type":  "object",
		"properties": map[string]any{
			"pet": map[string]any{
				"allOf":   []any{map[string]any{"$ref": ref}},
				"default": nil,
			},
			"nickname": map[string]any{
				"default": nil,
				"anyOf":   []any{map[string]any{"type": "string"}},
			},
			"note": map[string]any{
				"default": nil,
				"anyOf": []any{
					map[string]any{"type": "string"},
					map[string]any{"type": "null"},
				},
			},
		},
		"$defs": map[string]any{
			"Pet": map[string]any{"type": "object"},
		},
	}, nil
}

// legacyPetModel emits the stable layout directly; its output must pass
// through untouched, wrappers and all.
type legacyPetModel struct{}

func (legacyPetModel) Schema() (map[string]any, error) {
	return map[string]any{
		"title": "Owner",
		"type":  "object",
		"properties": map[string]any{
			"pet": map[string]any{
				"allOf": []any{map[string]any{"$ref": "#/definitions/Pet"}},
			},
		},
		"definitions": map[string]any{
			"Pet": map[string]any{"type": "object"},
		},
	}, nil
}

// dualModel implements both capabilities; the modern one must win.
type dualModel struct{}

func (dualModel) JSONSchema(refTemplate string) (map[string]any, error) {
	return map[string]any{"via": "modern"}, nil
}

func (dualModel) Schema() (map[string]any, error) {
	return map[string]any{"via": "legacy"}, nil
}

type failingModel struct{ err error }

func (m failingModel) JSONSchema(refTemplate string) (map[string]any, error) {
	return nil, m.err
}

func TestExtract_ModernModelNormalized(t *testing.T) {
	doc, diag, err := schemanorm.Extract(petModel{}, schemanorm.Options{})
	if err != nil {
		t.Fatalf("extract err: %v", err)
	}
	if !diag.HasNotes() {
		t.Fatalf("expected rewrite notes, got none")
	}

	want := map[string]any{
		"title": "Owner",
		"type":  "object",
		"properties": map[string]any{
			"pet": map[string]any{"$ref": "#/definitions/Pet"},
			"nickname": map[string]any{
				"anyOf": []any{map[string]any{"type": "string"}},
			},
			"note": map[string]any{
				"default": nil,
				"anyOf": []any{
					map[string]any{"type": "string"},
					map[string]any{"type": "null"},
				},
			},
		},
		"definitions": map[string]any{
			"Pet": map[string]any{"type": "object"},
		},
	}
	if diff := schemanorm.Diff(want, doc); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestExtract_LegacyModelVerbatim(t *testing.T) {
	doc, diag, err := schemanorm.Extract(legacyPetModel{}, schemanorm.Options{})
	if err != nil {
		t.Fatalf("extract err: %v", err)
	}
	if diag.HasNotes() {
		t.Fatalf("legacy output should not be rewritten: %v", diag.Notes())
	}

	want, _ := legacyPetModel{}.Schema()
	if !reflect.DeepEqual(doc, want) {
		t.Fatalf("legacy schema mismatch\n got=%v\nwant=%v", doc, want)
	}
}

func TestExtract_ModernCapabilityWins(t *testing.T) {
	doc, _, err := schemanorm.Extract(dualModel{}, schemanorm.Options{})
	if err != nil {
		t.Fatalf("extract err: %v", err)
	}
	if via, _ := doc["via"].(string); via != "modern" {
		t.Fatalf("expected modern capability, got %q", via)
	}
}

func TestExtract_NoCapability(t *testing.T) {
	_, _, err := schemanorm.Extract(struct{}{}, schemanorm.Options{})
	if !errors.Is(err, schemanorm.ErrNoSchemaCapability) {
		t.Fatalf("expected ErrNoSchemaCapability, got %v", err)
	}
}

func TestExtract_ModelErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	_, _, err := schemanorm.Extract(failingModel{err: boom}, schemanorm.Options{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected model error to propagate, got %v", err)
	}
}

func TestNormalize_DefsContainerRenamed(t *testing.T) {
	doc := map[string]any{
		"$defs": map[string]any{
			"Pet": map[string]any{"type": "object"},
		},
	}
	diag := schemanorm.Normalize(doc, schemanorm.Options{})
	if !diag.HasNotes() {
		t.Fatalf("expected container-rename note")
	}
	if _, ok := doc["$defs"]; ok {
		t.Fatalf("$defs should be gone: %v", doc)
	}
	want := map[string]any{"Pet": map[string]any{"type": "object"}}
	if !reflect.DeepEqual(doc["definitions"], want) {
		t.Fatalf("definitions mismatch\n got=%v\nwant=%v", doc["definitions"], want)
	}
}

func TestNormalize_CustomKeys(t *testing.T) {
	doc := map[string]any{
		"components": map[string]any{"Pet": map[string]any{}},
	}
	opts := schemanorm.Options{DefsKey: "components", DefinitionsKey: "schemas"}
	_ = schemanorm.Normalize(doc, opts)
	if _, ok := doc["components"]; ok {
		t.Fatalf("components should be renamed: %v", doc)
	}
	if _, ok := doc["schemas"]; !ok {
		t.Fatalf("schemas key missing: %v", doc)
	}
}

func TestNormalize_NilAndCleanDocs(t *testing.T) {
	if diag := schemanorm.Normalize(nil, schemanorm.Options{}); diag.HasNotes() {
		t.Fatalf("nil doc should produce no notes: %v", diag.Notes())
	}
	doc := map[string]any{"type": "object"}
	if diag := schemanorm.Normalize(doc, schemanorm.Options{}); diag.HasNotes() {
		t.Fatalf("clean doc should produce no notes: %v", diag.Notes())
	}
}
