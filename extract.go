package schemanorm

import "errors"

// Schemer is the modern schema capability: the model renders its JSON Schema
// with $ref pointers expanded from the given template.
type Schemer interface {
	JSONSchema(refTemplate string) (map[string]any, error)
}

// LegacySchemer is the legacy schema capability: a zero-argument render whose
// output already uses the stable definitions layout.
type LegacySchemer interface {
	Schema() (map[string]any, error)
}

// ErrNoSchemaCapability indicates the model implements neither Schemer nor
// LegacySchemer.
var ErrNoSchemaCapability = errors.New("schemanorm: model exposes no schema capability")

// Extract obtains a model's JSON Schema in the legacy layout.
//
// Models exposing the modern capability are rendered with a legacy-style ref
// template and the output is normalized (definitions container renamed,
// single-branch allOf collapsed, spurious null defaults stripped) so it
// compares equal to legacy output for the same model. Legacy-only models are
// returned verbatim. When a model implements both capabilities the modern one
// wins. Errors from the model's own render propagate unwrapped.
func Extract(model any, opts Options) (map[string]any, Diag, error) {
	opts = opts.withDefaults()
	switch m := model.(type) {
	case Schemer:
		doc, err := m.JSONSchema(opts.RefTemplate)
		if err != nil {
			return nil, &simpleDiag{}, err
		}
		d := Normalize(doc, opts)
		return doc, d, nil
	case LegacySchemer:
		doc, err := m.Schema()
		return doc, &simpleDiag{}, err
	default:
		return nil, &simpleDiag{}, ErrNoSchemaCapability
	}
}

// Normalize rewrites a modern-dialect schema document in place into the
// legacy layout: the generator-specific definitions container is moved to the
// stable key, then single-branch allOf wrappers are collapsed and spurious
// null defaults stripped across the whole tree. Returns notes describing what
// was rewritten; a nil or already-legacy document yields no notes.
func Normalize(doc map[string]any, opts Options) Diag {
	opts = opts.withDefaults()
	d := &simpleDiag{}
	if doc == nil {
		return d
	}
	if defs, ok := doc[opts.DefsKey]; ok {
		doc[opts.DefinitionsKey] = defs
		delete(doc, opts.DefsKey)
		d.notef("moved %s container to %s", opts.DefsKey, opts.DefinitionsKey)
	}
	if n := collapseSingleAllOf(doc); n > 0 {
		d.notef("collapsed %d single-branch allOf wrapper(s)", n)
	}
	if n := stripNullDefaults(doc); n > 0 {
		d.notef("stripped %d spurious null default(s)", n)
	}
	return d
}
