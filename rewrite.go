package schemanorm

// CollapseSingleAllOf rewrites single-branch allOf wrappers into direct $ref
// entries, depth-first and in place.
//
// Modern generators wrap a referenced definition in allOf so that sibling
// keywords (description, default, ...) survive; legacy generators emitted the
// bare $ref. When the wrapper has exactly one branch and that branch is only a
// reference, the two forms are equivalent and the wrapper is collapsed. A
// leftover "default": null on the collapsed node is dropped because the
// referenced definition, not the wrapper, owns the default.
//
// Shapes that do not match are left untouched; the function never fails.
func CollapseSingleAllOf(node any) {
	collapseSingleAllOf(node)
}

func collapseSingleAllOf(node any) int {
	switch t := node.(type) {
	case map[string]any:
		if ref, ok := singleAllOfRef(t); ok {
			t["$ref"] = ref
			delete(t, "allOf")
			if d, present := t["default"]; present && d == nil {
				delete(t, "default")
			}
			return 1
		}
		n := 0
		for _, v := range t {
			switch v.(type) {
			case map[string]any, []any:
				n += collapseSingleAllOf(v)
			}
		}
		return n
	case []any:
		n := 0
		for _, item := range t {
			n += collapseSingleAllOf(item)
		}
		return n
	}
	return 0
}

// singleAllOfRef reports the $ref held by a one-element allOf wrapper, if the
// node carries one.
func singleAllOfRef(m map[string]any) (any, bool) {
	branches, ok := m["allOf"].([]any)
	if !ok || len(branches) != 1 {
		return nil, false
	}
	branch, ok := branches[0].(map[string]any)
	if !ok {
		return nil, false
	}
	ref, ok := branch["$ref"]
	return ref, ok
}

// StripNullDefaults removes "default": null annotations that the modern
// generator emits for optional fields whose type does not actually admit null.
//
// Legacy output never carried these; modern output adds them for fields that
// are merely omittable. The null is kept only when the field's anyOf union
// explicitly lists a "null" type branch, i.e. when null is a legal value
// rather than shorthand for "absent".
//
// The rule applies to mapping-valued children of a mapping, not to the node a
// call starts from; the root of a schema document never carries a default.
// Mutates in place, never fails.
func StripNullDefaults(node any) {
	stripNullDefaults(node)
}

func stripNullDefaults(node any) int {
	switch t := node.(type) {
	case map[string]any:
		n := 0
		for _, v := range t {
			switch child := v.(type) {
			case map[string]any:
				if d, present := child["default"]; present && d == nil && !allowsNull(child) {
					delete(child, "default")
					n++
				}
				n += stripNullDefaults(child)
			case []any:
				for _, item := range child {
					n += stripNullDefaults(item)
				}
			}
		}
		return n
	case []any:
		n := 0
		for _, item := range t {
			n += stripNullDefaults(item)
		}
		return n
	}
	return 0
}

// allowsNull reports whether the schema's anyOf union contains an explicit
// null type branch.
func allowsNull(m map[string]any) bool {
	branches, _ := m["anyOf"].([]any)
	for _, raw := range branches {
		branch, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if bt, _ := branch["type"].(string); bt == "null" {
			return true
		}
	}
	return false
}
