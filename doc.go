package schemanorm

// Package schemanorm normalizes JSON Schema documents emitted by different
// generator dialects so that test assertions can compare them structurally.
//
// It provides:
//
// - CollapseSingleAllOf / StripNullDefaults: in-place rewriters that repair
//   the two known cosmetic discrepancies between modern and legacy output
// - Extract: capability-based schema extraction from a model type, with
//   modern output remapped to the legacy definitions layout
// - FromJSON / FromYAML intake and Diff for assertion messages
//
// Design policy:
// - Documents are plain map[string]any / []any / scalar trees; rewriters
//   mutate in place and silently skip shapes they do not recognize.
// - Non-fatal rewrite notes travel through Diag, never through errors.
// - Each call owns its tree for the duration of the call; do not share a
//   tree across concurrent calls.
//
// Typical usage:
//
//	doc, _, err := schemanorm.Extract(model, schemanorm.Options{})
//	if diff := schemanorm.Diff(want, doc); diff != "" {
//		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
//	}
