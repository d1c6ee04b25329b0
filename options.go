package schemanorm

import "fmt"

// Default key names for the definitions container across generator dialects.
const (
	DefaultDefsKey        = "$defs"
	DefaultDefinitionsKey = "definitions"
	DefaultRefTemplate    = "#/definitions/{model}"
)

// Options controls extraction and normalization behavior.
type Options struct {
	// RefTemplate is passed to the modern schema capability so that emitted
	// $ref pointers target the legacy definitions location.
	RefTemplate string
	// DefsKey is the generator-specific definitions container key in modern
	// output.
	DefsKey string
	// DefinitionsKey is the stable legacy container key the modern container
	// is renamed to.
	DefinitionsKey string
}

func (o Options) withDefaults() Options {
	if o.RefTemplate == "" {
		o.RefTemplate = DefaultRefTemplate
	}
	if o.DefsKey == "" {
		o.DefsKey = DefaultDefsKey
	}
	if o.DefinitionsKey == "" {
		o.DefinitionsKey = DefaultDefinitionsKey
	}
	return o
}

// Diag carries non-fatal notes about rewrites applied during normalization.
type Diag interface {
	HasNotes() bool
	Notes() []string
}

type simpleDiag struct{ ns []string }

func (d *simpleDiag) HasNotes() bool           { return len(d.ns) > 0 }
func (d *simpleDiag) Notes() []string          { return append([]string(nil), d.ns...) }
func (d *simpleDiag) notef(f string, a ...any) { d.ns = append(d.ns, fmt.Sprintf(f, a...)) }
