package model

import (
	"github.com/docmap-format/go-docmap/transform"
)

// Def is a declarative Type implementation for model types that do not
// want to hand-write the descriptor methods. All tables are fixed at
// definition time.
type Def struct {
	// TypeName identifies the model type, e.g. "Person".
	TypeName string

	// Props is the finite, ordered property set.
	Props []string

	// Paths maps properties to dotted key paths. Missing or empty
	// entries mark a property as not document-backed.
	Paths map[string]string

	// Transformers holds optional per-property transformers.
	Transformers map[string]transform.Transformer

	// Default, when non-nil, is the type-level fallback transformer
	// for properties without an entry in Transformers.
	Default transform.Transformer

	// Make constructs a model instance from a value mapping.
	Make func(vals Values) (any, error)

	// Unmake decomposes a model instance into a value mapping. It must
	// be total over instances produced by Make.
	Unmake func(v any) Values
}

var (
	_ Type              = (*Def)(nil)
	_ Transforms        = (*Def)(nil)
	_ DefaultTransforms = (*Def)(nil)
)

func (d *Def) Name() string {
	return d.TypeName
}

func (d *Def) Properties() []string {
	return d.Props
}

func (d *Def) KeyPaths() map[string]string {
	return d.Paths
}

func (d *Def) New(vals Values) (any, error) {
	return d.Make(vals)
}

func (d *Def) Values(v any) Values {
	return d.Unmake(v)
}

func (d *Def) TransformerFor(property string) transform.Transformer {
	return d.Transformers[property]
}

func (d *Def) DefaultTransformer() transform.Transformer {
	return d.Default
}
