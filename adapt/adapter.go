package adapt

import (
	"fmt"

	"github.com/docmap-format/go-docmap/debug"
	"github.com/docmap-format/go-docmap/ir"
	"github.com/docmap-format/go-docmap/ir/keypath"
	"github.com/docmap-format/go-docmap/model"
	"github.com/docmap-format/go-docmap/transform"
)

// property is the resolved per-property conversion state: the parsed
// key path (nil when the property is not document-backed) and the
// transformer, if any.
type property struct {
	name string
	path keypath.Path
	tr   transform.Transformer
}

// Adapter converts between documents and instances of one model type.
// Key paths and transformers are resolved once in New and immutable
// afterwards, so an Adapter is safe for concurrent use.
type Adapter struct {
	typ   model.Type
	props []property
}

// New resolves t's key path table and transformer lookups into an
// Adapter. Duplicate properties and malformed key paths are
// configuration errors reported here, not at conversion time.
func New(t model.Type) (*Adapter, error) {
	paths := t.KeyPaths()
	var trFor func(string) transform.Transformer
	if tt, ok := t.(model.Transforms); ok {
		trFor = tt.TransformerFor
	}
	var defaultTr transform.Transformer
	if dt, ok := t.(model.DefaultTransforms); ok {
		defaultTr = dt.DefaultTransformer()
	}

	propNames := t.Properties()
	props := make([]property, 0, len(propNames))
	seen := make(map[string]bool, len(propNames))
	for _, name := range propNames {
		if seen[name] {
			return nil, fmt.Errorf("model %s: duplicate property %q", t.Name(), name)
		}
		seen[name] = true
		pm := property{name: name}
		if kp := paths[name]; kp != "" {
			p, err := keypath.Parse(kp)
			if err != nil {
				return nil, fmt.Errorf("model %s property %q: %w", t.Name(), name, err)
			}
			pm.path = p
		}
		if trFor != nil {
			pm.tr = trFor(name)
		}
		if pm.tr == nil {
			pm.tr = defaultTr
		}
		props = append(props, pm)
	}
	return &Adapter{typ: t, props: props}, nil
}

// Type returns the model type this adapter converts.
func (a *Adapter) Type() model.Type {
	return a.typ
}

// Decode converts a document into a model instance. The document root
// must be an Object. Properties whose key path is absent from the
// document are left out of the value mapping handed to the model
// constructor; an explicit document null reaches the property's
// transformer as a Null node. Any failure aborts the whole decode —
// a partially populated model is never returned.
func (a *Adapter) Decode(doc *ir.Node) (any, error) {
	if doc == nil || doc.Type != ir.ObjectType {
		typ := ir.NullType
		if doc != nil {
			typ = doc.Type
		}
		return nil, &InvalidDocumentError{
			Message: fmt.Sprintf("root is %s, expected Object", typ),
		}
	}

	vals := model.Values{}
	for i := range a.props {
		pm := &a.props[i]
		if pm.path == nil {
			continue
		}
		node, err := doc.GetKeyPath(pm.path)
		if err != nil {
			return nil, &InvalidDocumentError{
				KeyPath: pm.path.String(),
				Message: err.Error(),
				Err:     err,
			}
		}
		if node == nil {
			if debug.Decode() {
				debug.Logf("decode %s: %q absent, skipping\n", a.typ.Name(), pm.name)
			}
			continue
		}
		var v any
		if pm.tr != nil {
			v, err = applyDecode(pm.tr, node)
			if err != nil {
				return nil, &TransformError{
					Property: pm.name,
					KeyPath:  pm.path.String(),
					Err:      err,
				}
			}
		} else {
			v = node.ToAny()
		}
		if debug.Decode() {
			debug.Logf("decode %s: %q <- %s\n", a.typ.Name(), pm.name, pm.path)
		}
		vals[pm.name] = v
	}

	m, err := construct(a.typ, vals)
	if err != nil {
		return nil, &ConstructionError{Type: a.typ.Name(), Err: err}
	}
	return m, nil
}

// Encode converts a model instance into a document. Unmapped
// properties do not appear in the output; properties with a reversible
// transformer are encoded through it, all others pass through
// unchanged. Any failure aborts the whole encode — a partially
// written document is never returned.
func (a *Adapter) Encode(v any) (*ir.Node, error) {
	vals := a.typ.Values(v)
	doc := ir.Object()
	for i := range a.props {
		pm := &a.props[i]
		if pm.path == nil {
			continue
		}
		pv, ok := vals[pm.name]
		if !ok {
			continue
		}
		var (
			node *ir.Node
			err  error
		)
		if rev, isRev := pm.tr.(transform.Reversible); isRev {
			node, err = applyEncode(rev, pv)
			if err != nil {
				return nil, &TransformError{
					Property: pm.name,
					KeyPath:  pm.path.String(),
					Err:      err,
				}
			}
		} else {
			node, err = ir.FromAny(pv)
			if err != nil {
				return nil, &TransformError{
					Property: pm.name,
					KeyPath:  pm.path.String(),
					Message:  "value has no document representation",
					Err:      err,
				}
			}
		}
		if debug.Encode() {
			debug.Logf("encode %s: %q -> %s\n", a.typ.Name(), pm.name, pm.path)
		}
		if err := doc.SetKeyPath(pm.path, node); err != nil {
			return nil, &InvalidDocumentError{
				KeyPath: pm.path.String(),
				Message: err.Error(),
				Err:     err,
			}
		}
	}
	return doc, nil
}

// applyDecode invokes a transformer's decode function, converting a
// panic at this boundary into an error.
func applyDecode(tr transform.Transformer, node *ir.Node) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transformer panicked: %v", r)
		}
	}()
	return tr.Decode(node)
}

// applyEncode invokes a reversible transformer's encode function,
// converting a panic at this boundary into an error.
func applyEncode(tr transform.Reversible, v any) (node *ir.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transformer panicked: %v", r)
		}
	}()
	return tr.Encode(v)
}

// construct invokes the model constructor, converting a panic at this
// boundary into an error.
func construct(t model.Type, vals model.Values) (m any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("constructor panicked: %v", r)
		}
	}()
	return t.New(vals)
}
