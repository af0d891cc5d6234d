// Package transform defines per-property value transformers applied
// during document ↔ model conversion.
//
// A Transformer decodes a document node into a typed property value. A
// Reversible transformer can also encode the value back into a node.
// Transformers are resolved once per model type and reused; only
// applying one can fail.
package transform

import (
	"github.com/docmap-format/go-docmap/ir"
)

// Transformer converts a document node into a property value. The node
// may be of NullType: a transformer that wants to map null to a domain
// sentinel sees it as-is.
type Transformer interface {
	Decode(node *ir.Node) (any, error)
}

// Reversible is a Transformer that can also convert a property value
// back into a document node.
type Reversible interface {
	Transformer
	Encode(v any) (*ir.Node, error)
}

type funcTransformer struct {
	decode func(*ir.Node) (any, error)
}

func (t *funcTransformer) Decode(node *ir.Node) (any, error) {
	return t.decode(node)
}

// Func wraps a decode function as a forward-only Transformer.
func Func(decode func(*ir.Node) (any, error)) Transformer {
	return &funcTransformer{decode: decode}
}

type reversibleFunc struct {
	funcTransformer
	encode func(any) (*ir.Node, error)
}

func (t *reversibleFunc) Encode(v any) (*ir.Node, error) {
	return t.encode(v)
}

// ReversibleFunc wraps a decode/encode function pair as a Reversible
// transformer.
func ReversibleFunc(decode func(*ir.Node) (any, error), encode func(any) (*ir.Node, error)) Reversible {
	return &reversibleFunc{
		funcTransformer: funcTransformer{decode: decode},
		encode:          encode,
	}
}
