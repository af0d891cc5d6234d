// Package model declares the contracts a model type fulfills to take
// part in document conversion: the finite property set, the property →
// key path table, optional per-property transformers, a fallible
// constructor and a total decomposer.
//
// The conversion engine in package adapt consumes these interfaces and
// nothing else about the model.
package model

import (
	"github.com/docmap-format/go-docmap/ir"
	"github.com/docmap-format/go-docmap/transform"
)

// Values is the ephemeral property → value mapping exchanged between
// the conversion engine and a model type. It is created and consumed
// within a single conversion call.
type Values map[string]any

// Type describes one model type to the conversion engine.
//
// KeyPaths returns the dotted key path backing each property; a
// property absent from the table, or mapped to "", has no document
// representation and is skipped by conversion in both directions.
//
// New builds a model instance from a value mapping. Properties missing
// from the mapping were absent in the document and must be left at
// their defaults. Values present a nil entry where the document held
// an explicit untransformed null.
//
// Values decomposes a model instance into a value mapping. It is total:
// it must succeed for any instance New can produce.
type Type interface {
	Name() string
	Properties() []string
	KeyPaths() map[string]string
	New(vals Values) (any, error)
	Values(v any) Values
}

// Transforms is implemented by model types that declare per-property
// transformers. Returning nil means the property's value passes
// through untransformed.
type Transforms interface {
	TransformerFor(property string) transform.Transformer
}

// DefaultTransforms is implemented by model types that declare a
// type-level fallback transformer, used for properties without a
// per-property one.
type DefaultTransforms interface {
	DefaultTransformer() transform.Transformer
}

// Resolver selects a concrete model type for a raw document. A nil
// result means no type matches; callers surface that as a no-target-
// type error without invoking conversion.
type Resolver interface {
	TypeFor(doc *ir.Node) Type
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(doc *ir.Node) Type

func (f ResolverFunc) TypeFor(doc *ir.Node) Type {
	return f(doc)
}
