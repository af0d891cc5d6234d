// Package adapt converts between document nodes and typed model
// instances.
//
// # Usage
//
//	// Decode a document into a model
//	v, err := adapt.Decode(personType, node)
//
//	// Encode a model back into a document
//	node, err := adapt.Encode(personType, person)
//
//	// Bytes in, model out
//	v, err := adapt.Unmarshal(personType, data)
//
// Model types describe themselves through the interfaces in
// package model: a property set, a property → key path table and
// optional per-property transformers. Properties without a table
// entry are invisible to conversion in both directions; values without
// a transformer pass through unchanged.
//
// Every failure is one of four structured kinds — NoTargetType,
// InvalidDocument, TransformFailed, ConstructionFailed — with the
// underlying cause available through errors.Unwrap. A panic inside a
// user-supplied transformer or constructor is recovered at that call
// and reported the same way.
//
// # Related Packages
//
//   - github.com/docmap-format/go-docmap/ir - Document node representation
//   - github.com/docmap-format/go-docmap/model - Model type contracts
//   - github.com/docmap-format/go-docmap/transform - Value transformers
package adapt
