// Package encode encodes document nodes to JSON or YAML text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Compact output
//	err := encode.Encode(node, w, encode.EncodeWire(true))
//
//	// YAML output
//	err := encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//
// # Related Packages
//
//   - github.com/docmap-format/go-docmap/ir - Document node representation
//   - github.com/docmap-format/go-docmap/parse - Parse text to document nodes
package encode
