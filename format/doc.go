// Package format names the wire formats docmap can read and write.
//
// # Related Packages
//
//   - github.com/docmap-format/go-docmap/parse - Parse text to document nodes
//   - github.com/docmap-format/go-docmap/encode - Encode document nodes to text
package format
