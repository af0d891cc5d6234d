// Package parse parses JSON and YAML text into document nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Parse with options
//	node, err := parse.Parse(data, parse.ParseJSON())
//
// # Related Packages
//
//   - github.com/docmap-format/go-docmap/ir - Document node representation
//   - github.com/docmap-format/go-docmap/encode - Encode document nodes to text
package parse
