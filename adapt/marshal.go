package adapt

import (
	"bytes"

	"github.com/docmap-format/go-docmap/encode"
	"github.com/docmap-format/go-docmap/model"
	"github.com/docmap-format/go-docmap/parse"
)

// Unmarshal parses data and decodes it into an instance of t.
func Unmarshal(t model.Type, data []byte, opts ...UnmapOption) (any, error) {
	node, err := parse.Parse(data, ToParseOptions(opts...)...)
	if err != nil {
		return nil, err
	}
	return Decode(t, node)
}

// Marshal encodes a model instance of t and renders it to bytes.
func Marshal(t model.Type, v any, opts ...MapOption) ([]byte, error) {
	node, err := Encode(t, v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, ToEncodeOptions(opts...)...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
