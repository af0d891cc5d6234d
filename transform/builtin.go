package transform

import (
	"fmt"
	"net/url"
	"time"

	"github.com/docmap-format/go-docmap/ir"
)

// Time returns a transformer between String nodes in the given layout
// and time.Time values. Null decodes to the zero time; the zero time
// encodes to Null.
func Time(layout string) Reversible {
	return ReversibleFunc(
		func(node *ir.Node) (any, error) {
			switch node.Type {
			case ir.NullType:
				return time.Time{}, nil
			case ir.StringType:
				t, err := time.Parse(layout, node.String)
				if err != nil {
					return nil, err
				}
				return t, nil
			default:
				return nil, fmt.Errorf("expected String, got %s", node.Type)
			}
		},
		func(v any) (*ir.Node, error) {
			t, ok := v.(time.Time)
			if !ok {
				return nil, fmt.Errorf("expected time.Time, got %T", v)
			}
			if t.IsZero() {
				return ir.Null(), nil
			}
			return ir.FromString(t.Format(layout)), nil
		},
	)
}

// URL returns a transformer between String nodes and *url.URL values.
func URL() Reversible {
	return ReversibleFunc(
		func(node *ir.Node) (any, error) {
			switch node.Type {
			case ir.NullType:
				return (*url.URL)(nil), nil
			case ir.StringType:
				return url.Parse(node.String)
			default:
				return nil, fmt.Errorf("expected String, got %s", node.Type)
			}
		},
		func(v any) (*ir.Node, error) {
			u, ok := v.(*url.URL)
			if !ok {
				return nil, fmt.Errorf("expected *url.URL, got %T", v)
			}
			if u == nil {
				return ir.Null(), nil
			}
			return ir.FromString(u.String()), nil
		},
	)
}

// Mapping returns a transformer translating String node values through
// fwd on decode and through the derived reverse mapping on encode.
// Values outside the mapping fail the transform.
func Mapping(fwd map[string]any) Reversible {
	return ReversibleFunc(
		func(node *ir.Node) (any, error) {
			if node.Type != ir.StringType {
				return nil, fmt.Errorf("expected String, got %s", node.Type)
			}
			v, ok := fwd[node.String]
			if !ok {
				return nil, fmt.Errorf("no mapping for %q", node.String)
			}
			return v, nil
		},
		func(v any) (*ir.Node, error) {
			for k, mapped := range fwd {
				if mapped == v {
					return ir.FromString(k), nil
				}
			}
			return nil, fmt.Errorf("no reverse mapping for %v", v)
		},
	)
}
