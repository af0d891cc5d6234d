package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/docmap-format/go-docmap/format"
	"github.com/docmap-format/go-docmap/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	line, col     int
	depth, indent int
	wire          bool

	format format.Format

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. The default output is indented JSON; use
// EncodeFormat(format.YAMLFormat) for YAML and EncodeWire(true) for
// compact single-line JSON.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(toOrdered(node))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

// toOrdered converts a node to the decoder-facing generic form,
// keeping object field order via yaml.MapSlice.
func toOrdered(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		ms := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			ms[i] = yaml.MapItem{Key: f, Value: toOrdered(node.Values[i])}
		}
		return ms
	case ir.ArrayType:
		vals := make([]any, len(node.Values))
		for i, v := range node.Values {
			vals[i] = toOrdered(v)
		}
		return vals
	default:
		return node.ToAny()
	}
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	if err := writeString(w, "\n"+indentString); err != nil {
		return err
	}
	es.line++
	es.col = len(indentString)
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeSeparator(w io.Writer, es *EncState, cType ir.Type, sep string) error {
	es.col += len(sep)
	if es.Color != nil {
		sep = es.Color(cType, SepColor, sep)
	}
	return writeString(w, sep)
}

// quoteString returns v as a JSON string literal.
func quoteString(v string) string {
	d, err := json.Marshal(v)
	if err != nil {
		// json.Marshal of a string cannot fail
		return strconv.Quote(v)
	}
	return string(d)
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	es.colorType = node.Type

	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeScalar(w, es, ir.StringType, quoteString(node.String))
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeScalar(w, es, ir.BoolType, strconv.FormatBool(node.Bool))
	case ir.NullType:
		return encodeScalar(w, es, ir.NullType, "null")
	default:
		panic("type")
	}
}

func encodeScalar(w io.Writer, es *EncState, t ir.Type, v string) error {
	es.col += len(v)
	return writeString(w, applyValueColor(es, t, v))
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	var v string
	switch {
	case node.Int64 != nil:
		v = strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		v = strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	default:
		v = node.Number
	}
	if v == "" {
		return fmt.Errorf("%w: number node without value", ErrEncoding)
	}
	return encodeScalar(w, es, ir.NumberType, v)
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Fields)
	if err := writeSeparator(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	if n == 0 {
		return writeSeparator(w, es, ir.ObjectType, "}")
	}
	es.depth++
	for i, field := range node.Fields {
		if err := writeNL(w, es); err != nil {
			return err
		}
		fv := quoteString(field)
		es.col += len(fv)
		if err := writeString(w, applyColor(es, ir.ObjectType, FieldColor, fv)); err != nil {
			return err
		}
		sep := ": "
		if es.wire {
			sep = ":"
		}
		if err := writeSeparator(w, es, ir.ObjectType, sep); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeSeparator(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSeparator(w, es, ir.ObjectType, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Values)
	if err := writeSeparator(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	if n == 0 {
		return writeSeparator(w, es, ir.ArrayType, "]")
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeSeparator(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSeparator(w, es, ir.ArrayType, "]")
}
