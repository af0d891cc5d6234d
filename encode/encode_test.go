package encode

import (
	"bytes"
	"testing"

	"github.com/docmap-format/go-docmap/format"
	"github.com/docmap-format/go-docmap/ir"
)

func sampleDoc() *ir.Node {
	doc := ir.Object()
	ir.Set(doc, "a", ir.FromInt(1))
	ir.Set(doc, "b", ir.FromString("x"))
	return doc
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(sampleDoc(), &buf); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": 1,\n  \"b\": \"x\"\n}\n"
	if buf.String() != want {
		t.Errorf("Encode() = %q, want %q", buf.String(), want)
	}
}

func TestEncodeWire(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(sampleDoc(), &buf, EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	want := `{"a":1,"b":"x"}` + "\n"
	if buf.String() != want {
		t.Errorf("Encode() = %q, want %q", buf.String(), want)
	}
}

func TestEncodeNested(t *testing.T) {
	doc := ir.Object()
	inner := ir.Object()
	ir.Set(inner, "city", ir.FromString("Boston"))
	ir.Set(doc, "address", inner)
	ir.Set(doc, "tags", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}))

	var buf bytes.Buffer
	if err := Encode(doc, &buf, EncodeWire(true)); err != nil {
		t.Fatal(err)
	}
	want := `{"address":{"city":"Boston"},"tags":[1,2]}` + "\n"
	if buf.String() != want {
		t.Errorf("Encode() = %q, want %q", buf.String(), want)
	}
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{name: "null", node: ir.Null(), want: "null\n"},
		{name: "bool", node: ir.FromBool(true), want: "true\n"},
		{name: "int", node: ir.FromInt(-3), want: "-3\n"},
		{name: "float", node: ir.FromFloat(1.5), want: "1.5\n"},
		{name: "string escaping", node: ir.FromString(`say "hi"`), want: "\"say \\\"hi\\\"\"\n"},
		{name: "empty object", node: ir.Object(), want: "{}\n"},
		{name: "empty array", node: ir.FromSlice(nil), want: "[]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(tt.node, &buf); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.want {
				t.Errorf("Encode() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(sampleDoc(), &buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	want := "a: 1\nb: x\n"
	if buf.String() != want {
		t.Errorf("Encode() = %q, want %q", buf.String(), want)
	}
}

func TestMustString(t *testing.T) {
	got := MustString(sampleDoc(), EncodeWire(true))
	want := `{"a":1,"b":"x"}`
	if got != want {
		t.Errorf("MustString() = %q, want %q", got, want)
	}
}

func TestFormatFromOpts(t *testing.T) {
	if f := FormatFromOpts(); !f.IsJSON() {
		t.Errorf("default format = %s", f)
	}
	if f := FormatFromOpts(EncodeFormat(format.YAMLFormat)); !f.IsYAML() {
		t.Errorf("format = %s", f)
	}
}
