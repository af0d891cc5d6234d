package parse

import (
	"errors"
	"reflect"
	"testing"

	"github.com/docmap-format/go-docmap/ir"
)

func TestParseJSONDocument(t *testing.T) {
	node, err := ParseString(`{"name": "ada", "age": 36, "tags": ["x", "y"], "nick": null}`)
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("root type = %s", node.Type)
	}
	// field order is preserved
	if !reflect.DeepEqual(node.Fields, []string{"name", "age", "tags", "nick"}) {
		t.Errorf("fields = %v", node.Fields)
	}
	if got := ir.Get(node, "name"); got.String != "ada" {
		t.Errorf("name = %v", got)
	}
	if got := ir.Get(node, "age"); *got.Int64 != 36 {
		t.Errorf("age = %v", got)
	}
	tags := ir.Get(node, "tags")
	if tags.Type != ir.ArrayType || len(tags.Values) != 2 {
		t.Errorf("tags = %v", tags)
	}
	if got := ir.Get(node, "nick"); got.Type != ir.NullType {
		t.Errorf("nick = %v", got)
	}
}

func TestParseYAMLDocument(t *testing.T) {
	node, err := ParseString("name: ada\naddress:\n  city: Boston\n")
	if err != nil {
		t.Fatal(err)
	}
	addr := ir.Get(node, "address")
	if addr == nil || addr.Type != ir.ObjectType {
		t.Fatalf("address = %v", addr)
	}
	if got := ir.Get(addr, "city"); got == nil || got.String != "Boston" {
		t.Errorf("city = %v", got)
	}
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *ir.Node
	}{
		{name: "string", input: `"x"`, want: ir.FromString("x")},
		{name: "int", input: `42`, want: ir.FromInt(42)},
		{name: "float", input: `1.5`, want: ir.FromFloat(1.5)},
		{name: "bool", input: `true`, want: ir.FromBool(true)},
		{name: "null", input: `null`, want: ir.Null()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	_, err := ParseString("{unclosed: [")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("error %v does not wrap ErrParse", err)
	}
}

func TestParseStrictJSON(t *testing.T) {
	// valid YAML, not valid JSON
	_, err := ParseString("name: ada", ParseJSON())
	if err == nil {
		t.Fatal("expected error for non-JSON input under ParseJSON")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("error %v does not wrap ErrParse", err)
	}

	if _, err := ParseString(`{"name": "ada"}`, ParseJSON()); err != nil {
		t.Errorf("valid JSON rejected: %v", err)
	}
	if _, err := ParseString("name: ada", ParseYAML()); err != nil {
		t.Errorf("valid YAML rejected: %v", err)
	}
}
