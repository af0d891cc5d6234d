package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/docmap-format/go-docmap/ir"
	"github.com/docmap-format/go-docmap/transform"
)

func TestDef(t *testing.T) {
	upper := transform.Func(func(node *ir.Node) (any, error) {
		return node.String, nil
	})
	fallback := transform.Func(func(node *ir.Node) (any, error) {
		return node.ToAny(), nil
	})
	def := &Def{
		TypeName: "Widget",
		Props:    []string{"id", "label"},
		Paths: map[string]string{
			"id":    "id",
			"label": "meta.label",
		},
		Transformers: map[string]transform.Transformer{
			"label": upper,
		},
		Default: fallback,
		Make: func(vals Values) (any, error) {
			return map[string]any(vals), nil
		},
		Unmake: func(v any) Values {
			return Values(v.(map[string]any))
		},
	}

	if def.Name() != "Widget" {
		t.Errorf("Name() = %q", def.Name())
	}
	if diff := cmp.Diff([]string{"id", "label"}, def.Properties()); diff != "" {
		t.Errorf("Properties() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(def.Paths, def.KeyPaths()); diff != "" {
		t.Errorf("KeyPaths() mismatch (-want +got):\n%s", diff)
	}
	if def.TransformerFor("label") == nil {
		t.Error("TransformerFor(label) = nil")
	}
	if def.TransformerFor("id") != nil {
		t.Error("TransformerFor(id) != nil, want fallback via DefaultTransformer")
	}
	if def.DefaultTransformer() == nil {
		t.Error("DefaultTransformer() = nil")
	}

	v, err := def.New(Values{"id": int64(1)})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Values{"id": int64(1)}, def.Values(v)); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}
