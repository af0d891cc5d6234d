package adapt

import (
	"errors"
	"sync"
	"testing"

	"github.com/docmap-format/go-docmap/ir"
	"github.com/docmap-format/go-docmap/model"
)

func TestRegistryCachesAdapter(t *testing.T) {
	r := NewRegistry(nil)
	pt := personType()
	a1, err := r.AdapterFor(pt)
	if err != nil {
		t.Fatal(err)
	}
	a2, err := r.AdapterFor(pt)
	if err != nil {
		t.Fatal(err)
	}
	if a1 != a2 {
		t.Error("second lookup built a new adapter")
	}
}

func TestRegistryConcurrentLookups(t *testing.T) {
	r := NewRegistry(nil)
	pt := personType()

	const n = 16
	adapters := make([]*Adapter, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			a, err := r.AdapterFor(pt)
			if err != nil {
				t.Error(err)
				return
			}
			adapters[i] = a
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if adapters[i] != adapters[0] {
			t.Fatal("concurrent lookups did not converge on one adapter")
		}
	}
}

func TestDecodeAny(t *testing.T) {
	pt := personType()
	resolver := model.ResolverFunc(func(doc *ir.Node) model.Type {
		if doc != nil && ir.Get(doc, "name") != nil {
			return pt
		}
		return nil
	})
	r := NewRegistry(resolver)

	t.Run("resolved", func(t *testing.T) {
		doc := parseDoc(t, `{"name": "ada"}`)
		v, err := r.DecodeAny(doc)
		if err != nil {
			t.Fatal(err)
		}
		if p := v.(*person); p.Name != "ada" {
			t.Errorf("decoded %+v", p)
		}
	})

	t.Run("no matching type", func(t *testing.T) {
		doc := parseDoc(t, `{"other": true}`)
		_, err := r.DecodeAny(doc)
		var nte *NoTargetTypeError
		if !errors.As(err, &nte) {
			t.Fatalf("error = %v, want *NoTargetTypeError", err)
		}
		if nte.Kind() != NoTargetType {
			t.Errorf("kind = %s", nte.Kind())
		}
	})
}

func TestDecodeAnyNoResolver(t *testing.T) {
	r := NewRegistry(nil)
	_, err := r.DecodeAny(ir.Object())
	var nte *NoTargetTypeError
	if !errors.As(err, &nte) {
		t.Fatalf("error = %v, want *NoTargetTypeError", err)
	}
}

func TestPackageLevelDecodeEncode(t *testing.T) {
	pt := personType()
	doc := parseDoc(t, `{"name": "ada", "address": {"city": "Boston"}}`)
	v, err := Decode(pt, doc)
	if err != nil {
		t.Fatal(err)
	}
	p := v.(*person)
	if p.Name != "ada" || p.City != "Boston" {
		t.Errorf("decoded %+v", p)
	}

	node, err := Encode(pt, p)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node, doc) {
		t.Errorf("Encode() = %v, want %v", node, doc)
	}
}
