package transform

import (
	"net/url"
	"testing"
	"time"

	"github.com/docmap-format/go-docmap/ir"
)

func TestTime(t *testing.T) {
	tr := Time(time.RFC3339)

	t.Run("decode", func(t *testing.T) {
		v, err := tr.Decode(ir.FromString("2024-03-01T12:00:00Z"))
		if err != nil {
			t.Fatal(err)
		}
		ts, ok := v.(time.Time)
		if !ok {
			t.Fatalf("decoded %T, want time.Time", v)
		}
		if ts.Year() != 2024 || ts.Month() != time.March {
			t.Errorf("decoded %v", ts)
		}
	})

	t.Run("decode null to zero time", func(t *testing.T) {
		v, err := tr.Decode(ir.Null())
		if err != nil {
			t.Fatal(err)
		}
		if !v.(time.Time).IsZero() {
			t.Errorf("null decoded to %v, want zero time", v)
		}
	})

	t.Run("decode bad layout", func(t *testing.T) {
		if _, err := tr.Decode(ir.FromString("not-a-time")); err == nil {
			t.Error("expected decode error")
		}
	})

	t.Run("decode wrong node type", func(t *testing.T) {
		if _, err := tr.Decode(ir.FromInt(1)); err == nil {
			t.Error("expected decode error")
		}
	})

	t.Run("encode round trip", func(t *testing.T) {
		want := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		node, err := tr.Encode(want)
		if err != nil {
			t.Fatal(err)
		}
		v, err := tr.Decode(node)
		if err != nil {
			t.Fatal(err)
		}
		if !v.(time.Time).Equal(want) {
			t.Errorf("round trip = %v, want %v", v, want)
		}
	})

	t.Run("encode zero time to null", func(t *testing.T) {
		node, err := tr.Encode(time.Time{})
		if err != nil {
			t.Fatal(err)
		}
		if node.Type != ir.NullType {
			t.Errorf("zero time encoded to %s, want Null", node.Type)
		}
	})

	t.Run("encode wrong value type", func(t *testing.T) {
		if _, err := tr.Encode("2024-03-01"); err == nil {
			t.Error("expected encode error")
		}
	})
}

func TestURL(t *testing.T) {
	tr := URL()

	v, err := tr.Decode(ir.FromString("https://example.com/a?b=c"))
	if err != nil {
		t.Fatal(err)
	}
	u, ok := v.(*url.URL)
	if !ok {
		t.Fatalf("decoded %T, want *url.URL", v)
	}
	if u.Host != "example.com" {
		t.Errorf("host = %q", u.Host)
	}

	node, err := tr.Encode(u)
	if err != nil {
		t.Fatal(err)
	}
	if node.String != "https://example.com/a?b=c" {
		t.Errorf("encoded = %q", node.String)
	}

	node, err = tr.Encode((*url.URL)(nil))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.NullType {
		t.Errorf("nil url encoded to %s, want Null", node.Type)
	}

	if _, err := tr.Decode(ir.FromBool(true)); err == nil {
		t.Error("expected decode error on Bool node")
	}
}

func TestMapping(t *testing.T) {
	tr := Mapping(map[string]any{
		"active":   1,
		"inactive": 0,
	})

	v, err := tr.Decode(ir.FromString("active"))
	if err != nil {
		t.Fatal(err)
	}
	if v != 1 {
		t.Errorf("decoded %v, want 1", v)
	}

	if _, err := tr.Decode(ir.FromString("unknown")); err == nil {
		t.Error("expected error for unmapped value")
	}

	node, err := tr.Encode(0)
	if err != nil {
		t.Fatal(err)
	}
	if node.String != "inactive" {
		t.Errorf("encoded %q, want inactive", node.String)
	}

	if _, err := tr.Encode(99); err == nil {
		t.Error("expected error for unmapped reverse value")
	}
}
