package adapt

import (
	"errors"
	"testing"

	"github.com/docmap-format/go-docmap/encode"
	"github.com/docmap-format/go-docmap/parse"
)

func TestUnmarshal(t *testing.T) {
	pt := personType()
	v, err := Unmarshal(pt, []byte(`{"name": "ada", "address": {"city": "Boston"}}`))
	if err != nil {
		t.Fatal(err)
	}
	p := v.(*person)
	if p.Name != "ada" || p.City != "Boston" {
		t.Errorf("unmarshaled %+v", p)
	}
}

func TestUnmarshalYAML(t *testing.T) {
	pt := personType()
	v, err := Unmarshal(pt, []byte("name: ada\naddress:\n  city: Boston\n"))
	if err != nil {
		t.Fatal(err)
	}
	if p := v.(*person); p.City != "Boston" {
		t.Errorf("unmarshaled %+v", p)
	}
}

func TestUnmarshalParseError(t *testing.T) {
	pt := personType()
	_, err := Unmarshal(pt, []byte("{bad: ["))
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("error = %v, want parse error", err)
	}
}

func TestMarshal(t *testing.T) {
	pt := personType()
	d, err := Marshal(pt, &person{Name: "ada", City: "Boston"},
		WithEncodeOptions(encode.EncodeWire(true)))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"ada","address":{"city":"Boston"}}` + "\n"
	if string(d) != want {
		t.Errorf("Marshal() = %q, want %q", d, want)
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	pt := personType()
	orig := &person{Name: "ada", City: "Boston"}
	d, err := Marshal(pt, orig)
	if err != nil {
		t.Fatal(err)
	}
	v, err := Unmarshal(pt, d, WithParseOptions(parse.ParseJSON()))
	if err != nil {
		t.Fatal(err)
	}
	got := v.(*person)
	if got.Name != orig.Name || got.City != orig.City {
		t.Errorf("round trip = %+v, want %+v", got, orig)
	}
}
