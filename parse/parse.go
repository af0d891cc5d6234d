package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/docmap-format/go-docmap/ir"
)

var ErrParse = errors.New("parse error")

// Parse parses JSON or YAML text into a document node. YAML is a
// superset of JSON, so one decoder serves both; ParseJSON() adds a
// strict JSON validity check on top. Object field order is preserved.
func Parse(data []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.format != nil && pOpts.format.IsJSON() && !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrParse)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	node, err := fromDecoded(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return node, nil
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// fromDecoded converts the decoder's generic value into a document
// node, keeping mapping field order via yaml.MapSlice.
func fromDecoded(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case yaml.MapSlice:
		res := ir.Object()
		for _, item := range t {
			key, err := mapKey(item.Key)
			if err != nil {
				return nil, err
			}
			val, err := fromDecoded(item.Value)
			if err != nil {
				return nil, err
			}
			ir.Set(res, key, val)
		}
		return res, nil
	case map[string]any:
		yMap := make(map[string]*ir.Node, len(t))
		for k, e := range t {
			n, err := fromDecoded(e)
			if err != nil {
				return nil, err
			}
			yMap[k] = n
		}
		return ir.FromMap(yMap), nil
	case []any:
		vals := make([]*ir.Node, len(t))
		for i, e := range t {
			n, err := fromDecoded(e)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	case string:
		return ir.FromString(t), nil
	case bool:
		return ir.FromBool(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return &ir.Node{
				Type:   ir.NumberType,
				Number: strconv.FormatUint(t, 10),
			}, nil
		}
		return ir.FromInt(int64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

func mapKey(k any) (string, error) {
	switch t := k.(type) {
	case string:
		return t, nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("unsupported mapping key type %T", k)
	}
}
