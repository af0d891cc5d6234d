package ir

import (
	"fmt"
	"math"
	"strconv"
)

// FromAny converts a generic Go value into a document node. It covers
// the types a JSON-equivalent tree decomposes into: nil, bool, string,
// integers, floats, []any and map[string]any, plus *Node (passed
// through) and the node-valued container forms.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return t, nil
	case string:
		return FromString(t), nil
	case bool:
		return FromBool(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int8:
		return FromInt(int64(t)), nil
	case int16:
		return FromInt(int64(t)), nil
	case int32:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint:
		return fromUint(uint64(t))
	case uint8:
		return FromInt(int64(t)), nil
	case uint16:
		return FromInt(int64(t)), nil
	case uint32:
		return FromInt(int64(t)), nil
	case uint64:
		return fromUint(t)
	case float32:
		return FromFloat(float64(t)), nil
	case float64:
		return FromFloat(t), nil
	case []*Node:
		return FromSlice(t), nil
	case map[string]*Node:
		return FromMap(t), nil
	case []any:
		vals := make([]*Node, len(t))
		for i, e := range t {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case map[string]any:
		yMap := make(map[string]*Node, len(t))
		for k, e := range t {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			yMap[k] = n
		}
		return FromMap(yMap), nil
	default:
		return nil, fmt.Errorf("cannot represent %T as a document node", v)
	}
}

func fromUint(u uint64) (*Node, error) {
	if u > math.MaxInt64 {
		return &Node{
			Type:   NumberType,
			Number: strconv.FormatUint(u, 10),
		}, nil
	}
	return FromInt(int64(u)), nil
}

// ToAny converts a document node into the corresponding generic Go
// value: Null→nil, Bool→bool, String→string, Number→int64 or float64,
// Array→[]any, Object→map[string]any (field order is lost).
func (y *Node) ToAny() any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		if i, err := strconv.ParseInt(y.Number, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(y.Number, 64); err == nil {
			return f
		}
		return y.Number
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = v.ToAny()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f] = y.Values[i].ToAny()
		}
		return res
	default:
		return nil
	}
}
