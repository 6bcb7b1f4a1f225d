package structured

import (
	"fmt"
	"math"
	"sort"
)

// FromAny converts a plain Go object graph into a [Value]. Supported are
// strings, signed and unsigned integers that fit into an int64, floats,
// booleans, byte slices, []any, map[string]any (keys are ordered
// lexicographically) and values that already are a [Value]. Anything else is
// rejected with [ErrUnserializable] rather than coerced.
func FromAny(obj any) (Value, error) {
	return fromAny(obj, 0)
}

//nolint:cyclop,funlen
func fromAny(obj any, depth int) (Value, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrUnserializable, MaxDepth)
	}

	switch val := obj.(type) {
	case Value:
		if err := validate(val, depth); err != nil {
			return nil, err
		}

		return val, nil

	case string:
		return String(val), validate(String(val), depth)
	case bool:
		return Bool(val), nil
	case []byte:
		return Blob(val), nil

	case int:
		return Int(val), nil
	case int8:
		return Int(val), nil
	case int16:
		return Int(val), nil
	case int32:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case uint:
		return fromUnsigned(uint64(val))
	case uint8:
		return Int(val), nil
	case uint16:
		return Int(val), nil
	case uint32:
		return Int(val), nil
	case uint64:
		return fromUnsigned(val)

	case float32:
		return Float(val), nil
	case float64:
		return Float(val), nil

	case []any:
		seq := make(Sequence, 0, len(val))
		for i, elem := range val {
			v, err := fromAny(elem, depth+1)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			seq = append(seq, v)
		}

		return seq, nil

	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		m := make(Mapping, 0, len(val))
		for _, k := range keys {
			v, err := fromAny(val[k], depth+1)
			if err != nil {
				return nil, fmt.Errorf("[%q]: %w", k, err)
			}
			m = append(m, Pair{Key: k, Value: v})
		}

		return m, validate(m, depth)

	case nil:
		return nil, fmt.Errorf("%w: nil value", ErrUnserializable)

	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrUnserializable, obj)
	}
}

func fromUnsigned(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("%w: integer %d overflows int64", ErrUnserializable, u)
	}

	return Int(u), nil
}

// ToAny converts a [Value] into a plain Go object graph made of string,
// int64, float64, bool, []byte, []any and map[string]any. Mapping order is
// not retained by the result.
func ToAny(v Value) any {
	switch val := v.(type) {
	case String:
		return string(val)
	case Int:
		return int64(val)
	case Float:
		return float64(val)
	case Bool:
		return bool(val)
	case Blob:
		return []byte(val)

	case Sequence:
		out := make([]any, 0, len(val))
		for _, elem := range val {
			out = append(out, ToAny(elem))
		}

		return out

	case Mapping:
		out := make(map[string]any, len(val))
		for _, p := range val {
			out[p.Key] = ToAny(p.Value)
		}

		return out

	default:
		return nil
	}
}
