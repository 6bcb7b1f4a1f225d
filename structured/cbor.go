package structured

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
)

const (
	cborMajorUint   = 0
	cborMajorNint   = 1
	cborMajorBytes  = 2
	cborMajorText   = 3
	cborMajorArray  = 4
	cborMajorMap    = 5
	cborMajorTag    = 6
	cborMajorSimple = 7

	cborFalse      = 0xf4
	cborTrue       = 0xf5
	cborFloat16    = 0xf9
	cborFloat32    = 0xfa
	cborFloat64    = 0xfb
	cborBreak      = 0xff
	cborIndefinite = 31
)

//nolint:gochecknoglobals
var (
	// cborSelfDescribe is tag 55799, which marks data as CBOR without
	// changing its meaning.
	cborSelfDescribe = []byte{0xd9, 0xd9, 0xf7}

	cborEncMode = mustEncMode(cbor.EncOptions{
		ShortestFloat: cbor.ShortestFloat16,
		NilContainers: cbor.NilContainerAsEmpty,
	})

	cborDecMode = mustDecMode(cbor.DecOptions{
		MaxNestedLevels: MaxDepth + 1,
		UTF8:            cbor.UTF8RejectInvalid,
	})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	em, err := opts.EncMode()
	if err != nil {
		panic(err)
	}

	return em
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	dm, err := opts.DecMode()
	if err != nil {
		panic(err)
	}

	return dm
}

func marshalCBOR(v Value) ([]byte, error) {
	buf := make([]byte, 0, len(cborSelfDescribe)+64) //nolint:mnd
	buf = append(buf, cborSelfDescribe...)

	return appendCBOR(buf, v)
}

func appendCBOR(buf []byte, v Value) ([]byte, error) {
	switch val := v.(type) {
	case String:
		return appendCBORScalar(buf, string(val))
	case Int:
		return appendCBORScalar(buf, int64(val))
	case Float:
		return appendCBORScalar(buf, float64(val))
	case Bool:
		return appendCBORScalar(buf, bool(val))
	case Blob:
		if val == nil {
			val = Blob{}
		}

		return appendCBORScalar(buf, []byte(val))

	case Sequence:
		buf = appendCBORHead(buf, cborMajorArray, uint64(len(val)))
		for _, elem := range val {
			var err error
			if buf, err = appendCBOR(buf, elem); err != nil {
				return nil, err
			}
		}

		return buf, nil

	case Mapping:
		buf = appendCBORHead(buf, cborMajorMap, uint64(len(val)))
		for _, p := range val {
			var err error
			if buf, err = appendCBORScalar(buf, p.Key); err != nil {
				return nil, err
			}
			if buf, err = appendCBOR(buf, p.Value); err != nil {
				return nil, err
			}
		}

		return buf, nil

	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrUnserializable, v)
	}
}

func appendCBORScalar(buf []byte, v any) ([]byte, error) {
	b, err := cborEncMode.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnserializable, err)
	}

	return append(buf, b...), nil
}

// appendCBORHead writes the initial byte and argument of a data item with
// definite length n.
func appendCBORHead(buf []byte, major byte, n uint64) []byte {
	switch {
	case n < 24: //nolint:mnd
		return append(buf, major<<5|byte(n))
	case n <= math.MaxUint8:
		return append(buf, major<<5|24, byte(n))
	case n <= math.MaxUint16:
		return binary.BigEndian.AppendUint16(append(buf, major<<5|25), uint16(n))
	case n <= math.MaxUint32:
		return binary.BigEndian.AppendUint32(append(buf, major<<5|26), uint32(n))
	default:
		return binary.BigEndian.AppendUint64(append(buf, major<<5|27), n)
	}
}

// readCBORHead returns the argument and the size in bytes of the head of a
// data item, or reports an indefinite length.
func readCBORHead(raw []byte) (uint64, int, bool, error) {
	if len(raw) == 0 {
		return 0, 0, false, fmt.Errorf("%w: truncated item", ErrMalformed)
	}

	ai := raw[0] & 0x1f //nolint:mnd

	size := 0
	switch {
	case ai < 24: //nolint:mnd
		return uint64(ai), 1, false, nil
	case ai == 24: //nolint:mnd
		size = 1
	case ai == 25: //nolint:mnd
		size = 2
	case ai == 26: //nolint:mnd
		size = 4
	case ai == 27: //nolint:mnd
		size = 8
	case ai == cborIndefinite:
		return 0, 1, true, nil
	default:
		return 0, 0, false, fmt.Errorf("%w: reserved additional information %d", ErrMalformed, ai)
	}

	if len(raw) < 1+size {
		return 0, 0, false, fmt.Errorf("%w: truncated head", ErrMalformed)
	}

	var n uint64
	for _, b := range raw[1 : 1+size] {
		n = n<<8 | uint64(b) //nolint:mnd
	}

	return n, 1 + size, false, nil
}

func unmarshalCBOR(data []byte) (Value, error) {
	var raw cbor.RawMessage
	if err := cborDecMode.Unmarshal(data[len(cborSelfDescribe):], &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return fromCBOR(raw, 0)
}

//nolint:cyclop,funlen
func fromCBOR(raw []byte, depth int) (Value, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrMalformed, MaxDepth)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: truncated item", ErrMalformed)
	}

	switch raw[0] >> 5 { //nolint:mnd
	case cborMajorUint, cborMajorNint:
		var i int64
		if err := cborDecMode.Unmarshal(raw, &i); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		return Int(i), nil

	case cborMajorBytes:
		var b []byte
		if err := cborDecMode.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		if b == nil {
			b = []byte{}
		}

		return Blob(b), nil

	case cborMajorText:
		var s string
		if err := cborDecMode.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		return String(s), nil

	case cborMajorArray:
		var items []cbor.RawMessage
		if err := cborDecMode.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		seq := make(Sequence, 0, len(items))
		for _, item := range items {
			v, err := fromCBOR(item, depth+1)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}

		return seq, nil

	case cborMajorMap:
		return fromCBORMap(raw, depth)

	case cborMajorTag:
		return nil, fmt.Errorf("%w: unsupported tagged item", ErrMalformed)

	case cborMajorSimple:
		switch raw[0] {
		case cborFalse:
			return Bool(false), nil
		case cborTrue:
			return Bool(true), nil
		case cborFloat16, cborFloat32, cborFloat64:
			var f float64
			if err := cborDecMode.Unmarshal(raw, &f); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
			}

			return Float(f), nil
		default:
			return nil, fmt.Errorf("%w: unsupported simple value 0x%02x", ErrMalformed, raw[0])
		}
	}

	return nil, fmt.Errorf("%w: unknown major type", ErrMalformed)
}

// fromCBORMap walks the pairs of a map item one by one so that their order
// is retained. The item is known to be well-formed at this point.
func fromCBORMap(raw []byte, depth int) (Value, error) {
	count, headSize, indefinite, err := readCBORHead(raw)
	if err != nil {
		return nil, err
	}

	rest := raw[headSize:]

	capacity := len(rest) / 2 //nolint:mnd
	if !indefinite && count < uint64(capacity) {
		capacity = int(count)
	}

	m := make(Mapping, 0, capacity)
	seen := make(map[string]struct{}, capacity)

	for i := uint64(0); indefinite || i < count; i++ {
		if indefinite && len(rest) > 0 && rest[0] == cborBreak {
			break
		}

		var key string
		if rest, err = cborDecMode.UnmarshalFirst(rest, &key); err != nil {
			return nil, fmt.Errorf("%w: mapping key: %w", ErrMalformed, err)
		}

		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: duplicate mapping key %q", ErrMalformed, key)
		}
		seen[key] = struct{}{}

		var item cbor.RawMessage
		if rest, err = cborDecMode.UnmarshalFirst(rest, &item); err != nil {
			return nil, fmt.Errorf("%w: mapping value: %w", ErrMalformed, err)
		}

		var v Value
		if v, err = fromCBOR(item, depth+1); err != nil {
			return nil, err
		}

		m = append(m, Pair{Key: key, Value: v})
	}

	return m, nil
}
