package structured

import (
	"fmt"
	"unicode/utf8"
)

// Validate checks that the value only consists of elements of the variant
// set, that all strings and mapping keys are valid UTF-8, that mapping keys
// are unique and that the nesting does not exceed [MaxDepth].
func Validate(v Value) error {
	return validate(v, 0)
}

func validate(v Value, depth int) error {
	if depth > MaxDepth {
		return fmt.Errorf("%w: nesting deeper than %d", ErrUnserializable, MaxDepth)
	}

	switch val := v.(type) {
	case String:
		if !utf8.ValidString(string(val)) {
			return fmt.Errorf("%w: string is not valid UTF-8", ErrUnserializable)
		}

	case Int, Float, Bool, Blob:

	case Sequence:
		for i, elem := range val {
			if err := validate(elem, depth+1); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}

	case Mapping:
		seen := make(map[string]struct{}, len(val))
		for _, p := range val {
			if !utf8.ValidString(p.Key) {
				return fmt.Errorf("%w: mapping key is not valid UTF-8", ErrUnserializable)
			}
			if _, ok := seen[p.Key]; ok {
				return fmt.Errorf("%w: duplicate mapping key %q", ErrUnserializable, p.Key)
			}
			seen[p.Key] = struct{}{}

			if err := validate(p.Value, depth+1); err != nil {
				return fmt.Errorf("[%q]: %w", p.Key, err)
			}
		}

	case nil:
		return fmt.Errorf("%w: nil value", ErrUnserializable)

	default:
		return fmt.Errorf("%w: unsupported type %T", ErrUnserializable, v)
	}

	return nil
}
