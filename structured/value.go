// Package structured implements the structured values that can be stored in
// extended attributes, together with their text (YAML) and binary (CBOR)
// serialization.
//
// A [Value] is a closed variant: it is always one of [String], [Int],
// [Float], [Bool], [Blob], [Sequence] or [Mapping]. Serialization rejects
// anything else, for example nil elements or strings that are not valid
// UTF-8, with [ErrUnserializable]. For every value built from the variant set,
// deserializing its serialization yields a value that is [Equal] to it, in
// every supported [Format].
package structured

// MaxDepth is the deepest nesting of sequences and mappings accepted when
// serializing or deserializing. Deeper values, including values that refer
// back to themselves, are rejected.
const MaxDepth = 512

// Value is a structured value. The interface is sealed, only the types of
// this package implement it.
type Value interface {
	isValue()
}

// String is a UTF-8 text value.
type String string

// Int is an integral number.
type Int int64

// Float is a floating point number.
type Float float64

// Bool is a boolean value.
type Bool bool

// Blob is an opaque binary value.
type Blob []byte

// Sequence is an ordered list of values.
type Sequence []Value

// Mapping is an ordered list of key/value pairs with unique keys.
type Mapping []Pair

// Pair is a single entry of a [Mapping].
type Pair struct {
	Key   string
	Value Value
}

func (String) isValue()   {}
func (Int) isValue()      {}
func (Float) isValue()    {}
func (Bool) isValue()     {}
func (Blob) isValue()     {}
func (Sequence) isValue() {}
func (Mapping) isValue()  {}

// Get returns the value stored under key. The second return value is false
// if the key is not present.
func (m Mapping) Get(key string) (Value, bool) {
	for _, p := range m {
		if p.Key == key {
			return p.Value, true
		}
	}

	return nil, false
}

// Keys returns the keys of the mapping in order.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, p := range m {
		keys = append(keys, p.Key)
	}

	return keys
}
