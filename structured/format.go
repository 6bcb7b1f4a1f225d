package structured

import (
	"bytes"
	"fmt"
	"strings"
)

// Format selects the serialization of a [Value].
type Format int

const (
	// FormatYAML is the canonical structured text format. It is the zero
	// value and thus the default.
	FormatYAML Format = iota

	// FormatCBOR is the canonical binary format. Its serializations start
	// with the CBOR self-describe tag, which is how they are detected.
	FormatCBOR
)

// FormatDefault is the format used when none is specified.
const FormatDefault = FormatYAML

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatCBOR:
		return "cbor"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat returns the [Format] for a name. Accepted are "yaml" and
// "text" for [FormatYAML], "cbor" and "binary" for [FormatCBOR].
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "yaml", "text":
		return FormatYAML, nil
	case "cbor", "binary":
		return FormatCBOR, nil
	default:
		return FormatDefault, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Marshal validates the value and serializes it in the given format.
func Marshal(v Value, format Format) ([]byte, error) {
	if err := Validate(v); err != nil {
		return nil, err
	}

	switch format {
	case FormatYAML:
		return marshalYAML(v)
	case FormatCBOR:
		return marshalCBOR(v)
	default:
		return nil, fmt.Errorf("%w: %w: %d", ErrUnserializable, ErrUnknownFormat, int(format))
	}
}

// Unmarshal parses data produced in any supported format, detecting the
// format from the data itself.
func Unmarshal(data []byte) (Value, error) {
	switch Detect(data) {
	case FormatCBOR:
		return unmarshalCBOR(data)
	default:
		return unmarshalYAML(data)
	}
}

// Detect returns the format data was most likely produced in. Data not
// carrying the binary marker is assumed to be text.
func Detect(data []byte) Format {
	if bytes.HasPrefix(data, cborSelfDescribe) {
		return FormatCBOR
	}

	return FormatYAML
}
