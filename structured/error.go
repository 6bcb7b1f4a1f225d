package structured

import "errors"

var (
	// ErrUnserializable occurs when a value contains an element outside of
	// the supported variant set.
	ErrUnserializable = errors.New("value not serializable")

	// ErrMalformed occurs when data does not parse as any supported format or
	// contains elements outside of the supported variant set.
	ErrMalformed = errors.New("malformed structured data")

	// ErrUnknownFormat occurs when a [Format] is not one of the supported
	// formats.
	ErrUnknownFormat = errors.New("unknown structured format")
)
