// Package textcodec stores and retrieves UTF-8 text in extended attributes,
// layered on the raw attribute accessors.
package textcodec

import (
	"fmt"
	"unicode/utf8"

	"github.com/desertwitch/xattrstore/internal/schema"
)

type rawProvider interface {
	GetRaw(target schema.Target, key string) ([]byte, error)
	SetRaw(target schema.Target, key string, value []byte) error
}

// Handler is the principal implementation for the text codec.
type Handler struct {
	rawHandler rawProvider
}

// NewHandler returns a pointer to a new text codec [Handler].
func NewHandler(rawHandler rawProvider) *Handler {
	return &Handler{
		rawHandler: rawHandler,
	}
}

// SetText stores the UTF-8 encoding of text under the key. Text that is not
// valid UTF-8 is rejected before anything is written.
func (h *Handler) SetText(target schema.Target, key string, text string) error {
	if offset := invalidOffset([]byte(text)); offset >= 0 {
		return schema.NewAttributeError(schema.OpSet, target, key, schema.KindEncodingInvalid,
			fmt.Errorf("%w at byte offset %d", ErrInvalidUTF8, offset))
	}

	return h.rawHandler.SetRaw(target, key, []byte(text))
}

// GetText returns the value stored under the key decoded as UTF-8 text.
func (h *Handler) GetText(target schema.Target, key string) (string, error) {
	data, err := h.rawHandler.GetRaw(target, key)
	if err != nil {
		return "", err
	}

	if offset := invalidOffset(data); offset >= 0 {
		return "", schema.NewAttributeError(schema.OpGet, target, key, schema.KindEncodingInvalid,
			fmt.Errorf("%w at byte offset %d", ErrInvalidUTF8, offset))
	}

	return string(data), nil
}

// invalidOffset returns the offset of the first byte that is not part of a
// valid UTF-8 sequence, or -1 if there is none.
func invalidOffset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}

	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}

	return -1
}
