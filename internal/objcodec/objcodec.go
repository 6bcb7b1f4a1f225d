// Package objcodec stores and retrieves structured values in extended
// attributes, layered on the raw attribute accessors. Values are serialized
// in one of the formats of the structured package and the format is detected
// again when reading.
package objcodec

import (
	"github.com/desertwitch/xattrstore/internal/schema"
	"github.com/desertwitch/xattrstore/structured"
)

type rawProvider interface {
	GetRaw(target schema.Target, key string) ([]byte, error)
	SetRaw(target schema.Target, key string, value []byte) error
}

// Handler is the principal implementation for the structured object codec.
type Handler struct {
	rawHandler rawProvider
}

// NewHandler returns a pointer to a new object codec [Handler].
func NewHandler(rawHandler rawProvider) *Handler {
	return &Handler{
		rawHandler: rawHandler,
	}
}

// SetObject serializes the value in the given format and stores it under the
// key. Values outside of the structured variant set are rejected before
// anything is written.
func (h *Handler) SetObject(target schema.Target, key string, value structured.Value, format structured.Format) error {
	data, err := structured.Marshal(value, format)
	if err != nil {
		return schema.NewAttributeError(schema.OpSet, target, key, schema.KindUnserializable, err)
	}

	return h.rawHandler.SetRaw(target, key, data)
}

// GetObject returns the structured value stored under the key, in whichever
// supported format it was stored.
func (h *Handler) GetObject(target schema.Target, key string) (structured.Value, error) {
	data, err := h.rawHandler.GetRaw(target, key)
	if err != nil {
		return nil, err
	}

	value, err := structured.Unmarshal(data)
	if err != nil {
		return nil, schema.NewAttributeError(schema.OpGet, target, key, schema.KindMalformedData, err)
	}

	return value, nil
}
