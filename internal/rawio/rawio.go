// Package rawio implements the raw attribute accessors. Every operation is a
// single pass-through to the platform extended attribute facility, selecting
// the symbolic link variant of the syscall from the target's traversal flag.
// Nothing is buffered or cached between calls.
package rawio

import (
	"log/slog"

	"github.com/desertwitch/xattrstore/internal/schema"
)

type xattrProvider interface {
	Get(path, name string) ([]byte, error)
	LGet(path, name string) ([]byte, error)
	Set(path, name string, data []byte) error
	LSet(path, name string, data []byte) error
	List(path string) ([]string, error)
	LList(path string) ([]string, error)
	Remove(path, name string) error
	LRemove(path, name string) error
}

// Handler is the principal implementation for the raw attribute accessors.
type Handler struct {
	xattrHandler xattrProvider
}

// NewHandler returns a pointer to a new raw attribute [Handler].
func NewHandler(xattrHandler xattrProvider) *Handler {
	return &Handler{
		xattrHandler: xattrHandler,
	}
}

// ListKeys returns the names of all attributes currently set on the target,
// in the order reported by the platform. A target without attributes yields
// an empty (non-nil) slice.
func (h *Handler) ListKeys(target schema.Target) ([]string, error) {
	var names []string
	var err error

	if target.FollowLinks {
		names, err = h.xattrHandler.List(target.Path)
	} else {
		names, err = h.xattrHandler.LList(target.Path)
	}
	if err != nil {
		return nil, h.fail(schema.OpList, target, "", err)
	}

	keys := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		keys = append(keys, name)
	}

	return keys, nil
}

// GetRaw returns the exact bytes stored under the key. A successful read of
// an empty value yields an empty (non-nil) slice.
func (h *Handler) GetRaw(target schema.Target, key string) ([]byte, error) {
	var data []byte
	var err error

	if target.FollowLinks {
		data, err = h.xattrHandler.Get(target.Path, key)
	} else {
		data, err = h.xattrHandler.LGet(target.Path, key)
	}
	if err != nil {
		return nil, h.fail(schema.OpGet, target, key, err)
	}

	if data == nil {
		data = []byte{}
	}

	return data, nil
}

// SetRaw stores the value verbatim under the key, replacing any prior value
// within a single platform call.
func (h *Handler) SetRaw(target schema.Target, key string, value []byte) error {
	var err error

	if target.FollowLinks {
		err = h.xattrHandler.Set(target.Path, key, value)
	} else {
		err = h.xattrHandler.LSet(target.Path, key, value)
	}
	if err != nil {
		return h.fail(schema.OpSet, target, key, err)
	}

	return nil
}

// RemoveKey deletes the attribute from the target.
func (h *Handler) RemoveKey(target schema.Target, key string) error {
	var err error

	if target.FollowLinks {
		err = h.xattrHandler.Remove(target.Path, key)
	} else {
		err = h.xattrHandler.LRemove(target.Path, key)
	}
	if err != nil {
		return h.fail(schema.OpRemove, target, key, err)
	}

	return nil
}

func (h *Handler) fail(op string, target schema.Target, key string, err error) error {
	kind := Classify(err)

	slog.Debug("Attribute operation failed",
		"op", op,
		"path", target.Path,
		"key", key,
		"follow", target.FollowLinks,
		"kind", kind.String(),
		"err", err,
	)

	return schema.NewAttributeError(op, target, key, kind, err)
}
