package xattrstore

import (
	"errors"

	"github.com/desertwitch/xattrstore/internal/objcodec"
	"github.com/desertwitch/xattrstore/internal/rawio"
	"github.com/desertwitch/xattrstore/internal/schema"
	"github.com/desertwitch/xattrstore/internal/textcodec"
	"github.com/desertwitch/xattrstore/structured"
)

// XattrProvider is the platform extended attribute facility a [Store]
// operates on. The L-prefixed variants act upon symbolic links themselves.
// Errors are expected to carry the platform error code (as
// [github.com/pkg/xattr] does) so that they can be classified.
type XattrProvider interface {
	Get(path, name string) ([]byte, error)
	LGet(path, name string) ([]byte, error)
	Set(path, name string, data []byte) error
	LSet(path, name string, data []byte) error
	List(path string) ([]string, error)
	LList(path string) ([]string, error)
	Remove(path, name string) error
	LRemove(path, name string) error
}

// Store provides typed access to extended attributes.
// It holds no mutable state and is safe for concurrent use.
type Store struct {
	rawHandler  *rawio.Handler
	textHandler *textcodec.Handler
	objHandler  *objcodec.Handler
}

// Attribute is a single attribute as returned by [Store.Attributes].
type Attribute struct {
	Key   string
	Value []byte
}

//nolint:gochecknoglobals
var defaultStore = NewStore(&schema.Xattr{})

// NewStore returns a pointer to a new [Store] over the given provider.
func NewStore(xattrHandler XattrProvider) *Store {
	rawHandler := rawio.NewHandler(xattrHandler)

	return &Store{
		rawHandler:  rawHandler,
		textHandler: textcodec.NewHandler(rawHandler),
		objHandler:  objcodec.NewHandler(rawHandler),
	}
}

// Default returns the [Store] operating on the platform facility.
func Default() *Store {
	return defaultStore
}

// ListKeys returns the names of all attributes set on the target. A target
// without attributes yields an empty slice.
func (s *Store) ListKeys(target Target) ([]string, error) {
	return s.rawHandler.ListKeys(target)
}

// GetRaw returns the exact bytes stored under the key.
func (s *Store) GetRaw(target Target, key string) ([]byte, error) {
	return s.rawHandler.GetRaw(target, key)
}

// SetRaw stores the bytes verbatim under the key, replacing a prior value.
func (s *Store) SetRaw(target Target, key string, value []byte) error {
	return s.rawHandler.SetRaw(target, key, value)
}

// RemoveKey deletes the attribute from the target.
func (s *Store) RemoveKey(target Target, key string) error {
	return s.rawHandler.RemoveKey(target, key)
}

// GetText returns the attribute decoded as UTF-8 text. Values that are not
// valid UTF-8 fail with [ErrEncodingInvalid].
func (s *Store) GetText(target Target, key string) (string, error) {
	return s.textHandler.GetText(target, key)
}

// SetText stores the text as UTF-8 bytes.
func (s *Store) SetText(target Target, key string, text string) error {
	return s.textHandler.SetText(target, key, text)
}

// GetObject returns the attribute decoded as a structured value. Both
// serialization formats are recognized.
func (s *Store) GetObject(target Target, key string) (structured.Value, error) {
	return s.objHandler.GetObject(target, key)
}

// SetObject stores the value in the default serialization format.
func (s *Store) SetObject(target Target, key string, value structured.Value) error {
	return s.objHandler.SetObject(target, key, value, structured.FormatDefault)
}

// SetObjectFormat stores the value in the given serialization format.
func (s *Store) SetObjectFormat(target Target, key string, value structured.Value, format structured.Format) error {
	return s.objHandler.SetObject(target, key, value, format)
}

// Attributes returns every attribute of the target in listing order. Keys
// that disappear between listing and reading are skipped.
func (s *Store) Attributes(target Target) ([]Attribute, error) {
	keys, err := s.rawHandler.ListKeys(target)
	if err != nil {
		return nil, err
	}

	attrs := make([]Attribute, 0, len(keys))

	for _, key := range keys {
		value, err := s.rawHandler.GetRaw(target, key)
		if err != nil {
			if errors.Is(err, ErrAttributeNotFound) {
				continue
			}

			return nil, err
		}
		attrs = append(attrs, Attribute{Key: key, Value: value})
	}

	return attrs, nil
}

// Copy sets every attribute of src on dst verbatim. Attributes of dst that
// src does not carry are left untouched. The first failure aborts the copy,
// leaving the attributes written so far in place.
func (s *Store) Copy(src, dst Target) error {
	attrs, err := s.Attributes(src)
	if err != nil {
		return err
	}

	for _, attr := range attrs {
		if err := s.rawHandler.SetRaw(dst, attr.Key, attr.Value); err != nil {
			return err
		}
	}

	return nil
}
