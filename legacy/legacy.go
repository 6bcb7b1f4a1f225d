// Package legacy provides the sentinel-returning call shape of the attribute
// store. Every call performs exactly one call of the explicit shape (see
// package xattrstore) and discards the error:
//
//   - [Adapter.Keys] returns an empty slice on failure.
//   - [Adapter.Raw] returns nil on failure, a successful read of an empty
//     value returns an empty non-nil slice.
//   - [Adapter.Text] returns "" on failure, which cannot be told apart from
//     stored empty text.
//   - [Adapter.Object] returns nil on failure.
//   - [Adapter.SetRaw], [Adapter.SetText], [Adapter.SetObject] and
//     [Adapter.Remove] give no success or failure signal at all. They must
//     not be used where a failure has to be observed.
//
// New code should use package xattrstore instead.
package legacy

import (
	"github.com/desertwitch/xattrstore"
	"github.com/desertwitch/xattrstore/structured"
)

type explicitProvider interface {
	ListKeys(target xattrstore.Target) ([]string, error)
	GetRaw(target xattrstore.Target, key string) ([]byte, error)
	SetRaw(target xattrstore.Target, key string, value []byte) error
	RemoveKey(target xattrstore.Target, key string) error
	GetText(target xattrstore.Target, key string) (string, error)
	SetText(target xattrstore.Target, key string, text string) error
	GetObject(target xattrstore.Target, key string) (structured.Value, error)
	SetObject(target xattrstore.Target, key string, value structured.Value) error
}

// Adapter maps the explicit call shape onto sentinel values. It holds no
// state besides the store it adapts.
type Adapter struct {
	explicitHandler explicitProvider
}

//nolint:gochecknoglobals
var defaultAdapter = NewAdapter(xattrstore.Default())

// NewAdapter returns a pointer to a new [Adapter] over the explicit store.
func NewAdapter(explicitHandler explicitProvider) *Adapter {
	return &Adapter{
		explicitHandler: explicitHandler,
	}
}

// Keys returns the attribute names of the target, or an empty slice.
func (a *Adapter) Keys(target xattrstore.Target) []string {
	keys, err := a.explicitHandler.ListKeys(target)
	if err != nil || keys == nil {
		return []string{}
	}

	return keys
}

// Raw returns the bytes stored under the key, or nil.
func (a *Adapter) Raw(target xattrstore.Target, key string) []byte {
	value, err := a.explicitHandler.GetRaw(target, key)
	if err != nil {
		return nil
	}

	return value
}

// SetRaw stores the bytes under the key. Failures are not reported.
func (a *Adapter) SetRaw(target xattrstore.Target, key string, value []byte) {
	_ = a.explicitHandler.SetRaw(target, key, value)
}

// Text returns the text stored under the key, or "".
func (a *Adapter) Text(target xattrstore.Target, key string) string {
	text, err := a.explicitHandler.GetText(target, key)
	if err != nil {
		return ""
	}

	return text
}

// SetText stores the text under the key. Failures are not reported.
func (a *Adapter) SetText(target xattrstore.Target, key string, text string) {
	_ = a.explicitHandler.SetText(target, key, text)
}

// Object returns the structured value stored under the key, or nil.
func (a *Adapter) Object(target xattrstore.Target, key string) structured.Value {
	value, err := a.explicitHandler.GetObject(target, key)
	if err != nil {
		return nil
	}

	return value
}

// SetObject stores the value under the key in the default format. Failures
// are not reported.
func (a *Adapter) SetObject(target xattrstore.Target, key string, value structured.Value) {
	_ = a.explicitHandler.SetObject(target, key, value)
}

// Remove deletes the attribute. Failures are not reported.
func (a *Adapter) Remove(target xattrstore.Target, key string) {
	_ = a.explicitHandler.RemoveKey(target, key)
}
