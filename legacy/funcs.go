package legacy

import (
	"github.com/desertwitch/xattrstore"
	"github.com/desertwitch/xattrstore/structured"
)

// Keys calls [Adapter.Keys] over the default store.
func Keys(target xattrstore.Target) []string {
	return defaultAdapter.Keys(target)
}

// Raw calls [Adapter.Raw] over the default store.
func Raw(target xattrstore.Target, key string) []byte {
	return defaultAdapter.Raw(target, key)
}

// SetRaw calls [Adapter.SetRaw] over the default store.
func SetRaw(target xattrstore.Target, key string, value []byte) {
	defaultAdapter.SetRaw(target, key, value)
}

// Text calls [Adapter.Text] over the default store.
func Text(target xattrstore.Target, key string) string {
	return defaultAdapter.Text(target, key)
}

// SetText calls [Adapter.SetText] over the default store.
func SetText(target xattrstore.Target, key string, text string) {
	defaultAdapter.SetText(target, key, text)
}

// Object calls [Adapter.Object] over the default store.
func Object(target xattrstore.Target, key string) structured.Value {
	return defaultAdapter.Object(target, key)
}

// SetObject calls [Adapter.SetObject] over the default store.
func SetObject(target xattrstore.Target, key string, value structured.Value) {
	defaultAdapter.SetObject(target, key, value)
}

// Remove calls [Adapter.Remove] over the default store.
func Remove(target xattrstore.Target, key string) {
	defaultAdapter.Remove(target, key)
}
