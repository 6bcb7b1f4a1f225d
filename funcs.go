package xattrstore

import (
	"github.com/desertwitch/xattrstore/structured"
)

// ListKeys calls [Store.ListKeys] on the [Default] store.
func ListKeys(target Target) ([]string, error) {
	return defaultStore.ListKeys(target)
}

// GetRaw calls [Store.GetRaw] on the [Default] store.
func GetRaw(target Target, key string) ([]byte, error) {
	return defaultStore.GetRaw(target, key)
}

// SetRaw calls [Store.SetRaw] on the [Default] store.
func SetRaw(target Target, key string, value []byte) error {
	return defaultStore.SetRaw(target, key, value)
}

// RemoveKey calls [Store.RemoveKey] on the [Default] store.
func RemoveKey(target Target, key string) error {
	return defaultStore.RemoveKey(target, key)
}

// GetText calls [Store.GetText] on the [Default] store.
func GetText(target Target, key string) (string, error) {
	return defaultStore.GetText(target, key)
}

// SetText calls [Store.SetText] on the [Default] store.
func SetText(target Target, key string, text string) error {
	return defaultStore.SetText(target, key, text)
}

// GetObject calls [Store.GetObject] on the [Default] store.
func GetObject(target Target, key string) (structured.Value, error) {
	return defaultStore.GetObject(target, key)
}

// SetObject calls [Store.SetObject] on the [Default] store.
func SetObject(target Target, key string, value structured.Value) error {
	return defaultStore.SetObject(target, key, value)
}

// SetObjectFormat calls [Store.SetObjectFormat] on the [Default] store.
func SetObjectFormat(target Target, key string, value structured.Value, format structured.Format) error {
	return defaultStore.SetObjectFormat(target, key, value, format)
}

// Attributes calls [Store.Attributes] on the [Default] store.
func Attributes(target Target) ([]Attribute, error) {
	return defaultStore.Attributes(target)
}

// Copy calls [Store.Copy] on the [Default] store.
func Copy(src, dst Target) error {
	return defaultStore.Copy(src, dst)
}
