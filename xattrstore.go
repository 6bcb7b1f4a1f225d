// Package xattrstore is a typed metadata store over the extended attributes
// of files and symbolic links.
//
// Attributes can be accessed as raw bytes, as UTF-8 text, or as structured
// values (see package [structured]). Every operation is synchronous, maps to
// one platform call per attribute and keeps no state between calls. Failures
// are returned as [*AttributeError], which matches the sentinel of its [Kind]
// with [errors.Is]:
//
//	value, err := xattrstore.GetText(xattrstore.Follow("/data/book.cbz"), "user.series")
//	if errors.Is(err, xattrstore.ErrAttributeNotFound) {
//		...
//	}
//
// Callers relying on the sentinel-returning call shape use package legacy.
package xattrstore

import (
	"github.com/desertwitch/xattrstore/internal/schema"
)

// MaxKeyLength is the historical platform limit for attribute names. Names
// are not validated against it; the platform reports violations.
const MaxKeyLength = schema.MaxKeyLength

// Target addresses the file system entry an operation acts upon.
type Target = schema.Target

// Follow returns a [Target] for the path that resolves symbolic links.
func Follow(path string) Target {
	return Target{Path: path, FollowLinks: true}
}

// NoFollow returns a [Target] for the path that acts upon a symbolic link
// itself rather than on what it points to.
func NoFollow(path string) Target {
	return Target{Path: path, FollowLinks: false}
}
