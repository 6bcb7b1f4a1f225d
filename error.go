package xattrstore

import (
	"github.com/desertwitch/xattrstore/internal/schema"
)

// Kind classifies an [AttributeError].
type Kind = schema.Kind

// AttributeError is the failure returned by every operation of a [Store].
type AttributeError = schema.AttributeError

// Failure kinds, see [Kind].
const (
	KindIOFailure               = schema.KindIOFailure
	KindTargetUnreachable       = schema.KindTargetUnreachable
	KindPermissionDenied        = schema.KindPermissionDenied
	KindAttributeNotFound       = schema.KindAttributeNotFound
	KindQuotaOrSizeExceeded     = schema.KindQuotaOrSizeExceeded
	KindEncodingInvalid         = schema.KindEncodingInvalid
	KindUnserializable          = schema.KindUnserializable
	KindMalformedData           = schema.KindMalformedData
	KindUnsupportedOnFileSystem = schema.KindUnsupportedOnFileSystem
)

//nolint:gochecknoglobals
var (
	// ErrIOFailure matches failures of [KindIOFailure].
	ErrIOFailure = schema.ErrIOFailure

	// ErrTargetUnreachable matches failures of [KindTargetUnreachable].
	ErrTargetUnreachable = schema.ErrTargetUnreachable

	// ErrPermissionDenied matches failures of [KindPermissionDenied].
	ErrPermissionDenied = schema.ErrPermissionDenied

	// ErrAttributeNotFound matches failures of [KindAttributeNotFound].
	ErrAttributeNotFound = schema.ErrAttributeNotFound

	// ErrQuotaOrSizeExceeded matches failures of [KindQuotaOrSizeExceeded].
	ErrQuotaOrSizeExceeded = schema.ErrQuotaOrSizeExceeded

	// ErrEncodingInvalid matches failures of [KindEncodingInvalid].
	ErrEncodingInvalid = schema.ErrEncodingInvalid

	// ErrUnserializable matches failures of [KindUnserializable].
	ErrUnserializable = schema.ErrUnserializable

	// ErrMalformedData matches failures of [KindMalformedData].
	ErrMalformedData = schema.ErrMalformedData

	// ErrUnsupportedOnFileSystem matches failures of
	// [KindUnsupportedOnFileSystem].
	ErrUnsupportedOnFileSystem = schema.ErrUnsupportedOnFileSystem
)

// KindOf returns the [Kind] of the [AttributeError] within the error chain.
// The second return value is false for errors not produced by this package.
func KindOf(err error) (Kind, bool) {
	return schema.KindOf(err)
}
