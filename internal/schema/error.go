package schema

import (
	"errors"
	"fmt"
)

// Kind classifies an [AttributeError]. The set of kinds is closed.
type Kind int

const (
	// KindIOFailure is any platform failure that none of the other kinds
	// describe, for example EIO or EINVAL.
	KindIOFailure Kind = iota

	// KindTargetUnreachable means the target could not be resolved: it does
	// not exist, a path component is not a directory, or a followed symbolic
	// link is broken or loops.
	KindTargetUnreachable

	// KindPermissionDenied means the caller lacks access to the target or to
	// the attribute namespace.
	KindPermissionDenied

	// KindAttributeNotFound means the key is not set on the target.
	KindAttributeNotFound

	// KindQuotaOrSizeExceeded means the platform rejected the value size, the
	// name length or the number of attributes.
	KindQuotaOrSizeExceeded

	// KindEncodingInvalid means a value is not valid UTF-8 (text codec only).
	KindEncodingInvalid

	// KindUnserializable means a value is outside the structured variant set
	// (object codec only).
	KindUnserializable

	// KindMalformedData means stored bytes do not parse as any supported
	// structured format (object codec only).
	KindMalformedData

	// KindUnsupportedOnFileSystem means the file system does not support
	// extended attributes.
	KindUnsupportedOnFileSystem
)

var (
	// ErrIOFailure is the sentinel for [KindIOFailure].
	ErrIOFailure = errors.New("i/o failure")

	// ErrTargetUnreachable is the sentinel for [KindTargetUnreachable].
	ErrTargetUnreachable = errors.New("target unreachable")

	// ErrPermissionDenied is the sentinel for [KindPermissionDenied].
	ErrPermissionDenied = errors.New("permission denied")

	// ErrAttributeNotFound is the sentinel for [KindAttributeNotFound].
	ErrAttributeNotFound = errors.New("attribute not found")

	// ErrQuotaOrSizeExceeded is the sentinel for [KindQuotaOrSizeExceeded].
	ErrQuotaOrSizeExceeded = errors.New("quota or size exceeded")

	// ErrEncodingInvalid is the sentinel for [KindEncodingInvalid].
	ErrEncodingInvalid = errors.New("invalid text encoding")

	// ErrUnserializable is the sentinel for [KindUnserializable].
	ErrUnserializable = errors.New("value not serializable")

	// ErrMalformedData is the sentinel for [KindMalformedData].
	ErrMalformedData = errors.New("malformed structured data")

	// ErrUnsupportedOnFileSystem is the sentinel for
	// [KindUnsupportedOnFileSystem].
	ErrUnsupportedOnFileSystem = errors.New("extended attributes not supported")
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindIOFailure:
		return "IOFailure"
	case KindTargetUnreachable:
		return "TargetUnreachable"
	case KindPermissionDenied:
		return "PermissionDenied"
	case KindAttributeNotFound:
		return "AttributeNotFound"
	case KindQuotaOrSizeExceeded:
		return "QuotaOrSizeExceeded"
	case KindEncodingInvalid:
		return "EncodingInvalid"
	case KindUnserializable:
		return "Unserializable"
	case KindMalformedData:
		return "MalformedData"
	case KindUnsupportedOnFileSystem:
		return "UnsupportedOnFileSystem"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinel returns the sentinel error matching the kind.
func (k Kind) Sentinel() error {
	switch k {
	case KindTargetUnreachable:
		return ErrTargetUnreachable
	case KindPermissionDenied:
		return ErrPermissionDenied
	case KindAttributeNotFound:
		return ErrAttributeNotFound
	case KindQuotaOrSizeExceeded:
		return ErrQuotaOrSizeExceeded
	case KindEncodingInvalid:
		return ErrEncodingInvalid
	case KindUnserializable:
		return ErrUnserializable
	case KindMalformedData:
		return ErrMalformedData
	case KindUnsupportedOnFileSystem:
		return ErrUnsupportedOnFileSystem
	default:
		return ErrIOFailure
	}
}

// Operation names carried by an [AttributeError].
const (
	OpList   = "list"
	OpGet    = "get"
	OpSet    = "set"
	OpRemove = "remove"
)

// AttributeError is the structured failure returned by every operation. It
// matches the sentinel of its [Kind] with [errors.Is] and unwraps to the
// underlying platform or codec cause.
type AttributeError struct {
	Op          string // Operation that failed (e.g. "get", "set")
	Path        string // Affected path
	Key         string // Affected attribute name, empty for listings
	FollowLinks bool   // Whether symbolic links were followed
	Kind        Kind   // Classification of the failure
	Err         error  // Underlying cause
}

// NewAttributeError returns a pointer to a new [AttributeError] for the given
// operation on the target.
func NewAttributeError(op string, target Target, key string, kind Kind, err error) *AttributeError {
	return &AttributeError{
		Op:          op,
		Path:        target.Path,
		Key:         key,
		FollowLinks: target.FollowLinks,
		Kind:        kind,
		Err:         err,
	}
}

// Error implements the error interface.
func (e *AttributeError) Error() string {
	msg := fmt.Sprintf("xattr %s", e.Op)
	if e.Key != "" {
		msg += fmt.Sprintf(" %q", e.Key)
	}
	msg += fmt.Sprintf(" on %s: %v", e.Path, e.Kind.Sentinel())

	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}

	return msg
}

// Unwrap returns the underlying cause.
func (e *AttributeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel error of the kind.
func (e *AttributeError) Is(target error) bool {
	return target == e.Kind.Sentinel() //nolint:errorlint,err113
}

// KindOf returns the [Kind] of an [AttributeError] within the error chain.
// The second return value is false if there is none.
func KindOf(err error) (Kind, bool) {
	var attrErr *AttributeError
	if errors.As(err, &attrErr) {
		return attrErr.Kind, true
	}

	return KindIOFailure, false
}
