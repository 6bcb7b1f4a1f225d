package rawio

import (
	"errors"

	"github.com/desertwitch/xattrstore/internal/schema"
	"github.com/pkg/xattr"
	"golang.org/x/sys/unix"
)

// Classify maps a platform failure onto the [schema.Kind] taxonomy. Errors
// which already carry a kind keep it, unknown codes become
// [schema.KindIOFailure].
func Classify(err error) schema.Kind {
	if kind, ok := schema.KindOf(err); ok {
		return kind
	}

	switch {
	case errors.Is(err, xattr.ENOATTR):
		return schema.KindAttributeNotFound

	case errors.Is(err, unix.ENOENT),
		errors.Is(err, unix.ENOTDIR),
		errors.Is(err, unix.ELOOP),
		errors.Is(err, unix.ENAMETOOLONG):
		return schema.KindTargetUnreachable

	case errors.Is(err, unix.EACCES),
		errors.Is(err, unix.EPERM):
		return schema.KindPermissionDenied

	case errors.Is(err, unix.E2BIG),
		errors.Is(err, unix.ERANGE),
		errors.Is(err, unix.ENOSPC),
		errors.Is(err, unix.EDQUOT):
		return schema.KindQuotaOrSizeExceeded

	case errors.Is(err, unix.ENOTSUP),
		errors.Is(err, unix.EOPNOTSUPP):
		return schema.KindUnsupportedOnFileSystem

	default:
		return schema.KindIOFailure
	}
}
