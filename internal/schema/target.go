package schema

import "fmt"

// MaxKeyLength is the historical platform limit for attribute names. It is
// informational only, names are passed through to the platform unchecked.
const MaxKeyLength = 127

// Target identifies a file system entry by its path together with the
// decision whether a symbolic link at that path is followed. Two targets with
// the same path but different traversal decisions may address different
// entries (the link itself and its referent) and thus different attributes.
type Target struct {
	Path        string
	FollowLinks bool
}

// String returns a representation of the [Target] for logging purposes.
func (t Target) String() string {
	if t.FollowLinks {
		return t.Path
	}

	return fmt.Sprintf("%s (nofollow)", t.Path)
}
