package schema

import (
	"github.com/pkg/xattr"
)

// Xattr is an implementation wrapping the operating system extended
// attribute functions. The "L" variants operate on a symbolic link itself,
// the others on the entry a symbolic link resolves to.
type Xattr struct{}

// Get wraps around [xattr.Get].
func (*Xattr) Get(path, name string) ([]byte, error) {
	return xattr.Get(path, name)
}

// LGet wraps around [xattr.LGet].
func (*Xattr) LGet(path, name string) ([]byte, error) {
	return xattr.LGet(path, name)
}

// Set wraps around [xattr.Set].
func (*Xattr) Set(path, name string, data []byte) error {
	return xattr.Set(path, name, data)
}

// LSet wraps around [xattr.LSet].
func (*Xattr) LSet(path, name string, data []byte) error {
	return xattr.LSet(path, name, data)
}

// List wraps around [xattr.List].
func (*Xattr) List(path string) ([]string, error) {
	return xattr.List(path)
}

// LList wraps around [xattr.LList].
func (*Xattr) LList(path string) ([]string, error) {
	return xattr.LList(path)
}

// Remove wraps around [xattr.Remove].
func (*Xattr) Remove(path, name string) error {
	return xattr.Remove(path, name)
}

// LRemove wraps around [xattr.LRemove].
func (*Xattr) LRemove(path, name string) error {
	return xattr.LRemove(path, name)
}
