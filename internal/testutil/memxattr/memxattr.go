// Package memxattr provides an in-memory extended attribute provider for
// tests. It models regular entries and symbolic links so that the difference
// between operating on a link and on its referent can be observed without
// relying on the attribute support of the host file system.
//
// It is a test double only and is never imported by production code.
package memxattr

import (
	"sync"
	"syscall"

	"github.com/pkg/xattr"
)

const maxLinkHops = 40

type entry struct {
	linkTo      string
	isLink      bool
	denied      bool
	unsupported bool
	names       []string
	values      map[string][]byte
}

// FS is the in-memory attribute store. The zero value is not usable, use
// [New] instead.
type FS struct {
	sync.Mutex
	entries  map[string]*entry
	maxValue int
}

// New returns a pointer to a new and empty [FS].
func New() *FS {
	return &FS{
		entries:  make(map[string]*entry),
		maxValue: -1,
	}
}

// AddFile creates a regular entry at path without any attributes.
func (f *FS) AddFile(path string) {
	f.Lock()
	defer f.Unlock()

	f.entries[path] = &entry{values: make(map[string][]byte)}
}

// AddSymlink creates a symbolic link at path pointing to target. The target
// does not need to exist.
func (f *FS) AddSymlink(path, target string) {
	f.Lock()
	defer f.Unlock()

	f.entries[path] = &entry{linkTo: target, isLink: true, values: make(map[string][]byte)}
}

// Deny makes every operation on the entry at path fail with EACCES.
func (f *FS) Deny(path string) {
	f.Lock()
	defer f.Unlock()

	if e, ok := f.entries[path]; ok {
		e.denied = true
	}
}

// Unsupported makes every operation on the entry at path fail with ENOTSUP.
func (f *FS) Unsupported(path string) {
	f.Lock()
	defer f.Unlock()

	if e, ok := f.entries[path]; ok {
		e.unsupported = true
	}
}

// LimitValueSize makes setting values longer than n bytes fail with E2BIG.
func (f *FS) LimitValueSize(n int) {
	f.Lock()
	defer f.Unlock()

	f.maxValue = n
}

// Get implements the following variant of the attribute getter.
func (f *FS) Get(path, name string) ([]byte, error) {
	return f.get("xattr.Get", path, name, true)
}

// LGet implements the non-following variant of the attribute getter.
func (f *FS) LGet(path, name string) ([]byte, error) {
	return f.get("xattr.LGet", path, name, false)
}

// Set implements the following variant of the attribute setter.
func (f *FS) Set(path, name string, data []byte) error {
	return f.set("xattr.Set", path, name, data, true)
}

// LSet implements the non-following variant of the attribute setter.
func (f *FS) LSet(path, name string, data []byte) error {
	return f.set("xattr.LSet", path, name, data, false)
}

// List implements the following variant of the attribute lister.
func (f *FS) List(path string) ([]string, error) {
	return f.list("xattr.List", path, true)
}

// LList implements the non-following variant of the attribute lister.
func (f *FS) LList(path string) ([]string, error) {
	return f.list("xattr.LList", path, false)
}

// Remove implements the following variant of the attribute remover.
func (f *FS) Remove(path, name string) error {
	return f.remove("xattr.Remove", path, name, true)
}

// LRemove implements the non-following variant of the attribute remover.
func (f *FS) LRemove(path, name string) error {
	return f.remove("xattr.LRemove", path, name, false)
}

func (f *FS) get(op, path, name string, follow bool) ([]byte, error) {
	f.Lock()
	defer f.Unlock()

	e, errno := f.resolve(path, follow)
	if errno != 0 {
		return nil, &xattr.Error{Op: op, Path: path, Name: name, Err: errno}
	}

	value, ok := e.values[name]
	if !ok {
		return nil, &xattr.Error{Op: op, Path: path, Name: name, Err: xattr.ENOATTR}
	}

	out := make([]byte, len(value))
	copy(out, value)

	return out, nil
}

func (f *FS) set(op, path, name string, data []byte, follow bool) error {
	f.Lock()
	defer f.Unlock()

	e, errno := f.resolve(path, follow)
	if errno != 0 {
		return &xattr.Error{Op: op, Path: path, Name: name, Err: errno}
	}

	if f.maxValue >= 0 && len(data) > f.maxValue {
		return &xattr.Error{Op: op, Path: path, Name: name, Err: syscall.E2BIG}
	}

	if _, exists := e.values[name]; !exists {
		e.names = append(e.names, name)
	}

	value := make([]byte, len(data))
	copy(value, data)
	e.values[name] = value

	return nil
}

func (f *FS) list(op, path string, follow bool) ([]string, error) {
	f.Lock()
	defer f.Unlock()

	e, errno := f.resolve(path, follow)
	if errno != 0 {
		return nil, &xattr.Error{Op: op, Path: path, Err: errno}
	}

	names := make([]string, len(e.names))
	copy(names, e.names)

	return names, nil
}

func (f *FS) remove(op, path, name string, follow bool) error {
	f.Lock()
	defer f.Unlock()

	e, errno := f.resolve(path, follow)
	if errno != 0 {
		return &xattr.Error{Op: op, Path: path, Name: name, Err: errno}
	}

	if _, ok := e.values[name]; !ok {
		return &xattr.Error{Op: op, Path: path, Name: name, Err: xattr.ENOATTR}
	}

	delete(e.values, name)

	for i, n := range e.names {
		if n == name {
			e.names = append(e.names[:i], e.names[i+1:]...)

			break
		}
	}

	return nil
}

func (f *FS) resolve(path string, follow bool) (*entry, syscall.Errno) {
	for hops := 0; ; hops++ {
		e, ok := f.entries[path]
		if !ok {
			return nil, syscall.ENOENT
		}

		if e.denied {
			return nil, syscall.EACCES
		}

		if e.unsupported {
			return nil, syscall.ENOTSUP
		}

		if !e.isLink || !follow {
			return e, 0
		}

		if hops >= maxLinkHops {
			return nil, syscall.ELOOP
		}

		path = e.linkTo
	}
}
