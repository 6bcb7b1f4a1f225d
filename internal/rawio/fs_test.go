package rawio_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/xattrstore/internal/rawio"
	"github.com/desertwitch/xattrstore/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRealFileSystem exercises the platform facility in a temporary
// directory. It is skipped when the file system has no user attributes.
func TestRealFileSystem(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("content"), 0o600))

	handler := rawio.NewHandler(&schema.Xattr{})
	target := schema.Target{Path: file, FollowLinks: true}

	if err := handler.SetRaw(target, "user.xattrstore.test", []byte{0xFF, 0xFE}); err != nil {
		if errors.Is(err, schema.ErrUnsupportedOnFileSystem) || errors.Is(err, schema.ErrPermissionDenied) {
			t.Skipf("no user attribute support: %v", err)
		}
		require.NoError(t, err)
	}

	got, err := handler.GetRaw(target, "user.xattrstore.test")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFE}, got)

	keys, err := handler.ListKeys(target)
	require.NoError(t, err)
	assert.Contains(t, keys, "user.xattrstore.test")

	_, err = handler.GetRaw(target, "user.xattrstore.never")
	require.ErrorIs(t, err, schema.ErrAttributeNotFound)

	require.NoError(t, handler.RemoveKey(target, "user.xattrstore.test"))

	_, err = handler.GetRaw(target, "user.xattrstore.test")
	require.ErrorIs(t, err, schema.ErrAttributeNotFound)

	_, err = handler.ListKeys(schema.Target{Path: filepath.Join(dir, "missing"), FollowLinks: true})
	require.ErrorIs(t, err, schema.ErrTargetUnreachable)
}
