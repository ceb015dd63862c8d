package shell

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileSystem(t *testing.T) {
	ctx := context.Background()
	fs := NewLocalFileSystem()

	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	missing := filepath.Join(dir, "missing")

	assert.True(t, fs.Exists(ctx, dir))
	assert.True(t, fs.IsDir(ctx, dir))

	assert.True(t, fs.Exists(ctx, file))
	assert.False(t, fs.IsDir(ctx, file))

	assert.False(t, fs.Exists(ctx, missing))
	assert.False(t, fs.IsDir(ctx, missing))

	canonical, err := fs.Canonical(filepath.Join(dir, ".", "..", filepath.Base(dir)))
	require.NoError(t, err)
	expected, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, expected, canonical)

	_, err = fs.Canonical(missing)
	assert.Error(t, err)

	_, err = fs.Canonical(missing + string(filepath.Separator) + "..")
	assert.Error(t, err)
}

func TestLocalFileSystem_CanonicalWalksDotDotAfterSymlink(t *testing.T) {
	fs := NewLocalFileSystem()

	target, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	deep := filepath.Join(target, "deep")
	require.NoError(t, os.Mkdir(deep, 0o755))

	dir := t.TempDir()
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(deep, link))

	canonical, err := fs.Canonical(link + string(filepath.Separator) + "..")
	require.NoError(t, err)
	assert.Equal(t, target, canonical)
}
