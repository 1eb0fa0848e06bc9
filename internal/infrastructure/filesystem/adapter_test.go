package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestAdapter_Exists(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	a := New(0)

	path := filepath.Join(dir, "a.txt")
	ok, err := a.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, ok)

	writeFile(t, path, "x")
	ok, err = a.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAdapter_MoveRename(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	a := New(0)

	src := filepath.Join(dir, "dl-1-file.bin")
	dst := filepath.Join(dir, "file.bin")
	writeFile(t, src, "payload")

	require.NoError(t, a.Move(ctx, src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))
}

func TestAdapter_MoveCrossDeviceCopies(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	a := New(1)
	a.rename = func(oldpath, newpath string) error {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: unix.EXDEV}
	}

	src := filepath.Join(dir, "tmp", "dl-1-file.bin")
	dst := filepath.Join(dir, "home", "file.bin")
	require.NoError(t, os.MkdirAll(filepath.Dir(src), 0o755))
	writeFile(t, src, "payload")

	require.NoError(t, a.Move(ctx, src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestAdapter_MoveCrossDeviceCancelled(t *testing.T) {
	dir := t.TempDir()
	a := New(1)
	a.rename = func(oldpath, newpath string) error {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: unix.EXDEV}
	}
	require.True(t, a.copies.TryAcquire(1))
	defer a.copies.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := filepath.Join(dir, "src")
	writeFile(t, src, "payload")
	err := a.Move(ctx, src, filepath.Join(dir, "dst"))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = os.Stat(src)
	assert.NoError(t, err, "source is kept when the move does not happen")
}

func TestAdapter_MoveMissingSource(t *testing.T) {
	dir := t.TempDir()
	a := New(0)

	err := a.Move(context.Background(), filepath.Join(dir, "missing"), filepath.Join(dir, "dst"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAdapter_RemoveIgnoresMissing(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	a := New(0)

	path := filepath.Join(dir, "temp")
	writeFile(t, path, "x")

	require.NoError(t, a.Remove(ctx, path))
	require.NoError(t, a.Remove(ctx, path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestAdapter_MkdirAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	a := New(0)

	require.NoError(t, a.MkdirAll(context.Background(), dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
