// Package filesystem implements port.FileSystem on the local disk.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sys/unix"

	"github.com/bnema/viewshell/internal/application/port"
	"github.com/bnema/viewshell/internal/logging"
)

const (
	dirPerm = 0o755
	// DefaultMaxCopies bounds concurrent cross-device copies.
	DefaultMaxCopies = 2
)

// Adapter implements port.FileSystem using the OS filesystem.
type Adapter struct {
	copies *semaphore.Weighted
	rename func(oldpath, newpath string) error
}

// New creates a new filesystem adapter. maxCopies <= 0 uses DefaultMaxCopies.
func New(maxCopies int) *Adapter {
	if maxCopies <= 0 {
		maxCopies = DefaultMaxCopies
	}
	return &Adapter{
		copies: semaphore.NewWeighted(int64(maxCopies)),
		rename: os.Rename,
	}
}

func (a *Adapter) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Move renames src to dst. When they live on different devices the file is
// copied and the source removed.
func (a *Adapter) Move(ctx context.Context, src, dst string) error {
	err := a.rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, unix.EXDEV) {
		return fmt.Errorf("rename %s: %w", src, err)
	}

	logging.FromContext(ctx).Debug().Str("src", src).Str("dst", dst).Msg("cross-device move, copying")
	if err := a.copies.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("wait for copy slot: %w", err)
	}
	defer a.copies.Release(1)

	if err := copyFile(src, dst); err != nil {
		_ = os.Remove(dst)
		return err
	}
	if err := os.Remove(src); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove source %s: %w", src, err)
	}
	return nil
}

func (a *Adapter) Remove(_ context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

func (a *Adapter) MkdirAll(_ context.Context, path string) error {
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", src, ErrNotRegular)
	}

	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy: %w", err)
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return fmt.Errorf("sync destination: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close destination: %w", err)
	}
	return nil
}

var _ port.FileSystem = (*Adapter)(nil)
