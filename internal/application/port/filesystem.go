package port

//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks

import "context"

// FileSystem provides file system operations for the application layer.
type FileSystem interface {
	Exists(ctx context.Context, path string) (bool, error)
	// Move renames src to dst, copying and deleting when they sit on different
	// devices.
	Move(ctx context.Context, src, dst string) error
	// Remove deletes path. A missing file is not an error.
	Remove(ctx context.Context, path string) error
	MkdirAll(ctx context.Context, path string) error
}
