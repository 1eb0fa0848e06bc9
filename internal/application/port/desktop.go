package port

//go:generate mockgen -source=desktop.go -destination=mocks/mock_desktop.go -package=mocks

import "context"

// Desktop opens files through the desktop environment.
type Desktop interface {
	// OpenPath opens path with the default application.
	OpenPath(ctx context.Context, path string) error
	// ShowItemInFolder reveals path in the file manager.
	ShowItemInFolder(ctx context.Context, path string) error
}
