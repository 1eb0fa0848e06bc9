// Package handlers binds UI commands to the tab and download coordinators.
package handlers

import (
	"context"

	"github.com/bnema/viewshell/internal/app/messaging"
	"github.com/bnema/viewshell/internal/domain/entity"
)

// Registrar accepts command bindings. *messaging.Router implements it.
type Registrar interface {
	Register(command string, fn messaging.HandlerFunc)
}

// Tabs is the tab registry surface used by tab commands.
type Tabs interface {
	Create(ctx context.Context, url string) (entity.TabID, error)
	SwitchTo(ctx context.Context, id entity.TabID)
	Close(ctx context.Context, id entity.TabID)
	Navigate(ctx context.Context, id entity.TabID, url string)
	Back(ctx context.Context, id entity.TabID)
	Forward(ctx context.Context, id entity.TabID)
	Reload(ctx context.Context, id entity.TabID)
	GetAll() []entity.TabInfo
	Active() entity.TabID
}

// Downloads is the download coordinator surface used by download commands.
type Downloads interface {
	GetAll() []entity.DownloadStatus
	Open(ctx context.Context, id entity.DownloadID)
	ShowInFolder(ctx context.Context, id entity.DownloadID)
	Remove(ctx context.Context, id entity.DownloadID)
	ClearCompleted(ctx context.Context) []entity.DownloadID
	Cancel(ctx context.Context, id entity.DownloadID)
}

// Panel is the download panel controller.
type Panel interface {
	Hide(ctx context.Context)
	Toggle(ctx context.Context)
}

// withID adapts an action on a single id argument into a command handler.
func withID(fn func(ctx context.Context, id string)) messaging.HandlerFunc {
	return func(ctx context.Context, args messaging.Args) (any, error) {
		id, err := args.String(0)
		if err != nil {
			return nil, err
		}
		fn(ctx, id)
		return nil, nil
	}
}
