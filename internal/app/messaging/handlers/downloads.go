package handlers

import (
	"context"

	"github.com/bnema/viewshell/internal/app/messaging"
	"github.com/bnema/viewshell/internal/domain/entity"
)

// RegisterDownloads binds the download:* commands.
func RegisterDownloads(r Registrar, downloads Downloads, panel Panel) {
	r.Register("download:getAll", func(context.Context, messaging.Args) (any, error) {
		return downloads.GetAll(), nil
	})
	r.Register("download:open", withID(func(ctx context.Context, id string) {
		downloads.Open(ctx, entity.DownloadID(id))
	}))
	r.Register("download:show", withID(func(ctx context.Context, id string) {
		downloads.ShowInFolder(ctx, entity.DownloadID(id))
	}))
	r.Register("download:remove", withID(func(ctx context.Context, id string) {
		downloads.Remove(ctx, entity.DownloadID(id))
	}))
	r.Register("download:cancel", withID(func(ctx context.Context, id string) {
		downloads.Cancel(ctx, entity.DownloadID(id))
	}))

	clearCompleted := func(ctx context.Context, _ messaging.Args) (any, error) {
		return downloads.ClearCompleted(ctx), nil
	}
	r.Register("download:clear", clearCompleted)
	r.Register("download:clearCompleted", clearCompleted)

	r.Register("download:hide", func(ctx context.Context, _ messaging.Args) (any, error) {
		if panel != nil {
			panel.Hide(ctx)
		}
		return nil, nil
	})
	r.Register("download:togglePanel", func(ctx context.Context, _ messaging.Args) (any, error) {
		if panel != nil {
			panel.Toggle(ctx)
		}
		return nil, nil
	})
}
