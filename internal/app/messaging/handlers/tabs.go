package handlers

import (
	"context"

	"github.com/bnema/viewshell/internal/app/messaging"
	"github.com/bnema/viewshell/internal/domain/entity"
	domainurl "github.com/bnema/viewshell/internal/domain/url"
)

// RegisterTabs binds the tab:* commands. newTabURL is loaded by tab:create
// when no url argument is given. Typed addresses are normalized first.
func RegisterTabs(r Registrar, tabs Tabs, newTabURL string) {
	r.Register("tab:getAll", func(context.Context, messaging.Args) (any, error) {
		return tabs.GetAll(), nil
	})
	r.Register("tab:getActive", func(context.Context, messaging.Args) (any, error) {
		if id := tabs.Active(); id != "" {
			return id, nil
		}
		return nil, nil
	})
	r.Register("tab:switch", withID(func(ctx context.Context, id string) {
		tabs.SwitchTo(ctx, entity.TabID(id))
	}))
	r.Register("tab:close", withID(func(ctx context.Context, id string) {
		tabs.Close(ctx, entity.TabID(id))
	}))
	r.Register("tab:back", withID(func(ctx context.Context, id string) {
		tabs.Back(ctx, entity.TabID(id))
	}))
	r.Register("tab:forward", withID(func(ctx context.Context, id string) {
		tabs.Forward(ctx, entity.TabID(id))
	}))
	r.Register("tab:reload", withID(func(ctx context.Context, id string) {
		tabs.Reload(ctx, entity.TabID(id))
	}))

	r.Register("tab:navigate", func(ctx context.Context, args messaging.Args) (any, error) {
		id, err := args.String(0)
		if err != nil {
			return nil, err
		}
		url, err := args.String(1)
		if err != nil {
			return nil, err
		}
		tabs.Navigate(ctx, entity.TabID(id), domainurl.Normalize(url))
		return nil, nil
	})

	r.Register("tab:create", func(ctx context.Context, args messaging.Args) (any, error) {
		url := newTabURL
		if len(args) > 0 {
			u, err := args.String(0)
			if err != nil {
				return nil, err
			}
			url = domainurl.Normalize(u)
		}
		id, err := tabs.Create(ctx, url)
		if err != nil {
			return nil, err
		}
		tabs.SwitchTo(ctx, id)
		return id, nil
	})
}
