package bootstrap

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/viewshell/internal/application/port"
	"github.com/bnema/viewshell/internal/infrastructure/config"
	"github.com/bnema/viewshell/internal/logging"
)

// PrepareDirs creates the session storage and download temp directories in
// parallel. It returns the first failure.
func PrepareDirs(ctx context.Context, cfg *config.Config, fs port.FileSystem) error {
	dirs := map[string]string{
		"session data":  cfg.Session.DataDir,
		"session cache": cfg.Session.CacheDir,
		"download temp": cfg.Downloads.TempDir,
	}
	if cfg.Logging.EnableFileLog && cfg.Logging.LogDir != "" {
		dirs["log"] = cfg.Logging.LogDir
	}

	g, gctx := errgroup.WithContext(ctx)
	for name, dir := range dirs {
		g.Go(func() error {
			if err := fs.MkdirAll(gctx, dir); err != nil {
				return fmt.Errorf("create %s directory %s: %w", name, dir, err)
			}
			logging.FromContext(ctx).Trace().Str("dir", dir).Msg(name + " directory ready")
			return nil
		})
	}
	return g.Wait()
}
