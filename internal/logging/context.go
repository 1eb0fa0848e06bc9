package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

func withField(ctx context.Context, key, value string) context.Context {
	return FromContext(ctx).With().Str(key, value).Logger().WithContext(ctx)
}

// WithComponent tags every line logged through ctx with component.
func WithComponent(ctx context.Context, component string) context.Context {
	return withField(ctx, "component", component)
}

// WithTabID tags lines with the tab they concern.
func WithTabID(ctx context.Context, tabID string) context.Context {
	return withField(ctx, "tab_id", tabID)
}

// WithDownloadID tags lines with the download they concern.
func WithDownloadID(ctx context.Context, downloadID string) context.Context {
	return withField(ctx, "download_id", downloadID)
}
