package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/bnema/viewshell/internal/bootstrap"
	"github.com/bnema/viewshell/internal/cli"
	"github.com/bnema/viewshell/internal/cli/cmd"
	"github.com/bnema/viewshell/internal/domain/build"
	"github.com/bnema/viewshell/internal/infrastructure/config"
	"github.com/bnema/viewshell/internal/infrastructure/webkit"
	"github.com/bnema/viewshell/internal/infrastructure/xdg"
	"github.com/bnema/viewshell/internal/logging"
	"github.com/bnema/viewshell/internal/ui"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.Execute(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		WebKit:    webkit.Available(),
	}, runGUI)
}

func runGUI(app *cli.App, initialURL string) int {
	runtime.LockOSThread()
	enableCrashForensics()
	timer := bootstrap.NewStartupTimer()

	cfg := app.Config
	ctx, closeLog := initStartupContext(cfg)
	defer func() { _ = closeLog.Close() }()
	timer.Mark("logger")
	log := logging.FromContext(ctx)
	logCoreDumpLimits(ctx)

	downloadDir, err := xdg.New().DownloadDir()
	if err != nil {
		log.Warn().Err(err).Msg("no download directory, save prompts open in the default folder")
	}

	guiApp, err := ui.New(&ui.Dependencies{
		Ctx:           ctx,
		Config:        cfg,
		ConfigManager: app.Manager,
		InitialURL:    initialURL,
		DownloadDir:   downloadDir,
		Timer:         timer,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}
	timer.Mark("ui_deps")

	setupSignalHandler(ctx, guiApp)
	return guiApp.Run(ctx, os.Args[:1])
}

// initStartupContext builds the process logger. It logs at trace level and
// filters with the global level, so config reloads can change verbosity.
func initStartupContext(cfg *config.Config) (context.Context, io.Closer) {
	logging.SetLevel(cfg.Logging.Level)
	logCfg := logging.DefaultConfig()
	logCfg.Level = zerolog.TraceLevel
	if cfg.Logging.Format == "json" {
		logCfg.Format = "json"
	}

	var (
		logger zerolog.Logger
		closer io.Closer = io.NopCloser(nil)
	)
	if cfg.Logging.EnableFileLog {
		logCfg.LogDir = cfg.Logging.LogDir
		l, c, err := logging.NewWithFile(logCfg, logging.GenerateSessionID())
		if err == nil {
			logger, closer = l, c
		} else {
			logger = logging.New(logCfg)
			logger.Warn().Err(err).Msg("file logging disabled")
		}
	} else {
		logger = logging.New(logCfg)
	}
	return logging.WithContext(context.Background(), logger), closer
}

func setupSignalHandler(ctx context.Context, app *ui.App) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		app.Quit()
	}()
}
