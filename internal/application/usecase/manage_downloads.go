package usecase

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/segmentio/ksuid"

	"github.com/bnema/viewshell/internal/application/port"
	"github.com/bnema/viewshell/internal/domain/entity"
	"github.com/bnema/viewshell/internal/logging"
)

// Sentinel errors for download coordinator construction.
var (
	ErrNoMainLoop   = errors.New("main loop is required")
	ErrNoFileSystem = errors.New("file system is required")
	ErrNoHostWindow = errors.New("host window is required")
)

// NewDownloadID returns a sortable download id.
func NewDownloadID() string {
	return "dl-" + ksuid.New().String()
}

// PanelShower reveals the download panel.
type PanelShower interface {
	Show(ctx context.Context)
}

// DownloadCoordinatorConfig holds the collaborators of a DownloadCoordinator.
type DownloadCoordinatorConfig struct {
	Window     port.HostWindow
	FileSystem port.FileSystem
	Desktop    port.Desktop
	Publisher  port.Publisher
	Panel      PanelShower
	Loop       port.MainLoop
	// TempDir receives transfers until a destination is confirmed.
	// Defaults to os.TempDir().
	TempDir string
	// Spawn runs blocking work off the main loop. Defaults to a goroutine.
	Spawn       func(func())
	Now         func() time.Time
	IDGenerator IDGenerator
}

// trackedDownload is a record plus the coordinator's bookkeeping for it.
type trackedDownload struct {
	*entity.Download
	ctx         context.Context
	transfer    port.Transfer
	result      port.TransferResult
	tempCleaned bool
}

// DownloadCoordinator reconciles host transfers with save prompts. A record
// exists from the moment the host starts writing, but it is only admitted
// (visible to the UI) once the user confirms a destination. It must only be
// used from the main loop.
type DownloadCoordinator struct {
	ctx       context.Context
	window    port.HostWindow
	fs        port.FileSystem
	desktop   port.Desktop
	publisher port.Publisher
	panel     PanelShower
	loop      port.MainLoop
	tempDir   string
	spawn     func(func())
	now       func() time.Time
	newID     IDGenerator
	prepare   *PrepareDownloadUseCase

	admitted map[entity.DownloadID]*trackedDownload
	order    []entity.DownloadID
}

// NewDownloadCoordinator creates a coordinator with no downloads.
func NewDownloadCoordinator(ctx context.Context, cfg DownloadCoordinatorConfig) (*DownloadCoordinator, error) {
	if cfg.Loop == nil {
		return nil, ErrNoMainLoop
	}
	if cfg.FileSystem == nil {
		return nil, ErrNoFileSystem
	}
	if cfg.Window == nil {
		return nil, ErrNoHostWindow
	}

	c := &DownloadCoordinator{
		ctx:       logging.WithComponent(ctx, "downloads"),
		window:    cfg.Window,
		fs:        cfg.FileSystem,
		desktop:   cfg.Desktop,
		publisher: cfg.Publisher,
		panel:     cfg.Panel,
		loop:      cfg.Loop,
		tempDir:   cfg.TempDir,
		spawn:     cfg.Spawn,
		now:       cfg.Now,
		newID:     cfg.IDGenerator,
		prepare:   NewPrepareDownloadUseCase(),
		admitted:  make(map[entity.DownloadID]*trackedDownload),
	}
	if c.tempDir == "" {
		c.tempDir = os.TempDir()
	}
	if c.spawn == nil {
		c.spawn = func(fn func()) { go fn() }
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.newID == nil {
		c.newID = NewDownloadID
	}
	return c, nil
}

// SetPanel sets the panel revealed when a download is admitted.
func (c *DownloadCoordinator) SetPanel(panel PanelShower) {
	c.panel = panel
}

// HandleStarted takes over a transfer the host just started. The temp
// destination is set before returning; the save prompt resolves later.
func (c *DownloadCoordinator) HandleStarted(ctx context.Context, transfer port.Transfer) {
	id := entity.DownloadID(c.newID())
	prepared := c.prepare.Execute(ctx, PrepareDownloadInput{
		ID:                string(id),
		SuggestedFilename: transfer.SuggestedFilename(),
		MimeType:          transfer.MimeType(),
		URI:               transfer.URI(),
		TempDir:           c.tempDir,
	})
	transfer.SetDestination(prepared.TempPath)

	rec := &trackedDownload{
		Download: entity.NewDownload(id, prepared.Filename, prepared.TempPath, transfer.TotalBytes(), c.now()),
		ctx:      logging.WithDownloadID(c.ctx, string(id)),
		transfer: transfer,
	}
	transfer.SetCallbacks(&port.TransferCallbacks{
		OnProgress: func(received int64) { c.onProgress(rec, received) },
		OnDone:     func(result port.TransferResult) { c.onDone(rec, result) },
	})

	logging.FromContext(rec.ctx).Info().
		Str("filename", prepared.Filename).
		Str("total", sizeLabel(rec.TotalBytes)).
		Msg("download started")

	c.window.PromptSavePath(ctx, prepared.Filename, func(path string, canceled bool, err error) {
		c.onPromptResolved(rec, path, canceled, err)
	})
}

func (c *DownloadCoordinator) onProgress(rec *trackedDownload, received int64) {
	if !rec.RecordProgress(received, c.now()) {
		return
	}
	if c.isAdmitted(rec) {
		c.publish(ChannelDownloadUpdated, rec.ProgressUpdate())
	}
}

func (c *DownloadCoordinator) onDone(rec *trackedDownload, result port.TransferResult) {
	if rec.IsDone {
		return
	}
	rec.IsDone = true
	rec.result = result
	rec.transfer = nil

	log := logging.FromContext(rec.ctx)
	log.Debug().
		Str("result", result.String()).
		Bool("admitted", c.isAdmitted(rec)).
		Str("received", humanize.Bytes(uint64(rec.ReceivedBytes))).
		Msg("transfer ended")

	switch result {
	case port.TransferCancelled:
		if c.isAdmitted(rec) {
			c.conclude(rec, entity.DownloadCancelled)
		}
		c.discardTemp(rec)
	case port.TransferInterrupted:
		if c.isAdmitted(rec) {
			c.conclude(rec, entity.DownloadFailed)
			c.discardTemp(rec)
		}
	case port.TransferFinished:
		if c.isAdmitted(rec) {
			c.finalize(rec)
		}
	}
}

func (c *DownloadCoordinator) onPromptResolved(rec *trackedDownload, path string, canceled bool, err error) {
	log := logging.FromContext(rec.ctx)
	if err != nil {
		log.Warn().Err(err).Msg("save prompt failed, cancelling download")
		canceled = true
	}

	if canceled || path == "" {
		log.Debug().Msg("save prompt dismissed")
		if rec.transfer != nil {
			rec.transfer.Cancel()
		}
		if rec.IsDone {
			c.discardTemp(rec)
		}
		return
	}

	rec.Path = path
	c.admitted[rec.ID] = rec
	c.order = append(c.order, rec.ID)
	log.Info().Str("path", path).Msg("download destination confirmed")

	if c.panel != nil {
		c.panel.Show(rec.ctx)
	}
	c.publish(ChannelDownloadAdded, rec.Status())

	if !rec.IsDone {
		return
	}
	switch rec.result {
	case port.TransferFinished:
		c.finalize(rec)
	case port.TransferCancelled:
		c.conclude(rec, entity.DownloadCancelled)
	case port.TransferInterrupted:
		c.conclude(rec, entity.DownloadFailed)
		c.discardTemp(rec)
	}
}

// finalize moves the temp file into place exactly once.
func (c *DownloadCoordinator) finalize(rec *trackedDownload) {
	if !rec.BeginFinalize() {
		return
	}
	if !rec.HasDestination() {
		c.terminate(rec, entity.DownloadCompleted)
		return
	}

	src, dst := rec.TempPath, rec.Path
	c.background(func() error {
		return c.fs.Move(rec.ctx, src, dst)
	}, func(err error) {
		log := logging.FromContext(rec.ctx)
		if err != nil {
			log.Error().Err(err).Str("path", dst).Msg("failed to move download into place")
			c.terminate(rec, entity.DownloadFailed)
			c.discardTemp(rec)
			return
		}
		rec.tempCleaned = true
		log.Info().
			Str("path", dst).
			Str("size", humanize.Bytes(uint64(rec.ReceivedBytes))).
			Str("elapsed", c.now().Sub(rec.StartTime).Round(time.Millisecond).String()).
			Msg("download completed")
		c.terminate(rec, entity.DownloadCompleted)
	})
}

// conclude claims finalization and records a terminal state.
func (c *DownloadCoordinator) conclude(rec *trackedDownload, state entity.DownloadState) {
	if !rec.BeginFinalize() {
		return
	}
	c.terminate(rec, state)
}

func (c *DownloadCoordinator) terminate(rec *trackedDownload, state entity.DownloadState) {
	rec.SetTerminal(state, c.now())
	if !c.isAdmitted(rec) {
		return
	}
	c.publish(ChannelDownloadCompleted, entity.DownloadCompletion{
		ID:    rec.ID,
		State: state,
		Path:  rec.Path,
	})
}

// discardTemp deletes the temp file at most once. Failures are only logged.
func (c *DownloadCoordinator) discardTemp(rec *trackedDownload) {
	if rec.tempCleaned {
		return
	}
	rec.tempCleaned = true
	path := rec.TempPath
	c.background(func() error {
		return c.fs.Remove(rec.ctx, path)
	}, func(err error) {
		if err != nil {
			logging.FromContext(rec.ctx).Debug().Err(err).Str("path", path).Msg("temp cleanup failed")
		}
	})
}

// background runs work off the main loop and posts done back onto it.
func (c *DownloadCoordinator) background(work func() error, done func(error)) {
	c.spawn(func() {
		err := work()
		c.loop.Post(func() { done(err) })
	})
}

// Open launches a completed download with the default application.
func (c *DownloadCoordinator) Open(ctx context.Context, id entity.DownloadID) {
	rec, ok := c.admitted[id]
	if !ok || rec.State != entity.DownloadCompleted || c.desktop == nil {
		return
	}
	path := rec.Path
	c.spawn(func() {
		if err := c.desktop.OpenPath(ctx, path); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("path", path).Msg("failed to open download")
		}
	})
}

// ShowInFolder reveals the download in the file manager, in any state.
func (c *DownloadCoordinator) ShowInFolder(ctx context.Context, id entity.DownloadID) {
	rec, ok := c.admitted[id]
	if !ok || c.desktop == nil {
		return
	}
	path := rec.Path
	c.spawn(func() {
		if err := c.desktop.ShowItemInFolder(ctx, path); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("path", path).Msg("failed to show download")
		}
	})
}

// Cancel aborts an admitted transfer that is still running.
func (c *DownloadCoordinator) Cancel(ctx context.Context, id entity.DownloadID) {
	rec, ok := c.admitted[id]
	if !ok || rec.IsDone || rec.transfer == nil {
		return
	}
	logging.FromContext(ctx).Info().Str("download_id", string(id)).Msg("cancelling download")
	rec.transfer.Cancel()
}

// Remove forgets a download, cancelling it first when still running.
func (c *DownloadCoordinator) Remove(ctx context.Context, id entity.DownloadID) {
	rec, ok := c.admitted[id]
	if !ok {
		return
	}
	if !rec.IsDone && rec.transfer != nil {
		rec.transfer.Cancel()
	}
	c.forget(id)
	logging.FromContext(ctx).Debug().Str("download_id", string(id)).Msg("download removed")
	c.publish(ChannelDownloadRemoved, id)
}

// ClearCompleted forgets every download that is no longer progressing and
// returns the removed ids.
func (c *DownloadCoordinator) ClearCompleted(ctx context.Context) []entity.DownloadID {
	cleared := make([]entity.DownloadID, 0)
	for _, id := range c.order {
		if c.admitted[id].State != entity.DownloadProgressing {
			cleared = append(cleared, id)
		}
	}
	for _, id := range cleared {
		c.forget(id)
	}
	logging.FromContext(ctx).Debug().Int("count", len(cleared)).Msg("cleared downloads")
	c.publish(ChannelDownloadCleared, cleared)
	return cleared
}

// GetAll returns snapshots of admitted downloads in admission order.
func (c *DownloadCoordinator) GetAll() []entity.DownloadStatus {
	out := make([]entity.DownloadStatus, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.admitted[id].Status())
	}
	return out
}

// Get returns the snapshot of one admitted download.
func (c *DownloadCoordinator) Get(id entity.DownloadID) (entity.DownloadStatus, bool) {
	rec, ok := c.admitted[id]
	if !ok {
		return entity.DownloadStatus{}, false
	}
	return rec.Status(), true
}

// CancelAll aborts every running transfer, used on shutdown.
func (c *DownloadCoordinator) CancelAll(ctx context.Context) {
	for _, id := range c.order {
		c.Cancel(ctx, id)
	}
}

func (c *DownloadCoordinator) forget(id entity.DownloadID) {
	delete(c.admitted, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *DownloadCoordinator) isAdmitted(rec *trackedDownload) bool {
	return c.admitted[rec.ID] == rec
}

func (c *DownloadCoordinator) publish(channel string, payload any) {
	if c.publisher != nil {
		c.publisher.Publish(channel, payload)
	}
}

func sizeLabel(n int64) string {
	if n <= 0 {
		return "unknown"
	}
	return humanize.Bytes(uint64(n))
}

var _ port.DownloadStartHandler = (*DownloadCoordinator)(nil)
