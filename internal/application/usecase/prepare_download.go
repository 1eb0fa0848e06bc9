package usecase

import (
	"context"
	"path/filepath"

	"github.com/bnema/viewshell/internal/domain/download"
	"github.com/bnema/viewshell/internal/logging"
)

// PrepareDownloadInput contains what the host knows when a transfer starts.
type PrepareDownloadInput struct {
	// ID is the download id the temp file is prefixed with.
	ID string
	// SuggestedFilename comes from Content-Disposition or the page.
	SuggestedFilename string
	// MimeType and URI are fallbacks for naming. Either may be empty.
	MimeType string
	URI      string
	// TempDir receives the bytes until the user picks a destination.
	TempDir string
}

// PrepareDownloadOutput contains the resolved names.
type PrepareDownloadOutput struct {
	// Filename is the sanitized name offered in the save prompt.
	Filename string
	// TempPath is where the host writes while the prompt is open.
	TempPath string
}

// PrepareDownloadUseCase resolves the display filename and temp destination
// of a new transfer. It never touches the disk: the temp path must be known
// synchronously, before the host falls back to its own dialog.
type PrepareDownloadUseCase struct{}

// NewPrepareDownloadUseCase creates a new PrepareDownloadUseCase.
func NewPrepareDownloadUseCase() *PrepareDownloadUseCase {
	return &PrepareDownloadUseCase{}
}

// Execute resolves the filename and temp path.
func (*PrepareDownloadUseCase) Execute(ctx context.Context, input PrepareDownloadInput) PrepareDownloadOutput {
	filename := download.Resolve(input.SuggestedFilename, input.MimeType, input.URI)
	tempPath := filepath.Join(input.TempDir, download.TempName(input.ID, filename))

	logging.FromContext(ctx).Debug().
		Str("suggested", input.SuggestedFilename).
		Str("filename", filename).
		Str("temp_path", tempPath).
		Msg("prepared download destination")

	return PrepareDownloadOutput{
		Filename: filename,
		TempPath: tempPath,
	}
}
