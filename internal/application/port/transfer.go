package port

import "context"

// TransferResult tells how a transfer ended.
type TransferResult int

const (
	// TransferFinished indicates all bytes were written to the destination.
	TransferFinished TransferResult = iota
	// TransferCancelled indicates the transfer was cancelled.
	TransferCancelled
	// TransferInterrupted indicates the transfer failed.
	TransferInterrupted
)

// String returns a human-readable representation of the result.
func (r TransferResult) String() string {
	switch r {
	case TransferFinished:
		return "finished"
	case TransferCancelled:
		return "cancelled"
	case TransferInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// TransferCallbacks receives transfer notifications on the main loop.
type TransferCallbacks struct {
	// OnProgress is called repeatedly with the cumulative received byte count.
	OnProgress func(receivedBytes int64)
	// OnDone is called once when the transfer ends.
	OnDone func(result TransferResult)
}

// Transfer is a host-provided handle for one in-progress file download.
// The host starts writing bytes before any application code runs.
type Transfer interface {
	// SuggestedFilename is the name proposed by the server or page.
	SuggestedFilename() string
	// MimeType is the response content type, or "".
	MimeType() string
	// URI is the source address, or "".
	URI() string
	// TotalBytes is the expected size, 0 when unknown.
	TotalBytes() int64

	// SetDestination tells the host where to write. It must be called before
	// the start handler returns, otherwise the host shows its own dialog.
	SetDestination(path string)
	// SetCallbacks registers progress and completion handlers.
	SetCallbacks(callbacks *TransferCallbacks)
	// Cancel aborts the transfer. Cancelling a finished transfer is a no-op.
	Cancel()
}

// DownloadStartHandler receives transfers the moment the host starts them.
type DownloadStartHandler interface {
	HandleStarted(ctx context.Context, transfer Transfer)
}
