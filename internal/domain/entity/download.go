package entity

import (
	"math"
	"time"
)

// DownloadID uniquely identifies a download.
type DownloadID string

// DownloadState is the lifecycle state shown to the UI.
type DownloadState string

const (
	DownloadPending     DownloadState = "pending"
	DownloadProgressing DownloadState = "progressing"
	DownloadCompleted   DownloadState = "completed"
	DownloadFailed      DownloadState = "failed"
	DownloadCancelled   DownloadState = "cancelled"
)

// IsTerminal reports whether no further state change can happen.
func (s DownloadState) IsTerminal() bool {
	return s == DownloadCompleted || s == DownloadFailed || s == DownloadCancelled
}

// Download is the coordinator-owned record of one transfer.
// It exists from the moment the host starts the transfer; whether the UI can
// see it is decided by the coordinator, not by this record.
type Download struct {
	ID            DownloadID
	Filename      string
	TempPath      string
	Path          string // Equals TempPath until the user confirms a destination
	TotalBytes    int64  // 0 when unknown
	ReceivedBytes int64
	State         DownloadState
	StartTime     time.Time
	EndTime       time.Time
	Speed         float64 // bytes/sec over the last tick
	Progress      float64 // 0..1
	Percent       int     // round(Progress*100)
	IsDone        bool    // Host reported the transfer ended, in any way

	finalized  bool
	lastBytes  int64
	lastSample time.Time
}

// NewDownload creates a record for a transfer that has just started writing
// to tempPath.
func NewDownload(id DownloadID, filename, tempPath string, totalBytes int64, now time.Time) *Download {
	if totalBytes < 0 {
		totalBytes = 0
	}
	return &Download{
		ID:         id,
		Filename:   filename,
		TempPath:   tempPath,
		Path:       tempPath,
		TotalBytes: totalBytes,
		State:      DownloadProgressing,
		StartTime:  now,
		lastSample: now,
	}
}

// RecordProgress applies a host progress tick. Ticks after the transfer ended
// and readings lower than what was already recorded are ignored, so Progress
// never decreases. Returns true when the record changed.
func (d *Download) RecordProgress(received int64, now time.Time) bool {
	if d.IsDone || received < d.ReceivedBytes {
		return false
	}

	elapsed := now.Sub(d.lastSample).Seconds()
	speed := 0.0
	if elapsed > 0 {
		speed = float64(received-d.lastBytes) / elapsed
	}
	d.lastBytes = received
	d.lastSample = now

	d.ReceivedBytes = received
	d.Speed = speed
	d.Progress = 0
	if d.TotalBytes > 0 {
		d.Progress = math.Min(float64(received)/float64(d.TotalBytes), 1)
	}
	d.Percent = int(math.Round(d.Progress * 100))
	return true
}

// SetTerminal moves the record into a terminal state and stamps EndTime.
func (d *Download) SetTerminal(state DownloadState, now time.Time) {
	d.State = state
	d.EndTime = now
}

// HasDestination reports whether the user confirmed a path other than the
// temporary one.
func (d *Download) HasDestination() bool {
	return d.Path != "" && d.Path != d.TempPath
}

// BeginFinalize claims the one-time finalization. It returns false when a
// previous call already claimed it.
func (d *Download) BeginFinalize() bool {
	if d.finalized {
		return false
	}
	d.finalized = true
	return true
}

// Finalized reports whether finalization has been claimed.
func (d *Download) Finalized() bool {
	return d.finalized
}

// Status returns the UI snapshot of the record.
func (d *Download) Status() DownloadStatus {
	status := DownloadStatus{
		ID:            d.ID,
		Filename:      d.Filename,
		Path:          d.Path,
		TotalBytes:    d.TotalBytes,
		ReceivedBytes: d.ReceivedBytes,
		State:         d.State,
		StartTime:     d.StartTime.UnixMilli(),
		Speed:         d.Speed,
		Progress:      d.Progress,
		Percent:       d.Percent,
	}
	if !d.EndTime.IsZero() {
		end := d.EndTime.UnixMilli()
		status.EndTime = &end
	}
	return status
}

// ProgressUpdate returns the payload of download:updated.
func (d *Download) ProgressUpdate() DownloadProgress {
	return DownloadProgress{
		ID:            d.ID,
		ReceivedBytes: d.ReceivedBytes,
		TotalBytes:    d.TotalBytes,
		Speed:         d.Speed,
		Progress:      d.Progress,
		Percent:       d.Percent,
		State:         d.State,
	}
}

// DownloadStatus is the payload of download:added and download:getAll.
// Times are Unix milliseconds.
type DownloadStatus struct {
	ID            DownloadID    `json:"id"`
	Filename      string        `json:"filename"`
	Path          string        `json:"path"`
	TotalBytes    int64         `json:"totalBytes"`
	ReceivedBytes int64         `json:"receivedBytes"`
	State         DownloadState `json:"state"`
	StartTime     int64         `json:"startTime"`
	EndTime       *int64        `json:"endTime,omitempty"`
	Speed         float64       `json:"speed"`
	Progress      float64       `json:"progress"`
	Percent       int           `json:"percent"`
}

// DownloadProgress is the payload of download:updated.
type DownloadProgress struct {
	ID            DownloadID    `json:"id"`
	ReceivedBytes int64         `json:"receivedBytes"`
	TotalBytes    int64         `json:"totalBytes"`
	Speed         float64       `json:"speed"`
	Progress      float64       `json:"progress"`
	Percent       int           `json:"percent"`
	State         DownloadState `json:"state"`
}

// DownloadCompletion is the payload of download:completed.
type DownloadCompletion struct {
	ID    DownloadID    `json:"id"`
	State DownloadState `json:"state"`
	Path  string        `json:"path"`
}
