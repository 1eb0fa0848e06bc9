package usecase

// Event channels published by the coordinators.
const (
	ChannelTabCreated  = "tab:created"
	ChannelTabSwitched = "tab:switched"
	ChannelTabUpdated  = "tab:updated"
	ChannelTabClosed   = "tab:closed"

	ChannelDownloadAdded     = "download:added"
	ChannelDownloadUpdated   = "download:updated"
	ChannelDownloadCompleted = "download:completed"
	ChannelDownloadRemoved   = "download:removed"
	ChannelDownloadCleared   = "download:cleared"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string
