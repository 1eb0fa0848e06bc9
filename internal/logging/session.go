package logging

import "github.com/segmentio/ksuid"

const shortSessionLen = 6

// GenerateSessionID returns a time-sortable identifier for one browser run.
func GenerateSessionID() string {
	return ksuid.New().String()
}

// ShortSessionID is the tail of sessionID, attached to every log line.
func ShortSessionID(sessionID string) string {
	if len(sessionID) <= shortSessionLen {
		return sessionID
	}
	return sessionID[len(sessionID)-shortSessionLen:]
}

// SessionFilename is the log file name for sessionID.
func SessionFilename(sessionID string) string {
	return "viewshell-" + sessionID + ".log"
}
