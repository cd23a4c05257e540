package logging

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	sessionPrefix = "session_"
	sessionSuffix = ".log"
)

// GenerateSessionID creates a unique session identifier.
// Format: YYYYMMDD_HHMMSS_xxxx (timestamp + 4 hex chars of a random uuid)
// Example: 20251217_205106_a7b3
func GenerateSessionID() string {
	return generateSessionID(time.Now())
}

func generateSessionID(now time.Time) string {
	return now.Format("20060102_150405") + "_" + uuid.NewString()[:4]
}

// ShortSessionID extracts the short ID (last 4 hex chars) from a full session ID.
func ShortSessionID(sessionID string) string {
	if len(sessionID) < 4 {
		return sessionID
	}
	return sessionID[len(sessionID)-4:]
}

// ParseSessionFilename extracts the session id from a log filename.
// Example: "session_20251217_205106_a7b3.log" -> "20251217_205106_a7b3", true
func ParseSessionFilename(filename string) (sessionID string, ok bool) {
	if !strings.HasPrefix(filename, sessionPrefix) || !strings.HasSuffix(filename, sessionSuffix) {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(filename, sessionPrefix), sessionSuffix)
	return id, id != ""
}

// SessionFilename generates the log filename for a session ID.
func SessionFilename(sessionID string) string {
	return sessionPrefix + sessionID + sessionSuffix
}
