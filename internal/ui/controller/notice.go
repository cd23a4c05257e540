package controller

import "time"

// NoticeLevel grades a notification.
type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeWarn  NoticeLevel = "warn"
	NoticeError NoticeLevel = "error"
)

// Notice is a transient message for the status line.
type Notice struct {
	Level NoticeLevel
	Text  string
	At    time.Time
}

// Expired reports whether the notice is older than ttl at now.
func (n Notice) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(n.At) > ttl
}
