package port

import "time"

// Clock provides monotonic timestamps for interaction timing (pick debounce).
type Clock interface {
	// Now returns the current time. Implementations must keep the monotonic reading.
	Now() time.Time
}
