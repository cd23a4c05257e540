// Package clock provides the wall clock used for interaction timing.
package clock

import "time"

// System implements port.Clock with time.Now, which carries a monotonic reading.
type System struct{}

// New returns the system clock.
func New() System {
	return System{}
}

// Now implements port.Clock.
func (System) Now() time.Time {
	return time.Now()
}
