package logging

import (
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverPanic logs a panic with its stack and re-panics. Call it deferred
// at the top of long-running goroutines so the log file keeps the trace
// even when the terminal is in the alternate screen.
func RecoverPanic(logger zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	logger.Error().
		Interface("panic", r).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", debug.Stack()).
		Msg("panic")
	panic(r)
}
