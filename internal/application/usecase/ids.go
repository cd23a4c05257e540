package usecase

import (
	"fmt"
	"sync/atomic"
)

// IDGenerator produces unique identifiers for new panels.
type IDGenerator func() string

// SequentialIDs returns a generator yielding prefix1, prefix2, ...
func SequentialIDs(prefix string) IDGenerator {
	var n atomic.Uint64
	return func() string {
		return fmt.Sprintf("%s%d", prefix, n.Add(1))
	}
}
