package port

import (
	"context"

	"github.com/bnema/datagrid/internal/domain/entity"
)

// Renderer defines the port interface for redraw requests.
// The geometry engine calls it only after a mutation succeeded.
type Renderer interface {
	// Invalidate marks the grid region as needing a redraw.
	Invalidate(ctx context.Context, region entity.Rect)
}
