package port

import (
	"context"

	"github.com/bnema/datagrid/internal/domain/entity"
)

// DatasetSource loads the named datasets offered in the data menu.
type DatasetSource interface {
	// Load returns the full, ordered data frame.
	Load(ctx context.Context) (*entity.DataFrame, error)
}
