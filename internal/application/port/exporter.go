package port

import (
	"context"

	"github.com/bnema/datagrid/internal/domain/entity"
)

// FigureOptions controls the size and title of an exported figure.
type FigureOptions struct {
	Title    string
	WidthIn  float64 // inches
	HeightIn float64 // inches
	DPI      int
}

// FigureExporter writes a snapshot of the tiling to disk.
type FigureExporter interface {
	// Format returns the short format name ("png", "svg", "html").
	Format() string

	// Export writes the figure into dir and returns the path of the main file.
	// The tiling is a private snapshot; exporters may read it from any goroutine.
	Export(ctx context.Context, fig *entity.Tiling, dir string, opts FigureOptions) (string, error)
}
