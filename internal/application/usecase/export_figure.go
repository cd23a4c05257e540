package usecase

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/datagrid/internal/application/port"
	"github.com/bnema/datagrid/internal/domain/entity"
	"github.com/bnema/datagrid/internal/logging"
)

// ExportFigureUseCase writes the current figure with every configured exporter.
type ExportFigureUseCase struct {
	exporters []port.FigureExporter
}

// NewExportFigureUseCase creates an export use case.
func NewExportFigureUseCase(exporters ...port.FigureExporter) *ExportFigureUseCase {
	return &ExportFigureUseCase{exporters: exporters}
}

// ExportFigureInput contains the export parameters.
type ExportFigureInput struct {
	Tiling  *entity.Tiling
	Dir     string
	Formats []string // empty selects every exporter
	Options port.FigureOptions
}

// ExportFigureOutput lists the written files.
type ExportFigureOutput struct {
	RunID string
	Paths []string
}

// Export snapshots the tiling and renders it concurrently. The live tiling
// is only read while cloning.
func (uc *ExportFigureUseCase) Export(ctx context.Context, input ExportFigureInput) (*ExportFigureOutput, error) {
	if input.Tiling == nil {
		return nil, fmt.Errorf("tiling is required")
	}
	selected, err := uc.selectExporters(input.Formats)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(input.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	runID := uuid.NewString()
	log := logging.FromContext(ctx).With().Str("export_run", runID).Logger()
	snapshot := input.Tiling.Clone()

	var (
		mu    sync.Mutex
		paths []string
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, exp := range selected {
		g.Go(func() error {
			path, err := exp.Export(gctx, snapshot, input.Dir, input.Options)
			if err != nil {
				return fmt.Errorf("export %s: %w", exp.Format(), err)
			}
			log.Debug().Str("format", exp.Format()).Str("path", path).Msg("figure written")
			mu.Lock()
			paths = append(paths, path)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("export failed")
		return nil, err
	}

	sort.Strings(paths)
	log.Info().Int("files", len(paths)).Str("dir", input.Dir).Msg("figure exported")
	return &ExportFigureOutput{RunID: runID, Paths: paths}, nil
}

func (uc *ExportFigureUseCase) selectExporters(formats []string) ([]port.FigureExporter, error) {
	if len(formats) == 0 {
		if len(uc.exporters) == 0 {
			return nil, fmt.Errorf("no exporters configured")
		}
		return uc.exporters, nil
	}
	byFormat := make(map[string]port.FigureExporter, len(uc.exporters))
	for _, e := range uc.exporters {
		byFormat[e.Format()] = e
	}
	out := make([]port.FigureExporter, 0, len(formats))
	for _, f := range formats {
		e, ok := byFormat[f]
		if !ok {
			return nil, fmt.Errorf("unsupported export format %q", f)
		}
		out = append(out, e)
	}
	return out, nil
}
