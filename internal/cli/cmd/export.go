package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/datagrid/internal/application/usecase"
	"github.com/bnema/datagrid/internal/cli"
	"github.com/bnema/datagrid/internal/cli/styles"
	"github.com/bnema/datagrid/internal/domain/entity"
	"github.com/bnema/datagrid/internal/logging"
)

var (
	exportOut     string
	exportFormats []string
	exportOps     []string
	exportRows    int
	exportCols    int
	exportLayout  []string
	exportNoDemo  bool
	exportTitle   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a layout to PNG, SVG or HTML",
	Long: `Build the starting layout, apply layout operations in order and write
the figure without opening the terminal UI.

Operations (--op, repeatable):
  split:ID:AXIS         AXIS is horizontal|vertical (or hsplit|vsplit)
  extend:ID:SIDE        SIDE is top|right|bottom|left
  plot:ID:DATASET[:KIND] KIND is line|bar|scatter (default line)

Panels of the starting layout are named p1, p2, ... in layout order, new
panels continue the sequence.

Examples:
  datagrid export --out ./figs
  datagrid export --format png --op split:p1:vertical --op extend:p2:top
  datagrid export --no-demo --op plot:p1:d_sin --op plot:p2:d_sample1:scatter`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output directory (default from config)")
	exportCmd.Flags().StringSliceVarP(&exportFormats, "format", "f", nil, "formats to write: png,svg,html (default from config)")
	exportCmd.Flags().StringArrayVar(&exportOps, "op", nil, "layout operation, repeatable")
	exportCmd.Flags().IntVar(&exportRows, "rows", 0, "grid rows (default from config)")
	exportCmd.Flags().IntVar(&exportCols, "cols", 0, "grid columns (default from config)")
	exportCmd.Flags().StringArrayVar(&exportLayout, "layout", nil, `panel rectangle "r1,c1,r2,c2", repeatable`)
	exportCmd.Flags().BoolVar(&exportNoDemo, "no-demo", false, "do not plot random datasets on panels")
	exportCmd.Flags().StringVar(&exportTitle, "title", "", "figure title, also the file base name")
}

func runExport(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "export")
	renderer := styles.NewConfigRenderer(app.Theme)

	ops := make([]layoutOp, 0, len(exportOps))
	for _, s := range exportOps {
		op, err := parseOp(s)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}

	session, err := app.NewSession(ctx, cli.SessionOptions{
		Rows:   exportRows,
		Cols:   exportCols,
		Layout: exportLayout,
		NoDemo: exportNoDemo,
	})
	if err != nil {
		return err
	}
	for _, op := range ops {
		if err := op.apply(ctx, session); err != nil {
			return fmt.Errorf("op %s: %w", op, err)
		}
	}

	dir, err := app.ExportDir(exportOut)
	if err != nil {
		return fmt.Errorf("resolve export dir: %w", err)
	}
	formats := exportFormats
	if len(formats) == 0 {
		formats = app.Config.Export.FormatNames()
	}
	figure := app.FigureOptions()
	if exportTitle != "" {
		figure.Title = exportTitle
	}

	out, err := session.Export.Export(ctx, usecase.ExportFigureInput{
		Tiling:  session.Tiling,
		Dir:     dir,
		Formats: formats,
		Options: figure,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderExported(out.Paths))
	return nil
}

// layoutOp is one --op value.
type layoutOp struct {
	kind    string
	panel   entity.PanelID
	axis    entity.Axis
	dir     entity.Direction
	dataset string
	plot    entity.PlotKind
}

func (o layoutOp) String() string {
	switch o.kind {
	case "split":
		return fmt.Sprintf("split:%s:%s", o.panel, o.axis)
	case "extend":
		return fmt.Sprintf("extend:%s:%s", o.panel, o.dir)
	}
	return fmt.Sprintf("plot:%s:%s:%s", o.panel, o.dataset, o.plot)
}

// parseOp parses split:ID:AXIS, extend:ID:SIDE and plot:ID:DATASET[:KIND].
func parseOp(s string) (layoutOp, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 3 || parts[1] == "" {
		return layoutOp{}, fmt.Errorf("invalid op %q: want kind:panel:arg", s)
	}
	op := layoutOp{kind: strings.ToLower(parts[0]), panel: entity.PanelID(parts[1])}

	var err error
	switch op.kind {
	case "split":
		if len(parts) != 3 {
			return layoutOp{}, fmt.Errorf("invalid op %q: want split:panel:axis", s)
		}
		op.axis, err = entity.ParseAxis(parts[2])
	case "extend":
		if len(parts) != 3 {
			return layoutOp{}, fmt.Errorf("invalid op %q: want extend:panel:side", s)
		}
		op.dir, err = entity.ParseDirection(parts[2])
	case "plot":
		if len(parts) > 4 {
			return layoutOp{}, fmt.Errorf("invalid op %q: want plot:panel:dataset[:kind]", s)
		}
		op.dataset = parts[2]
		op.plot = entity.PlotLine
		if len(parts) == 4 {
			op.plot, err = entity.ParsePlotKind(parts[3])
		}
	default:
		return layoutOp{}, fmt.Errorf("invalid op %q: unknown kind %q", s, parts[0])
	}
	if err != nil {
		return layoutOp{}, fmt.Errorf("invalid op %q: %w", s, err)
	}
	return op, nil
}

func (o layoutOp) apply(ctx context.Context, s *cli.Session) error {
	switch o.kind {
	case "split":
		out, err := s.Panels.Split(ctx, usecase.SplitPanelInput{Tiling: s.Tiling, PanelID: o.panel, Axis: o.axis})
		if err != nil {
			return err
		}
		if s.Demo && !out.Skipped {
			_, err = s.Plot.ShowDemo(ctx, s.Tiling, out.NewPanel.ID, s.Frame)
		}
		return err
	case "extend":
		_, err := s.Panels.Extend(ctx, usecase.ExtendPanelInput{Tiling: s.Tiling, PanelID: o.panel, Direction: o.dir})
		return err
	}
	_, err := s.Plot.Show(ctx, usecase.ShowDatasetInput{
		Tiling:  s.Tiling,
		PanelID: o.panel,
		Frame:   s.Frame,
		Dataset: o.dataset,
		Kind:    o.plot,
	})
	return err
}
