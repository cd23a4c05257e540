// Package controller turns pointer events on the plot grid into menus and
// layout operations.
package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/datagrid/internal/application/port"
	"github.com/bnema/datagrid/internal/application/usecase"
	"github.com/bnema/datagrid/internal/domain/entity"
	"github.com/bnema/datagrid/internal/logging"
)

// DefaultPickDebounce drops picks that follow the previous one this closely.
// Overlapping series under the pointer each report a pick for one press.
const DefaultPickDebounce = 400 * time.Millisecond

// Deps are the collaborators of a Controller.
type Deps struct {
	Tiling   *entity.Tiling
	Frame    *entity.DataFrame
	Panels   *usecase.ManagePanelsUseCase
	Plot     *usecase.PlotDatasetUseCase
	Style    *usecase.StyleSeriesUseCase
	Renderer port.Renderer
	Clock    port.Clock
}

// Options tune controller behavior.
type Options struct {
	// PickDebounce falls back to DefaultPickDebounce when zero.
	PickDebounce time.Duration
	// NoPickDebounce handles every pick, ignoring PickDebounce.
	NoPickDebounce bool
	// Demo plots a random dataset on every panel created by a split.
	Demo bool
}

// Controller owns the open menu, the panel highlight and the notice line.
// It is not safe for concurrent use; the UI loop drives it.
type Controller struct {
	tiling   *entity.Tiling
	frame    *entity.DataFrame
	panels   *usecase.ManagePanelsUseCase
	plot     *usecase.PlotDatasetUseCase
	style    *usecase.StyleSeriesUseCase
	renderer port.Renderer
	clock    port.Clock

	debounce time.Duration
	demo     bool
	pickTime time.Time

	menu     *Menu
	notice   *Notice
	helpOpen bool
}

// New creates a controller. The pick clock starts at construction, so a pick
// arriving within the debounce window of startup is ignored.
func New(deps Deps, opts Options) *Controller {
	switch {
	case opts.NoPickDebounce:
		opts.PickDebounce = 0
	case opts.PickDebounce <= 0:
		opts.PickDebounce = DefaultPickDebounce
	}
	return &Controller{
		tiling:   deps.Tiling,
		frame:    deps.Frame,
		panels:   deps.Panels,
		plot:     deps.Plot,
		style:    deps.Style,
		renderer: deps.Renderer,
		clock:    deps.Clock,
		debounce: opts.PickDebounce,
		demo:     opts.Demo,
		pickTime: deps.Clock.Now(),
	}
}

// Tiling returns the live tiling.
func (c *Controller) Tiling() *entity.Tiling { return c.tiling }

// Frame returns the dataset frame offered by the data menu.
func (c *Controller) Frame() *entity.DataFrame { return c.frame }

// Menu returns the open menu, or nil.
func (c *Controller) Menu() *Menu { return c.menu }

// Highlighted returns the panel marked by the open menu.
func (c *Controller) Highlighted() entity.PanelID {
	if c.menu == nil {
		return ""
	}
	return c.menu.Panel
}

// Notice returns the latest notification, or nil.
func (c *Controller) Notice() *Notice { return c.notice }

// ClearNotice drops the notification line.
func (c *Controller) ClearNotice() { c.notice = nil }

// SetPickDebounce changes the pick window, used on config reload. Zero
// disables debouncing; negative values are ignored.
func (c *Controller) SetPickDebounce(d time.Duration) {
	if d >= 0 {
		c.debounce = d
	}
}

// SetFrame replaces the dataset frame.
func (c *Controller) SetFrame(f *entity.DataFrame) { c.frame = f }

// HandlePress reacts to a mouse press. It also runs after a pick for the
// same press; a left press is then a no-op.
func (c *Controller) HandlePress(ctx context.Context, ev ButtonPress) {
	if ev.Panel == "" {
		c.Dismiss(ctx)
		return
	}
	switch ev.Button {
	case ButtonRight:
		c.Dismiss(ctx)
		c.openDataMenu(ctx, ev)
	case ButtonMiddle:
		c.Dismiss(ctx)
		c.openGridMenu(ctx, ev)
	}
}

// HandlePick reacts to a press that hit a series. Only the first pick in the
// debounce window is handled. Returns whether the pick was accepted.
func (c *Controller) HandlePick(ctx context.Context, ev Pick) bool {
	now := c.clock.Now()
	if c.debounce > 0 && now.Sub(c.pickTime) <= c.debounce {
		logging.FromContext(ctx).Debug().Str("artist_id", string(ev.Artist)).Msg("pick debounced")
		return false
	}
	c.pickTime = now
	c.Dismiss(ctx)
	if ev.Button == ButtonLeft {
		c.openActionMenu(ctx, ev)
	}
	return true
}

// Dismiss closes the open menu and restores the panel highlight.
func (c *Controller) Dismiss(ctx context.Context) {
	if c.menu == nil {
		return
	}
	m := c.menu
	c.menu = nil
	if p, err := c.tiling.Panel(m.Panel); err == nil {
		c.renderer.Invalidate(ctx, p.Rect)
	}
	logging.FromContext(ctx).Debug().Str("menu", string(m.Kind)).Msg("menu dismissed")
}

func (c *Controller) open(ctx context.Context, m *Menu) {
	c.menu = m
	if p, err := c.tiling.Panel(m.Panel); err == nil {
		c.renderer.Invalidate(ctx, p.Rect)
	}
	logging.FromContext(ctx).Debug().
		Str("menu", string(m.Kind)).
		Str("panel_id", string(m.Panel)).
		Msg("menu opened")
}

func (c *Controller) openGridMenu(ctx context.Context, ev ButtonPress) {
	entries, err := c.panels.GridMenu(ctx, c.tiling, ev.Panel)
	if err != nil {
		c.fail(ctx, err)
		return
	}
	c.open(ctx, &Menu{Kind: MenuGrid, Panel: ev.Panel, X: ev.X, Y: ev.Y, Grid: entries})
}

func (c *Controller) openDataMenu(ctx context.Context, ev ButtonPress) {
	if c.frame == nil || c.frame.Len() == 0 {
		c.notify(NoticeWarn, "no datasets loaded")
		return
	}
	c.open(ctx, &Menu{
		Kind:     MenuData,
		Panel:    ev.Panel,
		X:        ev.X,
		Y:        ev.Y,
		Datasets: c.frame.Names(),
		Kinds:    entity.PlotKinds,
	})
}

func (c *Controller) openActionMenu(ctx context.Context, ev Pick) {
	summary, err := c.style.Describe(ctx, usecase.SeriesRef{Tiling: c.tiling, PanelID: ev.Panel, ArtistID: ev.Artist})
	if err != nil {
		c.fail(ctx, err)
		return
	}
	c.open(ctx, &Menu{
		Kind:   MenuAction,
		Panel:  ev.Panel,
		X:      ev.X,
		Y:      ev.Y,
		Artist: ev.Artist,
		Series: summary,
	})
}

// SelectGrid runs a grid menu entry against the menu's panel.
func (c *Controller) SelectGrid(ctx context.Context, entry usecase.GridMenuEntry) {
	m := c.menu
	if m == nil || m.Kind != MenuGrid {
		return
	}
	ctx = logging.WithPanelID(ctx, string(m.Panel))

	switch entry.Action {
	case usecase.GridActionSplit:
		out, err := c.panels.Split(ctx, usecase.SplitPanelInput{Tiling: c.tiling, PanelID: m.Panel, Axis: entry.Axis})
		if err != nil {
			c.fail(ctx, err)
			break
		}
		if c.demo && !out.Skipped {
			if _, err := c.plot.ShowDemo(ctx, c.tiling, out.NewPanel.ID, c.frame); err != nil {
				c.fail(ctx, err)
			}
		}
	case usecase.GridActionExtend:
		if _, err := c.panels.Extend(ctx, usecase.ExtendPanelInput{Tiling: c.tiling, PanelID: m.Panel, Direction: entry.Direction}); err != nil {
			c.fail(ctx, err)
		}
	default:
		return
	}
	c.Dismiss(ctx)
}

// SelectData plots a dataset on the menu's panel.
func (c *Controller) SelectData(ctx context.Context, dataset string, kind entity.PlotKind) {
	m := c.menu
	if m == nil || m.Kind != MenuData {
		return
	}
	_, err := c.plot.Show(ctx, usecase.ShowDatasetInput{
		Tiling:  c.tiling,
		PanelID: m.Panel,
		Frame:   c.frame,
		Dataset: dataset,
		Kind:    kind,
	})
	if err != nil {
		c.fail(ctx, err)
	}
	c.Dismiss(ctx)
}

// RemoveSeries deletes the series of the action menu.
func (c *Controller) RemoveSeries(ctx context.Context) {
	m := c.menu
	if m == nil || m.Kind != MenuAction {
		return
	}
	if err := c.style.Remove(ctx, usecase.SeriesRef{Tiling: c.tiling, PanelID: m.Panel, ArtistID: m.Artist}); err != nil {
		c.fail(ctx, err)
	}
	c.Dismiss(ctx)
}

// OpenColorPicker turns the action menu into the color picker for the same
// series.
func (c *Controller) OpenColorPicker(ctx context.Context) {
	m := c.menu
	if m == nil || m.Kind != MenuAction {
		return
	}
	picker := *m
	picker.Kind = MenuColor
	c.menu = &picker
	logging.FromContext(ctx).Debug().Str("artist_id", string(m.Artist)).Msg("color picker opened")
}

// ApplyColor recolors the series of the color picker. An empty color means
// the picker was cancelled and the series is left alone.
func (c *Controller) ApplyColor(ctx context.Context, color string) {
	m := c.menu
	if m == nil || m.Kind != MenuColor {
		return
	}
	if color != "" {
		if err := c.style.Recolor(ctx, usecase.SeriesRef{Tiling: c.tiling, PanelID: m.Panel, ArtistID: m.Artist}, color); err != nil {
			c.fail(ctx, err)
		}
	}
	c.Dismiss(ctx)
}

// OpenHelp shows the help window. It is a singleton: a second call while
// open does nothing and returns false.
func (c *Controller) OpenHelp() bool {
	if c.helpOpen {
		return false
	}
	c.helpOpen = true
	return true
}

// CloseHelp hides the help window.
func (c *Controller) CloseHelp() { c.helpOpen = false }

// HelpOpen reports whether the help window is shown.
func (c *Controller) HelpOpen() bool { return c.helpOpen }

// Notify posts an informational notice.
func (c *Controller) Notify(text string) { c.notify(NoticeInfo, text) }

func (c *Controller) notify(level NoticeLevel, text string) {
	c.notice = &Notice{Level: level, Text: text, At: c.clock.Now()}
}

func (c *Controller) fail(ctx context.Context, err error) {
	log := logging.FromContext(ctx)
	switch {
	case errors.Is(err, entity.ErrNoSuchNeighbor):
		log.Info().Err(err).Msg("no panel to merge with")
		c.notify(NoticeWarn, "no adjacent panel spans that whole edge")
	case errors.Is(err, entity.ErrInvalidColor):
		c.notify(NoticeWarn, fmt.Sprintf("invalid color: %v", err))
	default:
		log.Warn().Err(err).Msg("operation failed")
		c.notify(NoticeError, err.Error())
	}
}
